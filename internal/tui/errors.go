// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-form-keeper/internal/adapter"
	"github.com/MKhiriev/go-form-keeper/internal/service"
	"github.com/MKhiriev/go-form-keeper/internal/store"
)

var ErrUserQuit = errors.New("вышел из программы")

var errorMessages = []struct {
	err error
	msg string
}{
	{service.ErrWrongPassword, "Неверный логин или пароль"},
	{store.ErrUsernameAlreadyExists, "Пользователь с таким логином уже существует"},
	{service.ErrTokenIsExpiredOrInvalid, "Сессия истекла, войдите заново"},
	{service.ErrNotLoggedIn, "Требуется вход"},
	{service.ErrAccessDenied, "Нет доступа к форме"},
	{store.ErrFormNotFound, "Форма не найдена"},
	{store.ErrUserNotFound, "Пользователь не найден"},
	{service.ErrFormExpired, "Форма закрыта для ответов"},
	{service.ErrMissingAnswer, "Не заполнен обязательный вопрос"},
	{service.ErrUnknownQuestion, "Неизвестный вопрос"},
	{service.ErrNonNumericTarget, "Для этой функции нужен числовой вопрос"},
	{service.ErrReportUnavailable, "Сервер недоступен, а сохранённых результатов нет"},
	{service.ErrInvalidDataProvided, "Некорректные данные"},
	{adapter.ErrAIDisabled, "Генерация форм отключена на сервере"},
	{adapter.ErrInvalidAIResponse, "Не удалось сгенерировать форму"},
}

func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	for _, e := range errorMessages {
		if errors.Is(err, e.err) {
			return e.msg
		}
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Отсутствует сеть или Сервер недоступен"
	}

	return err.Error()
}
