// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-form-keeper/internal/service"
	"github.com/MKhiriev/go-form-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// LoginModel asks for credentials and answers with a [LoginResult]. The
// root model ends the login flow when the result carries no error.
type LoginModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	inputs  inputGroup
	pending bool
	errMsg  string
}

func NewLoginModel(ctx context.Context, auth service.ClientAuthService) *LoginModel {
	username := newInput("username", 64)
	username.Focus()

	return &LoginModel{
		ctx:    ctx,
		auth:   auth,
		inputs: inputGroup{items: []textinput.Model{username, newPasswordInput("password")}},
	}
}

func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LoginResult:
		m.pending = false
		m.errMsg = humanizeError(msg.Err)
		if msg.Err != nil {
			m.inputs.setValue(1, "")
			m.inputs.setFocus(1)
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			m.pending = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(msg, keys.enter):
			return m, m.submit()
		}
	}

	return m, m.inputs.update(msg)
}

func (m *LoginModel) submit() tea.Cmd {
	if m.pending {
		return nil
	}

	req := models.LoginRequest{
		Username: strings.TrimSpace(m.inputs.value(0)),
		Password: m.inputs.value(1),
	}
	if err := inputValidate.Struct(req); err != nil {
		m.errMsg = "Логин и пароль обязательны"
		return nil
	}

	m.errMsg = ""
	m.pending = true

	ctx, auth := m.ctx, m.auth
	return func() tea.Msg {
		session, err := auth.Login(ctx, req)
		return LoginResult{Session: session, Err: err}
	}
}

func (m *LoginModel) View() string {
	button := "[Войти]"
	if m.pending {
		button = "[Вход...]"
	}

	body := m.inputs.view([]string{"Логин", "Пароль"}) + "\n\n" + button + renderStatus("", m.errMsg)
	return renderPage("ВХОД", body, "esc: назад │ tab: след. поле │ enter: войти")
}
