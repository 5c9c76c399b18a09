// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-form-keeper/models"

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	rows := [][]string{
		{"Приложение", "GoFormKeeper"},
		{"Версия", info.Version},
		{"Дата сборки", info.Date},
		{"Коммит", info.Commit},
	}

	return renderPage("ИНФОРМАЦИЯ О ПРОГРАММЕ", renderTable([]string{"Поле", "Значение"}, rows, -1), "esc: назад")
}
