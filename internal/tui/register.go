package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-form-keeper/internal/service"
	"github.com/MKhiriev/go-form-keeper/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// RegisterModel is the sign-up screen. A successful sign-up logs the user
// in right away.
type RegisterModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	inputs     inputGroup
	submitting bool
	errMsg     string
}

func NewRegisterModel(ctx context.Context, auth service.ClientAuthService) *RegisterModel {
	name := newInput("name", 128)
	name.Focus()

	return &RegisterModel{
		ctx:  ctx,
		auth: auth,
		inputs: inputGroup{items: []textinput.Model{
			name,
			newInput("username", 64),
			newPasswordInput("password"),
			newPasswordInput("repeat password"),
		}},
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(LoginResult); ok {
		m.submitting = false
		m.errMsg = humanizeError(result.Err)
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case "enter":
			if m.submitting {
				return m, nil
			}

			req, errMsg := m.request()
			if errMsg != "" {
				m.errMsg = errMsg
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdSignUp(req)
		}
	}

	return m, m.inputs.update(msg)
}

func (m *RegisterModel) request() (models.SignUpRequest, string) {
	req := models.SignUpRequest{
		Name:     strings.TrimSpace(m.inputs.value(0)),
		Username: strings.TrimSpace(m.inputs.value(1)),
		Password: m.inputs.value(2),
	}

	switch {
	case req.Username == "" || req.Password == "":
		return req, "Логин и пароль обязательны"
	case len([]rune(req.Username)) < 3:
		return req, "Логин должен быть не короче 3 символов"
	case len(req.Password) < 6:
		return req, "Пароль должен быть не короче 6 символов"
	case req.Password != m.inputs.value(3):
		return req, "Пароли не совпадают"
	}

	return req, ""
}

func (m *RegisterModel) View() string {
	var b strings.Builder
	b.WriteString(m.inputs.view([]string{"Имя", "Логин", "Пароль", "Повтор"}))

	if m.submitting {
		b.WriteString("\n\n[Зарегистрироваться...]")
	} else {
		b.WriteString("\n\n[Зарегистрироваться]")
	}
	b.WriteString(renderStatus("", m.errMsg))

	return renderPage("РЕГИСТРАЦИЯ", b.String(), "esc: назад │ tab: след. поле │ enter: подтвердить")
}

func (m *RegisterModel) cmdSignUp(req models.SignUpRequest) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		session, err := auth.SignUp(ctx, req)
		return LoginResult{Session: session, Err: err}
	}
}
