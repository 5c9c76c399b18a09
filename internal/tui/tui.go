package tui

import (
	"context"

	"github.com/MKhiriev/go-form-keeper/internal/logger"
	"github.com/MKhiriev/go-form-keeper/internal/service"
	"github.com/MKhiriev/go-form-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI runs the terminal screens of the client. Each flow is a separate
// bubbletea program on the alternate screen.
type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}
}

// LoginFlow shows the login and sign-up pages until the user is
// authenticated. Returns ErrUserQuit when the user leaves instead.
func (t *TUI) LoginFlow(ctx context.Context) (models.Session, error) {
	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageLogin:    NewLoginModel(ctx, t.services.AuthService),
		pageRegister: NewRegisterModel(ctx, t.services.AuthService),
	}

	result, err := t.run(NewRootModel(pages, pageMenu, t.buildInfo))
	if err != nil {
		return models.Session{}, err
	}
	if result.quitByUser || result.session.Token == "" {
		return models.Session{}, ErrUserQuit
	}

	t.logger.Info().Int64("user_id", result.session.UserID).Msg("logged in")
	return result.session, nil
}

// MainLoop runs the form pages for the logged in user. logout is true
// when the user asked to log out.
func (t *TUI) MainLoop(ctx context.Context, session models.Session) (logout bool, err error) {
	pages := map[string]tea.Model{
		pageForms:  NewFormsModel(ctx, t.services, session),
		pageFill:   NewFillModel(ctx, t.services.FormService),
		pageReport: NewReportModel(ctx, t.services.ReportService),
		pageShare:  NewShareModel(ctx, t.services.FormService),
		pageDrafts: NewDraftsModel(ctx, t.services.DraftService),
		pageEditor: NewEditorModel(ctx, t.services.DraftService),
		pageAI:     NewAIModel(ctx, t.services.DraftService),
	}

	result, err := t.run(NewRootModel(pages, pageForms, t.buildInfo))
	if err != nil {
		return false, err
	}
	if result.quitByUser {
		return false, ErrUserQuit
	}

	return result.logout, nil
}

func (t *TUI) run(root RootModel) (RootModel, error) {
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if err != nil {
		return RootModel{}, err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return RootModel{}, tea.ErrProgramKilled
	}
	return result, nil
}
