package service

import (
	"context"
	"io"

	"github.com/MKhiriev/go-form-keeper/models"
)

type AuthService interface {
	SignUp(ctx context.Context, req models.SignUpRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	// LoginWithGoogle exchanges an authorization code and returns the
	// GOOGLE account of the verified e-mail, creating it on first use.
	LoginWithGoogle(ctx context.Context, req models.GoogleLoginRequest) (models.User, error)

	GetUser(ctx context.Context, userID int64) (models.User, error)
	ListUsers(ctx context.Context) ([]models.UserSummary, error)

	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// FormService manages form definitions. userID is always the authenticated
// caller.
type FormService interface {
	CreateForm(ctx context.Context, userID int64, payload models.ServerFormPayload) (models.Form, error)
	// UpdateForm is allowed to the owner only.
	UpdateForm(ctx context.Context, userID, formID int64, payload models.ServerFormPayload) (models.Form, error)
	// GetForm returns the form in display order to its owner and to the
	// users it is shared with.
	GetForm(ctx context.Context, userID, formID int64) (models.Form, error)
	ListForms(ctx context.Context, filter models.FormFilter) ([]models.Form, error)
	ToggleTemplate(ctx context.Context, userID, formID int64) (bool, error)
	SetStatus(ctx context.Context, userID, formID int64, status models.FormStatus) (models.Form, error)
	Fields(ctx context.Context, userID, formID int64) ([]models.Field, error)
}

// AccessService manages the users a form is shared with. Every operation
// is allowed to the owner of the form only.
type AccessService interface {
	ListAllowedUsers(ctx context.Context, userID, formID int64) ([]int64, error)
	Share(ctx context.Context, userID, formID int64, userIDs ...int64) error
	Revoke(ctx context.Context, userID, formID, targetUserID int64) error
}

type AnswerService interface {
	Submit(ctx context.Context, userID, formID int64, answers models.Answers) (models.Submission, error)
	// Results returns flattened submissions to the owner of the form.
	Results(ctx context.Context, userID, formID int64, query models.ResultsQuery) ([]models.ResultRow, error)
	// ExportResults writes every submission as an XLSX workbook.
	ExportResults(ctx context.Context, userID, formID int64, w io.Writer) error
}

type ReportService interface {
	Query(ctx context.Context, userID, formID int64, req models.ReportRequest) (models.ReportResult, error)
}

type AIService interface {
	// PreviewForm generates a form without saving it.
	PreviewForm(ctx context.Context, req models.AIFormRequest) (models.Form, error)
	// GenerateForm generates a form and saves it owned by userID.
	GenerateForm(ctx context.Context, userID int64, req models.AIFormRequest) (models.Form, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// AuthServiceWrapper, FormServiceWrapper, ReportServiceWrapper and
// AIServiceWrapper decorate a service with additional behavior such as
// input validation.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

type FormServiceWrapper interface {
	Wrap(FormService) FormService
}

type ReportServiceWrapper interface {
	Wrap(ReportService) ReportService
}

type AIServiceWrapper interface {
	Wrap(AIService) AIService
}
