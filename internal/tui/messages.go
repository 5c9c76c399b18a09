package tui

import (
	"github.com/MKhiriev/go-form-keeper/internal/service"
	"github.com/MKhiriev/go-form-keeper/models"
)

// Page names known to the routers.
const (
	pageMenu     = "menu"
	pageLogin    = "login"
	pageRegister = "register"

	pageForms  = "forms"
	pageFill   = "fill"
	pageReport = "report"
	pageShare  = "share"
	pageDrafts = "drafts"
	pageEditor = "editor"
	pageAI     = "ai"
)

// NavigateTo switches the active page of [RootModel]. A non-nil Payload is
// delivered to the new page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload any
}

// LoginResult is produced by the login and register pages. A successful
// result finishes the login flow.
type LoginResult struct {
	Session models.Session
	Err     error
}

// LogoutRequested finishes the main loop and asks the caller to log out.
type LogoutRequested struct{}

// payloads carried by NavigateTo

type openForm struct {
	formID int64
}

type openDraft struct {
	key string
}

type openShare struct {
	formID  int64
	ownerID int64
}

type formsLoadedMsg struct {
	forms []models.Form
	err   error
}

type formLoadedMsg struct {
	form models.Form
	err  error
}

type submitDoneMsg struct {
	err error
}

type reportFieldsMsg struct {
	fields []models.Field
	err    error
}

type reportDoneMsg struct {
	report service.ClientReport
	err    error
}

type refreshDoneMsg struct {
	err error
}

type usersLoadedMsg struct {
	users []models.UserSummary
	err   error
}

type shareDoneMsg struct {
	count int
	err   error
}

type draftsLoadedMsg struct {
	drafts []models.Draft
	err    error
}

type draftLoadedMsg struct {
	draft models.Draft
	err   error
}

type draftSavedMsg struct {
	err error
}

type draftDeletedMsg struct {
	err error
}

type publishDoneMsg struct {
	form models.Form
	err  error
}

type copiedMsg struct {
	what string
	err  error
}
