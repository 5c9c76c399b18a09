// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides outbound transports.
//
// [ServerAdapter] is the terminal client's view of the go-form-keeper REST
// API. [AIGenerator] and [IdentityVerifier] are used by the server to reach
// the Gemini generative language API and Google's OpenID Connect provider.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-form-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// FormScope selects one of the form listing endpoints.
type FormScope string

const (
	ScopeOwned     FormScope = ""
	ScopeTemplates FormScope = "templates"
	ScopeActive    FormScope = "active"
	ScopeShared    FormScope = "sharedWithMe"
)

// ServerAdapter defines communication with the go-form-keeper server.
// Implementations attach the bearer token set by SetToken to every request
// except sign-up and login.
type ServerAdapter interface {
	SetToken(token string)
	Token() string

	// SignUp and Login store the returned bearer token via SetToken.
	SignUp(ctx context.Context, req models.SignUpRequest) (models.Token, error)
	Login(ctx context.Context, req models.LoginRequest) (models.Token, error)
	Me(ctx context.Context) (models.User, error)
	ListUsers(ctx context.Context) ([]models.UserSummary, error)
	Version(ctx context.Context) (string, error)

	ListForms(ctx context.Context, scope FormScope) ([]models.Form, error)
	GetForm(ctx context.Context, formID int64) (models.Form, error)
	CreateForm(ctx context.Context, payload models.ServerFormPayload) (models.Form, error)
	UpdateForm(ctx context.Context, formID int64, payload models.ServerFormPayload) (models.Form, error)
	ShareForm(ctx context.Context, formID int64, userIDs []int64) error

	SubmitAnswers(ctx context.Context, formID int64, answers models.Answers) error
	GetFields(ctx context.Context, formID int64) ([]models.Field, error)
	GetResults(ctx context.Context, formID int64, query models.ResultsQuery) ([]models.ResultRow, error)
	QueryReport(ctx context.Context, formID int64, req models.ReportRequest) (models.ReportResult, error)

	PreviewAIForm(ctx context.Context, req models.AIFormRequest) (models.AIFormResponse, error)
}

// AIGenerator turns a natural-language description into a form skeleton.
// The returned form has no ids and no owner.
type AIGenerator interface {
	GenerateForm(ctx context.Context, req models.AIFormRequest) (models.Form, error)
}

// ExternalIdentity is a verified identity returned by an external provider.
type ExternalIdentity struct {
	Email string
	Name  string
}

// IdentityVerifier exchanges an OAuth2 authorization code for a verified
// identity.
type IdentityVerifier interface {
	VerifyCode(ctx context.Context, code string) (ExternalIdentity, error)
}
