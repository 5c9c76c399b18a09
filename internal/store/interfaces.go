// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements persistence for the server and for the terminal
// client.
//
// The server side talks to PostgreSQL through database/sql with the pgx
// driver. Dynamic statements (listing filters, the form merge update and the
// report GROUP BY query) are built with squirrel. Answers are kept as one
// JSONB document per submission keyed by "question_<id>". Report results are
// memoized in Redis.
//
// The client side keeps its login session, UI-shape drafts and downloaded
// raw results in a local SQLite file.
package store

import (
	"context"

	"github.com/MKhiriev/go-form-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	// UpsertExternalUser creates the account of an external identity or
	// returns the existing one with the same username.
	UpsertExternalUser(ctx context.Context, user models.User) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}

// FormRepository persists form definitions.
type FormRepository interface {
	CreateForm(ctx context.Context, form models.Form) (models.Form, error)
	// GetForm returns the form with its pages and questions. Questions are
	// returned in created_at order within each page.
	GetForm(ctx context.Context, formID int64) (models.Form, error)
	// ListForms returns form headers without pages.
	ListForms(ctx context.Context, filter models.FormFilter) ([]models.Form, error)
	// UpdateForm merges pages by index and questions by id. Pages and
	// questions missing from form are deleted.
	UpdateForm(ctx context.Context, form models.Form) (models.Form, error)
	ToggleTemplate(ctx context.Context, formID int64) (bool, error)
	SetStatus(ctx context.Context, formID int64, status models.FormStatus) (models.Form, error)
}

// AccessRepository persists the users a form is shared with.
type AccessRepository interface {
	GrantAccess(ctx context.Context, formID int64, userIDs ...int64) error
	RevokeAccess(ctx context.Context, formID, userID int64) error
	ListAllowedUsers(ctx context.Context, formID int64) ([]int64, error)
	HasAccess(ctx context.Context, formID, userID int64) (bool, error)
}

// AnswerRepository persists submissions.
type AnswerRepository interface {
	SaveSubmission(ctx context.Context, submission models.Submission) (models.Submission, error)
	// ListSubmissions returns submissions in submission order. limit <= 0
	// means no limit.
	ListSubmissions(ctx context.Context, formID int64, limit int) ([]models.Submission, error)
}

// ReportRepository runs group-by/aggregate queries over stored answers.
type ReportRepository interface {
	Aggregate(ctx context.Context, formID int64, req models.ReportRequest) ([]models.ReportRow, error)
}

// ReportCacheKey addresses a cached report at the form version it was
// resolved at. The zero key addresses nothing.
type ReportCacheKey string

// ReportCache memoizes report results per form. Invalidate makes every
// cached result of the form unreachable, including results later stored
// under a key that Get resolved before the invalidation.
type ReportCache interface {
	Get(ctx context.Context, formID int64, req models.ReportRequest) (models.ReportResult, ReportCacheKey, bool, error)
	Set(ctx context.Context, key ReportCacheKey, result models.ReportResult) error
	Invalidate(ctx context.Context, formID int64) error
	Close() error
}
