// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-form-keeper server handlers and the client error mapping.
//
// All Msg* constants are human-readable message strings written into HTTP
// response bodies. The client compares response bodies against them to
// restore typed errors, so the wording must stay in sync on both sides.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is returned when the supplied username/password
	// combination does not match any account.
	MsgInvalidLoginPassword = "invalid username/password"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoUserIDProvided is returned when a handler requires the
	// authenticated user id but none is present in the request context.
	MsgNoUserIDProvided = "no user ID provided"

	// MsgAccessDenied is returned when the user is neither the owner of the
	// form nor one of the users it is shared with.
	MsgAccessDenied = "access denied"

	// MsgUsernameAlreadyExists is returned when sign-up is rejected because
	// the username is taken.
	MsgUsernameAlreadyExists = "username already exists"

	// MsgFormNotFound is returned for an unknown form id.
	MsgFormNotFound = "form not found"

	// MsgUserNotFound is returned for an unknown user id.
	MsgUserNotFound = "user not found"

	// MsgFormExpired is returned when answers are submitted to an expired
	// form.
	MsgFormExpired = "form is expired"

	// MsgUnknownQuestion is returned when a submission or report references
	// a column that is not a question of the form.
	MsgUnknownQuestion = "unknown question"

	// MsgMissingAnswer is returned when a required question is unanswered.
	MsgMissingAnswer = "required question is not answered"

	// MsgNonNumericTarget is returned when SUM, AVG, MIN or MAX is requested
	// over a non-numeric column.
	MsgNonNumericTarget = "aggregate target must be numeric"

	// MsgAIDisabled is returned when form generation is not configured.
	MsgAIDisabled = "ai form generation is not configured"

	// MsgAIFailed is returned when the generative model fails or answers
	// with something that is not a form.
	MsgAIFailed = "ai form generation failed"

	// MsgOAuthDisabled is returned when Google sign-in is not configured.
	MsgOAuthDisabled = "google sign-in is not configured"

	// MsgRegistrationFailed is returned when the registration handler
	// encounters an unexpected error that prevents account creation.
	MsgRegistrationFailed = "registration failed"

	// MsgLoginFailed is returned when the login handler encounters an
	// unexpected error that prevents issuing a session token.
	MsgLoginFailed = "login failed"
)
