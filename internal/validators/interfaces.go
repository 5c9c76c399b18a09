// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds input validation shared by services and
// handlers.
//
// Two implementations of [Validator] are provided:
//   - [StructValidator] applies the `validate` struct tags of request DTOs
//     through go-playground/validator.
//   - [FormValidator] checks the structure of server-shape and UI-shape
//     form bodies. It is optional: the form shape mapper never fails and
//     degrades unknown values to defaults, the validator is what rejects
//     them at the API boundary.
//
// Both accept an optional list of field names that restricts validation to
// those fields.
package validators

import "context"

// Validator validates an arbitrary input value, optionally restricted to the
// named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
