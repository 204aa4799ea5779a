// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before they reach the store.
//
// The single implementation, built by NewValidator, is driven by struct tags
// (go-playground/validator) plus a few turf-booking specific rules such as
// positive turf ids and UUID booking ids. Failures are reported as
// [ValidationErrors] so the HTTP layer can echo per-field messages.
package validators

import "context"

// Validator validates v. When fields are given only those struct fields are
// checked, which is how partial updates are validated.
type Validator interface {
	Validate(ctx context.Context, v any, fields ...string) error
}
