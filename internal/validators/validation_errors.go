// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"fmt"
	"strings"
)

// ValidationError describes a single rejected field.
// Field is the JSON name of the field as the client sent it.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

// ValidationErrors is the error returned by Validator implementations when
// the input breaks one or more rules.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	messages := make([]string, 0, len(v))
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

// Unwrap lets callers match any ValidationErrors with
// errors.Is(err, ErrValidationFailed).
func (v ValidationErrors) Unwrap() error {
	return ErrValidationFailed
}

// Messages returns the per-field messages joined into one client-safe string.
func (v ValidationErrors) Messages() string {
	messages := make([]string, 0, len(v))
	for _, err := range v {
		messages = append(messages, err.Message)
	}
	return strings.Join(messages, "; ")
}
