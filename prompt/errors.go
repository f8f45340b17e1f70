// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package prompt

import (
	"errors"
	"fmt"
	"strings"
)

// Error types for template operations.
var (
	// ErrInvalidTemplate indicates that a prompt template is invalid.
	ErrInvalidTemplate = errors.New("invalid template")

	// ErrMissingVariables indicates that required template variables are missing.
	ErrMissingVariables = errors.New("missing required variables")
)

// MissingVariablesError reports which placeholders had no supplied value.
type MissingVariablesError struct {
	Variables []string
}

// NewMissingVariablesError creates a new [MissingVariablesError].
func NewMissingVariablesError(variables []string) *MissingVariablesError {
	return &MissingVariablesError{
		Variables: variables,
	}
}

// Error implements the error interface.
func (e *MissingVariablesError) Error() string {
	return fmt.Sprintf("%v: %s", ErrMissingVariables, strings.Join(e.Variables, ", "))
}

// Unwrap returns [ErrMissingVariables] so callers can match with [errors.Is].
func (e *MissingVariablesError) Unwrap() error {
	return ErrMissingVariables
}
