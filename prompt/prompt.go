// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package prompt provides prompt template processing with Python-style {variable} substitution.
package prompt

import (
	"fmt"
	"regexp"
	"strings"
)

// ValidationMode specifies how strict template validation should be.
type ValidationMode string

const (
	ValidationModeStrict ValidationMode = "strict" // All variables must be supplied
	ValidationModeWarn   ValidationMode = "warn"   // Missing variables are reported, not fatal
	ValidationModeNone   ValidationMode = "none"   // No validation
)

var (
	variableRe = regexp.MustCompile(`\{([a-zA-Z_][a-zA-Z0-9_]*)\}`)
	anyBraceRe = regexp.MustCompile(`\{([^}]*)\}`)
	varNameRe  = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)
)

// Template represents a prompt template with {variable} placeholders.
type Template struct {
	text string
	mode ValidationMode
}

// TemplateOption is a functional option for configuring a [Template].
type TemplateOption func(*Template)

// WithValidationMode sets the validation mode for the template.
func WithValidationMode(mode ValidationMode) TemplateOption {
	return func(t *Template) {
		t.mode = mode
	}
}

// New creates a new [Template] from the given text.
func New(text string, opts ...TemplateOption) *Template {
	t := &Template{
		text: text,
		mode: ValidationModeWarn,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Text returns the raw template text.
func (t *Template) Text() string {
	return t.text
}

// Variables extracts all distinct variable names from the template, in order
// of first appearance.
func (t *Template) Variables() []string {
	matches := variableRe.FindAllStringSubmatch(t.text, -1)

	seen := make(map[string]bool)
	var variables []string
	for _, match := range matches {
		varName := match[1]
		if !seen[varName] {
			seen[varName] = true
			variables = append(variables, varName)
		}
	}

	return variables
}

// Validate checks the template syntax: balanced braces and valid variable names.
func (t *Template) Validate() error {
	braceCount := 0
	for i, char := range t.text {
		switch char {
		case '{':
			braceCount++
		case '}':
			braceCount--
			if braceCount < 0 {
				return fmt.Errorf("%w: unmatched closing brace at position %d", ErrInvalidTemplate, i)
			}
		}
	}
	if braceCount > 0 {
		return fmt.Errorf("%w: unmatched opening brace(s)", ErrInvalidTemplate)
	}

	for _, match := range anyBraceRe.FindAllStringSubmatch(t.text, -1) {
		varName := match[1]
		if varName == "" {
			return fmt.Errorf("%w: empty variable name", ErrInvalidTemplate)
		}
		if !varNameRe.MatchString(varName) {
			return fmt.Errorf("%w: invalid variable name: %s", ErrInvalidTemplate, varName)
		}
	}

	return nil
}

// ApplyResult holds the outcome of applying variables to a template.
type ApplyResult struct {
	// Content is the rendered template text.
	Content string

	// MissingVariables are placeholders with no supplied value.
	MissingVariables []string

	// UnusedVariables are supplied values with no matching placeholder.
	UnusedVariables []string
}

// Apply substitutes the given variables into the template.
//
// In [ValidationModeStrict] any missing placeholder value is an error; in the
// other modes missing placeholders are left in place and reported in the result.
func (t *Template) Apply(variables map[string]any) (*ApplyResult, error) {
	result := &ApplyResult{}

	used := make(map[string]bool)
	content := t.text
	for _, varName := range t.Variables() {
		placeholder := fmt.Sprintf("{%s}", varName)

		value, exists := variables[varName]
		if !exists {
			result.MissingVariables = append(result.MissingVariables, varName)
			continue
		}
		content = strings.ReplaceAll(content, placeholder, fmt.Sprintf("%v", value))
		used[varName] = true
	}

	for varName := range variables {
		if !used[varName] {
			result.UnusedVariables = append(result.UnusedVariables, varName)
		}
	}

	result.Content = content

	if len(result.MissingVariables) > 0 && t.mode == ValidationModeStrict {
		return result, NewMissingVariablesError(result.MissingVariables)
	}

	return result, nil
}

// Render is a convenience helper that validates and applies in one call,
// returning only the rendered text.
func Render(text string, variables map[string]any) (string, error) {
	t := New(text, WithValidationMode(ValidationModeStrict))
	if err := t.Validate(); err != nil {
		return "", err
	}
	result, err := t.Apply(variables)
	if err != nil {
		return "", err
	}
	return result.Content, nil
}
