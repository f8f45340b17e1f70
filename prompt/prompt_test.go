// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package prompt

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTemplate_Variables(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "distinct in order of appearance",
			text: "Hello {name}, you are {age} years old, {name}.",
			want: []string{"name", "age"},
		},
		{
			name: "no variables",
			text: "Hello world.",
			want: nil,
		},
		{
			name: "underscore and digits",
			text: "{first_name} {addr2}",
			want: []string{"first_name", "addr2"},
		},
		{
			name: "invalid placeholder ignored",
			text: "{1bad} {good}",
			want: []string{"good"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, New(tt.text).Variables()); diff != "" {
				t.Errorf("Variables mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTemplate_Validate(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{name: "valid", text: "Hello {name}!", wantErr: false},
		{name: "no placeholders", text: "plain text", wantErr: false},
		{name: "unmatched opening brace", text: "Hello {name", wantErr: true},
		{name: "unmatched closing brace", text: "Hello name}", wantErr: true},
		{name: "empty variable name", text: "Hello {}", wantErr: true},
		{name: "invalid variable name", text: "Hello {1name}", wantErr: true},
		{name: "variable name with space", text: "Hello {first name}", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.text).Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidTemplate) {
				t.Errorf("error should wrap ErrInvalidTemplate, got %v", err)
			}
		})
	}
}

func TestTemplate_Apply(t *testing.T) {
	tmpl := New("Hello {name}, you are {age} years old.")

	result, err := tmpl.Apply(map[string]any{"name": "Gopher", "age": 13})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if got, want := result.Content, "Hello Gopher, you are 13 years old."; got != want {
		t.Errorf("Content = %q, want %q", got, want)
	}
	if len(result.MissingVariables) != 0 {
		t.Errorf("MissingVariables = %v, want none", result.MissingVariables)
	}
	if len(result.UnusedVariables) != 0 {
		t.Errorf("UnusedVariables = %v, want none", result.UnusedVariables)
	}
}

func TestTemplate_Apply_MissingWarn(t *testing.T) {
	tmpl := New("Hello {name}, you are {age} years old.")

	result, err := tmpl.Apply(map[string]any{"name": "Gopher"})
	if err != nil {
		t.Fatalf("Apply in warn mode should not error, got %v", err)
	}

	// The unresolved placeholder stays in the output.
	if got, want := result.Content, "Hello Gopher, you are {age} years old."; got != want {
		t.Errorf("Content = %q, want %q", got, want)
	}
	if diff := cmp.Diff([]string{"age"}, result.MissingVariables); diff != "" {
		t.Errorf("MissingVariables mismatch (-want +got):\n%s", diff)
	}
}

func TestTemplate_Apply_MissingStrict(t *testing.T) {
	tmpl := New("Hello {name}.", WithValidationMode(ValidationModeStrict))

	result, err := tmpl.Apply(map[string]any{})
	if err == nil {
		t.Fatal("Apply in strict mode should fail on missing variables")
	}
	if !errors.Is(err, ErrMissingVariables) {
		t.Errorf("error should wrap ErrMissingVariables, got %v", err)
	}

	var missingErr *MissingVariablesError
	if !errors.As(err, &missingErr) {
		t.Fatalf("error should be a *MissingVariablesError, got %T", err)
	}
	if diff := cmp.Diff([]string{"name"}, missingErr.Variables); diff != "" {
		t.Errorf("Variables mismatch (-want +got):\n%s", diff)
	}

	// The partial result is still returned.
	if result == nil || result.Content != "Hello {name}." {
		t.Errorf("partial result = %+v", result)
	}
}

func TestTemplate_Apply_Unused(t *testing.T) {
	tmpl := New("Hello {name}.")

	result, err := tmpl.Apply(map[string]any{"name": "Gopher", "age": 13})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if diff := cmp.Diff([]string{"age"}, result.UnusedVariables); diff != "" {
		t.Errorf("UnusedVariables mismatch (-want +got):\n%s", diff)
	}
}

func TestRender(t *testing.T) {
	got, err := Render("The capital of {country} is {capital}.", map[string]any{
		"country": "France",
		"capital": "Paris",
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if want := "The capital of France is Paris."; got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}

	if _, err := Render("Hello {name", nil); err == nil {
		t.Error("Render should fail on an invalid template")
	}
	if _, err := Render("Hello {name}", nil); err == nil {
		t.Error("Render should fail on missing variables")
	}
}
