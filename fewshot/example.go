// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package fewshot provides few-shot example types and formatting for prompt construction.
package fewshot

import (
	"context"

	"google.golang.org/genai"
)

// Example represents a few-shot example.
type Example struct {
	Input  *genai.Content
	Output []*genai.Content
}

// NewExample creates an [Example] from plain input/output text.
func NewExample(input, output string) *Example {
	return &Example{
		Input: &genai.Content{
			Role:  genai.RoleUser,
			Parts: []*genai.Part{genai.NewPartFromText(input)},
		},
		Output: []*genai.Content{
			{
				Role:  genai.RoleModel,
				Parts: []*genai.Part{genai.NewPartFromText(output)},
			},
		},
	}
}

// Provider represents a base interface for example providers.
//
// This type defines the interface for providing examples for a given query.
type Provider interface {
	GetExamples(ctx context.Context, query string) ([]*Example, error)
}

// StaticProvider provides a fixed set of examples regardless of the query.
type StaticProvider struct {
	examples []*Example
}

var _ Provider = (*StaticProvider)(nil)

// NewStaticProvider creates a new [StaticProvider] with the given examples.
func NewStaticProvider(examples ...*Example) *StaticProvider {
	return &StaticProvider{
		examples: examples,
	}
}

// GetExamples implements [Provider].
func (p *StaticProvider) GetExamples(ctx context.Context, query string) ([]*Example, error) {
	return p.examples, nil
}
