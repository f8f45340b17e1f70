// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package strategy

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-a2a/prompting-go/fewshot"
	"github.com/go-a2a/prompting-go/model"
)

// FewShot answers a query with a single model call, embedding input/output
// example pairs in the system instruction ahead of the query.
type FewShot struct {
	*base

	provider    fewshot.Provider
	instruction string
}

var _ Strategy = (*FewShot)(nil)

// NewFewShot creates a new [FewShot] strategy with the given example provider.
//
// instruction is an optional system instruction prepended before the
// formatted examples; pass empty string for none.
func NewFewShot(m model.Model, provider fewshot.Provider, instruction string, opts ...Option) *FewShot {
	return &FewShot{
		base:        newBase("few_shot", m, opts...),
		provider:    provider,
		instruction: instruction,
	}
}

// Execute implements [Strategy].
func (s *FewShot) Execute(ctx context.Context, query string) (*Result, error) {
	examplesBlock, err := fewshot.BuildSystemInstruction(ctx, s.provider, query)
	if err != nil {
		return nil, fmt.Errorf("build few-shot instruction: %w", err)
	}

	instruction := s.instruction
	if examplesBlock != "" {
		if instruction != "" {
			instruction += "\n\n"
		}
		instruction += examplesBlock
	}

	request, err := s.newRequest(instruction, query)
	if err != nil {
		return nil, err
	}

	text, response, err := s.generateText(ctx, request)
	if err != nil {
		return nil, err
	}

	return &Result{
		Answer:   strings.TrimSpace(text),
		Response: response,
	}, nil
}
