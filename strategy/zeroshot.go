// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package strategy

import (
	"context"
	"strings"

	"github.com/go-a2a/prompting-go/model"
	"github.com/go-a2a/prompting-go/pkg/logging"
)

// ZeroShot answers a query with a single model call and no examples.
type ZeroShot struct {
	*base

	instruction string
}

var _ Strategy = (*ZeroShot)(nil)

// NewZeroShot creates a new [ZeroShot] strategy.
//
// instruction is an optional system instruction; pass empty string for none.
func NewZeroShot(m model.Model, instruction string, opts ...Option) *ZeroShot {
	return &ZeroShot{
		base:        newBase("zero_shot", m, opts...),
		instruction: instruction,
	}
}

// Execute implements [Strategy].
func (s *ZeroShot) Execute(ctx context.Context, query string) (*Result, error) {
	logger := logging.FromContext(ctx)
	logger.DebugContext(ctx, "zero-shot query", "query", query)

	request, err := s.newRequest(s.instruction, query)
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
