// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package strategy

import (
	"context"
	"fmt"
	"log/slog"

	deepcopy "github.com/tiendc/go-deepcopy"
	"google.golang.org/genai"

	"github.com/go-a2a/prompting-go/model"
)

// Strategy represents a prompt-construction pattern that answers a query
// with one or more model calls.
type Strategy interface {
	// Name returns the name of the strategy.
	Name() string

	// Execute answers the query using the strategy's prompting pattern.
	Execute(ctx context.Context, query string) (*Result, error)
}

// Result represents the outcome of a strategy execution.
type Result struct {
	// Answer is the final answer text.
	Answer string

	// Response is the model response the answer was taken from.
	Response *model.LLMResponse

	// Samples holds the per-call intermediate outputs for strategies that
	// make more than one model call.
	Samples []*Sample

	// Votes holds the normalized answer frequency count for voting strategies.
	Votes map[string]int

	// Metadata carries optional strategy-specific annotations.
	Metadata map[string]any
}

// Sample represents one intermediate model output within a strategy execution.
type Sample struct {
	// ID identifies the sample.
	ID string

	// Answer is the answer extracted from this sample.
	Answer string

	// Text is the raw response text.
	Text string
}

// base holds the fields shared by all strategies.
type base struct {
	name   string
	model  model.Model
	config *genai.GenerateContentConfig
	logger *slog.Logger
}

func newBase(name string, m model.Model, opts ...Option) *base {
	b := &base{
		name:   name,
		model:  m,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Name returns the name of the strategy.
func (b *base) Name() string {
	return b.name
}

// Option is a functional option shared by the strategy constructors.
type Option func(*base)

// WithGenerateContentConfig sets the generation config prototype used for
// every model call the strategy makes.
func WithGenerateContentConfig(config *genai.GenerateContentConfig) Option {
	return func(b *base) {
		b.config = config
	}
}

// WithLogger sets the logger for the strategy.
func WithLogger(logger *slog.Logger) Option {
	return func(b *base) {
		b.logger = logger
	}
}

// newRequest builds an [model.LLMRequest] from a cloned copy of the config
// prototype, so per-call mutation never leaks between calls.
func (b *base) newRequest(systemInstruction, userText string) (*model.LLMRequest, error) {
	var config *genai.GenerateContentConfig
	if b.config != nil {
		config = &genai.GenerateContentConfig{}
		if err := deepcopy.Copy(config, b.config); err != nil {
			return nil, fmt.Errorf("clone generation config: %w", err)
		}
	}

	request := &model.LLMRequest{
		Config: config,
	}
	if systemInstruction != "" {
		request.WithSystemInstruction(systemInstruction)
	}
	request.AppendUserText(userText)

	return request, nil
}

// generateText makes a single model call and returns the response text.
func (b *base) generateText(ctx context.Context, request *model.LLMRequest) (string, *model.LLMResponse, error) {
	response, err := b.model.GenerateContent(ctx, request)
	if err != nil {
		return "", nil, err
	}
	if response.IsError() {
		return "", response, fmt.Errorf("model error %s: %s", response.ErrorCode, response.ErrorMessage)
	}

	text := response.Text()
	b.logger.DebugContext(ctx, "model call",
		slog.String("strategy", b.name),
		slog.String("model", b.model.Name()),
		slog.Int("response_len", len(text)),
	)

	return text, response, nil
}
