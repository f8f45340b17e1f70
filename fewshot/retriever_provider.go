// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package fewshot

import (
	"context"
	"fmt"

	"github.com/go-a2a/prompting-go/retrieval"
)

// ProviderFunc adapts a function to the [Provider] interface.
type ProviderFunc func(ctx context.Context, query string) ([]*Example, error)

var _ Provider = (ProviderFunc)(nil)

// GetExamples implements [Provider].
func (f ProviderFunc) GetExamples(ctx context.Context, query string) ([]*Example, error) {
	return f(ctx, query)
}

// RetrieverProvider selects the examples most relevant to the query by
// indexing each example's input text in a [retrieval.Retriever].
type RetrieverProvider struct {
	retriever retrieval.Retriever
	examples  map[string]*Example
	limit     int
}

var _ Provider = (*RetrieverProvider)(nil)

// NewRetrieverProvider creates a [RetrieverProvider] returning at most limit
// examples per query.
func NewRetrieverProvider(retriever retrieval.Retriever, limit int) (*RetrieverProvider, error) {
	if retriever == nil {
		return nil, fmt.Errorf("retriever must not be nil")
	}
	if limit < 1 {
		return nil, fmt.Errorf("limit must be at least 1, got %d", limit)
	}

	return &RetrieverProvider{
		retriever: retriever,
		examples:  make(map[string]*Example),
		limit:     limit,
	}, nil
}

// Add indexes examples by their input text.
func (p *RetrieverProvider) Add(ctx context.Context, examples ...*Example) error {
	for i, example := range examples {
		if example == nil || example.Input == nil {
			return fmt.Errorf("example %d has no input", i)
		}

		input := ""
		for _, part := range example.Input.Parts {
			if part != nil && part.Text != "" {
				input += part.Text
			}
		}
		if input == "" {
			return fmt.Errorf("example %d has no input text", i)
		}

		id := fmt.Sprintf("example-%d", len(p.examples)+1)
		if err := p.retriever.Index(ctx, &retrieval.Document{ID: id, Content: input}); err != nil {
			return fmt.Errorf("index example %d: %w", i, err)
		}
		p.examples[id] = example
	}

	return nil
}

// GetExamples implements [Provider].
func (p *RetrieverProvider) GetExamples(ctx context.Context, query string) ([]*Example, error) {
	docs, err := p.retriever.Retrieve(ctx, query, p.limit)
	if err != nil {
		return nil, fmt.Errorf("retrieve examples: %w", err)
	}

	examples := make([]*Example, 0, len(docs))
	for _, doc := range docs {
		if example, ok := p.examples[doc.ID]; ok {
			examples = append(examples, example)
		}
	}
	return examples, nil
}
