// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package fewshot_test

import (
	"context"
	"testing"

	"github.com/go-a2a/prompting-go/fewshot"
	"github.com/go-a2a/prompting-go/retrieval"
)

func TestProviderFunc(t *testing.T) {
	provider := fewshot.ProviderFunc(func(ctx context.Context, query string) ([]*fewshot.Example, error) {
		return []*fewshot.Example{fewshot.NewExample(query, "echo")}, nil
	})

	examples, err := provider.GetExamples(t.Context(), "hi")
	if err != nil {
		t.Fatalf("GetExamples: %v", err)
	}
	if len(examples) != 1 {
		t.Fatalf("got %d examples, want 1", len(examples))
	}
}

func TestRetrieverProvider(t *testing.T) {
	provider, err := fewshot.NewRetrieverProvider(retrieval.NewKeywordRetriever(), 1)
	if err != nil {
		t.Fatalf("NewRetrieverProvider: %v", err)
	}

	err = provider.Add(t.Context(),
		fewshot.NewExample("Translate hello to French", "bonjour"),
		fewshot.NewExample("What is the square root of nine", "3"),
	)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	examples, err := provider.GetExamples(t.Context(), "Translate goodbye to French")
	if err != nil {
		t.Fatalf("GetExamples: %v", err)
	}
	if len(examples) != 1 {
		t.Fatalf("got %d examples, want 1", len(examples))
	}
	if got := examples[0].Input.Parts[0].Text; got != "Translate hello to French" {
		t.Errorf("selected example input = %q, want the translation example", got)
	}
}

func TestNewRetrieverProvider_Invalid(t *testing.T) {
	if _, err := fewshot.NewRetrieverProvider(nil, 1); err == nil {
		t.Error("NewRetrieverProvider should reject a nil retriever")
	}
	if _, err := fewshot.NewRetrieverProvider(retrieval.NewKeywordRetriever(), 0); err == nil {
		t.Error("NewRetrieverProvider should reject a non-positive limit")
	}
}
