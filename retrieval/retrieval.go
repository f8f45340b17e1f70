// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package retrieval provides document retrievers for retrieval-augmented generation.
package retrieval

import (
	"context"
)

// Document represents a unit of retrievable text.
type Document struct {
	// ID is the unique identifier of the document.
	ID string

	// Content is the document text.
	Content string

	// Metadata carries optional key-value annotations.
	Metadata map[string]string
}

// ScoredDocument is a [Document] with a relevance score for a query.
// Higher scores are more relevant.
type ScoredDocument struct {
	Document

	Score float64
}

// Retriever indexes documents and retrieves the ones most relevant to a query.
type Retriever interface {
	// Index adds documents to the retriever's index.
	Index(ctx context.Context, docs ...*Document) error

	// Retrieve returns up to topK documents ranked by relevance to query.
	Retrieve(ctx context.Context, query string, topK int) ([]*ScoredDocument, error)
}
