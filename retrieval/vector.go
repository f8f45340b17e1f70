// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package retrieval

import (
	"context"
	"fmt"
	"runtime"

	chromem "github.com/philippgille/chromem-go"
)

// VectorRetriever retrieves documents by embedding similarity using an
// in-process chromem-go collection.
type VectorRetriever struct {
	collection *chromem.Collection
}

var _ Retriever = (*VectorRetriever)(nil)

// NewVectorRetriever creates a new [VectorRetriever] backed by an in-memory
// chromem-go database.
//
// embed may be nil, in which case the chromem-go default embedding function
// is used (OpenAI API, requires OPENAI_API_KEY).
func NewVectorRetriever(name string, embed chromem.EmbeddingFunc) (*VectorRetriever, error) {
	if name == "" {
		name = "documents"
	}
	if embed == nil {
		embed = chromem.NewEmbeddingFuncDefault()
	}

	db := chromem.NewDB()
	collection, err := db.CreateCollection(name, nil, embed)
	if err != nil {
		return nil, fmt.Errorf("create collection %q: %w", name, err)
	}

	return &VectorRetriever{
		collection: collection,
	}, nil
}

// Index implements [Retriever].
func (r *VectorRetriever) Index(ctx context.Context, docs ...*Document) error {
	cdocs := make([]chromem.Document, 0, len(docs))
	for i, doc := range docs {
		if doc == nil || doc.Content == "" {
			return fmt.Errorf("document %d has no content", i)
		}
		id := doc.ID
		if id == "" {
			id = fmt.Sprintf("doc-%d", r.collection.Count()+len(cdocs)+1)
			doc.ID = id
		}
		cdocs = append(cdocs, chromem.Document{
			ID:       id,
			Content:  doc.Content,
			Metadata: doc.Metadata,
		})
	}

	if err := r.collection.AddDocuments(ctx, cdocs, runtime.NumCPU()); err != nil {
		return fmt.Errorf("add documents: %w", err)
	}
	return nil
}

// Retrieve implements [Retriever].
func (r *VectorRetriever) Retrieve(ctx context.Context, query string, topK int) ([]*ScoredDocument, error) {
	if topK <= 0 {
		return nil, fmt.Errorf("topK must be positive, got %d", topK)
	}

	// chromem rejects queries for more results than indexed documents.
	if count := r.collection.Count(); topK > count {
		topK = count
	}
	if topK == 0 {
		return nil, nil
	}

	results, err := r.collection.Query(ctx, query, topK, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("query collection: %w", err)
	}

	scored := make([]*ScoredDocument, 0, len(results))
	for _, result := range results {
		scored = append(scored, &ScoredDocument{
			Document: Document{
				ID:       result.ID,
				Content:  result.Content,
				Metadata: result.Metadata,
			},
			Score: float64(result.Similarity),
		})
	}

	return scored, nil
}
