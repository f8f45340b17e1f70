// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package retrieval

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/go-a2a/prompting-go/internal/xmaps"
)

// KeywordRetriever is an in-memory retriever for prototyping purpose only.
//
// Uses keyword matching instead of semantic search.
type KeywordRetriever struct {
	docs   map[string]*Document
	order  []string
	logger *slog.Logger
	mu     sync.RWMutex
}

var _ Retriever = (*KeywordRetriever)(nil)

// NewKeywordRetriever creates a new [KeywordRetriever].
func NewKeywordRetriever() *KeywordRetriever {
	return &KeywordRetriever{
		docs:   make(map[string]*Document),
		logger: slog.Default(),
	}
}

// WithLogger sets the logger for the KeywordRetriever.
func (r *KeywordRetriever) WithLogger(logger *slog.Logger) *KeywordRetriever {
	r.logger = logger
	return r
}

// Index implements [Retriever].
func (r *KeywordRetriever) Index(ctx context.Context, docs ...*Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, doc := range docs {
		if doc == nil || doc.Content == "" {
			return fmt.Errorf("document %d has no content", i)
		}
		id := doc.ID
		if id == "" {
			id = fmt.Sprintf("doc-%d", len(r.order)+1)
			doc.ID = id
		}
		if !xmaps.Contains(r.docs, id) {
			r.order = append(r.order, id)
		}
		r.docs[id] = doc
	}

	return nil
}

// Retrieve implements [Retriever].
//
// Documents are scored by the fraction of query words they contain; documents
// with no overlap are omitted.
func (r *KeywordRetriever) Retrieve(ctx context.Context, query string, topK int) ([]*ScoredDocument, error) {
	if topK <= 0 {
		return nil, fmt.Errorf("topK must be positive, got %d", topK)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	queryWords := tokenize(query)
	if len(queryWords) == 0 {
		return nil, nil
	}

	var scored []*ScoredDocument
	for _, id := range r.order {
		doc := r.docs[id]
		docWords := tokenize(doc.Content)

		matches := 0
		for word := range queryWords {
			if xmaps.Contains(docWords, word) {
				matches++
			}
		}
		if matches == 0 {
			continue
		}

		scored = append(scored, &ScoredDocument{
			Document: *doc,
			Score:    float64(matches) / float64(len(queryWords)),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > topK {
		scored = scored[:topK]
	}
	r.logger.DebugContext(ctx, "keyword retrieval", slog.String("query", query), slog.Int("hits", len(scored)))

	return scored, nil
}

// tokenize lowercases text and splits it into a word set.
func tokenize(text string) map[string]struct{} {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9')
	})

	set := make(map[string]struct{}, len(words))
	for _, word := range words {
		set[word] = struct{}{}
	}
	return set
}
