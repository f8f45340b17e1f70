// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package strategy

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"

	"github.com/go-a2a/prompting-go/model"
	"github.com/go-a2a/prompting-go/retrieval"
)

// RAGDefaultTopK is the default number of documents retrieved per query.
const RAGDefaultTopK = 4

var ragPreamble = heredoc.Doc(`
	Answer the question using only the provided context documents.
	If the context does not contain the answer, say that you don't know.
	Do not invent facts that are not supported by the context.
`)

// RAG answers a query by retrieving relevant documents and grounding the
// model's answer in them.
type RAG struct {
	*base

	retriever retrieval.Retriever
	topK      int
}

var _ Strategy = (*RAG)(nil)

// RAGOption is a functional option for configuring [RAG].
type RAGOption func(*RAG)

// WithTopK sets the number of documents retrieved per query.
func WithTopK(topK int) RAGOption {
	return func(s *RAG) {
		s.topK = topK
	}
}

// NewRAG creates a new [RAG] strategy backed by the given retriever.
func NewRAG(m model.Model, retriever retrieval.Retriever, opts ...any) (*RAG, error) {
	if retriever == nil {
		return nil, fmt.Errorf("retriever must not be nil")
	}

	var baseOpts []Option
	var ragOpts []RAGOption

	for _, opt := range opts {
		switch o := opt.(type) {
		case Option:
			baseOpts = append(baseOpts, o)
		case RAGOption:
			ragOpts = append(ragOpts, o)
		default:
			return nil, fmt.Errorf("unsupported option type: %T", opt)
		}
	}

	s := &RAG{
		base:      newBase("rag", m, baseOpts...),
		retriever: retriever,
		topK:      RAGDefaultTopK,
	}
	for _, opt := range ragOpts {
		opt(s)
	}

	if s.topK < 1 {
		return nil, fmt.Errorf("topK must be at least 1, got %d", s.topK)
	}

	return s, nil
}

// Execute implements [Strategy].
func (s *RAG) Execute(ctx context.Context, query string) (*Result, error) {
	docs, err := s.retriever.Retrieve(ctx, query, s.topK)
	if err != nil {
		return nil, fmt.Errorf("retrieve documents: %w", err)
	}
	s.logger.DebugContext(ctx, "retrieved context",
		slog.String("strategy", s.name),
		slog.Int("documents", len(docs)),
	)

	request, err := s.newRequest(ragPreamble, buildGroundedQuery(query, docs))
	if err != nil {
		return nil, err
	}
	text, response, err := s.generateText(ctx, request)
	if err != nil {
		return nil, err
	}

	sources := make([]string, 0, len(docs))
	for _, doc := range docs {
		sources = append(sources, doc.ID)
	}

	return &Result{
		Answer:   strings.TrimSpace(text),
		Response: response,
		Metadata: map[string]any{
			"sources": sources,
		},
	}, nil
}

// buildGroundedQuery renders the retrieved documents as a context block
// followed by the question.
func buildGroundedQuery(query string, docs []*retrieval.ScoredDocument) string {
	var sb strings.Builder
	sb.WriteString("Context:\n")
	if len(docs) == 0 {
		sb.WriteString("(no relevant documents found)\n")
	}
	for i, doc := range docs {
		fmt.Fprintf(&sb, "[%d] %s\n", i+1, doc.Content)
	}
	sb.WriteString("\nQuestion: ")
	sb.WriteString(query)
	return sb.String()
}
