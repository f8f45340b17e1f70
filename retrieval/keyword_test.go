// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package retrieval

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestKeywordRetriever_Retrieve(t *testing.T) {
	r := NewKeywordRetriever()
	err := r.Index(t.Context(),
		&Document{ID: "go", Content: "Go is a statically typed compiled language."},
		&Document{ID: "python", Content: "Python is a dynamically typed interpreted language."},
		&Document{ID: "bread", Content: "Bread rises because of yeast."},
	)
	if err != nil {
		t.Fatalf("Index: %v", err)
	}

	docs, err := r.Retrieve(t.Context(), "Is Go a compiled language?", 2)
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}

	if len(docs) != 2 {
		t.Fatalf("got %d documents, want 2", len(docs))
	}
	if docs[0].ID != "go" {
		t.Errorf("top document = %q, want %q", docs[0].ID, "go")
	}
	if docs[0].Score <= docs[1].Score {
		t.Errorf("results not sorted by score: %v, %v", docs[0].Score, docs[1].Score)
	}
}

func TestKeywordRetriever_NoOverlap(t *testing.T) {
	r := NewKeywordRetriever()
	if err := r.Index(t.Context(), &Document{Content: "Bread rises because of yeast."}); err != nil {
		t.Fatalf("Index: %v", err)
	}

	docs, err := r.Retrieve(t.Context(), "quantum entanglement", 5)
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	if len(docs) != 0 {
		t.Errorf("got %d documents, want 0", len(docs))
	}
}

func TestKeywordRetriever_AssignsIDs(t *testing.T) {
	r := NewKeywordRetriever()
	docs := []*Document{
		{Content: "first document"},
		{Content: "second document"},
	}
	if err := r.Index(t.Context(), docs...); err != nil {
		t.Fatalf("Index: %v", err)
	}

	if docs[0].ID != "doc-1" || docs[1].ID != "doc-2" {
		t.Errorf("assigned IDs = %q, %q, want doc-1, doc-2", docs[0].ID, docs[1].ID)
	}
}

func TestKeywordRetriever_IndexErrors(t *testing.T) {
	r := NewKeywordRetriever()
	if err := r.Index(t.Context(), &Document{ID: "empty"}); err == nil {
		t.Error("Index should reject a document with no content")
	}
	if _, err := r.Retrieve(t.Context(), "q", 0); err == nil {
		t.Error("Retrieve should reject a non-positive topK")
	}
}

func TestKeywordRetriever_ReindexOverwrites(t *testing.T) {
	r := NewKeywordRetriever()
	if err := r.Index(t.Context(), &Document{ID: "a", Content: "old content"}); err != nil {
		t.Fatalf("Index: %v", err)
	}
	if err := r.Index(t.Context(), &Document{ID: "a", Content: "new content entirely"}); err != nil {
		t.Fatalf("Index: %v", err)
	}

	docs, err := r.Retrieve(t.Context(), "new content", 5)
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("got %d documents, want 1", len(docs))
	}
	if docs[0].Content != "new content entirely" {
		t.Errorf("content = %q, want the reindexed text", docs[0].Content)
	}
}

func TestTokenize(t *testing.T) {
	got := tokenize("Hello, World! 42 foo-bar")
	want := map[string]struct{}{
		"hello": {}, "world": {}, "42": {}, "foo": {}, "bar": {},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tokenize mismatch (-want +got):\n%s", diff)
	}
}
