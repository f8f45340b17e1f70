// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package strategy

import (
	"strings"
	"testing"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/google/go-cmp/cmp"
)

func TestTreeOfThoughts_Execute(t *testing.T) {
	fake := newFakeModel(
		heredoc.Doc(`
			1. Work backwards from the target.
			2. Enumerate all cases.
			3. Use algebra.
		`),
		"The best approach is 2.",
		"There are 6 cases.",
	)
	s, err := NewTreeOfThoughts(fake)
	if err != nil {
		t.Fatalf("NewTreeOfThoughts: %v", err)
	}

	result, err := s.Execute(t.Context(), "How many outcomes are there?")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if got, want := result.Answer, "There are 6 cases."; got != want {
		t.Errorf("Answer = %q, want %q", got, want)
	}
	if got, want := fake.callCount(), 3; got != want {
		t.Fatalf("model calls = %d, want %d", got, want)
	}
	if got, want := result.Metadata["chosen_thought"], 1; got != want {
		t.Errorf("chosen_thought = %v, want %v", got, want)
	}
	if len(result.Samples) != 3 {
		t.Errorf("samples = %d, want 3", len(result.Samples))
	}

	// The synthesis call must carry the chosen thought, not the others.
	synthesisText := fake.request(2).Contents[0].Parts[0].Text
	if !strings.Contains(synthesisText, "Enumerate all cases.") {
		t.Errorf("synthesis query should contain the chosen thought, got %q", synthesisText)
	}
	if strings.Contains(synthesisText, "Use algebra.") {
		t.Errorf("synthesis query should not contain rejected thoughts, got %q", synthesisText)
	}
}

func TestTreeOfThoughts_UnparseableVerdict(t *testing.T) {
	fake := newFakeModel(
		"1. First idea.\n2. Second idea.\n",
		"they all look fine to me",
		"done",
	)
	s, err := NewTreeOfThoughts(fake, WithBreadth(2))
	if err != nil {
		t.Fatalf("NewTreeOfThoughts: %v", err)
	}

	result, err := s.Execute(t.Context(), "q")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	// An unparseable verdict falls back to the first thought.
	if got, want := result.Metadata["chosen_thought"], 0; got != want {
		t.Errorf("chosen_thought = %v, want %v", got, want)
	}
}

func TestTreeOfThoughts_UnstructuredProposal(t *testing.T) {
	fake := newFakeModel(
		"Just try simulating it directly.",
		"1",
		"42",
	)
	s, err := NewTreeOfThoughts(fake)
	if err != nil {
		t.Fatalf("NewTreeOfThoughts: %v", err)
	}

	result, err := s.Execute(t.Context(), "q")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	// A proposal with no list structure becomes a single thought.
	if len(result.Samples) != 1 {
		t.Fatalf("samples = %d, want 1", len(result.Samples))
	}
	if got, want := result.Samples[0].Answer, "Just try simulating it directly."; got != want {
		t.Errorf("thought = %q, want %q", got, want)
	}
}

func TestNewTreeOfThoughts_InvalidBreadth(t *testing.T) {
	if _, err := NewTreeOfThoughts(newFakeModel(), WithBreadth(0)); err == nil {
		t.Fatal("NewTreeOfThoughts should reject breadth < 1")
	}
}

func TestParseNumberedList(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "dot separated",
			text: "1. alpha\n2. beta\n3. gamma\n",
			want: []string{"alpha", "beta", "gamma"},
		},
		{
			name: "paren separated with leading space",
			text: " 1) alpha\n 2) beta\n",
			want: []string{"alpha", "beta"},
		},
		{
			name: "prose around the list",
			text: "Here are some ideas:\n1. alpha\nThat is all.",
			want: []string{"alpha"},
		},
		{
			name: "no list",
			text: "nothing numbered here",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, parseNumberedList(tt.text)); diff != "" {
				t.Errorf("parseNumberedList mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseVerdict(t *testing.T) {
	tests := []struct {
		text string
		n    int
		want int
	}{
		{"2", 3, 1},
		{"The best approach is 3.", 3, 2},
		{"none of these", 3, 0},
		{"7", 3, 0},
		{"0", 3, 0},
		{"", 3, 0},
	}
	for _, tt := range tests {
		if got := parseVerdict(tt.text, tt.n); got != tt.want {
			t.Errorf("parseVerdict(%q, %d) = %d, want %d", tt.text, tt.n, got, tt.want)
		}
	}
}
