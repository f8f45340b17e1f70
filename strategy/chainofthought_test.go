// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package strategy

import (
	"testing"

	"github.com/MakeNowJust/heredoc/v2"
)

func TestExtractFinalAnswer(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantAnswer string
		wantTagged bool
	}{
		{
			name: "tagged response",
			text: heredoc.Doc(`
				/*REASONING*/
				2 + 2 is 4, and 4 * 3 is 12.
				/*FINAL_ANSWER*/
				12
			`),
			wantAnswer: "12",
			wantTagged: true,
		},
		{
			name:       "untagged response returns whole text",
			text:       "  The answer is 12.  ",
			wantAnswer: "The answer is 12.",
			wantTagged: false,
		},
		{
			name:       "last tag wins",
			text:       "/*FINAL_ANSWER*/ 3 /*FINAL_ANSWER*/ 12",
			wantAnswer: "12",
			wantTagged: true,
		},
		{
			name:       "empty text",
			text:       "",
			wantAnswer: "",
			wantTagged: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answer, tagged := ExtractFinalAnswer(tt.text)
			if answer != tt.wantAnswer {
				t.Errorf("answer = %q, want %q", answer, tt.wantAnswer)
			}
			if tagged != tt.wantTagged {
				t.Errorf("tagged = %v, want %v", tagged, tt.wantTagged)
			}
		})
	}
}

func TestExtractReasoning(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "between tags",
			text: "/*REASONING*/ step one, step two /*FINAL_ANSWER*/ 12",
			want: "step one, step two",
		},
		{
			name: "reasoning tag only",
			text: "/*REASONING*/ step one",
			want: "step one",
		},
		{
			name: "no tags",
			text: "just an answer",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractReasoning(tt.text); got != tt.want {
				t.Errorf("ExtractReasoning(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestChainOfThought_Execute(t *testing.T) {
	fake := newFakeModel(heredoc.Doc(`
		/*REASONING*/
		Half of 10 is 5.
		/*FINAL_ANSWER*/
		5
	`))
	s := NewChainOfThought(fake)

	result, err := s.Execute(t.Context(), "What is half of 10?")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if got, want := result.Answer, "5"; got != want {
		t.Errorf("Answer = %q, want %q", got, want)
	}
	if got, want := result.Metadata["reasoning"], "Half of 10 is 5."; got != want {
		t.Errorf("reasoning = %q, want %q", got, want)
	}

	instruction := fake.request(0).SystemInstruction()
	if instruction == "" {
		t.Fatal("chain-of-thought call should carry a system instruction")
	}
}

func TestChainOfThought_UntaggedResponse(t *testing.T) {
	fake := newFakeModel("The answer is 5.")
	s := NewChainOfThought(fake)

	result, err := s.Execute(t.Context(), "What is half of 10?")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if got, want := result.Answer, "The answer is 5."; got != want {
		t.Errorf("Answer = %q, want %q", got, want)
	}
	if got := result.Metadata["reasoning"]; got != "" {
		t.Errorf("reasoning = %q, want empty", got)
	}
}
