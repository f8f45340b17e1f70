// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package strategy

import (
	"context"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"

	"github.com/go-a2a/prompting-go/model"
)

const (
	ReasoningTag   = "/*REASONING*/"
	FinalAnswerTag = "/*FINAL_ANSWER*/"
)

var chainOfThoughtPreamble = heredoc.Doc(`
	When answering the question, think step-by-step and show your reasoning
	before giving the final answer.

	Follow this format when answering the question: (1) The step-by-step
	reasoning should be under `+ReasoningTag+`. (2) The final answer part
	should be under `+FinalAnswerTag+`.

	Below are the requirements for the final answer:
	The final answer should be precise and follow query formatting
	requirements, without restating the reasoning.
`)

// ChainOfThought elicits intermediate reasoning steps before a final answer,
// then extracts the final answer from the tagged response.
type ChainOfThought struct {
	*base
}

var _ Strategy = (*ChainOfThought)(nil)

// NewChainOfThought creates a new [ChainOfThought] strategy.
func NewChainOfThought(m model.Model, opts ...Option) *ChainOfThought {
	return &ChainOfThought{
		base: newBase("chain_of_thought", m, opts...),
	}
}

// Execute implements [Strategy].
func (s *ChainOfThought) Execute(ctx context.Context, query string) (*Result, error) {
	request, err := s.newRequest(chainOfThoughtPreamble, query)
	if err != nil {
		return nil, err
	}

	text, response, err := s.generateText(ctx, request)
	if err != nil {
		return nil, err
	}

	answer, tagged := ExtractFinalAnswer(text)
	if !tagged {
		s.logger.DebugContext(ctx, "response missing final answer tag, using full text")
	}

	return &Result{
		Answer:   answer,
		Response: response,
		Metadata: map[string]any{
			"reasoning": ExtractReasoning(text),
		},
	}, nil
}

// ExtractFinalAnswer returns the text following the last [FinalAnswerTag],
// trimmed, and whether the tag was present. Responses that ignore the tag
// format are returned whole.
func ExtractFinalAnswer(text string) (answer string, tagged bool) {
	idx := strings.LastIndex(text, FinalAnswerTag)
	if idx < 0 {
		return strings.TrimSpace(text), false
	}
	return strings.TrimSpace(text[idx+len(FinalAnswerTag):]), true
}

// ExtractReasoning returns the text between the first [ReasoningTag] and the
// first [FinalAnswerTag], trimmed. Empty string when the tags are absent.
func ExtractReasoning(text string) string {
	start := strings.Index(text, ReasoningTag)
	if start < 0 {
		return ""
	}
	start += len(ReasoningTag)

	end := strings.Index(text[start:], FinalAnswerTag)
	if end < 0 {
		return strings.TrimSpace(text[start:])
	}
	return strings.TrimSpace(text[start : start+end])
}
