// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package strategy

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"

	"github.com/go-a2a/prompting-go/model"
)

// TreeOfThoughtsDefaultBreadth is the default number of candidate thoughts
// proposed in the first call.
const TreeOfThoughtsDefaultBreadth = 3

var (
	proposePreamble = heredoc.Doc(`
		You are asked to propose distinct approaches to a problem, not to solve it yet.
		Respond with a numbered list, one approach per line, in the form:
		1. <first approach>
		2. <second approach>
		Do not include anything else in the response.
	`)

	evaluatePreamble = heredoc.Doc(`
		You are asked to judge candidate approaches to a problem.
		Respond with only the number of the most promising approach.
	`)

	synthesizePreamble = heredoc.Doc(`
		Solve the problem by following the given approach.
		Give only the final answer, without restating the approach.
	`)
)

// TreeOfThoughts answers a query with a fixed three-call pipeline: propose
// candidate thoughts, evaluate them, and synthesize a final answer from the
// most promising one.
type TreeOfThoughts struct {
	*base

	breadth int
}

var _ Strategy = (*TreeOfThoughts)(nil)

// TreeOfThoughtsOption is a functional option for configuring [TreeOfThoughts].
type TreeOfThoughtsOption func(*TreeOfThoughts)

// WithBreadth sets the number of candidate thoughts proposed.
func WithBreadth(breadth int) TreeOfThoughtsOption {
	return func(s *TreeOfThoughts) {
		s.breadth = breadth
	}
}

// NewTreeOfThoughts creates a new [TreeOfThoughts] strategy.
func NewTreeOfThoughts(m model.Model, opts ...any) (*TreeOfThoughts, error) {
	var baseOpts []Option
	var totOpts []TreeOfThoughtsOption

	for _, opt := range opts {
		switch o := opt.(type) {
		case Option:
			baseOpts = append(baseOpts, o)
		case TreeOfThoughtsOption:
			totOpts = append(totOpts, o)
		default:
			return nil, fmt.Errorf("unsupported option type: %T", opt)
		}
	}

	s := &TreeOfThoughts{
		base:    newBase("tree_of_thoughts", m, baseOpts...),
		breadth: TreeOfThoughtsDefaultBreadth,
	}
	for _, opt := range totOpts {
		opt(s)
	}

	if s.breadth < 1 {
		return nil, fmt.Errorf("breadth must be at least 1, got %d", s.breadth)
	}

	return s, nil
}

// Execute implements [Strategy].
func (s *TreeOfThoughts) Execute(ctx context.Context, query string) (*Result, error) {
	// Call 1: propose candidate thoughts.
	proposeQuery := fmt.Sprintf("Propose %d distinct approaches to the following problem.\n\nProblem: %s", s.breadth, query)
	request, err := s.newRequest(proposePreamble, proposeQuery)
	if err != nil {
		return nil, err
	}
	proposeText, _, err := s.generateText(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("propose thoughts: %w", err)
	}

	thoughts := parseNumberedList(proposeText)
	if len(thoughts) == 0 {
		// No list structure at all; treat the whole response as one thought.
		thoughts = []string{strings.TrimSpace(proposeText)}
	}
	if len(thoughts) > s.breadth {
		thoughts = thoughts[:s.breadth]
	}

	// Call 2: evaluate the candidates.
	evaluateQuery := fmt.Sprintf("Problem: %s\n\nCandidate approaches:\n%s", query, formatNumberedList(thoughts))
	request, err = s.newRequest(evaluatePreamble, evaluateQuery)
	if err != nil {
		return nil, err
	}
	evaluateText, _, err := s.generateText(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("evaluate thoughts: %w", err)
	}

	chosen := parseVerdict(evaluateText, len(thoughts))
	s.logger.DebugContext(ctx, "tree-of-thoughts verdict",
		slog.Int("thoughts", len(thoughts)),
		slog.Int("chosen", chosen+1),
	)

	// Call 3: synthesize the final answer from the winner.
	synthesizeQuery := fmt.Sprintf("Problem: %s\n\nApproach: %s", query, thoughts[chosen])
	request, err = s.newRequest(synthesizePreamble, synthesizeQuery)
	if err != nil {
		return nil, err
	}
	answerText, response, err := s.generateText(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("synthesize answer: %w", err)
	}

	samples := make([]*Sample, 0, len(thoughts))
	for _, thought := range thoughts {
		samples = append(samples, &Sample{Answer: thought, Text: thought})
	}

	return &Result{
		Answer:   strings.TrimSpace(answerText),
		Response: response,
		Samples:  samples,
		Metadata: map[string]any{
			"chosen_thought": chosen,
			"verdict":        strings.TrimSpace(evaluateText),
		},
	}, nil
}

var numberedItemRe = regexp.MustCompile(`(?m)^\s*(\d+)[.)]\s+(.+)$`)

// parseNumberedList extracts the items of a "1. ..." style list.
func parseNumberedList(text string) []string {
	var items []string
	for _, match := range numberedItemRe.FindAllStringSubmatch(text, -1) {
		items = append(items, strings.TrimSpace(match[2]))
	}
	return items
}

// formatNumberedList renders items as a "1. ..." style list.
func formatNumberedList(items []string) string {
	var sb strings.Builder
	for i, item := range items {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, item)
	}
	return sb.String()
}

var verdictRe = regexp.MustCompile(`\d+`)

// parseVerdict extracts a 0-based thought index from the evaluation response.
// An unparseable or out-of-range verdict falls back to the first thought.
func parseVerdict(text string, n int) int {
	match := verdictRe.FindString(text)
	if match == "" {
		return 0
	}
	index, err := strconv.Atoi(match)
	if err != nil || index < 1 || index > n {
		return 0
	}
	return index - 1
}
