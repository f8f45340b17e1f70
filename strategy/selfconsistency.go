// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package strategy

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"google.golang.org/genai"

	"github.com/go-a2a/prompting-go/model"
)

const (
	// SelfConsistencyDefaultSamples is the default number of samples drawn per query.
	SelfConsistencyDefaultSamples = 5

	// SelfConsistencyDefaultTemperature is the default sampling temperature.
	// Voting over identical greedy samples would be pointless, so the default
	// is non-zero.
	SelfConsistencyDefaultTemperature float32 = 0.7
)

// SelfConsistency samples the model several times at non-zero temperature and
// returns the most frequent final answer.
type SelfConsistency struct {
	*base

	numSamples  int
	temperature float32
}

var _ Strategy = (*SelfConsistency)(nil)

// SelfConsistencyOption is a functional option for configuring [SelfConsistency].
type SelfConsistencyOption func(*SelfConsistency)

// WithNumSamples sets the number of samples drawn per query.
func WithNumSamples(n int) SelfConsistencyOption {
	return func(s *SelfConsistency) {
		s.numSamples = n
	}
}

// WithTemperature sets the sampling temperature.
func WithTemperature(temperature float32) SelfConsistencyOption {
	return func(s *SelfConsistency) {
		s.temperature = temperature
	}
}

// NewSelfConsistency creates a new [SelfConsistency] strategy.
func NewSelfConsistency(m model.Model, opts ...any) (*SelfConsistency, error) {
	var baseOpts []Option
	var scOpts []SelfConsistencyOption

	for _, opt := range opts {
		switch o := opt.(type) {
		case Option:
			baseOpts = append(baseOpts, o)
		case SelfConsistencyOption:
			scOpts = append(scOpts, o)
		default:
			return nil, fmt.Errorf("unsupported option type: %T", opt)
		}
	}

	s := &SelfConsistency{
		base:        newBase("self_consistency", m, baseOpts...),
		numSamples:  SelfConsistencyDefaultSamples,
		temperature: SelfConsistencyDefaultTemperature,
	}
	for _, opt := range scOpts {
		opt(s)
	}

	if s.numSamples < 1 {
		return nil, fmt.Errorf("numSamples must be at least 1, got %d", s.numSamples)
	}

	return s, nil
}

// Execute implements [Strategy].
//
// Samples are drawn concurrently; the first sampling error cancels the rest.
func (s *SelfConsistency) Execute(ctx context.Context, query string) (*Result, error) {
	samples := make([]*Sample, s.numSamples)

	eg, ctx := errgroup.WithContext(ctx)
	for i := range s.numSamples {
		eg.Go(func() error {
			request, err := s.newRequest(chainOfThoughtPreamble, query)
			if err != nil {
				return err
			}
			if request.Config == nil {
				request.Config = &genai.GenerateContentConfig{}
			}
			request.Config.Temperature = genai.Ptr(s.temperature)

			text, _, err := s.generateText(ctx, request)
			if err != nil {
				return fmt.Errorf("sample %d: %w", i+1, err)
			}

			answer, _ := ExtractFinalAnswer(text)
			samples[i] = &Sample{
				ID:     uuid.NewString(),
				Answer: answer,
				Text:   text,
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	votes, winner := tallyVotes(samples)
	s.logger.DebugContext(ctx, "self-consistency vote",
		slog.Int("samples", len(samples)),
		slog.String("winner", winner),
	)

	return &Result{
		Answer:  winner,
		Samples: samples,
		Votes:   votes,
	}, nil
}

// tallyVotes counts normalized answers and returns the raw answer of the most
// frequent one. Ties are broken by first occurrence in sampling order.
func tallyVotes(samples []*Sample) (votes map[string]int, winner string) {
	votes = make(map[string]int, len(samples))
	order := make([]string, 0, len(samples))
	raw := make(map[string]string, len(samples))

	for _, sample := range samples {
		key := normalizeAnswer(sample.Answer)
		if key == "" {
			continue
		}
		if _, seen := votes[key]; !seen {
			order = append(order, key)
			raw[key] = sample.Answer
		}
		votes[key]++
	}

	best := 0
	for _, key := range order {
		if votes[key] > best {
			best = votes[key]
			winner = raw[key]
		}
	}

	return votes, winner
}

// normalizeAnswer canonicalizes an answer for frequency counting.
func normalizeAnswer(answer string) string {
	normalized := strings.ToLower(strings.TrimSpace(answer))
	return strings.TrimRight(normalized, ".!?")
}
