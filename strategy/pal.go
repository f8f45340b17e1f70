// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package strategy

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"

	"github.com/go-a2a/prompting-go/codeexec"
	"github.com/go-a2a/prompting-go/model"
)

// PALDefaultLanguage is the language requested from the model when none is
// configured.
const PALDefaultLanguage = "python"

var palPreamble = heredoc.Doc(`
	Solve the problem by writing a program, not by reasoning in prose.
	Respond with a single fenced code block in the requested language.
	The program must print the final answer, and only the final answer, to stdout.
	Do not include explanations outside the code block.
`)

// PAL answers a query by asking the model for a program, executing it, and
// taking the program's stdout as the answer.
type PAL struct {
	*base

	executor codeexec.Executor
	parser   *codeexec.CodeBlockParser
	language string
}

var _ Strategy = (*PAL)(nil)

// PALOption is a functional option for configuring [PAL].
type PALOption func(*PAL)

// WithLanguage sets the programming language the model is asked to write.
func WithLanguage(language string) PALOption {
	return func(s *PAL) {
		s.language = language
	}
}

// NewPAL creates a new [PAL] strategy backed by the given executor.
func NewPAL(m model.Model, executor codeexec.Executor, opts ...any) (*PAL, error) {
	if executor == nil {
		return nil, fmt.Errorf("executor must not be nil")
	}

	var baseOpts []Option
	var palOpts []PALOption

	for _, opt := range opts {
		switch o := opt.(type) {
		case Option:
			baseOpts = append(baseOpts, o)
		case PALOption:
			palOpts = append(palOpts, o)
		default:
			return nil, fmt.Errorf("unsupported option type: %T", opt)
		}
	}

	s := &PAL{
		base:     newBase("program_aided", m, baseOpts...),
		executor: executor,
		parser:   codeexec.NewCodeBlockParser(executor.CodeBlockDelimiters()),
		language: PALDefaultLanguage,
	}
	for _, opt := range palOpts {
		opt(s)
	}

	return s, nil
}

// Execute implements [Strategy].
func (s *PAL) Execute(ctx context.Context, query string) (*Result, error) {
	userText := fmt.Sprintf("Language: %s\n\nProblem: %s", s.language, query)
	request, err := s.newRequest(palPreamble, userText)
	if err != nil {
		return nil, err
	}
	text, response, err := s.generateText(ctx, request)
	if err != nil {
		return nil, err
	}

	block, err := s.parser.ExtractFirstCodeBlock(text)
	if err != nil {
		return nil, fmt.Errorf("extract code block: %w", err)
	}
	if block == nil {
		return nil, fmt.Errorf("model response contains no code block")
	}

	language := block.Language
	if language == "" {
		language = s.language
	}
	s.logger.DebugContext(ctx, "executing generated program",
		slog.String("strategy", s.name),
		slog.String("language", language),
		slog.Int("code_len", len(block.Code)),
	)

	execResult, err := s.executor.ExecuteCode(ctx, &codeexec.ExecutionInput{
		Code:     block.Code,
		Language: language,
	})
	if err != nil {
		return nil, fmt.Errorf("execute generated program: %w", err)
	}

	result := &Result{
		Response: response,
		Metadata: map[string]any{
			"code":      block.Code,
			"language":  language,
			"stdout":    execResult.Stdout,
			"stderr":    execResult.Stderr,
			"exit_code": execResult.ExitCode,
		},
	}

	if execResult.Error != nil || execResult.ExitCode != 0 {
		// The program ran and failed. The partial output stays on the result
		// so the caller can inspect what the program printed.
		result.Answer = strings.TrimSpace(execResult.Stdout)
		return result, fmt.Errorf("generated program failed (exit %d): %s", execResult.ExitCode, strings.TrimSpace(execResult.Stderr))
	}

	result.Answer = strings.TrimSpace(execResult.Stdout)
	return result, nil
}
