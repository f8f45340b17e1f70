// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package codeexec executes model-generated code and extracts code blocks from model output.
package codeexec

import (
	"context"
	"time"
)

// Executor defines the interface for executing code in various environments,
// with configurable retry logic.
type Executor interface {
	// ErrorRetryAttempts returns the number of attempts to retry on consecutive code execution errors.
	//
	// Default to 2.
	ErrorRetryAttempts() int

	// CodeBlockDelimiters returns the list of the enclosing delimiters to identify the code blocks.
	//
	// For example, the delimiter ('```python\n', '\n```') can be
	// used to identify code blocks with the following format:
	//
	//  ```python
	//  print("hello")
	//  ```
	CodeBlockDelimiters() []DelimiterPair

	// ExecuteCode runs the provided code and returns the execution result.
	// The context can be used for cancellation and timeout control.
	ExecuteCode(ctx context.Context, input *ExecutionInput) (*ExecutionResult, error)

	// Close cleans up any resources used by the executor.
	Close() error
}

// DelimiterPair represents a pair of start and end delimiters for text parsing.
type DelimiterPair struct {
	Start string
	End   string
}

// ExecutionConfig holds configuration options for code executors.
type ExecutionConfig struct {
	// MaxRetries specifies the maximum number of retry attempts for failed executions.
	MaxRetries int

	// RetryDelay specifies the delay between retry attempts.
	RetryDelay time.Duration

	// DefaultTimeout specifies the default execution timeout.
	DefaultTimeout time.Duration

	// CodeBlockDelimiters defines the patterns used to extract code blocks from text.
	CodeBlockDelimiters []DelimiterPair
}

// DefaultConfig returns a default ExecutionConfig with sensible defaults.
func DefaultConfig() *ExecutionConfig {
	return &ExecutionConfig{
		MaxRetries:     2,
		RetryDelay:     1 * time.Second,
		DefaultTimeout: 30 * time.Second,
		CodeBlockDelimiters: []DelimiterPair{
			{Start: "```tool_code\n", End: "\n```"},
			{Start: "```python\n", End: "\n```"},
			{Start: "```go\n", End: "\n```"},
			{Start: "```javascript\n", End: "\n```"},
			{Start: "```bash\n", End: "\n```"},
		},
	}
}

// ExecutionOption is a functional option for configuring code executors.
type ExecutionOption func(*ExecutionConfig)

// WithMaxRetries sets the maximum number of retry attempts.
func WithMaxRetries(retries int) ExecutionOption {
	return func(c *ExecutionConfig) {
		c.MaxRetries = retries
	}
}

// WithRetryDelay sets the delay between retry attempts.
func WithRetryDelay(delay time.Duration) ExecutionOption {
	return func(c *ExecutionConfig) {
		c.RetryDelay = delay
	}
}

// WithDefaultTimeout sets the default execution timeout.
func WithDefaultTimeout(timeout time.Duration) ExecutionOption {
	return func(c *ExecutionConfig) {
		c.DefaultTimeout = timeout
	}
}

// WithCodeBlockDelimiters sets custom code block delimiters.
func WithCodeBlockDelimiters(delimiters ...DelimiterPair) ExecutionOption {
	return func(c *ExecutionConfig) {
		c.CodeBlockDelimiters = delimiters
	}
}

// ExecutionInput represents a structure that contains the input of code execution.
type ExecutionInput struct {
	// Code is the code to execute.
	Code string `json:"code"`

	// Language specifies the programming language (e.g., "python", "go", "javascript").
	// If empty, the executor may attempt to auto-detect or use a default.
	Language string `json:"language,omitempty"`

	// ExecutionID is an optional identifier correlating executions.
	// When empty, executors assign a random one.
	ExecutionID string `json:"execution_id,omitempty"`

	// WorkingDirectory specifies the directory where code should be executed.
	// If empty, a temporary directory will be used.
	WorkingDirectory string `json:"working_directory,omitempty"`

	// Environment contains environment variables to set during execution.
	Environment map[string]string `json:"environment,omitempty"`

	// Timeout specifies the maximum execution time.
	// If zero, the executor's default timeout will be used.
	Timeout time.Duration `json:"timeout,omitempty"`
}

// ExecutionResult represents the result of code execution.
type ExecutionResult struct {
	// Stdout contains the standard output from the executed code.
	Stdout string `json:"stdout"`

	// Stderr contains the standard error from the executed code.
	Stderr string `json:"stderr"`

	// ExitCode is the process exit code.
	ExitCode int `json:"exit_code"`

	// Error holds the execution error, if any.
	Error error `json:"-"`

	// ExecutionTime is the wall-clock duration of the execution.
	ExecutionTime time.Duration `json:"execution_time"`

	// ExecutionID identifies the execution.
	ExecutionID string `json:"execution_id,omitempty"`
}
