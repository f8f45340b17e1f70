// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package codeexec

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// LocalExecutor executes code in the local environment.
//
// WARNING: This executor is inherently unsafe as it runs arbitrary code
// with the same privileges as the calling process. Use only in trusted environments.
type LocalExecutor struct {
	config *ExecutionConfig

	// allowUnsafe must be explicitly set to true to enable this executor
	allowUnsafe bool

	// workDir is the working directory for code execution
	workDir string

	// tempDir is used for temporary files when workDir is not specified
	tempDir string
}

var _ Executor = (*LocalExecutor)(nil)

// LocalExecutorOption is a functional option for configuring LocalExecutor.
type LocalExecutorOption func(*LocalExecutor)

// WithAllowUnsafe explicitly enables unsafe local execution.
// This is required to use the LocalExecutor due to security implications.
func WithAllowUnsafe(allow bool) LocalExecutorOption {
	return func(e *LocalExecutor) {
		e.allowUnsafe = allow
	}
}

// WithWorkDir sets a specific working directory for code execution.
func WithWorkDir(dir string) LocalExecutorOption {
	return func(e *LocalExecutor) {
		e.workDir = dir
	}
}

// NewLocalExecutor creates a new local code executor.
//
// This executor requires explicit opt-in to unsafe execution.
func NewLocalExecutor(opts ...any) (*LocalExecutor, error) {
	// Separate execution options from local executor options
	var execOpts []ExecutionOption
	var localOpts []LocalExecutorOption

	for _, opt := range opts {
		switch o := opt.(type) {
		case ExecutionOption:
			execOpts = append(execOpts, o)
		case LocalExecutorOption:
			localOpts = append(localOpts, o)
		default:
			return nil, fmt.Errorf("unsupported option type: %T", opt)
		}
	}

	config := DefaultConfig()
	for _, opt := range execOpts {
		opt(config)
	}

	executor := &LocalExecutor{
		config: config,
	}
	for _, opt := range localOpts {
		opt(executor)
	}

	if !executor.allowUnsafe {
		return nil, fmt.Errorf("local executor requires explicit opt-in to unsafe execution via WithAllowUnsafe(true)")
	}

	// Create temporary directory if no working directory specified
	if executor.workDir == "" {
		tempDir, err := os.MkdirTemp("", "prompting-local-executor-*")
		if err != nil {
			return nil, fmt.Errorf("failed to create temporary directory: %w", err)
		}
		executor.tempDir = tempDir
		executor.workDir = tempDir
	}

	return executor, nil
}

// ErrorRetryAttempts implements [Executor].
func (e *LocalExecutor) ErrorRetryAttempts() int {
	return e.config.MaxRetries
}

// CodeBlockDelimiters implements [Executor].
func (e *LocalExecutor) CodeBlockDelimiters() []DelimiterPair {
	return e.config.CodeBlockDelimiters
}

// ExecuteCode implements [Executor].
func (e *LocalExecutor) ExecuteCode(ctx context.Context, input *ExecutionInput) (*ExecutionResult, error) {
	if !e.allowUnsafe {
		return nil, fmt.Errorf("unsafe execution not allowed - must be explicitly enabled")
	}

	startTime := time.Now()

	executionID := input.ExecutionID
	if executionID == "" {
		executionID = uuid.NewString()
	}

	workDir := e.workDir
	if input.WorkingDirectory != "" {
		workDir = input.WorkingDirectory
	}

	// Execute with retry logic
	var result *ExecutionResult
	var lastErr error

	for attempt := 0; attempt <= e.config.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(e.config.RetryDelay):
				// Continue with retry
			}
		}

		result, lastErr = e.executeCode(ctx, input, workDir)
		if lastErr == nil {
			break
		}
	}

	if lastErr != nil {
		return &ExecutionResult{
			ExitCode:      1,
			Error:         lastErr,
			ExecutionTime: time.Since(startTime),
			ExecutionID:   executionID,
		}, lastErr
	}

	result.ExecutionTime = time.Since(startTime)
	result.ExecutionID = executionID

	return result, nil
}

// executeCode performs the actual code execution.
func (e *LocalExecutor) executeCode(ctx context.Context, input *ExecutionInput, workDir string) (*ExecutionResult, error) {
	// Create working directory if it doesn't exist
	if err := os.MkdirAll(workDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create working directory: %w", err)
	}

	switch strings.ToLower(input.Language) {
	case "python", "py":
		return e.executePython(ctx, input, workDir)
	case "go":
		return e.executeGo(ctx, input, workDir)
	case "javascript", "js", "node":
		return e.executeJavaScript(ctx, input, workDir)
	case "bash", "shell", "sh":
		return e.executeBash(ctx, input, workDir)
	default:
		// Default to Python
		return e.executePython(ctx, input, workDir)
	}
}

// executePython executes Python code.
func (e *LocalExecutor) executePython(ctx context.Context, input *ExecutionInput, workDir string) (*ExecutionResult, error) {
	tmpFile := filepath.Join(workDir, "code.py")
	if err := os.WriteFile(tmpFile, []byte(input.Code), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write Python code: %w", err)
	}
	defer os.Remove(tmpFile)

	return e.executeCommand(ctx, input, "python3", []string{tmpFile}, workDir)
}

// executeGo executes Go code.
func (e *LocalExecutor) executeGo(ctx context.Context, input *ExecutionInput, workDir string) (*ExecutionResult, error) {
	tmpFile := filepath.Join(workDir, "main.go")

	// Wrap code in main function if needed
	code := input.Code
	if !strings.Contains(code, "package main") {
		code = fmt.Sprintf("package main\n\nimport \"fmt\"\n\nfunc main() {\n%s\n}", code)
	}

	if err := os.WriteFile(tmpFile, []byte(code), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write Go code: %w", err)
	}
	defer os.Remove(tmpFile)

	return e.executeCommand(ctx, input, "go", []string{"run", tmpFile}, workDir)
}

// executeJavaScript executes JavaScript/Node.js code.
func (e *LocalExecutor) executeJavaScript(ctx context.Context, input *ExecutionInput, workDir string) (*ExecutionResult, error) {
	tmpFile := filepath.Join(workDir, "code.js")
	if err := os.WriteFile(tmpFile, []byte(input.Code), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write JavaScript code: %w", err)
	}
	defer os.Remove(tmpFile)

	return e.executeCommand(ctx, input, "node", []string{tmpFile}, workDir)
}

// executeBash executes bash/shell code with the code as stdin.
func (e *LocalExecutor) executeBash(ctx context.Context, input *ExecutionInput, workDir string) (*ExecutionResult, error) {
	timeout := input.Timeout
	if timeout == 0 {
		timeout = e.config.DefaultTimeout
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, "bash")
	cmd.Dir = workDir
	cmd.Stdin = strings.NewReader(input.Code)

	return e.runCommand(cmd, input.Environment)
}

// executeCommand executes a command with the given arguments.
func (e *LocalExecutor) executeCommand(ctx context.Context, input *ExecutionInput, command string, args []string, workDir string) (*ExecutionResult, error) {
	timeout := input.Timeout
	if timeout == 0 {
		timeout = e.config.DefaultTimeout
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, command, args...)
	cmd.Dir = workDir

	return e.runCommand(cmd, input.Environment)
}

func (e *LocalExecutor) runCommand(cmd *exec.Cmd, env map[string]string) (*ExecutionResult, error) {
	cmd.Env = os.Environ()
	for key, value := range env {
		cmd.Env = append(cmd.Env, fmt.Sprintf("%s=%s", key, value))
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	result := &ExecutionResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		if exitError, ok := err.(*exec.ExitError); ok {
			result.ExitCode = exitError.ExitCode()
		} else {
			result.ExitCode = 1
			result.Error = err
		}
	}

	return result, nil
}

// Close implements [Executor].
func (e *LocalExecutor) Close() error {
	// Clean up temporary directory if we created one
	if e.tempDir != "" {
		if err := os.RemoveAll(e.tempDir); err != nil {
			return fmt.Errorf("failed to clean up temporary directory: %w", err)
		}
	}

	return nil
}
