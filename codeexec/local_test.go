// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package codeexec

import (
	"testing"
	"time"
)

func TestNewLocalExecutor_RequiresOptIn(t *testing.T) {
	if _, err := NewLocalExecutor(); err == nil {
		t.Fatal("NewLocalExecutor should fail without WithAllowUnsafe(true)")
	}
	if _, err := NewLocalExecutor(WithAllowUnsafe(false)); err == nil {
		t.Fatal("NewLocalExecutor should fail with WithAllowUnsafe(false)")
	}
}

func TestNewLocalExecutor_RejectsUnknownOption(t *testing.T) {
	if _, err := NewLocalExecutor("not an option"); err == nil {
		t.Fatal("NewLocalExecutor should reject unknown option types")
	}
}

func TestNewLocalExecutor_Options(t *testing.T) {
	executor, err := NewLocalExecutor(
		WithAllowUnsafe(true),
		WithWorkDir(t.TempDir()),
		WithMaxRetries(5),
		WithDefaultTimeout(10*time.Second),
	)
	if err != nil {
		t.Fatalf("NewLocalExecutor: %v", err)
	}
	defer executor.Close()

	if got, want := executor.ErrorRetryAttempts(), 5; got != want {
		t.Errorf("ErrorRetryAttempts() = %d, want %d", got, want)
	}
	if len(executor.CodeBlockDelimiters()) == 0 {
		t.Error("CodeBlockDelimiters() should carry the default delimiters")
	}
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.MaxRetries != 2 {
		t.Errorf("MaxRetries = %d, want 2", config.MaxRetries)
	}
	if config.DefaultTimeout != 30*time.Second {
		t.Errorf("DefaultTimeout = %v, want 30s", config.DefaultTimeout)
	}
	if len(config.CodeBlockDelimiters) == 0 {
		t.Fatal("CodeBlockDelimiters should not be empty")
	}
	if config.CodeBlockDelimiters[0].Start != "```tool_code\n" {
		t.Errorf("first delimiter = %q, want tool_code fence", config.CodeBlockDelimiters[0].Start)
	}
}
