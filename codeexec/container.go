// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package codeexec

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/client"
	"github.com/google/uuid"
)

const defaultContainerImage = "python:3.12-slim"

// ContainerExecutor represents a code executor that uses a container to execute code.
//
// This provides a safer execution environment compared to local execution.
type ContainerExecutor struct {
	config *ExecutionConfig

	// The tag of the image to run code in.
	image string

	// Docker client
	client *client.Client

	// Resource limits
	memoryLimit int64 // in bytes
	cpuLimit    int64 // in nano CPUs (1 CPU = 1000000000)
}

var _ Executor = (*ContainerExecutor)(nil)

// ContainerExecutorOption is a functional option for configuring ContainerExecutor.
type ContainerExecutorOption func(*ContainerExecutor)

// WithDockerClient sets a custom Docker client.
func WithDockerClient(client *client.Client) ContainerExecutorOption {
	return func(e *ContainerExecutor) {
		e.client = client
	}
}

// WithDockerImage sets the Docker image to use for execution.
func WithDockerImage(dockerImage string) ContainerExecutorOption {
	return func(e *ContainerExecutor) {
		e.image = dockerImage
	}
}

// WithMemoryLimit sets the memory limit for containers (in bytes).
func WithMemoryLimit(limit int64) ContainerExecutorOption {
	return func(e *ContainerExecutor) {
		e.memoryLimit = limit
	}
}

// WithCPULimit sets the CPU limit for containers (in nano CPUs).
func WithCPULimit(limit int64) ContainerExecutorOption {
	return func(e *ContainerExecutor) {
		e.cpuLimit = limit
	}
}

// NewContainerExecutor creates a new container-based code executor.
func NewContainerExecutor(opts ...any) (*ContainerExecutor, error) {
	// Separate execution options from container executor options
	var execOpts []ExecutionOption
	var containerOpts []ContainerExecutorOption

	for _, opt := range opts {
		switch o := opt.(type) {
		case ExecutionOption:
			execOpts = append(execOpts, o)
		case ContainerExecutorOption:
			containerOpts = append(containerOpts, o)
		default:
			return nil, fmt.Errorf("unsupported option type: %T", opt)
		}
	}

	config := DefaultConfig()
	for _, opt := range execOpts {
		opt(config)
	}

	executor := &ContainerExecutor{
		config: config,
		image:  defaultContainerImage,
	}
	for _, opt := range containerOpts {
		opt(executor)
	}

	if executor.client == nil {
		client, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
		if err != nil {
			return nil, fmt.Errorf("create Docker client: %w", err)
		}
		executor.client = client
	}

	// Test Docker connection
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := executor.client.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to Docker: %w", err)
	}

	return executor, nil
}

// ErrorRetryAttempts implements [Executor].
func (e *ContainerExecutor) ErrorRetryAttempts() int {
	return e.config.MaxRetries
}

// CodeBlockDelimiters implements [Executor].
func (e *ContainerExecutor) CodeBlockDelimiters() []DelimiterPair {
	return e.config.CodeBlockDelimiters
}

// ExecuteCode implements [Executor].
func (e *ContainerExecutor) ExecuteCode(ctx context.Context, input *ExecutionInput) (*ExecutionResult, error) {
	startTime := time.Now()

	executionID := input.ExecutionID
	if executionID == "" {
		executionID = uuid.NewString()
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

		result, lastErr = e.executeInContainer(ctx, input)
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

// executeInContainer performs the actual container execution.
func (e *ContainerExecutor) executeInContainer(ctx context.Context, input *ExecutionInput) (*ExecutionResult, error) {
	execCtx := ctx
	timeout := input.Timeout
	if timeout == 0 {
		timeout = e.config.DefaultTimeout
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		execCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	containerID, err := e.createContainer(execCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to create container: %w", err)
	}
	defer e.cleanupContainer(context.WithoutCancel(ctx), containerID)

	return e.runCodeInContainer(execCtx, containerID, input)
}

// createContainer creates and starts a new Docker container.
func (e *ContainerExecutor) createContainer(ctx context.Context) (string, error) {
	// Pull image if needed
	if err := e.ensureImage(ctx); err != nil {
		return "", fmt.Errorf("failed to ensure image: %w", err)
	}

	resp, err := e.client.ContainerCreate(
		ctx,
		&container.Config{
			Image:      e.image,
			WorkingDir: "/workspace",
			Tty:        false,
			Env:        []string{"PYTHONUNBUFFERED=1"},
			// Keep the container alive until the exec finishes.
			Cmd: []string{"sleep", "infinity"},
		},
		&container.HostConfig{
			Resources: container.Resources{
				Memory:   e.memoryLimit,
				NanoCPUs: e.cpuLimit,
			},
		},
		nil,
		nil,
		"",
	)
	if err != nil {
		return "", fmt.Errorf("failed to create container: %w", err)
	}

	if err := e.client.ContainerStart(ctx, resp.ID, container.StartOptions{}); err != nil {
		return "", fmt.Errorf("failed to start container: %w", err)
	}

	return resp.ID, nil
}

// ensureImage ensures the Docker image is available locally.
func (e *ContainerExecutor) ensureImage(ctx context.Context) error {
	images, err := e.client.ImageList(ctx, image.ListOptions{})
	if err != nil {
		return err
	}

	for _, img := range images {
		if slices.Contains(img.RepoTags, e.image) {
			return nil // Image already exists
		}
	}

	reader, err := e.client.ImagePull(ctx, e.image, image.PullOptions{})
	if err != nil {
		return err
	}
	defer reader.Close()

	// Wait for pull to complete
	_, err = io.Copy(io.Discard, reader)
	return err
}

// runCodeInContainer executes the code in the container.
func (e *ContainerExecutor) runCodeInContainer(ctx context.Context, containerID string, input *ExecutionInput) (*ExecutionResult, error) {
	// Determine command based on language
	var cmd []string
	switch strings.ToLower(input.Language) {
	case "python", "py", "":
		cmd = []string{"python3", "-c", input.Code}
	case "go":
		goCode := input.Code
		if !strings.Contains(goCode, "package main") {
			goCode = fmt.Sprintf("package main\n\nimport \"fmt\"\n\nfunc main() {\n%s\n}", goCode)
		}
		cmd = []string{"sh", "-c", fmt.Sprintf("printf '%%s' %q > main.go && go run main.go", goCode)}
	case "javascript", "js", "node":
		cmd = []string{"node", "-e", input.Code}
	case "bash", "shell", "sh":
		cmd = []string{"bash", "-c", input.Code}
	default:
		cmd = []string{"python3", "-c", input.Code}
	}

	execConfig := container.ExecOptions{
		Cmd:          cmd,
		AttachStdout: true,
		AttachStderr: true,
		WorkingDir:   "/workspace",
	}
	for key, value := range input.Environment {
		execConfig.Env = append(execConfig.Env, fmt.Sprintf("%s=%s", key, value))
	}

	execResp, err := e.client.ContainerExecCreate(ctx, containerID, execConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create exec instance: %w", err)
	}

	attachResp, err := e.client.ContainerExecAttach(ctx, execResp.ID, container.ExecAttachOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to attach to exec instance: %w", err)
	}
	defer attachResp.Close()

	output, err := io.ReadAll(attachResp.Reader)
	if err != nil {
		return nil, err
	}

	// Parse stdout from Docker's multiplexed stream.
	// Docker uses a simple protocol: first 8 bytes contain stream info.
	stdout := ""
	if len(output) > 8 {
		stdout = string(output[8:])
	}

	execInspect, err := e.client.ContainerExecInspect(ctx, execResp.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to inspect exec instance: %w", err)
	}

	return &ExecutionResult{
		Stdout:   stdout,
		ExitCode: execInspect.ExitCode,
	}, nil
}

// cleanupContainer removes the container.
func (e *ContainerExecutor) cleanupContainer(ctx context.Context, containerID string) {
	e.client.ContainerRemove(ctx, containerID, container.RemoveOptions{
		Force: true,
	})
}

// Close implements [Executor].
func (e *ContainerExecutor) Close() error {
	if e.client != nil {
		return e.client.Close()
	}
	return nil
}
