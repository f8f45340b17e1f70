// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"google.golang.org/genai"
)

// LLMResponse represents a response from a language model.
// It provides structured access to content, errors, and metadata
// from the model's response.
type LLMResponse struct {
	// Content is the content of the response.
	Content *genai.Content

	// Partial indicates whether the text content is part of an unfinished text stream.
	// Only used for streaming mode and when the content is plain text.
	Partial bool

	// UsageMetadata carries the token accounting reported by the model, if any.
	UsageMetadata *genai.GenerateContentResponseUsageMetadata

	// ErrorCode is the error code if the response is an error. Code varies by model.
	ErrorCode string

	// ErrorMessage is the error message if the response is an error.
	ErrorMessage string
}

// CreateLLMResponse creates an [LLMResponse] from a [*genai.GenerateContentResponse].
func CreateLLMResponse(resp *genai.GenerateContentResponse) *LLMResponse {
	response := &LLMResponse{}

	if resp == nil {
		response.ErrorCode = "UNKNOWN_ERROR"
		response.ErrorMessage = "Generate content response is nil."
		return response
	}
	response.UsageMetadata = resp.UsageMetadata

	switch {
	case len(resp.Candidates) > 0:
		candidate := resp.Candidates[0]
		if candidate.Content != nil && len(candidate.Content.Parts) > 0 {
			response.Content = candidate.Content
		} else {
			response.ErrorCode = string(candidate.FinishReason)
			response.ErrorMessage = candidate.FinishMessage
		}

	case resp.PromptFeedback != nil:
		response.ErrorCode = string(resp.PromptFeedback.BlockReason)
		response.ErrorMessage = resp.PromptFeedback.BlockReasonMessage

	default:
		response.ErrorCode = "UNKNOWN_ERROR"
		response.ErrorMessage = "Unknown error in generate content response."
	}

	return response
}

// NewTextResponse creates an [LLMResponse] holding a single model text part.
func NewTextResponse(text string) *LLMResponse {
	return &LLMResponse{
		Content: &genai.Content{
			Role:  RoleModel,
			Parts: []*genai.Part{genai.NewPartFromText(text)},
		},
	}
}

// IsError returns true if the response contains an error.
func (r *LLMResponse) IsError() bool {
	return r.ErrorCode != "" || r.ErrorMessage != ""
}

// Text returns the concatenated text content of the response.
// Returns empty string if no text content is available.
func (r *LLMResponse) Text() string {
	if r.Content == nil || len(r.Content.Parts) == 0 {
		return ""
	}

	text := ""
	for _, part := range r.Content.Parts {
		if part != nil && part.Text != "" {
			text += part.Text
		}
	}
	return text
}
