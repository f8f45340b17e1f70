// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package model

import (
	"fmt"

	deepcopy "github.com/tiendc/go-deepcopy"
	"google.golang.org/genai"
)

// LLMRequest represents a request to be sent to a language model.
type LLMRequest struct {
	// Contents is the conversation history to send to the model.
	Contents []*genai.Content

	// Config carries the generation configuration, including the system
	// instruction, temperature, candidate count and safety settings.
	Config *genai.GenerateContentConfig
}

// NewLLMRequest creates an empty [LLMRequest].
func NewLLMRequest() *LLMRequest {
	return &LLMRequest{
		Config: &genai.GenerateContentConfig{},
	}
}

// WithSystemInstruction sets the system instruction text on the request config.
func (r *LLMRequest) WithSystemInstruction(text string) *LLMRequest {
	if r.Config == nil {
		r.Config = &genai.GenerateContentConfig{}
	}
	r.Config.SystemInstruction = &genai.Content{
		Role:  RoleSystem,
		Parts: []*genai.Part{genai.NewPartFromText(text)},
	}
	return r
}

// SystemInstruction returns the system instruction text, or empty string if unset.
func (r *LLMRequest) SystemInstruction() string {
	if r.Config == nil || r.Config.SystemInstruction == nil {
		return ""
	}

	text := ""
	for _, part := range r.Config.SystemInstruction.Parts {
		if part != nil && part.Text != "" {
			text += part.Text
		}
	}
	return text
}

// AppendUserText appends a user text message to the request contents.
func (r *LLMRequest) AppendUserText(text string) *LLMRequest {
	r.Contents = append(r.Contents, &genai.Content{
		Role:  RoleUser,
		Parts: []*genai.Part{genai.NewPartFromText(text)},
	})
	return r
}

// AppendModelText appends a model text message to the request contents.
func (r *LLMRequest) AppendModelText(text string) *LLMRequest {
	r.Contents = append(r.Contents, &genai.Content{
		Role:  RoleModel,
		Parts: []*genai.Part{genai.NewPartFromText(text)},
	})
	return r
}

// Clone returns a deep copy of the request so callers can mutate per-call
// parameters without touching the prototype.
func (r *LLMRequest) Clone() (*LLMRequest, error) {
	clone := &LLMRequest{}
	if err := deepcopy.Copy(clone, r); err != nil {
		return nil, fmt.Errorf("clone llm request: %w", err)
	}
	return clone, nil
}
