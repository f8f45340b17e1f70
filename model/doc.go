// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package model provides multi-provider LLM integration with unified interfaces and automatic model resolution.
//
// The model package exposes the [GenerativeModel] interface over multiple Large Language Model
// providers, using google.golang.org/genai content types as the common request/response format.
//
// # Supported Providers
//
//   - Google Gemini: direct integration with streaming support
//   - Anthropic Claude: direct API integration with content conversion
//   - Registry-based extensibility for additional providers
//
// # Model Registry
//
// Models are resolved using regex pattern matching:
//
//	// Gemini models
//	gemini-2.0-flash
//	gemini-1.5-pro
//
//	// Claude models
//	claude-3-5-sonnet-latest
//	claude-3-5-haiku-20241022
//
// # Basic Usage
//
// Creating models using the factory pattern:
//
//	factory := model.NewModelFactory("your-api-key")
//	m, err := factory.CreateModel(ctx, "gemini-2.0-flash")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	req := model.NewLLMRequest().
//		WithSystemInstruction("You are a concise assistant.").
//		AppendUserText("What is the capital of France?")
//
//	resp, err := m.GenerateContent(ctx, req)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(resp.Text())
//
// API credentials fall back to the GOOGLE_API_KEY and ANTHROPIC_API_KEY
// environment variables when not passed explicitly.
package model
