// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package fewshot

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/go-a2a/prompting-go/internal/pool"
	"github.com/go-a2a/prompting-go/model"
)

// Constant parts of the example string.
const (
	ExamplesIntro          = "<EXAMPLES>\nBegin few-shot\nThe following are examples of user queries and model responses.\n\n"
	ExamplesEnd            = "End few-shot\n<EXAMPLES>"
	ExampleStart           = "EXAMPLE %d:\nBegin example\n"
	ExampleEnd             = "End example\n\n"
	UserPrefix             = "[user]\n"
	ModelPrefix            = "[model]\n"
	FunctionCallPrefix     = "```tool_code\n"
	FunctionCallSuffix     = "\n```\n"
	FunctionResponsePrefix = "```tool_outputs\n"
	FunctionResponseSuffix = "\n```\n"
)

// FormatExamples converts a list of examples to a string that can be used in
// a system instruction.
func FormatExamples(examples []*Example) (string, error) {
	examplesStr := pool.String.Get()
	defer func() {
		examplesStr.Reset()
		pool.String.Put(examplesStr)
	}()

	var output strings.Builder
	for i, example := range examples {
		output.Reset() // reuse

		output.WriteString(fmt.Sprintf(ExampleStart, i+1) + UserPrefix)
		if example.Input != nil && len(example.Input.Parts) > 0 {
			partTexts := make([]string, 0, len(example.Input.Parts))
			for _, part := range example.Input.Parts {
				if part.Text != "" {
					partTexts = append(partTexts, part.Text)
				}
			}
			output.WriteString(strings.Join(partTexts, "\n") + "\n")
		}

		previousRole := ""
		for _, content := range example.Output {
			role := UserPrefix
			if content.Role == model.RoleModel {
				role = ModelPrefix
			}
			if role != previousRole {
				output.WriteString(role)
				previousRole = role
			}

			for _, part := range content.Parts {
				switch {
				case part.FunctionCall != nil:
					args := []string{}
					// Convert function call part to python-like function call
					for k, v := range part.FunctionCall.Args {
						switch v := v.(type) {
						case string:
							args = append(args, fmt.Sprintf("%s='%s'", k, v))
						default:
							args = append(args, fmt.Sprintf("%s=%v", k, v))
						}
					}
					output.WriteString(fmt.Sprintf("%s%s(%s)%s", FunctionCallPrefix, part.FunctionCall.Name, strings.Join(args, ", "), FunctionCallSuffix))

				case part.FunctionResponse != nil:
					// Convert function response part to json string
					data, err := json.Marshal(part.FunctionResponse, jsontext.SpaceAfterComma(true))
					if err != nil {
						return "", err
					}
					output.WriteString(fmt.Sprintf("%s%s%s", FunctionResponsePrefix, string(data), FunctionResponseSuffix))

				case part.Text != "":
					output.WriteString(part.Text + "\n")
				}
			}
		}

		output.WriteString(ExampleEnd)
		examplesStr.WriteString(output.String())
	}

	return fmt.Sprintf("%s%s%s", ExamplesIntro, examplesStr.String(), ExamplesEnd), nil
}

// BuildSystemInstruction builds a few-shot system instruction block for the
// given query using the provider's examples.
func BuildSystemInstruction(ctx context.Context, provider Provider, query string) (string, error) {
	examples, err := provider.GetExamples(ctx, query)
	if err != nil {
		return "", fmt.Errorf("get examples: %w", err)
	}
	if len(examples) == 0 {
		return "", nil
	}

	return FormatExamples(examples)
}
