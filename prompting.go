// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package prompting is an open-source, code-first Go toolkit of prompt-construction
// strategies (zero-shot, few-shot, chain-of-thought, self-consistency, tree-of-thoughts,
// retrieval-augmented generation, program-aided generation) for chat-completion models.
package prompting

import (
	// for raw string prompt constants
	_ "github.com/MakeNowJust/heredoc/v2"
	// for prompt templating
	_ "github.com/google/dotprompt/go/dotprompt"
)

// Version is the version of the prompting toolkit.
var Version = "v0.0.0"
