// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package strategy implements prompt-construction patterns as composable
// strategies over a [model.Model].
//
// Every pattern satisfies the same [Strategy] interface: it takes a query and
// returns a [Result] carrying the final answer plus whatever intermediate
// material the pattern produced (per-sample outputs, vote tallies, extracted
// reasoning, generated code).
//
// The available strategies:
//
//   - [ZeroShot]: a single call with an instruction and the query.
//   - [FewShot]: a single call with input/output example pairs embedded in
//     the system instruction.
//   - [ChainOfThought]: asks the model to show step-by-step reasoning under
//     tags, then extracts the tagged final answer.
//   - [SelfConsistency]: draws several chain-of-thought samples concurrently
//     at non-zero temperature and returns the majority answer.
//   - [TreeOfThoughts]: propose, evaluate, synthesize over three sequential
//     calls.
//   - [RAG]: retrieves documents for the query and grounds the answer in
//     them.
//   - [PAL]: asks the model for a program, executes it, and takes stdout as
//     the answer.
//
// Strategies share the base options [WithGenerateContentConfig] and
// [WithLogger]; pattern-specific knobs (sample count, breadth, top-k,
// language) live on per-strategy options.
package strategy
