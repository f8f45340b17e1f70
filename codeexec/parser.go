// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package codeexec

import (
	"fmt"
	"regexp"
	"sort"
)

// CodeBlock represents a parsed code block with language and content.
type CodeBlock struct {
	Language string
	Code     string
	Start    int // Starting position in original text
	End      int // Ending position in original text
}

// CodeBlockParser extracts code blocks from text using configurable delimiters.
type CodeBlockParser struct {
	delimiters []DelimiterPair
}

// NewCodeBlockParser creates a new parser with the given delimiters.
func NewCodeBlockParser(delimiters []DelimiterPair) *CodeBlockParser {
	return &CodeBlockParser{
		delimiters: delimiters,
	}
}

// NewDefaultCodeBlockParser creates a parser with default delimiters.
func NewDefaultCodeBlockParser() *CodeBlockParser {
	return NewCodeBlockParser(DefaultConfig().CodeBlockDelimiters)
}

var markdownCodeBlockRe = regexp.MustCompile("```([a-zA-Z0-9_+-]*)\n([\\s\\S]*?)\n```")

// ExtractCodeBlocks extracts all code blocks from the given text.
func (p *CodeBlockParser) ExtractCodeBlocks(text string) ([]*CodeBlock, error) {
	var blocks []*CodeBlock

	// First try markdown-style code blocks
	blocks = append(blocks, p.extractMarkdownCodeBlocks(text)...)

	// Then try delimiter-based code blocks
	delimiterBlocks, err := p.extractDelimiterCodeBlocks(text)
	if err != nil {
		return nil, fmt.Errorf("failed to extract delimiter code blocks: %w", err)
	}
	blocks = append(blocks, delimiterBlocks...)

	return dedupeBlocks(blocks), nil
}

// ExtractFirstCodeBlock returns the first code block in the text, or nil when
// the text contains none.
func (p *CodeBlockParser) ExtractFirstCodeBlock(text string) (*CodeBlock, error) {
	blocks, err := p.ExtractCodeBlocks(text)
	if err != nil {
		return nil, err
	}
	if len(blocks) == 0 {
		return nil, nil
	}
	return blocks[0], nil
}

// extractMarkdownCodeBlocks extracts standard markdown code blocks (```language\ncode\n```).
func (p *CodeBlockParser) extractMarkdownCodeBlocks(text string) []*CodeBlock {
	matches := markdownCodeBlockRe.FindAllStringSubmatchIndex(text, -1)

	var blocks []*CodeBlock
	for _, match := range matches {
		if len(match) >= 6 {
			blocks = append(blocks, &CodeBlock{
				Language: text[match[2]:match[3]],
				Code:     text[match[4]:match[5]],
				Start:    match[0],
				End:      match[1],
			})
		}
	}

	return blocks
}

// extractDelimiterCodeBlocks extracts code blocks using configured delimiters.
func (p *CodeBlockParser) extractDelimiterCodeBlocks(text string) ([]*CodeBlock, error) {
	var blocks []*CodeBlock

	for _, delimiter := range p.delimiters {
		pattern := regexp.QuoteMeta(delimiter.Start) + "([\\s\\S]*?)" + regexp.QuoteMeta(delimiter.End)
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid delimiter pattern: %w", err)
		}

		for _, match := range re.FindAllStringSubmatchIndex(text, -1) {
			if len(match) >= 4 {
				blocks = append(blocks, &CodeBlock{
					Language: languageFromDelimiter(delimiter),
					Code:     text[match[2]:match[3]],
					Start:    match[0],
					End:      match[1],
				})
			}
		}
	}

	return blocks, nil
}

var fenceLanguageRe = regexp.MustCompile("^```([a-zA-Z0-9_+-]*)")

// languageFromDelimiter derives a language hint from a fence-style start delimiter.
func languageFromDelimiter(delimiter DelimiterPair) string {
	if m := fenceLanguageRe.FindStringSubmatch(delimiter.Start); m != nil {
		return m[1]
	}
	return ""
}

// dedupeBlocks removes blocks covering the same span of the original text and
// returns the remainder ordered by position.
func dedupeBlocks(blocks []*CodeBlock) []*CodeBlock {
	seen := make(map[[2]int]bool, len(blocks))
	var out []*CodeBlock
	for _, block := range blocks {
		span := [2]int{block.Start, block.End}
		if seen[span] {
			continue
		}
		seen[span] = true
		out = append(out, block)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Start < out[j].Start
	})

	return out
}
