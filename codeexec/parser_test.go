// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package codeexec

import (
	"testing"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestExtractCodeBlocks_Markdown(t *testing.T) {
	text := heredoc.Doc(`
		Some explanation first.

		` + "```python" + `
		print("hello")
		` + "```" + `

		And a second block:

		` + "```go" + `
		fmt.Println("hello")
		` + "```" + `
	`)

	parser := NewDefaultCodeBlockParser()
	blocks, err := parser.ExtractCodeBlocks(text)
	if err != nil {
		t.Fatalf("ExtractCodeBlocks: %v", err)
	}

	want := []*CodeBlock{
		{Language: "python", Code: `print("hello")`},
		{Language: "go", Code: `fmt.Println("hello")`},
	}
	ignorePos := cmpopts.IgnoreFields(CodeBlock{}, "Start", "End")
	if diff := cmp.Diff(want, blocks, ignorePos); diff != "" {
		t.Errorf("blocks mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractCodeBlocks_NoLanguage(t *testing.T) {
	text := "```\nplain code\n```"

	parser := NewDefaultCodeBlockParser()
	blocks, err := parser.ExtractCodeBlocks(text)
	if err != nil {
		t.Fatalf("ExtractCodeBlocks: %v", err)
	}

	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	if blocks[0].Language != "" {
		t.Errorf("Language = %q, want empty", blocks[0].Language)
	}
	if blocks[0].Code != "plain code" {
		t.Errorf("Code = %q, want %q", blocks[0].Code, "plain code")
	}
}

func TestExtractCodeBlocks_DelimiterOverlap(t *testing.T) {
	// A tool_code fence matches both the markdown pattern and the
	// configured delimiter pair; it must be reported once.
	text := "```tool_code\nresult = 42\n```"

	parser := NewDefaultCodeBlockParser()
	blocks, err := parser.ExtractCodeBlocks(text)
	if err != nil {
		t.Fatalf("ExtractCodeBlocks: %v", err)
	}

	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	if blocks[0].Language != "tool_code" {
		t.Errorf("Language = %q, want %q", blocks[0].Language, "tool_code")
	}
}

func TestExtractCodeBlocks_None(t *testing.T) {
	parser := NewDefaultCodeBlockParser()
	blocks, err := parser.ExtractCodeBlocks("no code here at all")
	if err != nil {
		t.Fatalf("ExtractCodeBlocks: %v", err)
	}
	if len(blocks) != 0 {
		t.Errorf("got %d blocks, want 0", len(blocks))
	}
}

func TestExtractFirstCodeBlock(t *testing.T) {
	parser := NewDefaultCodeBlockParser()

	block, err := parser.ExtractFirstCodeBlock("```bash\necho one\n```\n```bash\necho two\n```")
	if err != nil {
		t.Fatalf("ExtractFirstCodeBlock: %v", err)
	}
	if block == nil {
		t.Fatal("expected a block")
	}
	if block.Code != "echo one" {
		t.Errorf("Code = %q, want the first block", block.Code)
	}

	block, err = parser.ExtractFirstCodeBlock("prose only")
	if err != nil {
		t.Fatalf("ExtractFirstCodeBlock: %v", err)
	}
	if block != nil {
		t.Errorf("block = %+v, want nil", block)
	}
}

func TestCodeBlockParser_CustomDelimiters(t *testing.T) {
	parser := NewCodeBlockParser([]DelimiterPair{
		{Start: "<code>", End: "</code>"},
	})

	blocks, err := parser.ExtractCodeBlocks("before <code>x = 1</code> after")
	if err != nil {
		t.Fatalf("ExtractCodeBlocks: %v", err)
	}
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	if blocks[0].Code != "x = 1" {
		t.Errorf("Code = %q, want %q", blocks[0].Code, "x = 1")
	}
}
