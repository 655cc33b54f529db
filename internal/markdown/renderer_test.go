// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package markdown

import (
	"strings"
	"testing"
)

func TestRenderEmpty(t *testing.T) {
	r := NewRenderer(80)
	if got := r.Render(""); got != "" {
		t.Errorf("Render(\"\") = %q, want empty", got)
	}
}

func TestRenderKeepsText(t *testing.T) {
	r := NewRenderer(80)
	out := r.Render("The answer is **4**.")
	if !strings.Contains(out, "4") {
		t.Errorf("rendered output lost content: %q", out)
	}
}

func TestRenderDeterministic(t *testing.T) {
	r := NewRenderer(80)
	input := "# Heading\n\nSome `inline code` and a formula $x^2$."

	first := r.Render(input)
	second := r.Render(input)
	if first != second {
		t.Error("Render is not deterministic for identical input")
	}
}

func TestRenderMathPassesThrough(t *testing.T) {
	r := NewRenderer(80)
	out := r.Render("Solve $x^2 + 2x + 1 = 0$ for x.")
	if !strings.Contains(out, "x^2") {
		t.Errorf("math notation lost: %q", out)
	}
}

func TestParseCodeBlocks(t *testing.T) {
	text := "before\n```go\nfmt.Println(1)\n```\nafter"
	blocks := ParseCodeBlocks(text)

	if len(blocks) != 1 {
		t.Fatalf("blocks = %d, want 1", len(blocks))
	}
	if blocks[0].Language != "go" {
		t.Errorf("Language = %q, want go", blocks[0].Language)
	}
	if blocks[0].Code != "fmt.Println(1)" {
		t.Errorf("Code = %q", blocks[0].Code)
	}
	if !strings.HasPrefix(blocks[0].Raw, "```go") {
		t.Errorf("Raw = %q", blocks[0].Raw)
	}
}

func TestParseCodeBlocksUnclosed(t *testing.T) {
	blocks := ParseCodeBlocks("```python\nprint(1)")
	if len(blocks) != 1 {
		t.Fatalf("blocks = %d, want 1", len(blocks))
	}
	if blocks[0].Code != "print(1)" {
		t.Errorf("Code = %q", blocks[0].Code)
	}
}

func TestParseCodeBlocksNone(t *testing.T) {
	if blocks := ParseCodeBlocks("just prose"); len(blocks) != 0 {
		t.Errorf("blocks = %d, want 0", len(blocks))
	}
}

func TestCodeBlockRender(t *testing.T) {
	cb := NewCodeBlock("go", "package main")
	out := cb.Render()
	if out == "" {
		t.Fatal("CodeBlock.Render returned empty output")
	}
	if !strings.Contains(out, "go") {
		t.Errorf("language badge missing: %q", out)
	}
}
