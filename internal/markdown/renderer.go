// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package markdown

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// =============================================================================
// RENDERER
// =============================================================================

// Renderer turns Markdown text into styled terminal output.
type Renderer struct {
	tr    *glamour.TermRenderer
	width int
}

// NewRenderer creates a renderer that word-wraps at the given width.
// A nil glamour renderer is tolerated; Render then uses the fallback path.
func NewRenderer(width int) *Renderer {
	if width <= 0 {
		width = 80
	}

	tr, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		tr = nil
	}

	return &Renderer{tr: tr, width: width}
}

// Render renders Markdown content for terminal display. If rendering fails
// the original content is returned so an answer is never lost to styling.
func (r *Renderer) Render(content string) string {
	if content == "" {
		return ""
	}

	if r.tr == nil {
		return r.renderFallback(content)
	}

	rendered, err := r.tr.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

// Width returns the configured word-wrap width.
func (r *Renderer) Width() int {
	return r.width
}

// =============================================================================
// FALLBACK RENDERING
// =============================================================================

// renderFallback renders fenced code blocks through the custom CodeBlock
// styling and passes prose through untouched.
func (r *Renderer) renderFallback(content string) string {
	blocks := ParseCodeBlocks(content)
	if len(blocks) == 0 {
		return content
	}

	var sb strings.Builder
	rest := content
	for _, block := range blocks {
		idx := strings.Index(rest, block.Raw)
		if idx < 0 {
			break
		}
		sb.WriteString(rest[:idx])

		cb := NewCodeBlock(block.Language, block.Code)
		cb.SetMaxWidth(r.width)
		sb.WriteString(cb.Render())
		sb.WriteString("\n")

		rest = rest[idx+len(block.Raw):]
	}
	sb.WriteString(rest)
	return sb.String()
}
