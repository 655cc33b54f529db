// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package markdown

import (
	"strconv"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromaStyles "github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// CODE BLOCK RENDERER
// =============================================================================

// CodeBlock renders a fenced code block with syntax highlighting, line
// numbers and a framed container. This is the custom-styling variant of the
// renderer; glamour is the default one.
type CodeBlock struct {
	Language string
	Code     string
	MaxWidth int
}

// NewCodeBlock creates a new code block.
func NewCodeBlock(language, code string) CodeBlock {
	return CodeBlock{
		Language: language,
		Code:     code,
		MaxWidth: 80,
	}
}

// SetMaxWidth sets the maximum width for the code block.
func (c *CodeBlock) SetMaxWidth(width int) {
	c.MaxWidth = width
}

// Render renders the code block with styling.
func (c CodeBlock) Render() string {
	code := strings.TrimSpace(c.Code)

	language := c.Language
	if language == "" {
		language = detectLanguage(code)
	}

	// Returns the original text if highlighting fails
	highlighted := highlightCode(code, language)
	lines := strings.Split(highlighted, "\n")

	lineNumStyle := lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "244", Dark: "241"}).
		Width(4).
		Align(lipgloss.Right).
		MarginRight(1)

	var renderedLines []string
	for i, line := range lines {
		renderedLines = append(renderedLines, lineNumStyle.Render(strconv.Itoa(i+1))+line)
	}
	content := strings.Join(renderedLines, "\n")

	var header string
	if c.Language != "" {
		header = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "250"}).
			Bold(true).
			Render(c.Language) + "\n"
	}

	maxWidth := c.MaxWidth - 4
	if maxWidth < 20 {
		maxWidth = 20
	}

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.AdaptiveColor{Light: "250", Dark: "238"}).
		Padding(0, 1).
		MaxWidth(maxWidth).
		Render(header + content)
}

// =============================================================================
// FENCED BLOCK PARSING
// =============================================================================

// FencedBlock is a fenced code block located within Markdown text.
type FencedBlock struct {
	Language string
	Code     string
	Raw      string // The full fenced block including the ``` markers
}

// ParseCodeBlocks extracts fenced code blocks from Markdown text.
// Unclosed trailing fences are treated as extending to the end of the text.
func ParseCodeBlocks(text string) []FencedBlock {
	var blocks []FencedBlock

	lines := strings.Split(text, "\n")
	var inBlock bool
	var language string
	var codeLines, rawLines []string

	flush := func() {
		blocks = append(blocks, FencedBlock{
			Language: language,
			Code:     strings.Join(codeLines, "\n"),
			Raw:      strings.Join(rawLines, "\n"),
		})
		codeLines, rawLines = nil, nil
		language = ""
		inBlock = false
	}

	for _, line := range lines {
		if strings.HasPrefix(line, "```") {
			if inBlock {
				rawLines = append(rawLines, line)
				flush()
			} else {
				language = strings.TrimSpace(strings.TrimPrefix(line, "```"))
				rawLines = append(rawLines, line)
				inBlock = true
			}
		} else if inBlock {
			codeLines = append(codeLines, line)
			rawLines = append(rawLines, line)
		}
	}

	if inBlock && len(codeLines) > 0 {
		flush()
	}

	return blocks
}

// =============================================================================
// SYNTAX HIGHLIGHTING
// =============================================================================

// highlightCode applies syntax highlighting using chroma, producing
// ANSI-safe output for terminal display.
func highlightCode(code, language string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := chromaStyles.Get("monokai")
	if style == nil {
		style = chromaStyles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf strings.Builder
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}
	return buf.String()
}

// detectLanguage attempts to detect the language of the given code.
func detectLanguage(code string) string {
	lexer := lexers.Analyse(code)
	if lexer != nil {
		return lexer.Config().Name
	}
	return ""
}
