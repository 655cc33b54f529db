// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// =============================================================================
// COLOR PALETTE
// =============================================================================

var (
	Blue   = lipgloss.AdaptiveColor{Light: "27", Dark: "33"}
	Green  = lipgloss.AdaptiveColor{Light: "28", Dark: "40"}
	Yellow = lipgloss.AdaptiveColor{Light: "130", Dark: "220"}
	Red    = lipgloss.AdaptiveColor{Light: "124", Dark: "196"}
	Muted  = lipgloss.AdaptiveColor{Light: "245", Dark: "241"}
	Text   = lipgloss.AdaptiveColor{Light: "235", Dark: "252"}
	Border = lipgloss.AdaptiveColor{Light: "250", Dark: "238"}
)

// =============================================================================
// THEME
// =============================================================================

// Theme holds all the styled components for the application.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	ColorProfile termenv.Profile

	// Header and tabs
	Header      lipgloss.Style
	HeaderTitle lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	RAGOn       lipgloss.Style
	RAGOff      lipgloss.Style

	// Chat messages
	UserLabel      lipgloss.Style
	AssistantLabel lipgloss.Style
	UserText       lipgloss.Style
	ErrorText      lipgloss.Style
	MutedText      lipgloss.Style
	ImageTag       lipgloss.Style

	// Document table
	TableHeader      lipgloss.Style
	TableRow         lipgloss.Style
	TableRowCursor   lipgloss.Style
	StatusProcessing lipgloss.Style
	StatusCompleted  lipgloss.Style
	StatusFailed     lipgloss.Style

	// Banners and status bar
	ErrorBanner lipgloss.Style
	InfoBanner  lipgloss.Style
	StatusBar   lipgloss.Style
	KeyHint     lipgloss.Style

	// Input area
	InputFrame   lipgloss.Style
	PromptSymbol lipgloss.Style
}

// NewTheme builds the theme after probing terminal capabilities.
func NewTheme() *Theme {
	output := termenv.DefaultOutput()

	t := &Theme{
		IsDark:       output.HasDarkBackground(),
		ColorProfile: output.Profile,
	}

	t.Header = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(Border).
		Padding(0, 1)
	t.HeaderTitle = lipgloss.NewStyle().Bold(true).Foreground(Blue)
	t.TabActive = lipgloss.NewStyle().Bold(true).Foreground(Blue).Underline(true).Padding(0, 1)
	t.TabInactive = lipgloss.NewStyle().Foreground(Muted).Padding(0, 1)
	t.RAGOn = lipgloss.NewStyle().Foreground(Green).Bold(true)
	t.RAGOff = lipgloss.NewStyle().Foreground(Muted)

	t.UserLabel = lipgloss.NewStyle().Foreground(Blue).Bold(true)
	t.AssistantLabel = lipgloss.NewStyle().Foreground(Green).Bold(true)
	t.UserText = lipgloss.NewStyle().Foreground(Text)
	t.ErrorText = lipgloss.NewStyle().Foreground(Red)
	t.MutedText = lipgloss.NewStyle().Foreground(Muted)
	t.ImageTag = lipgloss.NewStyle().Foreground(Yellow).Italic(true)

	t.TableHeader = lipgloss.NewStyle().Bold(true).Foreground(Text).
		BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).BorderForeground(Border)
	t.TableRow = lipgloss.NewStyle().Foreground(Text)
	t.TableRowCursor = lipgloss.NewStyle().Foreground(Blue).Bold(true)
	t.StatusProcessing = lipgloss.NewStyle().Foreground(Yellow)
	t.StatusCompleted = lipgloss.NewStyle().Foreground(Green)
	t.StatusFailed = lipgloss.NewStyle().Foreground(Red)

	t.ErrorBanner = lipgloss.NewStyle().Foreground(Red).
		BorderStyle(lipgloss.RoundedBorder()).BorderForeground(Red).Padding(0, 1)
	t.InfoBanner = lipgloss.NewStyle().Foreground(Green).
		BorderStyle(lipgloss.RoundedBorder()).BorderForeground(Border).Padding(0, 1)
	t.StatusBar = lipgloss.NewStyle().Foreground(Muted).
		BorderStyle(lipgloss.NormalBorder()).BorderTop(true).BorderForeground(Border).
		Padding(0, 1)
	t.KeyHint = lipgloss.NewStyle().Foreground(Muted)

	t.InputFrame = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)
	t.PromptSymbol = lipgloss.NewStyle().Foreground(Blue).Bold(true)

	return t
}

// StatusStyle returns the style for a document status label.
func (t *Theme) StatusStyle(status string) lipgloss.Style {
	switch status {
	case "processing":
		return t.StatusProcessing
	case "completed":
		return t.StatusCompleted
	case "failed":
		return t.StatusFailed
	default:
		return t.MutedText
	}
}
