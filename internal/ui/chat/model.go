// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/tutor-tui/internal/markdown"
	"github.com/jeranaias/tutor-tui/internal/store"
	"github.com/jeranaias/tutor-tui/internal/ui/styles"
)

// =============================================================================
// MODEL
// =============================================================================

// Model is the Bubble Tea model for the chat view.
type Model struct {
	theme    *styles.Theme
	keys     KeyMap
	store    *store.ChatStore
	settings *store.Settings
	qa       QAService
	renderer *markdown.Renderer
	timeout  time.Duration

	viewport viewport.Model
	input    textarea.Model
	spinner  spinner.Model

	// Attachment prompt state. While attaching is true the path input owns
	// the keyboard.
	attaching   bool
	attachInput textinput.Model
	attachment  *Attachment
	attachErr   string

	width          int
	height         int
	showTimestamps bool
	ready          bool
}

// Options configures optional chat view behavior.
type Options struct {
	ShowTimestamps bool
	MarkdownWidth  int
}

// New creates the chat view. The stores and QA service are injected; the view
// owns no conversation state of its own.
func New(theme *styles.Theme, chatStore *store.ChatStore, settings *store.Settings, qa QAService, timeout time.Duration, opts Options) Model {
	input := textarea.New()
	input.Placeholder = "Ask a question..."
	input.Prompt = ""
	input.CharLimit = 0
	input.SetHeight(3)
	input.ShowLineNumbers = false
	input.Focus()
	// Enter submits; the newline binding is remapped in keys.go.
	input.KeyMap.InsertNewline.SetKeys("alt+enter", "ctrl+j")

	attachInput := textinput.New()
	attachInput.Placeholder = "path to image (png, jpg, jpeg)"
	attachInput.Prompt = "file: "

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(styles.Blue)

	mdWidth := opts.MarkdownWidth
	if mdWidth <= 0 {
		mdWidth = 100
	}

	return Model{
		theme:          theme,
		keys:           DefaultKeyMap(),
		store:          chatStore,
		settings:       settings,
		qa:             qa,
		renderer:       markdown.NewRenderer(mdWidth),
		timeout:        timeout,
		input:          input,
		attachInput:    attachInput,
		spinner:        sp,
		showTimestamps: opts.ShowTimestamps,
	}
}

// Init starts the spinner tick.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// SetSize resizes the view to the given content area.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height

	inputHeight := lipgloss.Height(m.inputView())
	vpHeight := height - inputHeight
	if vpHeight < 1 {
		vpHeight = 1
	}

	if !m.ready {
		m.viewport = viewport.New(width, vpHeight)
		m.ready = true
	} else {
		m.viewport.Width = width
		m.viewport.Height = vpHeight
	}

	m.input.SetWidth(width - 4)
	m.refreshViewport(false)
}

// HasAttachment reports whether an image is staged for the next submit.
func (m Model) HasAttachment() bool {
	return m.attachment != nil
}
