// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package documents

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/tutor-tui/internal/api"
	"github.com/jeranaias/tutor-tui/internal/ui/styles"
)

// Reload delays after an accepted upload. The webhook responds before the
// pipeline finishes, so the first reload waits for the document row to
// appear, and polling continues while any row is still processing.
const (
	uploadReloadDelay = 2 * time.Second
	processingPoll    = 3 * time.Second
)

// statusCycle is the order the f key walks the status filter through.
// The empty value means "no filter".
var statusCycle = []api.DocumentStatus{
	"",
	api.StatusCompleted,
	api.StatusProcessing,
	api.StatusFailed,
}

// banner is a transient status line above the table.
type banner struct {
	text    string
	isError bool
}

// =============================================================================
// MODEL
// =============================================================================

// Model is the Bubble Tea model for the documents view.
type Model struct {
	theme    *styles.Theme
	keys     KeyMap
	svc      DocumentService
	uploader UploadService

	apiTimeout    time.Duration
	uploadTimeout time.Duration
	allowedExts   []string
	maxBytes      int64

	docs         []api.DocumentInfo
	total        int
	cursor       int
	statusFilter api.DocumentStatus

	// reqSeq tags list requests; only the response carrying the latest tag
	// is applied.
	reqSeq  uint64
	loading bool

	uploading   bool
	uploadInput textinput.Model

	confirming bool
	confirmID  int

	banner  banner
	spinner spinner.Model

	width  int
	height int
}

// New creates the documents view. Services are injected so tests can swap in
// fakes.
func New(theme *styles.Theme, svc DocumentService, uploader UploadService, apiTimeout, uploadTimeout time.Duration, allowedExts []string, maxBytes int64) Model {
	uploadInput := textinput.New()
	uploadInput.Placeholder = "path to document (pdf, png, jpg, jpeg)"
	uploadInput.Prompt = "file: "

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(styles.Blue)

	// reqSeq starts at 1 so Init's load carries a tag the model already
	// expects.
	return Model{
		theme:         theme,
		keys:          DefaultKeyMap(),
		svc:           svc,
		uploader:      uploader,
		apiTimeout:    apiTimeout,
		uploadTimeout: uploadTimeout,
		allowedExts:   allowedExts,
		maxBytes:      maxBytes,
		uploadInput:   uploadInput,
		spinner:       sp,
		reqSeq:        1,
		loading:       true,
	}
}

// Init triggers the first list load.
func (m Model) Init() tea.Cmd {
	opts := api.ListDocumentsOptions{Status: m.statusFilter}
	return tea.Batch(m.spinner.Tick, LoadDocumentsCmd(m.svc, m.apiTimeout, opts, m.reqSeq))
}

// SetSize resizes the view to the given content area.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.uploadInput.Width = width - 10
}

// reload bumps the sequence number and returns the tagged load command.
// Callers must assign the returned model.
func (m Model) reload() (Model, tea.Cmd) {
	m.reqSeq++
	m.loading = true
	opts := api.ListDocumentsOptions{Status: m.statusFilter}
	return m, LoadDocumentsCmd(m.svc, m.apiTimeout, opts, m.reqSeq)
}

// anyProcessing reports whether any listed document is still in the
// pipeline.
func (m Model) anyProcessing() bool {
	for _, d := range m.docs {
		if d.Status == api.StatusProcessing {
			return true
		}
	}
	return false
}

// Documents returns the currently displayed rows.
func (m Model) Documents() []api.DocumentInfo {
	return m.docs
}
