// Package bubbletea provides a terminal line viewer that highlights how the
// cursor line differs from the line above it, using the Bubble Tea framework.
package bubbletea

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/fwojciec/linediff"
)

// statusBarHeight is the number of rows reserved below the viewport.
const statusBarHeight = 1

// Model is the Bubble Tea model for viewing a document with a line cursor.
type Model struct {
	doc         *linediff.Document
	tracker     *linediff.Tracker
	decorations *Decorations
	tokens      [][]linediff.Token
	clipboard   linediff.Clipboard
	loader      linediff.DocumentLoader

	languageDetector linediff.LanguageDetector
	tokenizer        linediff.Tokenizer

	// UI state
	viewport   viewport.Model
	keymap     KeyMap
	styles     linediff.Styles
	renderer   *lipgloss.Renderer
	cursor     int
	width      int
	ready      bool
	pendingKey string
	status     string
}

// ModelOption configures a Model.
type ModelOption func(*modelConfig)

type modelConfig struct {
	renderer         *lipgloss.Renderer
	theme            linediff.Theme
	languageDetector linediff.LanguageDetector
	tokenizer        linediff.Tokenizer
	clipboard        linediff.Clipboard
	loader           linediff.DocumentLoader
	keymap           *KeyMap
}

// WithRenderer sets a custom lipgloss renderer for the model.
func WithRenderer(r *lipgloss.Renderer) ModelOption {
	return func(cfg *modelConfig) {
		cfg.renderer = r
	}
}

// WithTheme sets the theme for the model.
func WithTheme(t linediff.Theme) ModelOption {
	return func(cfg *modelConfig) {
		cfg.theme = t
	}
}

// WithLanguageDetector sets the language detector for syntax highlighting.
func WithLanguageDetector(d linediff.LanguageDetector) ModelOption {
	return func(cfg *modelConfig) {
		cfg.languageDetector = d
	}
}

// WithTokenizer sets the tokenizer for syntax highlighting.
func WithTokenizer(t linediff.Tokenizer) ModelOption {
	return func(cfg *modelConfig) {
		cfg.tokenizer = t
	}
}

// WithClipboard enables copying the highlighted change.
func WithClipboard(c linediff.Clipboard) ModelOption {
	return func(cfg *modelConfig) {
		cfg.clipboard = c
	}
}

// WithLoader enables reloading the document from its path.
func WithLoader(l linediff.DocumentLoader) ModelOption {
	return func(cfg *modelConfig) {
		cfg.loader = l
	}
}

// WithKeyMap replaces the default key bindings.
func WithKeyMap(km KeyMap) ModelOption {
	return func(cfg *modelConfig) {
		cfg.keymap = &km
	}
}

// NewModel creates a new Model showing doc with the cursor on the first row.
func NewModel(doc *linediff.Document, h *linediff.Highlighter, opts ...ModelOption) Model {
	cfg := &modelConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	styles := defaultStyles()
	if cfg.theme != nil {
		styles = cfg.theme.Styles()
	}

	keymap := DefaultKeyMap()
	if cfg.keymap != nil {
		keymap = *cfg.keymap
	}

	decorations := NewDecorations()
	tracker := linediff.NewTracker(h, decorations)
	tracker.MoveTo(doc, 0)

	m := Model{
		doc:              doc,
		tracker:          tracker,
		decorations:      decorations,
		clipboard:        cfg.clipboard,
		loader:           cfg.loader,
		languageDetector: cfg.languageDetector,
		tokenizer:        cfg.tokenizer,
		keymap:           keymap,
		styles:           styles,
		renderer:         cfg.renderer,
	}
	m.tokens = m.tokenize()
	return m
}

// tokenize returns per-line syntax tokens for the document, or nil when
// syntax highlighting is off or the language is unknown.
func (m Model) tokenize() [][]linediff.Token {
	if m.languageDetector == nil || m.tokenizer == nil || m.doc == nil {
		return nil
	}
	lang := m.languageDetector.DetectFromPath(m.doc.Path)
	if lang == "" {
		return nil
	}
	return m.tokenizer.TokenizeLines(lang, strings.Join(m.doc.Lines, "\n"))
}

// defaultStyles mirrors the dark theme, with the classic magenta and green
// highlight colours.
func defaultStyles() linediff.Styles {
	return linediff.Styles{
		Text:       linediff.ColorPair{Foreground: "#cdd6f4"},
		CursorLine: linediff.ColorPair{Background: "#313244"},
		LineNumber: linediff.ColorPair{Foreground: "#6c7086"},
		Insertion:  linediff.ColorPair{Background: "#ff00ff"},
		Deletion:   linediff.ColorPair{Background: "#00ff00"},
		StatusBar:  linediff.ColorPair{Foreground: "#a6adc8", Background: "#181825"},
	}
}

// Cursor returns the 0-based row the cursor is on.
func (m Model) Cursor() int {
	return m.cursor
}

// Highlights returns the highlight set currently painted and where.
func (m Model) Highlights() (linediff.Placement, linediff.HighlightSet, bool) {
	return m.tracker.Current()
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Handle multi-key sequences (gg for go to top)
		if m.pendingKey == "g" && key.Matches(msg, m.keymap.GotoTop) {
			m.pendingKey = ""
			m.moveTo(0)
			return m, nil
		}

		if key.Matches(msg, m.keymap.GotoTop) {
			m.pendingKey = "g"
			return m, nil
		}

		m.pendingKey = ""

		switch {
		case key.Matches(msg, m.keymap.Quit):
			m.tracker.Close()
			return m, tea.Quit
		case key.Matches(msg, m.keymap.GotoBottom):
			m.moveTo(m.doc.LineCount() - 1)
		case key.Matches(msg, m.keymap.HalfPageUp):
			m.moveTo(m.cursor - m.halfPage())
		case key.Matches(msg, m.keymap.HalfPageDown):
			m.moveTo(m.cursor + m.halfPage())
		case key.Matches(msg, m.keymap.Up):
			m.moveTo(m.cursor - 1)
		case key.Matches(msg, m.keymap.Down):
			m.moveTo(m.cursor + 1)
		case key.Matches(msg, m.keymap.Copy):
			m.copyChange()
		case key.Matches(msg, m.keymap.Reload):
			m.reload()
		}
		return m, nil

	case tea.MouseMsg:
		switch {
		case msg.Button == tea.MouseButtonWheelUp:
			m.moveTo(m.cursor - 1)
		case msg.Button == tea.MouseButtonWheelDown:
			m.moveTo(m.cursor + 1)
		case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
			if m.ready && msg.Y < m.viewport.Height {
				m.moveTo(m.viewport.YOffset + msg.Y)
			}
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		height := max(msg.Height-statusBarHeight, 1)

		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
		m.refresh()
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), m.statusBarView())
}

// moveTo places the cursor on row, clamped to the document, and updates the
// highlights for the new cursor line.
func (m *Model) moveTo(row int) {
	row = min(row, m.doc.LineCount()-1)
	row = max(row, 0)
	if row != m.cursor {
		m.status = ""
	}
	m.cursor = row
	m.tracker.MoveTo(m.doc, row)
	m.refresh()
}

// refresh re-renders the document and scrolls the cursor into view.
func (m *Model) refresh() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(renderDocument(renderConfig{
		doc:         m.doc,
		tokens:      m.tokens,
		decorations: m.decorations,
		cursor:      m.cursor,
		styles:      m.styles,
		renderer:    m.renderer,
		width:       m.width,
	}))

	switch {
	case m.cursor < m.viewport.YOffset:
		m.viewport.SetYOffset(m.cursor)
	case m.cursor >= m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(m.cursor - m.viewport.Height + 1)
	}
}

func (m Model) halfPage() int {
	if !m.ready {
		return 1
	}
	return max(m.viewport.Height/2, 1)
}

// reload reads the document again and re-highlights the cursor line, which
// may have moved up if the document got shorter.
func (m *Model) reload() {
	if m.loader == nil || m.doc == nil || m.doc.Path == "" {
		m.status = "reload unavailable"
		return
	}
	doc, err := m.loader.Load(m.doc.Path)
	if err != nil {
		m.status = fmt.Sprintf("reload failed: %v", err)
		return
	}

	m.doc = doc
	m.tokens = m.tokenize()
	if row := max(min(m.cursor, doc.LineCount()-1), 0); row != m.cursor {
		m.cursor = row
		m.tracker.MoveTo(doc, row)
	} else {
		m.tracker.Refresh(doc)
	}
	m.status = "reloaded"
	m.refresh()
}

// copyChange puts the highlighted text of both lines on the clipboard.
func (m *Model) copyChange() {
	if m.clipboard == nil {
		m.status = "clipboard unavailable"
		return
	}
	summary := m.changeSummary()
	if summary == "" {
		m.status = "nothing to copy"
		return
	}
	if err := m.clipboard.Copy(summary); err != nil {
		m.status = fmt.Sprintf("copy failed: %v", err)
		return
	}
	m.status = "copied"
}

// changeSummary lists the deleted text of the previous line and the inserted
// text of the cursor line, one fragment per row.
func (m Model) changeSummary() string {
	p, set, ok := m.tracker.Current()
	if !ok {
		return ""
	}
	var lines []string
	for _, s := range linediff.Substrings(m.doc.Line(p.PreviousLine), set.Deletions) {
		lines = append(lines, "-"+s)
	}
	for _, s := range linediff.Substrings(m.doc.Line(p.CurrentLine), set.Insertions) {
		lines = append(lines, "+"+s)
	}
	return strings.Join(lines, "\n")
}

// newStyle creates a new lipgloss style using the model's renderer.
func (m Model) newStyle() lipgloss.Style {
	if m.renderer != nil {
		return m.renderer.NewStyle()
	}
	return lipgloss.NewStyle()
}

// statusBarView renders the status bar with the cursor position and the size
// of the current change.
func (m Model) statusBarView() string {
	barStyle := highlightStyle(m.newStyle(), m.styles.StatusBar)

	name := "[no name]"
	if m.doc != nil && m.doc.Path != "" {
		name = m.doc.Path
	}

	total := m.doc.LineCount()
	width := digitWidth(total)
	parts := []string{
		name,
		fmt.Sprintf("ln %*d/%-*d", width, m.cursor+1, width, total),
		m.changeLabel(),
	}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	parts = append(parts, "j/k:move  gg/G:top/bottom  y:copy  r:reload  q:quit")

	content := " " + strings.Join(parts, " │ ") + " "
	if w := lipgloss.Width(content); w < m.width {
		content += strings.Repeat(" ", m.width-w)
	}
	return barStyle.Render(ansi.Truncate(content, m.width, ""))
}

// changeLabel summarises the painted set as inserted and deleted rune counts.
func (m Model) changeLabel() string {
	_, set, ok := m.tracker.Current()
	if !ok {
		return "no highlight"
	}
	var inserted, deleted int
	for _, r := range set.Insertions {
		inserted += r.Len()
	}
	for _, r := range set.Deletions {
		deleted += r.Len()
	}
	return fmt.Sprintf("+%d -%d", inserted, deleted)
}

// Compile-time interface verification.
var _ linediff.Viewer = (*Viewer)(nil)

// Viewer implements linediff.Viewer using a Bubble Tea TUI.
type Viewer struct {
	highlighter *linediff.Highlighter
	opts        []ModelOption
}

// NewViewer creates a new Viewer that highlights with h.
func NewViewer(h *linediff.Highlighter, opts ...ModelOption) *Viewer {
	return &Viewer{highlighter: h, opts: opts}
}

// View displays the document and blocks until the user exits or ctx is
// cancelled.
func (v *Viewer) View(ctx context.Context, doc *linediff.Document) error {
	m := NewModel(doc, v.highlighter, v.opts...)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
