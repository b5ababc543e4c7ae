package bubbletea

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/fwojciec/linediff"
)

// minGutterWidth is the minimum width of the line number column.
const minGutterWidth = 3

// renderConfig holds all rendering parameters for renderDocument.
type renderConfig struct {
	doc         *linediff.Document
	tokens      [][]linediff.Token // per-line syntax tokens, nil when unavailable
	decorations *Decorations
	cursor      int
	styles      linediff.Styles
	renderer    *lipgloss.Renderer
	width       int
}

// renderDocument renders every line of the document, one output line per row.
// Each row is padded or cut to exactly width cells.
func renderDocument(cfg renderConfig) string {
	if cfg.doc == nil {
		return ""
	}

	gutterWidth := max(digitWidth(cfg.doc.LineCount()), minGutterWidth)
	textWidth := max(cfg.width-gutterWidth-1, 0)

	lines := make([]string, 0, cfg.doc.LineCount())
	for row, text := range cfg.doc.Lines {
		base := cfg.styles.Text
		numberColors := cfg.styles.LineNumber
		if row == cfg.cursor {
			base.Background = cfg.styles.CursorLine.Background
			numberColors.Background = cfg.styles.CursorLine.Background
		}

		var tokens []linediff.Token
		if row < len(cfg.tokens) {
			tokens = cfg.tokens[row]
		}

		ranges, kind := cfg.decorations.rangesFor(row)
		var highlight linediff.ColorPair
		switch kind {
		case decorationInsertion:
			highlight = cfg.styles.Insertion
		case decorationDeletion:
			highlight = cfg.styles.Deletion
		}

		lineNum := styleFromColorPair(numberColors, cfg.renderer).Render(fmt.Sprintf("%*d ", gutterWidth, row+1))
		body := renderLine(lineConfig{
			text:      text,
			tokens:    tokens,
			ranges:    ranges,
			base:      base,
			highlight: highlight,
			renderer:  cfg.renderer,
			width:     textWidth,
		})
		lines = append(lines, lineNum+body)
	}
	return strings.Join(lines, "\n")
}

// lineConfig holds the parameters for rendering a single line.
type lineConfig struct {
	text      string
	tokens    []linediff.Token
	ranges    []linediff.CharRange
	base      linediff.ColorPair
	highlight linediff.ColorPair
	renderer  *lipgloss.Renderer
	width     int
}

// renderLine renders text with syntax colours and range highlights layered
// on top of the base colours. The result is exactly cfg.width cells wide.
func renderLine(cfg lineConfig) string {
	if !tokensCover(cfg.tokens, cfg.text) {
		cfg.tokens = []linediff.Token{{Text: cfg.text}}
	}

	marked := highlightMask(utf8.RuneCountInString(cfg.text), cfg.ranges)
	baseStyle := styleFromColorPair(cfg.base, cfg.renderer)

	var sb strings.Builder
	col, pos := 0, 0
	for _, tok := range cfg.tokens {
		style := tokenStyle(baseStyle, tok.Style)
		markedStyle := highlightStyle(style, cfg.highlight)

		runes := []rune(tok.Text)
		for start := 0; start < len(runes); {
			end := start + 1
			for end < len(runes) && marked[pos+end] == marked[pos+start] {
				end++
			}

			var chunk string
			chunk, col = ExpandTabs(string(runes[start:end]), col)
			if marked[pos+start] {
				sb.WriteString(markedStyle.Render(chunk))
			} else {
				sb.WriteString(style.Render(chunk))
			}
			start = end
		}
		pos += len(runes)
	}

	if col < cfg.width {
		sb.WriteString(baseStyle.Render(strings.Repeat(" ", cfg.width-col)))
	}
	return ansi.Truncate(sb.String(), cfg.width, "")
}

// tokensCover reports whether tokens spell out exactly text.
func tokensCover(tokens []linediff.Token, text string) bool {
	if tokens == nil {
		return false
	}
	var sb strings.Builder
	for _, tok := range tokens {
		sb.WriteString(tok.Text)
	}
	return sb.String() == text
}

// highlightMask marks the runes covered by ranges, clamped to n runes.
func highlightMask(n int, ranges []linediff.CharRange) []bool {
	mask := make([]bool, n)
	for _, r := range ranges {
		for i := max(r.Start, 0); i < min(r.End, n); i++ {
			mask[i] = true
		}
	}
	return mask
}

// tokenStyle layers a syntax style on top of the row's base style.
func tokenStyle(base lipgloss.Style, s linediff.Style) lipgloss.Style {
	if s.Foreground != "" {
		base = base.Foreground(lipgloss.Color(s.Foreground))
	}
	if s.Bold {
		base = base.Bold(true)
	}
	return base
}

// highlightStyle layers highlight colours on top of a token style.
func highlightStyle(style lipgloss.Style, cp linediff.ColorPair) lipgloss.Style {
	if cp.Foreground != "" {
		style = style.Foreground(lipgloss.Color(cp.Foreground))
	}
	if cp.Background != "" {
		style = style.Background(lipgloss.Color(cp.Background))
	}
	return style
}

// styleFromColorPair creates a lipgloss style from a ColorPair.
// If renderer is nil, the default lipgloss renderer is used.
func styleFromColorPair(cp linediff.ColorPair, renderer *lipgloss.Renderer) lipgloss.Style {
	var style lipgloss.Style
	if renderer != nil {
		style = renderer.NewStyle()
	} else {
		style = lipgloss.NewStyle()
	}
	return highlightStyle(style, cp)
}

// digitWidth returns the number of decimal digits in n.
func digitWidth(n int) int {
	width := 1
	for n >= 10 {
		n /= 10
		width++
	}
	return width
}
