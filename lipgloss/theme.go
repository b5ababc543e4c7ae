// Package lipgloss provides theme implementations using the Lipgloss styling library.
package lipgloss

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/linediff"
)

// Compile-time interface verification.
var _ linediff.Theme = (*Theme)(nil)

// Theme implements linediff.Theme with Lipgloss-compatible colors.
type Theme struct {
	styles  linediff.Styles
	palette linediff.Palette
}

// Styles returns the color styles for this theme.
func (t *Theme) Styles() linediff.Styles {
	return t.styles
}

// Palette returns the syntax color palette for this theme.
func (t *Theme) Palette() linediff.Palette {
	return t.palette
}

// DefaultTheme returns the default theme (dark background optimized).
func DefaultTheme() *Theme {
	return DarkTheme()
}

// DetectTheme picks the dark or light theme based on the terminal background.
func DetectTheme() *Theme {
	if lipgloss.HasDarkBackground() {
		return DarkTheme()
	}
	return LightTheme()
}

// DarkTheme returns a theme optimized for dark terminal backgrounds.
// Highlight backgrounds are 30% magenta and green blended over the base.
func DarkTheme() *Theme {
	return &Theme{
		styles: linediff.Styles{
			Text: linediff.ColorPair{
				Foreground: "#cdd6f4",
			},
			CursorLine: linediff.ColorPair{
				Background: "#313244", // Dark surface
			},
			LineNumber: linediff.ColorPair{
				Foreground: "#6c7086", // Muted gray
			},
			Insertion: linediff.ColorPair{
				Background: "#62156d", // Magenta
			},
			Deletion: linediff.ColorPair{
				Background: "#156220", // Green
			},
			StatusBar: linediff.ColorPair{
				Foreground: "#a6adc8",
				Background: "#181825",
			},
		},
		palette: linediff.Palette{
			// Catppuccin Mocha
			Keyword:     "#cba6f7",
			String:      "#a6e3a1",
			Number:      "#fab387",
			Comment:     "#6c7086",
			Operator:    "#89dceb",
			Function:    "#89b4fa",
			Type:        "#f9e2af",
			Constant:    "#fab387",
			Punctuation: "#9399b2",
		},
	}
}

// LightTheme returns a theme optimized for light terminal backgrounds.
func LightTheme() *Theme {
	return &Theme{
		styles: linediff.Styles{
			Text: linediff.ColorPair{
				Foreground: "#4c4f69",
			},
			CursorLine: linediff.ColorPair{
				Background: "#e6e9ef", // Light surface
			},
			LineNumber: linediff.ColorPair{
				Foreground: "#9ca0b0", // Muted gray for light theme
			},
			Insertion: linediff.ColorPair{
				Background: "#f4a9f8", // Magenta
			},
			Deletion: linediff.ColorPair{
				Background: "#a7f5ac", // Green
			},
			StatusBar: linediff.ColorPair{
				Foreground: "#6c6f85",
				Background: "#dce0e8",
			},
		},
		palette: linediff.Palette{
			// Catppuccin Latte
			Keyword:     "#8839ef",
			String:      "#40a02b",
			Number:      "#fe640b",
			Comment:     "#9ca0b0",
			Operator:    "#04a5e5",
			Function:    "#1e66f5",
			Type:        "#df8e1d",
			Constant:    "#fe640b",
			Punctuation: "#6c6f85",
		},
	}
}
