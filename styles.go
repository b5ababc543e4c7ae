package linediff

// ColorPair represents a foreground and background color combination.
// Colors should be hex strings in "#RRGGBB" format (e.g., "#ff0000" for red).
// Empty strings are valid and indicate no color override (use terminal default).
type ColorPair struct {
	Foreground string
	Background string
}

// Styles contains color pairs for all visual elements of the line viewer.
type Styles struct {
	Text       ColorPair // Plain document text
	CursorLine ColorPair // The row the cursor is on
	LineNumber ColorPair // Line numbers in the gutter
	Insertion  ColorPair // Text inserted into the cursor line
	Deletion   ColorPair // Text deleted from the line above
	StatusBar  ColorPair // Bottom status line
}

// Color is a hex color string in "#RRGGBB" format.
type Color string

// Palette holds the syntax colors used when tokenizing document text.
type Palette struct {
	Keyword     Color
	String      Color
	Number      Color
	Comment     Color
	Operator    Color
	Function    Color
	Type        Color
	Constant    Color
	Punctuation Color
}

// Theme provides styles for rendering a document.
// Different implementations can provide light/dark variants.
type Theme interface {
	Styles() Styles
	Palette() Palette
}
