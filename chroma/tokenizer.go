// Package chroma provides syntax highlighting using the chroma library.
package chroma

import (
	"errors"
	"strings"

	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/fwojciec/linediff"
)

// Compile-time interface verification.
var _ linediff.Tokenizer = (*Tokenizer)(nil)

// StyleFunc maps chroma token types to linediff styles.
type StyleFunc func(chromalib.TokenType) linediff.Style

// Tokenizer extracts syntax tokens using chroma.
type Tokenizer struct {
	styleFunc StyleFunc
}

// NewTokenizer creates a new chroma-based tokenizer with the given style function.
// Use StyleFromPalette to create a style function from a linediff.Palette.
func NewTokenizer(styleFunc StyleFunc) (*Tokenizer, error) {
	if styleFunc == nil {
		return nil, errors.New("chroma: styleFunc cannot be nil")
	}
	return &Tokenizer{styleFunc: styleFunc}, nil
}

// TokenizeLines tokenizes source with full context, then splits tokens by line.
// This keeps multi-line constructs like block comments coloured correctly.
// Returns nil if the language is not supported or an error occurs.
func (t *Tokenizer) TokenizeLines(language, source string) [][]linediff.Token {
	if source == "" {
		return [][]linediff.Token{}
	}

	lexer := lexers.Get(language)
	if lexer == nil {
		return nil
	}
	lexer = chromalib.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return nil
	}

	var tokens []linediff.Token
	for token := iterator(); token != chromalib.EOF; token = iterator() {
		tokens = append(tokens, linediff.Token{
			Text:  token.Value,
			Style: t.styleFunc(token.Type),
		})
	}

	return splitTokensByLine(tokens)
}

// splitTokensByLine splits a flat list of tokens into per-line token slices,
// breaking tokens that span lines at their newlines.
func splitTokensByLine(tokens []linediff.Token) [][]linediff.Token {
	result := [][]linediff.Token{}
	var line []linediff.Token

	for _, tok := range tokens {
		parts := strings.Split(tok.Text, "\n")
		for i, part := range parts {
			if part != "" {
				line = append(line, linediff.Token{Text: part, Style: tok.Style})
			}
			if i < len(parts)-1 {
				result = append(result, line)
				line = nil
			}
		}
	}

	if len(line) > 0 {
		result = append(result, line)
	}
	return result
}
