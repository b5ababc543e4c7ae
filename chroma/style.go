package chroma

import (
	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/fwojciec/linediff"
)

// StyleFromPalette returns a function that maps chroma token types to
// linediff styles based on the provided palette colors.
func StyleFromPalette(p linediff.Palette) StyleFunc {
	return func(tt chromalib.TokenType) linediff.Style {
		switch {
		case tt == chromalib.KeywordType:
			return linediff.Style{Foreground: string(p.Type), Bold: true}
		case tt.InCategory(chromalib.Keyword):
			return linediff.Style{Foreground: string(p.Keyword), Bold: true}
		case tt.InCategory(chromalib.Comment):
			return linediff.Style{Foreground: string(p.Comment)}
		case tt.InSubCategory(chromalib.LiteralString):
			return linediff.Style{Foreground: string(p.String)}
		case tt.InSubCategory(chromalib.LiteralNumber):
			return linediff.Style{Foreground: string(p.Number)}
		case tt.InCategory(chromalib.Operator):
			return linediff.Style{Foreground: string(p.Operator)}
		case tt == chromalib.NameFunction, tt == chromalib.NameFunctionMagic:
			return linediff.Style{Foreground: string(p.Function)}
		case tt == chromalib.NameBuiltin, tt == chromalib.NameConstant:
			return linediff.Style{Foreground: string(p.Constant)}
		case tt.InCategory(chromalib.Punctuation):
			return linediff.Style{Foreground: string(p.Punctuation)}
		default:
			return linediff.Style{}
		}
	}
}
