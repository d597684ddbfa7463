// Package normalize canonicalizes raw editor text before it is scored or
// persisted: line endings, invisible and control characters, and exotic
// whitespace all collapse to plain displayable text.
package normalize

import (
	"strings"
	"unicode"
)

// spaceLike glyphs that render as (or stand for) a space: NBSP, interpunct
// variants, bullets, and the open-box space markers. Checked before the
// control-picture drop, since U+2423/U+2422 live in that block.
var spaceLike = map[rune]bool{
	' ': true, // no-break space
	'·': true, // middle dot
	'•': true, // bullet
	'∙': true, // bullet operator
	'‧': true, // hyphenation point
	'⋅': true, // dot operator
	'␣': true, // open box
	'␢': true, // blank symbol
	'⍽': true, // shouldered open box
	'・': true, // katakana middle dot
}

// newlineGlyphs are end-of-line pictograms; they carry line-break meaning and
// become a real line feed. U+2424 precedes the control-picture drop on purpose.
var newlineGlyphs = map[rune]bool{
	'¶': true, // pilcrow
	'⁋': true, // reversed pilcrow
	'↵': true, // downwards arrow with corner leftwards
	'⏎': true, // return symbol
	'␤': true, // symbol for newline
}

// tabGlyphs are tab pictograms; they become a single space like a real tab.
var tabGlyphs = map[rune]bool{
	'⇥': true, // rightwards arrow to bar
	'␉': true, // symbol for horizontal tabulation
	'↹': true, // tab-with-shift key glyph
}

// Normalize canonicalizes raw text. It is deterministic, idempotent and total:
// every input maps to displayable text, and normalizing twice changes nothing.
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))

	for _, r := range raw {
		switch {
		case r == '\n':
			b.WriteByte('\n')
		case r == '\r':
			b.WriteByte('\n')
		case r == '\t', r == '\v', r == '\f':
			b.WriteByte(' ')
		case spaceLike[r]:
			b.WriteByte(' ')
		case newlineGlyphs[r]:
			b.WriteByte('\n')
		case tabGlyphs[r]:
			b.WriteByte(' ')
		case r >= 0x2400 && r <= 0x243F:
			// control pictures block: dropped
		case unicode.Is(unicode.Cf, r), unicode.Is(unicode.Cc, r),
			unicode.Is(unicode.Zl, r), unicode.Is(unicode.Zp, r):
			// format, control, line/paragraph separators: dropped
		case r != ' ' && unicode.Is(unicode.Zs, r):
			b.WriteByte(' ')
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}
