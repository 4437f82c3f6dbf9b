package patterns

import (
	"regexp"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// DigitsClass is the Unicode decimal-digit character class used throughout
// the library. \p{Nd} covers ASCII digits as well as full-width, Arabic-Indic,
// and Extended Arabic-Indic digits.
const DigitsClass = `\p{Nd}`

// PlusChars contains '+' and its full-width variant, the two characters the
// viable-phone pattern accepts as a leading international-dialling marker.
const PlusChars = "+＋"

// dashes, spaces, parens/brackets, and tilde variants a phone number may
// legally contain between digits, expressed as \x{...} escapes rather than
// embedded literal runes so every codepoint is auditable at a glance.
const validPunctuation = `` +
	`\x{002D}\x{2010}\x{2011}\x{2012}\x{2013}\x{2014}\x{2015}` + // dashes
	`\x{207B}\x{208B}\x{2212}\x{30FC}\x{FF0D}` + // more dashes incl. katakana prolonged sound
	`\x{0020}\x{00A0}\x{200B}\x{2060}\x{3000}` + // spaces incl. NBSP, ZWSP, word joiner, ideographic space
	`\x{0028}\x{0029}\x{FF08}\x{FF09}` + // parentheses, half- and full-width
	`\x{005B}\x{005D}\x{FF3B}\x{FF3D}` + // square brackets, half- and full-width
	`\x{002E}\x{002F}` + // full stop, slash
	`\x{007E}\x{223C}\x{FF5E}` // tilde variants

// Viable matches strings that syntactically could be a phone number: an
// optional leading plus sign, at least 3 digits interleaved with valid
// punctuation, and a permissive trailing run of punctuation, letters, and
// digits (which may include a carrier-code placeholder or an extension).
//
// The repetition already requires at least 3 digits; IsViablePhoneNumber's
// rune-count check in front of it is only a cheap early rejection.
var Viable = regexp.MustCompile(
	`(?i)^[` + PlusChars + `]*(?:[` + validPunctuation + `x]*[` + DigitsClass + `]){3,}[` +
		validPunctuation + `A-Za-z` + DigitsClass + `]*$`,
)

// extnCommon is the body of the extension pattern shared by Extn and
// ExtnParsing: the RFC3966 ";ext=" form, free-form word introducers (ext,
// ex, extn, extension, xt, int, anexo, plus the full-width ｘｔ and ｉｎｔ and
// the precomposed and decomposed accented "anexó", all matched as written in
// the input), single-character introducers
// (# x ~ and full-width equivalents), and the trailing North American
// "[- ]+digits#" form.
const extnCommon = `(?:;ext=(` + DigitsClass + `{1,7})` +
	`|[\x{0020}\t]*(?:e?xte?n?s?i?o?n?|ex|anex(?:o\x{0301}?|\x{00F3})|xt|\x{FF58}\x{FF54}|int|\x{FF49}\x{FF4E}\x{FF54})[:.]?[\x{0020}\t-]*(` + DigitsClass + `{1,7})#?` +
	`|[#~\x{FF03}\x{FF5E}x\x{FF58}][\x{0020}\t-]*(` + DigitsClass + `{1,7})#?` +
	`|[-\x{0020}]+(` + DigitsClass + `{1,5})#)$`

var (
	// Extn is used when stripping an extension from a number that will not
	// be re-parsed.
	Extn = regexp.MustCompile(`(?i)` + extnCommon)

	// ExtnParsing additionally allows a leading comma as an introducer,
	// matching the specification's "for parsing only ','" clause.
	ExtnParsing = regexp.MustCompile(`(?i)` + `(?:;ext=(` + DigitsClass + `{1,7})` +
		`|[\x{0020}\t,]*(?:,*(?:e?xte?n?s?i?o?n?|ex|anex(?:o\x{0301}?|\x{00F3})|xt|\x{FF58}\x{FF54}|int|\x{FF49}\x{FF4E}\x{FF54}))[:.]?[\x{0020}\t,-]*(` + DigitsClass + `{1,7})#?` +
		`|[#~\x{FF03}\x{FF5E}x\x{FF58}][\x{0020}\t,-]*(` + DigitsClass + `{1,7})#?` +
		`|[-\x{0020}]+(` + DigitsClass + `{1,5})#)$`)
)

// alphaMapping maps each of the 26 letters (case-insensitive, after
// full-width folding) to its E.161 keypad digit.
var alphaMapping = buildAlphaMapping()

func buildAlphaMapping() map[rune]byte {
	groups := []struct {
		letters string
		digit   byte
	}{
		{"ABC", '2'},
		{"DEF", '3'},
		{"GHI", '4'},
		{"JKL", '5'},
		{"MNO", '6'},
		{"PQRS", '7'},
		{"TUV", '8'},
		{"WXYZ", '9'},
	}
	m := make(map[rune]byte, 52)
	for _, g := range groups {
		for _, r := range g.letters {
			m[r] = g.digit
			m[r+('a'-'A')] = g.digit
		}
	}
	return m
}

// FoldFullWidth folds full-width ASCII letters/digits to their narrow
// equivalents, using golang.org/x/text/width the same way any Unicode-aware
// text pipeline in this corpus would: once per input, before any
// case-sensitive or codepoint-range comparison.
func FoldFullWidth(s string) string {
	return width.Fold.String(s)
}

// DecomposeAccents returns the compatibility (NFKD) decomposition of s. The
// extension patterns above do not depend on it: they list the precomposed
// and decomposed forms of "anexó" themselves.
func DecomposeAccents(s string) string {
	return norm.NFKD.String(s)
}

// AlphaDigit returns the E.161 keypad digit for a letter (after full-width
// folding), and whether r is a mapped letter at all.
func AlphaDigit(r rune) (byte, bool) {
	folded := []rune(FoldFullWidth(string(r)))
	if len(folded) != 1 {
		return 0, false
	}
	d, ok := alphaMapping[folded[0]]
	return d, ok
}

// CountLetters returns the number of ASCII letters (after full-width
// folding) in s. Used to decide whether a string should be treated as an
// alphanumeric ("1-800-FLOWERS") or purely numeric input.
func CountLetters(s string) int {
	folded := FoldFullWidth(s)
	count := 0
	for _, r := range folded {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			count++
		}
	}
	return count
}
