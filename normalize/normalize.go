package normalize

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/abitofhelp/phonenumber/internal/patterns"
)

// MinLengthForNSN is the minimum number of digits a national significant
// number may have.
const MinLengthForNSN = 3

// IsViablePhoneNumber reports whether s syntactically could be a phone
// number: at least 3 runes, and a match against the compiled viable-phone
// pattern.
func IsViablePhoneNumber(s string) bool {
	if utf8.RuneCountInString(s) < MinLengthForNSN {
		return false
	}
	return patterns.Viable.MatchString(s)
}

// Normalize cleans s into a pure-ASCII digit string. If s contains at least
// three letters it is treated as an alphanumeric number ("1-800-FLOWERS")
// and each letter is mapped to its E.161 keypad digit; characters that are
// neither digits nor mapped letters are dropped. Otherwise Normalize
// degrades to NormalizeDigitsOnly.
//
// The result is idempotent: normalizing an already-normalized string
// returns it unchanged.
func Normalize(s string) string {
	if patterns.CountLetters(s) >= MinLengthForNSN {
		return normalizeAlpha(s)
	}
	return NormalizeDigitsOnly(s)
}

func normalizeAlpha(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if d, ok := digitValue(r); ok {
			b.WriteByte('0' + byte(d))
			continue
		}
		if d, ok := patterns.AlphaDigit(r); ok {
			b.WriteByte(d)
			continue
		}
		// Not a digit or mapped letter: dropped, per the "stripped" rule.
	}
	return b.String()
}

// NormalizeDigitsOnly keeps only characters with a Unicode decimal-digit
// value, folding each to its ASCII digit equivalent. It covers full-width
// ASCII digits, Arabic-Indic digits, and Extended Arabic-Indic digits, among
// every other Unicode decimal-digit block.
func NormalizeDigitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if d, ok := digitValue(r); ok {
			b.WriteByte('0' + byte(d))
		}
	}
	return b.String()
}

// digitValue returns the decimal value of r if it belongs to the Unicode
// Nd (decimal number) category, and whether r is such a digit at all. Every
// Nd block is a contiguous run of ten codepoints for 0 through 9, so the
// value is the offset from the start of whichever block contains r.
func digitValue(r rune) (int, bool) {
	if !unicode.Is(unicode.Nd, r) {
		return 0, false
	}
	for _, rng := range unicode.Nd.R16 {
		if uint16(r) >= rng.Lo && uint16(r) <= rng.Hi {
			return int((uint16(r) - rng.Lo) % 10), true
		}
	}
	for _, rng := range unicode.Nd.R32 {
		if uint32(r) >= rng.Lo && uint32(r) <= rng.Hi {
			return int((uint32(r) - rng.Lo) % 10), true
		}
	}
	return 0, false
}

// MaybeStripExtension looks for a trailing extension introducer in s. If
// one is found and the text preceding it is itself a viable phone number,
// it returns the preceding text and the extension digits separately.
// Otherwise it returns s unchanged and an empty extension.
func MaybeStripExtension(s string) (remainder string, extension string) {
	loc := patterns.ExtnParsing.FindStringSubmatchIndex(s)
	if loc == nil {
		return s, ""
	}

	ext := firstNonEmptyGroup(s, loc)
	if ext == "" {
		return s, ""
	}

	head := s[:loc[0]]
	if !IsViablePhoneNumber(head) {
		return s, ""
	}
	return head, ext
}

func firstNonEmptyGroup(s string, loc []int) string {
	for i := 1; i < len(loc)/2; i++ {
		start, end := loc[2*i], loc[2*i+1]
		if start >= 0 && end > start {
			return s[start:end]
		}
	}
	return ""
}
