package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// PlainText returns s in NFC form with ANSI escape sequences and control
// characters removed. Newlines and tabs collapse to single spaces; runs of
// whitespace are otherwise preserved.
func PlainText(s string) string {
	if s == "" {
		return ""
	}
	s = norm.NFC.String(stripEscapes(s))
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\n' || r == '\r' || r == '\t':
			b.WriteByte(' ')
		case unicode.IsControl(r):
		case r == unicode.ReplacementChar:
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// stripEscapes removes CSI (ESC [ ... final) and OSC (ESC ] ... BEL or ST)
// sequences. A lone ESC is dropped.
func stripEscapes(s string) string {
	if !strings.ContainsRune(s, 0x1b) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != 0x1b {
			b.WriteByte(c)
			continue
		}
		if i+1 >= len(s) {
			break
		}
		switch s[i+1] {
		case '[':
			j := i + 2
			for j < len(s) && (s[j] < 0x40 || s[j] > 0x7e) {
				j++
			}
			i = j
		case ']':
			j := i + 2
			for j < len(s) {
				if s[j] == 0x07 {
					break
				}
				if s[j] == 0x1b && j+1 < len(s) && s[j+1] == '\\' {
					j++
					break
				}
				j++
			}
			i = j
		default:
			i++
		}
	}
	return b.String()
}
