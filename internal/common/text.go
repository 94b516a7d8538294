package common

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// IndexWholeWord returns the byte index of the first occurrence of
// phrase in text where both ends fall on ASCII word boundaries, or -1
// if there is none. Both arguments are expected to be lowercase.
func IndexWholeWord(text, phrase string) int {
	if phrase == "" {
		return -1
	}

	start := 0
	for {
		idx := strings.Index(text[start:], phrase)
		if idx < 0 {
			return -1
		}
		idx += start

		if boundaryAt(text, idx-1) && boundaryAt(text, idx+len(phrase)) {
			return idx
		}
		start = idx + 1
	}
}

// ContainsWholeWord reports whether phrase occurs in text at a word
// boundary.
func ContainsWholeWord(text, phrase string) bool {
	return IndexWholeWord(text, phrase) >= 0
}

// boundaryAt reports whether position i is outside text or holds a
// non-word byte.
func boundaryAt(text string, i int) bool {
	if i < 0 || i >= len(text) {
		return true
	}
	return !isWordByte(text[i])
}

// isWordByte mirrors regexp \w boundary semantics for ASCII.
func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' ||
		b >= 'A' && b <= 'Z' ||
		b >= '0' && b <= '9' ||
		b == '_'
}

// Title returns the text title-cased word by word ("canned tuna" →
// "Canned Tuna").
func Title(text string) string {
	return cases.Title(language.English).String(text)
}
