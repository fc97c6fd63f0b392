// Package extraction turns decoded edital text into document requirements,
// technical line items and a summary analysis.
package extraction

import (
	"strings"
	"unicode/utf8"
)

// window returns the text around byte offset at, spanning before characters
// to the left and after characters to the right, clipped to the text bounds.
func window(text string, at, before, after int) string {
	lo := at
	for i := 0; i < before && lo > 0; i++ {
		_, size := utf8.DecodeLastRuneInString(text[:lo])
		lo -= size
	}
	hi := at
	for i := 0; i < after && hi < len(text); i++ {
		_, size := utf8.DecodeRuneInString(text[hi:])
		hi += size
	}
	return text[lo:hi]
}

// prefix returns the first n characters of s.
func prefix(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

func length(s string) int {
	return utf8.RuneCountInString(s)
}

func containsAny(s string, terms ...string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}
