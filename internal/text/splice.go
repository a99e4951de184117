// Package text holds the rune-indexed string helpers the mask engine is built on.
// All offsets are rune indices, never byte offsets.
package text

import "unicode/utf8"

// Len returns the number of runes in s.
func Len(s string) int {
	return utf8.RuneCountInString(s)
}

// clamp limits i to [lo, hi].
func clamp(i, lo, hi int) int {
	if i < lo {
		return lo
	}
	if i > hi {
		return hi
	}
	return i
}

// Splice replaces the runes in [start, end) of str with insert.
// start is clamped to [0, len], end to [start, len]; it never fails.
func Splice(str, insert string, start, end int) string {
	runes := []rune(str)
	start = clamp(start, 0, len(runes))
	end = clamp(end, start, len(runes))
	return string(runes[:start]) + insert + string(runes[end:])
}

// Substring returns the runes in [from, to). Both bounds are clamped to
// [0, len] and swapped when from > to.
func Substring(s string, from, to int) string {
	runes := []rune(s)
	from = clamp(from, 0, len(runes))
	to = clamp(to, 0, len(runes))
	if from > to {
		from, to = to, from
	}
	return string(runes[from:to])
}

// Head returns at most n leading runes of s.
func Head(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if n >= len(runes) {
		return s
	}
	return string(runes[:n])
}

// Reverse returns s with its runes in reverse order.
func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// IndexRune returns the rune index of the first r in s, or -1.
func IndexRune(s string, r rune) int {
	i := 0
	for _, c := range s {
		if c == r {
			return i
		}
		i++
	}
	return -1
}

// ByteOffset converts a rune index into a byte offset within s.
// Indices past the end map to len(s).
func ByteOffset(s string, runeIndex int) int {
	if runeIndex <= 0 {
		return 0
	}
	n := 0
	for offset := range s {
		if n == runeIndex {
			return offset
		}
		n++
	}
	return len(s)
}
