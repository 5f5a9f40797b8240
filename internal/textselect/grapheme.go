// This file provides grapheme cluster helpers for Unicode-aware selection.
//
// Selection endpoints index grapheme clusters, not bytes: a cluster is the
// unit a user perceives as one character and may span several code points
// (e.g. "e" + combining accent). Slicing on cluster boundaries guarantees a
// multi-byte UTF-8 sequence is never split. Display widths are measured in
// terminal cells (ASCII = 1, emoji and CJK = 2).
package textselect

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// GraphemeCount returns the number of grapheme clusters in a string.
func GraphemeCount(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// GraphemeAt returns the grapheme cluster at the given grapheme index.
// Returns "" if the index is out of bounds or negative.
func GraphemeAt(s string, graphemeIdx int) string {
	if graphemeIdx < 0 {
		return ""
	}

	idx := 0
	state := -1
	for len(s) > 0 {
		cluster, rest, _, newState := uniseg.StepString(s, state)
		if idx == graphemeIdx {
			return cluster
		}
		idx++
		s = rest
		state = newState
	}
	return ""
}

// GraphemeToByteOffset converts a grapheme index to a byte offset.
// Returns len(s) if graphemeIdx >= the grapheme count, 0 if graphemeIdx <= 0.
func GraphemeToByteOffset(s string, graphemeIdx int) int {
	if graphemeIdx <= 0 {
		return 0
	}

	idx := 0
	state := -1
	original := s
	for len(s) > 0 {
		_, rest, _, newState := uniseg.StepString(s, state)
		idx++
		if idx == graphemeIdx {
			return len(original) - len(rest)
		}
		s = rest
		state = newState
	}
	return len(original)
}

// SliceByGraphemes returns a substring from grapheme index start to end
// (exclusive). Similar to s[start:end] but grapheme-aware. Returns "" for
// invalid ranges.
func SliceByGraphemes(s string, start, end int) string {
	if start < 0 {
		start = 0
	}
	if end < start {
		return ""
	}

	startByte := GraphemeToByteOffset(s, start)
	endByte := GraphemeToByteOffset(s, end)

	if startByte >= len(s) {
		return ""
	}
	if endByte > len(s) {
		endByte = len(s)
	}

	return s[startByte:endByte]
}

// StringDisplayWidth returns the display width of a string in terminal
// cells. This is the default text-measurement primitive for terminal hosts.
func StringDisplayWidth(s string) int {
	return runewidth.StringWidth(s)
}

// nextGrapheme splits off the first grapheme cluster of s.
func nextGrapheme(s string) (cluster, rest string) {
	cluster, rest, _, _ = uniseg.StepString(s, -1)
	return cluster, rest
}

// firstRune returns the leading code point of a grapheme cluster.
// Classification of a cluster (word vs. boundary) is based on its base
// character.
func firstRune(cluster string) rune {
	for _, r := range cluster {
		return r
	}
	return 0
}
