package textselect

// boundaryRanges lists the inclusive code point ranges classified as word
// boundaries: ASCII space and punctuation plus the Latin-1 supplement
// punctuation block. The table is sorted by range start. Word selection is
// only meaningful for Latin blocks; other scripts fall through to "not a
// boundary", which makes double-click select the whole run. This is a
// documented limitation, not a defect.
var boundaryRanges = [...][2]rune{
	{0x20, 0x2F}, // space ! " # $ % & ' ( ) * + , - . /
	{0x3A, 0x40}, // : ; < = > ? @
	{0x5B, 0x60}, // [ \ ] ^ _ `
	{0x7B, 0xBF}, // { | } ~ DEL, C1 controls, Latin-1 punctuation
}

// isBoundary reports whether a code point separates words.
func isBoundary(r rune) bool {
	for _, rg := range boundaryRanges {
		if r < rg[0] {
			return false
		}
		if r <= rg[1] {
			return true
		}
	}
	return false
}
