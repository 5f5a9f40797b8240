package viewer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSliceByDisplayCols(t *testing.T) {
	tests := []struct {
		name     string
		s        string
		start    int
		end      int
		expected string
	}{
		{name: "ascii middle", s: "hello world", start: 2, end: 7, expected: "llo w"},
		{name: "full string", s: "abc", start: 0, end: 3, expected: "abc"},
		{name: "empty range", s: "abc", start: 2, end: 2, expected: ""},
		{name: "empty string", s: "", start: 0, end: 5, expected: ""},
		{name: "wide chars", s: "日本語", start: 0, end: 4, expected: "日本"},
		{name: "wide char partial overlap", s: "日本語", start: 1, end: 3, expected: "日本"},
		{name: "past end", s: "ab", start: 0, end: 10, expected: "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sliceByDisplayCols(tt.s, tt.start, tt.end))
		})
	}
}

func TestSliceFromDisplayCol(t *testing.T) {
	assert.Equal(t, "hello", sliceFromDisplayCol("hello", 0))
	assert.Equal(t, "llo", sliceFromDisplayCol("hello", 2))
	assert.Equal(t, "", sliceFromDisplayCol("hello", 10))
	assert.Equal(t, "語", sliceFromDisplayCol("日本語", 4))
}

func TestSliceToDisplayCol(t *testing.T) {
	assert.Equal(t, "", sliceToDisplayCol("hello", 0))
	assert.Equal(t, "he", sliceToDisplayCol("hello", 2))
	assert.Equal(t, "hello", sliceToDisplayCol("hello", 10))
	// A wide char that straddles the cut is excluded.
	assert.Equal(t, "日", sliceToDisplayCol("日本語", 3))
}

func TestHighlightSpanCoversText(t *testing.T) {
	out := highlightSpan("hello", 1, 4)
	// Styling aside, all the text must survive the split.
	assert.Contains(t, out, "h")
	assert.Contains(t, out, "ell")
	assert.Contains(t, out, "o")
}

func TestHighlightSpanPadsNewlineCell(t *testing.T) {
	// Span one column past the end of the text: the newline cell is shown
	// as a highlighted space.
	out := highlightSpan("ab", 0, 3)
	assert.Contains(t, out, "ab ")
}

func TestHighlightSpanEmptyRange(t *testing.T) {
	out := highlightSpan("hello", 3, 3)
	assert.Contains(t, out, "hello")
}
