package textselect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestNormalizeSelection(t *testing.T) {
	tests := []struct {
		name string
		a, b CursorPos
		want Selection
	}{
		{
			name: "already ordered",
			a:    CursorPos{X: 1, Y: 0},
			b:    CursorPos{X: 2, Y: 1},
			want: Selection{StartX: 1, StartY: 0, EndX: 2, EndY: 1},
		},
		{
			name: "reversed lines",
			a:    CursorPos{X: 2, Y: 3},
			b:    CursorPos{X: 5, Y: 1},
			want: Selection{StartX: 5, StartY: 1, EndX: 2, EndY: 3},
		},
		{
			name: "same line reversed columns",
			a:    CursorPos{X: 7, Y: 2},
			b:    CursorPos{X: 3, Y: 2},
			want: Selection{StartX: 3, StartY: 2, EndX: 7, EndY: 2},
		},
		{
			name: "equal endpoints",
			a:    CursorPos{X: 4, Y: 4},
			b:    CursorPos{X: 4, Y: 4},
			want: Selection{StartX: 4, StartY: 4, EndX: 4, EndY: 4},
		},
		{
			name: "upward drag keeps column pairing",
			a:    CursorPos{X: 0, Y: 5},
			b:    CursorPos{X: 9, Y: 0},
			want: Selection{StartX: 9, StartY: 0, EndX: 0, EndY: 5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeSelection(tt.a, tt.b))
			assert.Equal(t, tt.want, normalizeSelection(tt.b, tt.a), "normalization is symmetric")
		})
	}
}

func TestNormalizeSelectionProperties(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		a := CursorPos{
			X: rapid.IntRange(0, 200).Draw(rt, "aX"),
			Y: rapid.IntRange(0, 200).Draw(rt, "aY"),
		}
		b := CursorPos{
			X: rapid.IntRange(0, 200).Draw(rt, "bX"),
			Y: rapid.IntRange(0, 200).Draw(rt, "bY"),
		}

		sel := normalizeSelection(a, b)

		assert.LessOrEqual(rt, sel.StartY, sel.EndY)
		if sel.StartY == sel.EndY {
			assert.LessOrEqual(rt, sel.StartX, sel.EndX)
		}
		assert.Equal(rt, sel, normalizeSelection(b, a))
	})
}
