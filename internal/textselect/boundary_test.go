package textselect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsBoundary(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want bool
	}{
		{name: "space", r: ' ', want: true},
		{name: "comma", r: ',', want: true},
		{name: "slash", r: '/', want: true},
		{name: "colon", r: ':', want: true},
		{name: "at sign", r: '@', want: true},
		{name: "bracket", r: '[', want: true},
		{name: "underscore", r: '_', want: true},
		{name: "brace", r: '{', want: true},
		{name: "tilde", r: '~', want: true},
		{name: "inverted question mark", r: 0xBF, want: true},
		{name: "digit", r: '7', want: false},
		{name: "lowercase letter", r: 'g', want: false},
		{name: "uppercase letter", r: 'Z', want: false},
		{name: "control char", r: 0x19, want: false},
		{name: "latin capital A grave", r: 0xC0, want: false},
		{name: "cjk", r: '日', want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isBoundary(tt.r))
		})
	}
}
