package clipboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockRecordsCopies(t *testing.T) {
	m := &Mock{}

	require.NoError(t, m.Copy("first"))
	require.NoError(t, m.Copy("second"))

	assert.Equal(t, []string{"first", "second"}, m.Copied)
	assert.Equal(t, "second", m.Last())
}

func TestMockEmpty(t *testing.T) {
	m := &Mock{}
	assert.Equal(t, "", m.Last())
}

func TestMockError(t *testing.T) {
	m := &Mock{Err: errors.New("boom")}

	err := m.Copy("text")
	require.Error(t, err)
	assert.Empty(t, m.Copied)
}

func TestForBackend(t *testing.T) {
	assert.IsType(t, System{}, ForBackend("system"))
	assert.IsType(t, System{}, ForBackend(""))
	assert.IsType(t, &OSC52{}, ForBackend("osc52"))
	assert.IsType(t, &Mock{}, ForBackend("mock"))
}
