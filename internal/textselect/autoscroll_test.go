package textselect

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScrollDelta(t *testing.T) {
	second := time.Second

	assert.Zero(t, scrollDelta(10, 0, 24, second), "inside bounds")
	assert.Zero(t, scrollDelta(0, 0, 24, second), "on the lower edge")
	assert.Zero(t, scrollDelta(24, 0, 24, second), "on the upper edge")

	assert.InDelta(t, -50.0, scrollDelta(-5, 0, 24, second), 1e-9, "proportional below the bounds")
	assert.InDelta(t, 30.0, scrollDelta(27, 0, 24, second), 1e-9, "proportional above the bounds")

	assert.InDelta(t, -1000.0, scrollDelta(-500, 0, 24, second), 1e-9, "capped below")
	assert.InDelta(t, 1000.0, scrollDelta(900, 0, 24, second), 1e-9, "capped above")

	// Half the frame time, half the delta.
	assert.InDelta(t, -25.0, scrollDelta(-5, 0, 24, 500*time.Millisecond), 1e-9)
}

func TestHandleScrollingDragBelowBounds(t *testing.T) {
	ts := New(fakeLines{lines: []string{"aaa", "bbb", "ccc"}})
	h := newFakeHost()
	h.bounds = Rect{MinX: 0, MinY: 0, MaxX: 10, MaxY: 3}
	h.dt = time.Second

	h.press(ts, 1, 1, 1)

	// Drag past the bottom edge: the view scrolls down while the pointer is
	// outside and the drag continues.
	h.hovered = false
	h.drag(ts, 1, 5)

	_, scrollY := h.Scroll()
	assert.InDelta(t, 20.0, scrollY, 1e-9)
}

func TestHandleScrollingSuppressed(t *testing.T) {
	ts := New(fakeLines{lines: []string{"aaa"}})

	h := newFakeHost()
	h.dt = time.Second
	h.bounds = Rect{MinX: 0, MinY: 0, MaxX: 10, MaxY: 1}
	h.press(ts, 1, 0, 1)

	h.hovered = false
	h.activeTarget = false
	h.drag(ts, 1, 5)
	_, scrollY := h.Scroll()
	assert.Zero(t, scrollY, "no autoscroll when another view owns the pointer")

	h.activeTarget = true
	h.scrollbarActive = true
	h.drag(ts, 1, 5)
	_, scrollY = h.Scroll()
	assert.Zero(t, scrollY, "no autoscroll while a scrollbar is engaged")
}

func TestNoScrollWhileHovered(t *testing.T) {
	ts := New(fakeLines{lines: []string{"aaa"}})
	h := newFakeHost()
	h.dt = time.Second

	h.press(ts, 1, 0, 1)
	h.drag(ts, 2, 0)

	scrollX, scrollY := h.Scroll()
	assert.Zero(t, scrollX)
	assert.Zero(t, scrollY)
}
