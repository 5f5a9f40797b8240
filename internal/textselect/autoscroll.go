package textselect

import (
	"math"
	"time"
)

const (
	// autoscrollSpeed scales the per-second scroll rate by the pointer's
	// distance outside the bounds.
	autoscrollSpeed = 10.0

	// autoscrollMaxDelta caps the effective out-of-bounds distance so a far
	// pointer cannot scroll arbitrarily fast.
	autoscrollMaxDelta = 100.0
)

// scrollDelta returns the scroll amount for one axis. Zero inside
// [min, max]; outside, proportional to the overshoot, capped at
// autoscrollMaxDelta, and scaled by the frame delta time.
func scrollDelta(v, min, max float64, dt time.Duration) float64 {
	scale := autoscrollSpeed * dt.Seconds()

	if v < min {
		return math.Max(-(min-v), -autoscrollMaxDelta) * scale
	}
	if v > max {
		return math.Min(v-max, autoscrollMaxDelta) * scale
	}
	return 0
}

// handleScrolling scrolls the view while a drag continues outside the
// visible bounds. Suppressed when this view is not the active pointer
// target or the user is operating a scrollbar.
func (ts *TextSelect) handleScrolling(host Host) {
	if !host.ActiveTarget() || host.ScrollbarActive() {
		return
	}

	bounds := host.Bounds()
	mouseX, mouseY := host.MousePosition()
	dt := host.DeltaTime()

	deltaX := scrollDelta(float64(mouseX), float64(bounds.MinX), float64(bounds.MaxX), dt)
	deltaY := scrollDelta(float64(mouseY), float64(bounds.MinY), float64(bounds.MaxY), dt)

	if deltaX == 0 && deltaY == 0 {
		return
	}

	scrollX, scrollY := host.Scroll()
	host.SetScroll(scrollX+deltaX, scrollY+deltaY)
}
