package viewer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClickStreakCounting(t *testing.T) {
	var s clickStreak
	now := time.Now()

	assert.Equal(t, 1, s.press(5, 5, now))
	assert.Equal(t, 2, s.press(5, 5, now.Add(100*time.Millisecond)))
	assert.Equal(t, 3, s.press(5, 5, now.Add(200*time.Millisecond)))
	assert.Equal(t, 4, s.press(5, 5, now.Add(300*time.Millisecond)), "streaks keep climbing past three")
}

func TestClickStreakResetsOnTimeout(t *testing.T) {
	var s clickStreak
	now := time.Now()

	assert.Equal(t, 1, s.press(5, 5, now))
	assert.Equal(t, 1, s.press(5, 5, now.Add(400*time.Millisecond)))
}

func TestClickStreakResetsOnDistance(t *testing.T) {
	var s clickStreak
	now := time.Now()

	assert.Equal(t, 1, s.press(5, 5, now))
	// One cell of jitter keeps the streak alive.
	assert.Equal(t, 2, s.press(6, 5, now.Add(50*time.Millisecond)))
	// Two cells away is a new streak.
	assert.Equal(t, 1, s.press(8, 5, now.Add(100*time.Millisecond)))
}
