package app

import (
	"fmt"
	"time"
)

// FrameTimer measures frame time and counts frames per second. The clock
// returns a monotonic time since an arbitrary origin.
type FrameTimer struct {
	clock  func() time.Duration
	start  time.Duration
	last   time.Duration
	second time.Duration
	frames int
}

// NewFrameTimer creates a timer. A nil clock uses the wall clock.
func NewFrameTimer(clock func() time.Duration) *FrameTimer {
	if clock == nil {
		origin := time.Now()
		clock = func() time.Duration { return time.Since(origin) }
	}
	t := &FrameTimer{clock: clock}
	t.second = clock()
	return t
}

// Start marks the beginning of a frame.
func (t *FrameTimer) Start() { t.start = t.clock() }

// Stop marks the end of a frame and returns its duration.
func (t *FrameTimer) Stop() time.Duration {
	t.last = t.clock() - t.start
	t.frames++
	return t.last
}

// Last returns the duration of the last completed frame.
func (t *FrameTimer) Last() time.Duration { return t.last }

// Title formats the window title for the last frame time and fps.
func (t *FrameTimer) Title(fps int) string {
	return fmt.Sprintf("frametime: %.3f ms fps: %d", float64(t.last)/float64(time.Millisecond), fps)
}

// Tick returns a new title once at least a second has passed since the
// previous one, counting the frames completed in between.
func (t *FrameTimer) Tick() (string, bool) {
	now := t.clock()
	if now-t.second < time.Second {
		return "", false
	}
	title := t.Title(t.frames)
	t.frames = 0
	t.second = now
	return title, true
}
