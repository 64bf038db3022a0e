package observe

import (
	"math"
	"time"
)

// Scheduler runs a callback on the next frame, passing the time elapsed since
// the scheduler started.
type Scheduler interface {
	RequestFrame(fn func(now time.Duration))
}

// EaseOutQuart decelerates toward the end of the animation.
func EaseOutQuart(t float64) float64 {
	return 1 - math.Pow(1-t, 4)
}

// Counter animates a number from From to To over Duration.
type Counter struct {
	From     float64
	To       float64
	Duration time.Duration
	Ease     func(float64) float64
}

// Start schedules the counter's frames. Each frame reports the current value
// and reschedules itself until the final frame, which reports exactly To.
// There is no cancellation; the loop always runs to completion.
func (c Counter) Start(s Scheduler, onFrame func(value float64)) {
	ease := c.Ease
	if ease == nil {
		ease = EaseOutQuart
	}
	start := time.Duration(-1)
	var step func(now time.Duration)
	step = func(now time.Duration) {
		if start < 0 {
			start = now
		}
		progress := 1.0
		if c.Duration > 0 {
			progress = math.Min(float64(now-start)/float64(c.Duration), 1)
		}
		if progress >= 1 {
			onFrame(c.To)
			return
		}
		onFrame(c.From + (c.To-c.From)*ease(progress))
		s.RequestFrame(step)
	}
	s.RequestFrame(step)
}

// FrameQueue is a Scheduler advanced explicitly, one frame at a time.
type FrameQueue struct {
	now     time.Duration
	pending []func(time.Duration)
}

// RequestFrame queues fn for the next Advance.
func (q *FrameQueue) RequestFrame(fn func(now time.Duration)) {
	q.pending = append(q.pending, fn)
}

// Advance moves the clock by dt and runs the frames queued before the call.
// It reports whether more frames are waiting.
func (q *FrameQueue) Advance(dt time.Duration) bool {
	q.now += dt
	batch := q.pending
	q.pending = nil
	for _, fn := range batch {
		fn(q.now)
	}
	return len(q.pending) > 0
}

// Idle reports whether no frames are queued.
func (q *FrameQueue) Idle() bool { return len(q.pending) == 0 }
