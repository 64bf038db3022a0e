package observe

import (
	"testing"
	"time"
)

func TestObserveDeliversOnce(t *testing.T) {
	o := NewObserver()
	calls := 0
	sub := o.Observe("stats", func(string) { calls++ })

	if n := o.Intersect("other"); n != 0 {
		t.Fatalf("unexpected delivery to unrelated target: %d", n)
	}
	if n := o.Intersect("stats"); n != 1 {
		t.Fatalf("expected one delivery, got %d", n)
	}
	o.Intersect("stats")
	o.Intersect("stats")
	if calls != 1 {
		t.Fatalf("expected callback once, got %d", calls)
	}
	if !sub.Delivered() {
		t.Fatal("subscription should report delivery")
	}
	if o.Pending("stats") != 0 {
		t.Fatal("subscription should be deregistered after delivery")
	}
}

func TestCancelBeforeDelivery(t *testing.T) {
	o := NewObserver()
	calls := 0
	keep := o.Observe("bar", func(string) { calls++ })
	drop := o.Observe("bar", func(string) { calls += 10 })
	drop.Cancel()
	if o.Pending("bar") != 1 {
		t.Fatalf("expected 1 pending, got %d", o.Pending("bar"))
	}
	o.Intersect("bar")
	if calls != 1 || !keep.Delivered() || drop.Delivered() {
		t.Fatalf("unexpected delivery state: calls=%d", calls)
	}
	keep.Cancel()
}

func TestCounterRunsToCompletion(t *testing.T) {
	var q FrameQueue
	var values []float64
	Counter{From: 0, To: 150, Duration: 100 * time.Millisecond}.Start(&q, func(v float64) {
		values = append(values, v)
	})

	frames := 0
	for q.Advance(16 * time.Millisecond) {
		frames++
		if frames > 100 {
			t.Fatal("counter did not terminate")
		}
	}
	if len(values) < 2 {
		t.Fatalf("expected several frames, got %v", values)
	}
	if values[len(values)-1] != 150 {
		t.Fatalf("expected final value 150, got %v", values[len(values)-1])
	}
	for i := 1; i < len(values); i++ {
		if values[i] < values[i-1] {
			t.Fatalf("counter moved backwards: %v", values)
		}
	}
	if !q.Idle() {
		t.Fatal("expected empty queue after completion")
	}
}

func TestCounterZeroDuration(t *testing.T) {
	var q FrameQueue
	var last float64
	Counter{From: 5, To: 42}.Start(&q, func(v float64) { last = v })
	if q.Advance(time.Millisecond) {
		t.Fatal("zero duration counter should finish in one frame")
	}
	if last != 42 {
		t.Fatalf("expected 42, got %v", last)
	}
}

func TestEaseOutQuartBounds(t *testing.T) {
	if EaseOutQuart(0) != 0 || EaseOutQuart(1) != 1 {
		t.Fatal("ease must map 0->0 and 1->1")
	}
	prev := 0.0
	for i := 1; i <= 100; i++ {
		v := EaseOutQuart(float64(i) / 100)
		if v < prev {
			t.Fatalf("ease not monotonic at %d", i)
		}
		prev = v
	}
}
