package core

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestTickLoopRunsUntilCancelled(t *testing.T) {
	var count atomic.Int32
	loop := NewTickLoop(time.Millisecond, func() error {
		count.Add(1)
		return nil
	})
	loop.OnTick(func() error { return errors.New("logged and ignored") })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		loop.Run(ctx)
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for count.Load() < 3 {
		select {
		case <-deadline:
			t.Fatal("loop did not tick")
		case <-time.After(time.Millisecond):
		}
	}
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not stop on cancel")
	}
}

func TestTickLoopStop(t *testing.T) {
	loop := NewTickLoop(time.Hour)
	done := make(chan struct{})
	go func() {
		loop.Run(context.Background())
		close(done)
	}()

	loop.Stop()
	loop.Stop()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not stop")
	}
}

func TestDefaultInterval(t *testing.T) {
	if got := NewTickLoop(0).Interval(); got != DefaultTickInterval {
		t.Fatalf("got %v, want %v", got, DefaultTickInterval)
	}
}

func TestFramesPerTick(t *testing.T) {
	cases := []struct {
		name     string
		interval time.Duration
		tps      int
		want     int
	}{
		{"default_at_60", DefaultTickInterval, 60, 9},
		{"one_second", time.Second, 60, 60},
		{"faster_than_frame", time.Millisecond, 60, 1},
		{"zero", 0, 60, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := FramesPerTick(c.interval, c.tps); got != c.want {
				t.Fatalf("got %d, want %d", got, c.want)
			}
		})
	}
}
