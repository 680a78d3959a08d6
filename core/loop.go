package core

import (
	"context"
	"log"
	"math"
	"sync"
	"time"
)

// DefaultTickInterval is the pace of the walk animation.
const DefaultTickInterval = 150 * time.Millisecond

// TickFunc runs once per loop tick. A returned error is logged and the loop
// carries on with the next tick.
type TickFunc func() error

// TickLoop calls its tick functions at a fixed rate until stopped.
type TickLoop struct {
	interval time.Duration
	onTick   []TickFunc

	stopOnce sync.Once
	stopChan chan struct{}
}

func NewTickLoop(interval time.Duration, onTick ...TickFunc) *TickLoop {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &TickLoop{
		interval: interval,
		onTick:   onTick,
		stopChan: make(chan struct{}),
	}
}

// OnTick registers another tick function. It must be called before Run.
func (l *TickLoop) OnTick(f TickFunc) {
	l.onTick = append(l.onTick, f)
}

func (l *TickLoop) Interval() time.Duration {
	return l.interval
}

// Run blocks until ctx is done or Stop is called.
func (l *TickLoop) Run(ctx context.Context) {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	log.Printf("[loop] started, tick every %v", l.interval)

	for {
		select {
		case <-ctx.Done():
			log.Println("[loop] stopped:", ctx.Err())
			return
		case <-l.stopChan:
			log.Println("[loop] stopped")
			return
		case <-ticker.C:
			l.tick()
		}
	}
}

func (l *TickLoop) Stop() {
	l.stopOnce.Do(func() { close(l.stopChan) })
}

func (l *TickLoop) tick() {
	for _, f := range l.onTick {
		if err := f(); err != nil {
			log.Printf("[loop] tick skipped: %v", err)
		}
	}
}

// FramesPerTick converts a tick interval into a whole number of frames at
// tps frames per second, never less than one.
func FramesPerTick(interval time.Duration, tps int) int {
	n := int(math.Round(interval.Seconds() * float64(tps)))
	if n < 1 {
		return 1
	}
	return n
}
