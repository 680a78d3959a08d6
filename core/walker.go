// Package core owns a walker's current motion state and the fixed-rate loop
// that advances it.
package core

import (
	"github.com/automoto/windowwalker/shared/motion"
)

// Walker holds exactly one motion state and replaces it whole on every tick.
// It is not safe for concurrent use; callers that tick from one goroutine and
// read from another must hold their own lock.
type Walker struct {
	state  motion.State
	params motion.Params
	source motion.WindowSource

	delay int // ticks to wait before the first advance
	ticks int
}

func NewWalker(params motion.Params, source motion.WindowSource) *Walker {
	return &Walker{
		state:  motion.Start(params),
		params: params,
		source: source,
	}
}

// WithDelay holds the walker at its start state for n ticks.
func (w *Walker) WithDelay(n int) *Walker {
	w.delay = n
	return w
}

// Tick advances the walker once. On a window source error the current state
// is kept and the error is returned for the caller to log or act on.
func (w *Walker) Tick() error {
	w.ticks++
	if w.delay > 0 {
		w.delay--
		return nil
	}

	next, err := motion.Advance(w.state, w.params, w.source)
	if err != nil {
		return err
	}
	w.state = next
	return nil
}

func (w *Walker) State() motion.State   { return w.state }
func (w *Walker) Params() motion.Params { return w.params }
func (w *Walker) Ticks() int            { return w.ticks }

// SetParams takes effect on the next tick. The current position is kept.
func (w *Walker) SetParams(p motion.Params) {
	w.params = p
}

// SetSource swaps the window source, e.g. when the overlay switches
// between the real desktop and a sandbox.
func (w *Walker) SetSource(src motion.WindowSource) {
	w.source = src
}

// Reset sends the walker back to the top-right origin.
func (w *Walker) Reset() {
	w.state = motion.Start(w.params)
}
