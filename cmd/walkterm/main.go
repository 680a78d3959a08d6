// Command walkterm runs the window walker over a sandbox layout in a
// terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"github.com/automoto/windowwalker/config"
	"github.com/automoto/windowwalker/core"
	"github.com/automoto/windowwalker/desktop"
	"github.com/automoto/windowwalker/layout"
	"github.com/automoto/windowwalker/shared/motion"
	"github.com/automoto/windowwalker/shared/present"
	"github.com/gdamore/tcell/v2"
)

// Walk frames alternate the stride; the fall frame has its arms up.
var runeSprites = motion.NewSpriteSet([motion.WalkFrameCount]rune{'λ', 'ʎ', 'λ', 'ʎ', 'λ', 'ʎ'}, 'Y')

type app struct {
	mu      sync.Mutex
	screen  tcell.Screen
	view    *view
	sandbox *layout.Sandbox
	walkers []*core.Walker
	paused  bool
	dt      float32
}

func newApp(screen tcell.Screen, sb *layout.Sandbox, cellW, cellH float64) *app {
	bounds, _ := sb.Bounds()
	params := config.Walker.Params(desktop.Origin(bounds))

	a := &app{
		screen:  screen,
		view:    newView(screen, bounds, cellW, cellH),
		sandbox: sb,
		dt:      float32(config.Walker.TickInterval.Seconds()),
	}
	for i := 0; i < config.Walker.Count; i++ {
		a.walkers = append(a.walkers, core.NewWalker(params, sb).WithDelay(i*config.Walker.StaggerTicks))
	}
	return a
}

// tick advances the sandbox and every walker, then redraws.
func (a *app) tick() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	var firstErr error
	if !a.paused {
		a.sandbox.Update(a.dt)
		for _, w := range a.walkers {
			if err := w.Tick(); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	a.draw()
	return firstErr
}

func (a *app) draw() {
	a.screen.Clear()
	a.view.drawWindows(a.sandbox.Windows())
	for _, w := range a.walkers {
		present.Show[rune](a.view, runeSprites, w.State(), float64(config.Walker.FrameWidth), float64(config.Walker.FrameHeight))
	}

	status := "q quit  space pause  r reset  click toggles a window"
	if a.paused {
		status = "PAUSED  " + status
	}
	if len(a.walkers) > 0 {
		status += fmt.Sprintf("  |  %v", a.walkers[0].State())
	}
	_, h := a.screen.Size()
	a.view.drawText(0, h-1, status, statusStyle)
	a.screen.Show()
}

// handle applies one terminal event. It reports false when the app should exit.
func (a *app) handle(ev tcell.Event) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC, ev.Rune() == 'q':
			return false
		case ev.Rune() == ' ':
			a.paused = !a.paused
		case ev.Rune() == 'r':
			for _, w := range a.walkers {
				w.Reset()
			}
		}
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 {
			col, row := ev.Position()
			p := a.view.toDesktop(col, row)
			a.sandbox.Toggle(p.X, p.Y)
		}
	case *tcell.EventResize:
		a.screen.Sync()
	}
	a.draw()
	return true
}

func main() {
	layoutPath := flag.String("layout", "", "Tiled .tmx sandbox layout (default: built-in)")
	configPath := flag.String("config", "", "YAML config file")
	cellW := flag.Float64("cell-width", 8, "desktop pixels per terminal column")
	cellH := flag.Float64("cell-height", 16, "desktop pixels per terminal row")
	logPath := flag.String("log", "", "write logs to this file instead of discarding them")
	flag.Parse()

	if *configPath != "" {
		if err := config.Load(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *layoutPath != "" {
		config.Sandbox.Layout = *layoutPath
	}

	sb, err := layout.LoadFile(config.Sandbox.Layout)
	if err != nil {
		log.Fatalf("Failed to load sandbox layout: %v", err)
	}

	// The terminal belongs to tcell from here on.
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		panic(err)
	}
	if err := screen.Init(); err != nil {
		panic(err)
	}
	defer screen.Fini()

	screen.SetStyle(tcell.StyleDefault.
		Background(tcell.ColorDefault).
		Foreground(tcell.ColorWhite))
	screen.EnableMouse()
	screen.Clear()

	a := newApp(screen, sb, *cellW, *cellH)
	loop := core.NewTickLoop(config.Walker.TickInterval, a.tick)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		defer cancel()
		for {
			ev := screen.PollEvent()
			if ev == nil || !a.handle(ev) {
				return
			}
		}
	}()

	loop.Run(ctx)
}
