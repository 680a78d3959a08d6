package scenes

import (
	"sync"

	cfg "github.com/automoto/windowwalker/config"
	"github.com/automoto/windowwalker/layout"
	"github.com/automoto/windowwalker/shared/motion"
	"github.com/automoto/windowwalker/systems"
	"github.com/automoto/windowwalker/systems/factory"
	"github.com/automoto/windowwalker/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// SandboxScene runs walkers over a simulated desktop in a normal window.
type SandboxScene struct {
	ecs     *ecs.ECS
	sandbox *layout.Sandbox
	sprites motion.SpriteSet[*ebiten.Image]
	watcher *cfg.Watcher
	panel   *ui.ControlPanel
	once    sync.Once
}

func NewSandboxScene(sb *layout.Sandbox, sprites motion.SpriteSet[*ebiten.Image], watcher *cfg.Watcher) *SandboxScene {
	return &SandboxScene{sandbox: sb, sprites: sprites, watcher: watcher}
}

func (ss *SandboxScene) Update() {
	ss.once.Do(ss.configure)

	if ss.panel != nil {
		x, y := ebiten.CursorPosition()
		systems.GetOrCreateSettings(ss.ecs).PointerCaptured = ss.panel.Contains(x, y)
		ss.panel.Update()
	}
	ss.ecs.Update()
}

func (ss *SandboxScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.UI.DesktopColor)

	if ss.ecs == nil {
		return
	}
	ss.ecs.Draw(screen)

	if ss.panel != nil {
		ss.panel.UI.Draw(screen)
	}
}

func (ss *SandboxScene) configure() {
	e := newWalkerECS(ss.watcher)

	desktopEntry := factory.CreateSandboxDesktop(e, ss.sandbox)
	spawnWalkers(e, desktopEntry, ss.sprites)

	ss.ecs = e
	if cfg.Debug.ShowPanel {
		ss.panel = ui.NewControlPanel(e)
	}
}
