package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/windowwalker/assets"
	"github.com/automoto/windowwalker/config"
	"github.com/automoto/windowwalker/desktop"
	"github.com/automoto/windowwalker/fonts"
	"github.com/automoto/windowwalker/layout"
	"github.com/automoto/windowwalker/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	sandbox := flag.Bool("sandbox", false, "walk over a simulated desktop instead of the real one")
	layoutPath := flag.String("layout", "", "Tiled .tmx sandbox layout (default: built-in)")
	configPath := flag.String("config", "", "YAML config file, reloaded on change")
	debug := flag.Bool("debug", false, "outline windows and show walker state")
	walkers := flag.Int("walkers", 0, "number of walkers (overrides config)")
	sprites := flag.String("sprites", "", "directory with walk-1.png..walk-6.png and fall.png")
	flag.Parse()

	var watcher *config.Watcher
	if *configPath != "" {
		if err := config.Load(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		w, err := config.NewWatcher(*configPath)
		if err != nil {
			log.Printf("Warning: config changes will not be reloaded: %v", err)
		} else {
			watcher = w
		}
	}

	if *debug {
		config.Debug.Enabled = true
	}
	if *walkers > 0 {
		config.Walker.Count = *walkers
	}
	if *sprites != "" {
		config.Walker.SpriteDir = *sprites
	}
	if *layoutPath != "" {
		config.Sandbox.Layout = *layoutPath
	}

	if err := fonts.LoadDefaults(config.UI.HUDFontSize, config.UI.DebugFontSize); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	frames, err := assets.LoadWalkerSprites(config.Walker.SpriteDir, config.Walker.FrameWidth, config.Walker.FrameHeight)
	if err != nil {
		log.Fatalf("Failed to load sprites: %v", err)
	}

	g := &Game{}
	options := &ebiten.RunGameOptions{}

	if *sandbox {
		sb, err := layout.LoadFile(config.Sandbox.Layout)
		if err != nil {
			log.Fatalf("Failed to load sandbox layout: %v", err)
		}
		bounds, _ := sb.Bounds()
		config.C.Width, config.C.Height = int(bounds.Width), int(bounds.Height)

		ebiten.SetWindowTitle(config.Overlay.Title + " sandbox")
		ebiten.SetWindowSize(config.C.Width, config.C.Height)
		g.scene = scenes.NewSandboxScene(sb, frames, watcher)
	} else {
		// The overlay hides itself from enumeration by its title.
		exclude := append([]string{config.Overlay.Title}, config.Overlay.ExcludeTitles...)
		provider, err := desktop.New(exclude...)
		if err != nil {
			log.Fatalf("Failed to open desktop: %v (try -sandbox)", err)
		}
		bounds, err := provider.Bounds()
		if err != nil {
			log.Fatalf("Failed to read desktop bounds: %v", err)
		}
		config.C.Width, config.C.Height = int(bounds.Width), int(bounds.Height)

		ebiten.SetWindowTitle(config.Overlay.Title)
		ebiten.SetWindowDecorated(false)
		ebiten.SetWindowFloating(true)
		ebiten.SetWindowMousePassthrough(true)
		ebiten.SetWindowSize(config.C.Width, config.C.Height)
		ebiten.SetWindowPosition(int(bounds.X), int(bounds.Y))
		options.ScreenTransparent = true
		g.scene = scenes.NewOverlayScene(provider, frames, watcher)
	}

	if err := ebiten.RunGameWithOptions(g, options); err != nil {
		log.Fatal(err)
	}
}
