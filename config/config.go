package config

import (
	"image/color"
	"time"

	"github.com/automoto/windowwalker/shared/geom"
	"github.com/automoto/windowwalker/shared/motion"
)

// WalkerConfig tunes every walker. Distances are pixels per motion tick.
type WalkerConfig struct {
	// Motion
	WalkStep   float64 `yaml:"walk_step"`
	FallDrift  float64 `yaml:"fall_drift"`
	FallAccel  float64 `yaml:"fall_accel"`
	OffscreenX float64 `yaml:"offscreen_x"` // wrap threshold, left of the screen edge

	// Timing
	TickInterval time.Duration `yaml:"tick_interval"`

	// Dimensions
	FrameWidth  int `yaml:"frame_width"`
	FrameHeight int `yaml:"frame_height"`

	// Crowd
	Count        int `yaml:"count"`
	StaggerTicks int `yaml:"stagger_ticks"` // delay between consecutive walkers

	// Directory of walk-1.png..walk-6.png and fall.png; empty draws built-in frames
	SpriteDir string `yaml:"sprite_dir"`
}

// Params converts the tuning into state machine parameters.
func (w WalkerConfig) Params(origin geom.Point) motion.Params {
	return motion.Params{
		WalkStep:   w.WalkStep,
		FallDrift:  w.FallDrift,
		FallAccel:  w.FallAccel,
		OffscreenX: w.OffscreenX,
		Origin:     origin,
	}
}

// OverlayConfig contains the transparent desktop overlay settings
type OverlayConfig struct {
	Title         string   `yaml:"title"`
	ExcludeTitles []string `yaml:"exclude_titles"` // windows never walked on, besides the overlay itself
}

// DebugConfig contains debug command-line options
type DebugConfig struct {
	Enabled   bool `yaml:"enabled"`    // window outlines and state text
	ShowPanel bool `yaml:"show_panel"` // sandbox control panel
}

// SandboxConfig contains the simulated desktop settings
type SandboxConfig struct {
	Layout string `yaml:"layout"` // TMX path; empty uses the built-in layout
}

// UIConfig contains drawing colors and font sizes. It is not read from file.
type UIConfig struct {
	DesktopColor   color.RGBA
	WindowColor    color.RGBA
	TitleBarColor  color.RGBA
	HiddenColor    color.RGBA
	OutlineColor   color.RGBA
	FallPathColor  color.RGBA
	LandingColor   color.RGBA
	WalkerColor    color.RGBA
	TitleBarHeight float64

	HUDFontSize   float64
	DebugFontSize float64
}

// MessageConfig contains the on-screen notice settings
type MessageConfig struct {
	DisplayFrames int // frames a notice stays up
	TopMargin     float64
	BoxPadding    float64
	BoxColor      color.RGBA
	TextColor     color.RGBA
	ErrorColor    color.RGBA
}

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Walker WalkerConfig
var Overlay OverlayConfig
var Debug DebugConfig
var Sandbox SandboxConfig
var UI UIConfig
var Message MessageConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
	}

	Walker = WalkerConfig{
		WalkStep:   24,
		FallDrift:  24,
		FallAccel:  4,
		OffscreenX: -64,

		TickInterval: 150 * time.Millisecond,

		FrameWidth:  32,
		FrameHeight: 48,

		Count:        1,
		StaggerTicks: 12,
	}

	Overlay = OverlayConfig{
		Title: "windowwalker",
	}

	Debug = DebugConfig{
		ShowPanel: true,
	}

	UI = UIConfig{
		DesktopColor:   color.RGBA{R: 30, G: 60, B: 90, A: 255},
		WindowColor:    color.RGBA{R: 225, G: 225, B: 230, A: 255},
		TitleBarColor:  DarkBlue,
		HiddenColor:    color.RGBA{R: 255, G: 255, B: 255, A: 40},
		OutlineColor:   BrightGreen,
		FallPathColor:  Orange,
		LandingColor:   Red,
		WalkerColor:    LightBlue,
		TitleBarHeight: 20,

		HUDFontSize:   14,
		DebugFontSize: 11,
	}

	Message = MessageConfig{
		DisplayFrames: 150,
		TopMargin:     12,
		BoxPadding:    8,
		BoxColor:      BlackOverlay,
		TextColor:     White,
		ErrorColor:    Orange,
	}
}
