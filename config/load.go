package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

// File is the YAML view of the tunable globals. Keys missing from a file
// keep their current values.
type File struct {
	Walker  WalkerConfig  `yaml:"walker"`
	Overlay OverlayConfig `yaml:"overlay"`
	Debug   DebugConfig   `yaml:"debug"`
	Sandbox SandboxConfig `yaml:"sandbox"`
}

// Current returns the globals as a File.
func Current() File {
	return File{Walker: Walker, Overlay: Overlay, Debug: Debug, Sandbox: Sandbox}
}

// Apply replaces the globals with f.
func (f File) Apply() {
	Walker = f.Walker
	Overlay = f.Overlay
	Debug = f.Debug
	Sandbox = f.Sandbox
}

// Parse overlays YAML data on base and validates the result.
func Parse(data []byte, base File) (File, error) {
	f := base
	if err := yaml.Unmarshal(data, &f); err != nil {
		return base, fmt.Errorf("unmarshal: %w", err)
	}
	if err := f.Validate(); err != nil {
		return base, err
	}
	return f, nil
}

// Load overlays the YAML file at path on the globals. The globals are left
// untouched when the file is unreadable or invalid.
func Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	f, err := Parse(data, Current())
	if err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}
	f.Apply()
	return nil
}

func (f File) Validate() error {
	w := f.Walker
	switch {
	case w.WalkStep <= 0:
		return fmt.Errorf("%w: walk_step must be positive, got %v", ErrInvalidConfig, w.WalkStep)
	case w.FallDrift < 0:
		return fmt.Errorf("%w: fall_drift must not be negative, got %v", ErrInvalidConfig, w.FallDrift)
	case w.FallAccel <= 0:
		return fmt.Errorf("%w: fall_accel must be positive, got %v", ErrInvalidConfig, w.FallAccel)
	case w.OffscreenX >= 0:
		return fmt.Errorf("%w: offscreen_x must be left of the screen, got %v", ErrInvalidConfig, w.OffscreenX)
	case w.TickInterval < 10*time.Millisecond:
		return fmt.Errorf("%w: tick_interval too short, got %v", ErrInvalidConfig, w.TickInterval)
	case w.FrameWidth <= 0 || w.FrameHeight <= 0:
		return fmt.Errorf("%w: frame size must be positive, got %dx%d", ErrInvalidConfig, w.FrameWidth, w.FrameHeight)
	case w.Count < 1:
		return fmt.Errorf("%w: count must be at least 1, got %d", ErrInvalidConfig, w.Count)
	case w.StaggerTicks < 0:
		return fmt.Errorf("%w: stagger_ticks must not be negative, got %d", ErrInvalidConfig, w.StaggerTicks)
	}
	return nil
}

// RestartRequired lists the keys changed between before and after that a
// running scene cannot apply: walker count and spacing, sprite source, the
// overlay's title filters and the sandbox layout.
func RestartRequired(before, after File) []string {
	var keys []string
	if before.Walker.Count != after.Walker.Count {
		keys = append(keys, "walker.count")
	}
	if before.Walker.StaggerTicks != after.Walker.StaggerTicks {
		keys = append(keys, "walker.stagger_ticks")
	}
	if before.Walker.SpriteDir != after.Walker.SpriteDir {
		keys = append(keys, "walker.sprite_dir")
	}
	if before.Overlay.Title != after.Overlay.Title {
		keys = append(keys, "overlay.title")
	}
	if !slices.Equal(before.Overlay.ExcludeTitles, after.Overlay.ExcludeTitles) {
		keys = append(keys, "overlay.exclude_titles")
	}
	if before.Sandbox.Layout != after.Sandbox.Layout {
		keys = append(keys, "sandbox.layout")
	}
	return keys
}
