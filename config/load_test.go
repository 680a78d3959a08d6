package config

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/automoto/windowwalker/shared/geom"
)

// restoreGlobals puts the package globals back after a test that applies a file.
func restoreGlobals(t *testing.T) {
	t.Helper()
	saved := Current()
	t.Cleanup(saved.Apply)
}

func TestParse(t *testing.T) {
	cases := []struct {
		name    string
		yaml    string
		wantErr bool
		check   func(t *testing.T, f File)
	}{
		{
			name: "overrides_keep_missing_keys",
			yaml: "walker:\n  walk_step: 12\n  tick_interval: 200ms\n",
			check: func(t *testing.T, f File) {
				if f.Walker.WalkStep != 12 || f.Walker.TickInterval != 200*time.Millisecond {
					t.Fatalf("override not applied: %+v", f.Walker)
				}
				if f.Walker.FallDrift != Walker.FallDrift || f.Walker.FrameWidth != Walker.FrameWidth {
					t.Fatalf("missing keys were reset: %+v", f.Walker)
				}
			},
		},
		{
			name: "overlay_and_debug",
			yaml: "overlay:\n  exclude_titles: [Desktop, Panel]\ndebug:\n  enabled: true\nsandbox:\n  layout: office.tmx\n",
			check: func(t *testing.T, f File) {
				if len(f.Overlay.ExcludeTitles) != 2 || f.Overlay.Title != Overlay.Title {
					t.Fatalf("unexpected overlay %+v", f.Overlay)
				}
				if !f.Debug.Enabled || f.Sandbox.Layout != "office.tmx" {
					t.Fatalf("unexpected debug/sandbox %+v %+v", f.Debug, f.Sandbox)
				}
			},
		},
		{name: "zero_walk_step", yaml: "walker:\n  walk_step: 0\n", wantErr: true},
		{name: "onscreen_wrap", yaml: "walker:\n  offscreen_x: 10\n", wantErr: true},
		{name: "tiny_interval", yaml: "walker:\n  tick_interval: 1ms\n", wantErr: true},
		{name: "no_walkers", yaml: "walker:\n  count: 0\n", wantErr: true},
		{name: "malformed", yaml: "walker: [", wantErr: true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f, err := Parse([]byte(c.yaml), Current())
			if c.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				if f.Walker != Current().Walker {
					t.Fatal("base was not returned on error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			c.check(t, f)
		})
	}
}

func TestValidateWrapsSentinel(t *testing.T) {
	f := Current()
	f.Walker.FallAccel = -1
	if err := f.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
	if err := Current().Validate(); err != nil {
		t.Fatalf("defaults must be valid: %v", err)
	}
}

func TestLoad(t *testing.T) {
	restoreGlobals(t)
	dir := t.TempDir()

	good := filepath.Join(dir, "good.yaml")
	if err := os.WriteFile(good, []byte("walker:\n  count: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Load(good); err != nil {
		t.Fatalf("load: %v", err)
	}
	if Walker.Count != 3 {
		t.Fatalf("count %d, want 3", Walker.Count)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("walker:\n  count: -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Load(bad); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
	if Walker.Count != 3 {
		t.Fatalf("invalid file changed globals: count %d", Walker.Count)
	}

	if err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestWalkerParams(t *testing.T) {
	origin := geom.Point{X: 1920, Y: 32}
	p := Walker.Params(origin)
	if p.WalkStep != 24 || p.FallDrift != 24 || p.FallAccel != 4 || p.OffscreenX != -64 || p.Origin != origin {
		t.Fatalf("unexpected params %+v", p)
	}
}

func TestWatcherReloads(t *testing.T) {
	restoreGlobals(t)
	path := filepath.Join(t.TempDir(), "walker.yaml")
	if err := os.WriteFile(path, []byte("walker:\n  count: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("walker:\n  count: 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		reloaded, err := w.Poll()
		if err != nil {
			t.Fatalf("poll: %v", err)
		}
		if reloaded && Walker.Count == 4 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("reload not observed, count %d", Walker.Count)
}

func TestWatcherIgnoresFileMovedAway(t *testing.T) {
	restoreGlobals(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "walker.yaml")
	if err := os.WriteFile(path, []byte("walker:\n  count: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	defer w.Close()

	if err := os.Rename(path, filepath.Join(dir, "walker.yaml.bak")); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(5 * reloadDebounce)
	for time.Now().Before(deadline) {
		reloaded, err := w.Poll()
		if err != nil {
			t.Fatalf("poll after rename: %v", err)
		}
		if reloaded {
			t.Fatal("reloaded a file that was moved away")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestRestartRequired(t *testing.T) {
	base := Current()
	cases := []struct {
		name   string
		change func(f *File)
		want   []string
	}{
		{"unchanged", func(f *File) {}, nil},
		{"live_tuning", func(f *File) {
			f.Walker.WalkStep = 12
			f.Walker.TickInterval = 200 * time.Millisecond
			f.Walker.FrameWidth = 64
			f.Debug.Enabled = !f.Debug.Enabled
		}, nil},
		{"count_and_stagger", func(f *File) {
			f.Walker.Count = base.Walker.Count + 2
			f.Walker.StaggerTicks = base.Walker.StaggerTicks + 1
		}, []string{"walker.count", "walker.stagger_ticks"}},
		{"overlay_filters", func(f *File) {
			f.Overlay.ExcludeTitles = append(slices.Clone(f.Overlay.ExcludeTitles), "Panel")
		}, []string{"overlay.exclude_titles"}},
		{"scene_sources", func(f *File) {
			f.Walker.SpriteDir = "sprites"
			f.Sandbox.Layout = "office.tmx"
		}, []string{"walker.sprite_dir", "sandbox.layout"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			after := base
			after.Overlay.ExcludeTitles = slices.Clone(base.Overlay.ExcludeTitles)
			c.change(&after)
			if got := RestartRequired(base, after); !slices.Equal(got, c.want) {
				t.Fatalf("got %v, want %v", got, c.want)
			}
		})
	}
}
