package layout

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/automoto/windowwalker/shared/geom"
	"github.com/automoto/windowwalker/shared/motion"
)

const testLayout = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="40" height="30" tilewidth="16" tileheight="16" infinite="0">
 <objectgroup id="1" name="Windows">
  <object id="1" name="Back" x="100" y="200" width="300" height="200"/>
  <object id="2" name="Front" x="200" y="250" width="200" height="100"/>
  <object id="3" name="Closed" x="0" y="0" width="50" height="50">
   <properties>
    <property name="hidden" type="bool" value="true"/>
   </properties>
  </object>
  <object id="4" name="Slider" x="400" y="100" width="100" height="60">
   <properties>
    <property name="slideX" type="float" value="-100"/>
    <property name="slideSeconds" type="float" value="1"/>
   </properties>
  </object>
 </objectgroup>
</map>`

const emptyLayout = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="10" tilewidth="16" tileheight="16" infinite="0">
 <objectgroup id="1" name="Decor"/>
</map>`

func loadTest(t *testing.T) *Sandbox {
	t.Helper()
	fsys := fstest.MapFS{"test.tmx": {Data: []byte(testLayout)}}
	sb, err := Load(fsys, "test.tmx")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return sb
}

func TestLoad(t *testing.T) {
	sb := loadTest(t)

	bounds, _ := sb.Bounds()
	if bounds != geom.NewRect(0, 0, 640, 480) {
		t.Fatalf("bounds %v, want 640x480", bounds)
	}
	if n := len(sb.Windows()); n != 4 {
		t.Fatalf("got %d windows, want 4", n)
	}

	rects, err := sb.VisibleWindowRects()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rects) != 3 {
		t.Fatalf("hidden window was reported: %v", rects)
	}
	for _, r := range rects {
		if r == geom.NewRect(0, 0, 50, 50) {
			t.Fatalf("hidden window was reported: %v", rects)
		}
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("no_windows", func(t *testing.T) {
		fsys := fstest.MapFS{"empty.tmx": {Data: []byte(emptyLayout)}}
		if _, err := Load(fsys, "empty.tmx"); !errors.Is(err, ErrNoWindows) {
			t.Fatalf("expected ErrNoWindows, got %v", err)
		}
	})
	t.Run("missing_file", func(t *testing.T) {
		if _, err := Load(fstest.MapFS{}, "nope.tmx"); err == nil {
			t.Fatal("expected an error")
		}
	})
}

func TestDefault(t *testing.T) {
	sb, err := Default()
	if err != nil {
		t.Fatalf("load default layout: %v", err)
	}
	rects, _ := sb.VisibleWindowRects()
	if len(rects) == 0 {
		t.Fatal("default layout has no visible windows")
	}
}

func TestToggle(t *testing.T) {
	sb := loadTest(t)

	cases := []struct {
		name       string
		x, y       float64
		want       string
		wantHidden bool
	}{
		{"topmost_of_overlap", 250, 300, "Front", true},
		{"back_only", 150, 220, "Back", true},
		{"hidden_can_be_shown", 10, 10, "Closed", false},
		{"desktop", 600, 450, "", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := sb.Toggle(c.x, c.y)
			if c.want == "" {
				if w != nil {
					t.Fatalf("toggled %s on empty desktop", w.Name)
				}
				return
			}
			if w == nil || w.Name != c.want {
				t.Fatalf("got %v, want %s", w, c.want)
			}
			if w.Hidden() != c.wantHidden {
				t.Fatalf("hidden %v, want %v", w.Hidden(), c.wantHidden)
			}
		})
	}

	rects, _ := sb.VisibleWindowRects()
	if len(rects) != 2 {
		t.Fatalf("got %d visible windows after toggles, want 2", len(rects))
	}
}

func TestSlide(t *testing.T) {
	sb := New(geom.NewRect(0, 0, 800, 600), geom.NewRect(400, 100, 100, 60))
	w := sb.Windows()[0]
	sb.Slide(w, geom.Vector{X: -100}, 1)

	sb.Update(1)
	rects, _ := sb.VisibleWindowRects()
	if rects[0].X != 300 || rects[0].Y != 100 {
		t.Fatalf("after one leg: %v, want x=300", rects[0])
	}

	sb.Update(0.5)
	rects, _ = sb.VisibleWindowRects()
	if rects[0].X <= 300 || rects[0].X >= 400 {
		t.Fatalf("halfway back: %v, want 300 < x < 400", rects[0])
	}

	// The snapshot is a copy; moving the window later must not change it.
	before := rects[0]
	sb.Update(0.25)
	if rects[0] != before {
		t.Fatalf("snapshot changed after update")
	}
}

func TestSandboxFeedsLanding(t *testing.T) {
	sb := New(geom.NewRect(0, 0, 800, 600), geom.NewRect(0, 300, 300, 20))
	var src motion.WindowSource = sb

	s := motion.Falling{Pos: geom.Point{X: 260, Y: 280}, AccelerationStep: 6, Frame: motion.FallRef}
	next, err := motion.Advance(s, motion.DefaultParams(geom.Point{X: 800}), src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next.Kind() != motion.KindWalking {
		t.Fatalf("expected to land on the sandbox window, got %v", next)
	}
}

func TestVisibleWindowRectsDropsDegenerate(t *testing.T) {
	shown := geom.NewRect(10, 20, 100, 50)
	sb := New(geom.NewRect(0, 0, 640, 480),
		geom.Rect{},
		geom.NewRect(300, 300, 0.5, 40),
		shown,
	)

	rects, err := sb.VisibleWindowRects()
	if err != nil {
		t.Fatal(err)
	}
	if len(rects) != 1 || rects[0] != shown {
		t.Fatalf("got %v, want only %v", rects, shown)
	}
}
