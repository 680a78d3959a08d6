// Package layout is a simulated desktop. Windows come from a Tiled map, can
// slide back and forth, and can be hidden, so the walker can be watched
// without touching the real window manager.
package layout

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/automoto/windowwalker/shared/geom"
	"github.com/automoto/windowwalker/shared/motion"
	"github.com/lafriks/go-tiled"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	// DefaultPath is the embedded layout used when no file is given.
	DefaultPath = "default.tmx"

	windowGroup = "Windows"
	cellSize    = 32

	TagWindow = "window"
	TagHidden = "hidden"
)

var ErrNoWindows = errors.New("layout: no windows in layout")

//go:embed default.tmx
var defaultFS embed.FS

// Window is one simulated top-level window.
type Window struct {
	Name   string
	Object *resolv.Object

	base   geom.Point
	slide  geom.Vector
	tween  *gween.Sequence
	hidden bool
}

func (w *Window) Rect() geom.Rect {
	return geom.NewRect(w.Object.X, w.Object.Y, w.Object.W, w.Object.H)
}

func (w *Window) Hidden() bool { return w.hidden }

func (w *Window) setHidden(hidden bool) {
	w.hidden = hidden
	if hidden {
		w.Object.AddTags(TagHidden)
	} else {
		w.Object.RemoveTags(TagHidden)
	}
}

// update moves a sliding window along its tween. progress runs 0 -> 1 -> 0.
func (w *Window) update(dt float32) {
	if w.tween == nil {
		return
	}
	progress, _, done := w.tween.Update(dt)
	if done {
		w.tween.Reset()
	}
	pos := w.base.Add(w.slide.Scale(float64(progress)))
	w.Object.X, w.Object.Y = pos.X, pos.Y
	w.Object.Update()
}

// Sandbox holds the simulated windows in paint order, bottom first.
type Sandbox struct {
	Name    string
	bounds  geom.Rect
	space   *resolv.Space
	windows []*Window
}

// Default loads the embedded layout.
func Default() (*Sandbox, error) {
	return Load(defaultFS, DefaultPath)
}

// LoadFile loads a layout from disk. An empty path loads the default.
func LoadFile(path string) (*Sandbox, error) {
	if path == "" {
		return Default()
	}
	return Load(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}

// Load parses a TMX layout. The map's pixel size becomes the desktop
// bounds and every object in the "Windows" group becomes a window.
func Load(fsys fs.FS, tmxPath string) (*Sandbox, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load layout %s: %w", tmxPath, err)
	}

	width := m.Width * m.TileWidth
	height := m.Height * m.TileHeight
	sb := &Sandbox{
		Name:   tmxPath,
		bounds: geom.NewRect(0, 0, float64(width), float64(height)),
		space:  resolv.NewSpace(width, height, cellSize, cellSize),
	}

	for _, og := range m.ObjectGroups {
		if og.Name != windowGroup {
			continue
		}
		for _, o := range og.Objects {
			if o.Width < 1 || o.Height < 1 {
				log.Printf("[layout] skipping %q: not a rectangle", o.Name)
				continue
			}
			w := sb.addWindow(o.Name, geom.NewRect(o.X, o.Y, o.Width, o.Height))
			w.setHidden(o.Properties.GetBool("hidden"))
			w.slide = geom.Vector{
				X: o.Properties.GetFloat("slideX"),
				Y: o.Properties.GetFloat("slideY"),
			}
			if secs := o.Properties.GetFloat("slideSeconds"); secs > 0 && w.slide != (geom.Vector{}) {
				w.tween = newSlide(float32(secs))
			}
		}
	}

	if len(sb.windows) == 0 {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoWindows)
	}

	log.Printf("[layout] loaded %s: %d windows, %dx%d desktop", tmxPath, len(sb.windows), width, height)
	return sb, nil
}

// New builds a sandbox from plain rectangles.
func New(bounds geom.Rect, rects ...geom.Rect) *Sandbox {
	sb := &Sandbox{
		Name:   "custom",
		bounds: bounds,
		space:  resolv.NewSpace(int(bounds.Right()), int(bounds.Bottom()), cellSize, cellSize),
	}
	for i, r := range rects {
		sb.addWindow(fmt.Sprintf("window-%d", i+1), r)
	}
	return sb
}

func (sb *Sandbox) addWindow(name string, r geom.Rect) *Window {
	obj := resolv.NewObject(r.X, r.Y, r.Width, r.Height, TagWindow)
	w := &Window{Name: name, Object: obj, base: r.TopLeft()}
	obj.Data = w
	sb.space.Add(obj)
	sb.windows = append(sb.windows, w)
	return w
}

// newSlide runs out and back over secs seconds each way.
func newSlide(secs float32) *gween.Sequence {
	seq := gween.NewSequence()
	seq.Add(
		gween.New(0, 1, secs, ease.InOutQuad),
		gween.New(1, 0, secs, ease.InOutQuad),
	)
	return seq
}

// Slide makes w move by offset and back, taking secs seconds each way.
func (sb *Sandbox) Slide(w *Window, offset geom.Vector, secs float32) {
	w.slide = offset
	w.tween = newSlide(secs)
}

// Update advances every sliding window by dt seconds.
func (sb *Sandbox) Update(dt float32) {
	for _, w := range sb.windows {
		w.update(dt)
	}
}

// VisibleWindowRects returns a fresh snapshot of every shown window.
func (sb *Sandbox) VisibleWindowRects() ([]geom.Rect, error) {
	rects := make([]geom.Rect, 0, len(sb.windows))
	for _, w := range sb.windows {
		if w.hidden {
			continue
		}
		rects = append(rects, w.Rect())
	}
	return motion.Sanitize(rects), nil
}

func (sb *Sandbox) Bounds() (geom.Rect, error) {
	return sb.bounds, nil
}

// Windows returns the windows in paint order, bottom first.
func (sb *Sandbox) Windows() []*Window {
	return sb.windows
}

// WindowAt returns the topmost window containing (x, y), hidden or not.
func (sb *Sandbox) WindowAt(x, y float64) *Window {
	probe := resolv.NewObject(x, y, 1, 1)
	sb.space.Add(probe)
	defer sb.space.Remove(probe)

	check := probe.Check(0, 0, TagWindow)
	if check == nil {
		return nil
	}

	p := geom.Point{X: x, Y: y}
	top, topIndex := (*Window)(nil), -1
	for _, obj := range check.Objects {
		w, ok := obj.Data.(*Window)
		if !ok || !w.Rect().Contains(p) {
			continue
		}
		if i := sb.indexOf(w); i > topIndex {
			top, topIndex = w, i
		}
	}
	return top
}

// Toggle hides or shows the topmost window under (x, y). It reports the
// window it changed, or nil.
func (sb *Sandbox) Toggle(x, y float64) *Window {
	w := sb.WindowAt(x, y)
	if w == nil {
		return nil
	}
	w.setHidden(!w.hidden)
	log.Printf("[layout] %s hidden=%v", w.Name, w.hidden)
	return w
}

func (sb *Sandbox) indexOf(w *Window) int {
	for i, c := range sb.windows {
		if c == w {
			return i
		}
	}
	return -1
}
