package desktop

import (
	"fmt"
	"log"

	"github.com/automoto/windowwalker/shared/geom"
	"github.com/automoto/windowwalker/shared/motion"
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

const maxPropertyLen = 1 << 16

// X11 enumerates client windows through the EWMH root window properties.
type X11 struct {
	conn          *xgb.Conn
	root          xproto.Window
	screenW       uint16
	screenH       uint16
	excludeTitles []string
	atoms         map[string]xproto.Atom
}

var x11AtomNames = []string{
	"_NET_CLIENT_LIST_STACKING",
	"_NET_CLIENT_LIST",
	"_NET_WORKAREA",
	"_NET_WM_NAME",
	"_NET_WM_WINDOW_TYPE",
	"_NET_WM_WINDOW_TYPE_DESKTOP",
	"UTF8_STRING",
}

func NewX11(excludeTitles ...string) (*X11, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, fmt.Errorf("connect to X server: %w", err)
	}

	screen := xproto.Setup(conn).DefaultScreen(conn)
	x := &X11{
		conn:          conn,
		root:          screen.Root,
		screenW:       screen.WidthInPixels,
		screenH:       screen.HeightInPixels,
		excludeTitles: excludeTitles,
		atoms:         make(map[string]xproto.Atom, len(x11AtomNames)),
	}

	for _, name := range x11AtomNames {
		reply, err := xproto.InternAtom(conn, false, uint16(len(name)), name).Reply()
		if err != nil {
			conn.Close()
			return nil, fmt.Errorf("intern atom %s: %w", name, err)
		}
		x.atoms[name] = reply.Atom
	}

	return x, nil
}

func (x *X11) Close() {
	x.conn.Close()
}

func (x *X11) VisibleWindowRects() ([]geom.Rect, error) {
	windows, err := x.clientList()
	if err != nil {
		return nil, err
	}

	rects := make([]geom.Rect, 0, len(windows))
	for _, w := range windows {
		r, ok, err := x.windowRect(w)
		if err != nil {
			// Windows can disappear between listing and querying them.
			log.Printf("[desktop] skip window 0x%x: %v", w, err)
			continue
		}
		if ok {
			rects = append(rects, r)
		}
	}
	return motion.Sanitize(rects), nil
}

func (x *X11) Bounds() (geom.Rect, error) {
	reply, err := x.property(x.root, x.atoms["_NET_WORKAREA"], xproto.AtomCardinal)
	if err == nil {
		if r, ok := decodeWorkArea(reply.Format, reply.Value); ok {
			return r, nil
		}
	}
	return geom.NewRect(0, 0, float64(x.screenW), float64(x.screenH)), nil
}

func (x *X11) clientList() ([]xproto.Window, error) {
	for _, name := range []string{"_NET_CLIENT_LIST_STACKING", "_NET_CLIENT_LIST"} {
		reply, err := x.property(x.root, x.atoms[name], xproto.AtomWindow)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		if windows := decodeWindows(reply.Format, reply.Value); len(windows) > 0 {
			return windows, nil
		}
	}
	return nil, nil
}

// windowRect returns the outer rectangle of w in root coordinates. ok is
// false for windows that should not be walked on.
func (x *X11) windowRect(w xproto.Window) (geom.Rect, bool, error) {
	attrs, err := xproto.GetWindowAttributes(x.conn, w).Reply()
	if err != nil {
		return geom.Rect{}, false, err
	}
	if attrs.MapState != xproto.MapStateViewable {
		return geom.Rect{}, false, nil
	}
	if x.isDesktopWindow(w) || excluded(x.title(w), x.excludeTitles) {
		return geom.Rect{}, false, nil
	}

	g, err := xproto.GetGeometry(x.conn, xproto.Drawable(w)).Reply()
	if err != nil {
		return geom.Rect{}, false, err
	}
	pos, err := xproto.TranslateCoordinates(x.conn, w, x.root, 0, 0).Reply()
	if err != nil {
		return geom.Rect{}, false, err
	}

	b := float64(g.BorderWidth)
	return geom.NewRect(
		float64(pos.DstX)-b,
		float64(pos.DstY)-b,
		float64(g.Width)+2*b,
		float64(g.Height)+2*b,
	), true, nil
}

func (x *X11) title(w xproto.Window) string {
	if reply, err := x.property(w, x.atoms["_NET_WM_NAME"], x.atoms["UTF8_STRING"]); err == nil && len(reply.Value) > 0 {
		return string(reply.Value)
	}
	if reply, err := x.property(w, xproto.AtomWmName, xproto.GetPropertyTypeAny); err == nil {
		return string(reply.Value)
	}
	return ""
}

// isDesktopWindow reports the window the desktop environment draws icons
// on. It spans the whole screen, so its top edge would catch every fall.
func (x *X11) isDesktopWindow(w xproto.Window) bool {
	reply, err := x.property(w, x.atoms["_NET_WM_WINDOW_TYPE"], xproto.AtomAtom)
	if err != nil {
		return false
	}
	for _, t := range decodeCardinals(reply.Format, reply.Value) {
		if xproto.Atom(t) == x.atoms["_NET_WM_WINDOW_TYPE_DESKTOP"] {
			return true
		}
	}
	return false
}

func (x *X11) property(w xproto.Window, prop, typ xproto.Atom) (*xproto.GetPropertyReply, error) {
	return xproto.GetProperty(x.conn, false, w, prop, typ, 0, maxPropertyLen).Reply()
}

// decodeCardinals reads a format-32 property value.
func decodeCardinals(format byte, value []byte) []uint32 {
	if format != 32 {
		return nil
	}
	out := make([]uint32, 0, len(value)/4)
	for i := 0; i+4 <= len(value); i += 4 {
		out = append(out, xgb.Get32(value[i:]))
	}
	return out
}

func decodeWindows(format byte, value []byte) []xproto.Window {
	cards := decodeCardinals(format, value)
	windows := make([]xproto.Window, 0, len(cards))
	for _, c := range cards {
		if c != 0 {
			windows = append(windows, xproto.Window(c))
		}
	}
	return windows
}

// decodeWorkArea reads the first x, y, width, height quadruple of
// _NET_WORKAREA, which belongs to desktop 0.
func decodeWorkArea(format byte, value []byte) (geom.Rect, bool) {
	cards := decodeCardinals(format, value)
	if len(cards) < 4 || cards[2] == 0 || cards[3] == 0 {
		return geom.Rect{}, false
	}
	return geom.NewRect(float64(cards[0]), float64(cards[1]), float64(cards[2]), float64(cards[3])), true
}
