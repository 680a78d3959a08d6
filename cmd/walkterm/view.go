package main

import (
	"math"

	"github.com/automoto/windowwalker/layout"
	"github.com/automoto/windowwalker/shared/geom"
	"github.com/gdamore/tcell/v2"
)

var (
	desktopStyle = tcell.StyleDefault.Background(tcell.ColorDefault)
	windowStyle  = tcell.StyleDefault.Foreground(tcell.ColorLightGray)
	titleStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	hiddenStyle  = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	walkerStyle  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	statusStyle  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
)

// view maps desktop pixels onto terminal cells.
type view struct {
	screen tcell.Screen
	origin geom.Point
	cellW  float64
	cellH  float64
}

func newView(screen tcell.Screen, bounds geom.Rect, cellW, cellH float64) *view {
	return &view{screen: screen, origin: bounds.TopLeft(), cellW: cellW, cellH: cellH}
}

// cell returns the column and row containing p.
func (v *view) cell(p geom.Point) (int, int) {
	return int(math.Floor((p.X - v.origin.X) / v.cellW)), int(math.Floor((p.Y - v.origin.Y) / v.cellH))
}

// Present draws the walker in the cell just above its feet, so a walker
// on a window stands on the window's top border.
func (v *view) Present(box geom.Rect, frame rune) {
	col, row := v.cell(geom.Point{X: box.X, Y: box.Bottom()})
	v.screen.SetContent(col, row-1, frame, nil, walkerStyle)
}

func (v *view) drawWindows(windows []*layout.Window) {
	for _, w := range windows {
		style := windowStyle
		if w.Hidden() {
			style = hiddenStyle
		}
		v.drawBox(w.Rect(), style)
		if !w.Hidden() {
			col, row := v.cell(w.Rect().TopLeft())
			v.drawText(col+2, row, " "+w.Name+" ", titleStyle)
		}
	}
}

func (v *view) drawBox(r geom.Rect, style tcell.Style) {
	x1, y1 := v.cell(r.TopLeft())
	x2, y2 := v.cell(geom.Point{X: r.Right() - 1, Y: r.Bottom() - 1})
	if x2 <= x1 || y2 <= y1 {
		return
	}

	for x := x1 + 1; x < x2; x++ {
		v.screen.SetContent(x, y1, tcell.RuneHLine, nil, style)
		v.screen.SetContent(x, y2, tcell.RuneHLine, nil, style)
	}
	for y := y1 + 1; y < y2; y++ {
		v.screen.SetContent(x1, y, tcell.RuneVLine, nil, style)
		v.screen.SetContent(x2, y, tcell.RuneVLine, nil, style)
		for x := x1 + 1; x < x2; x++ {
			v.screen.SetContent(x, y, ' ', nil, desktopStyle)
		}
	}
	v.screen.SetContent(x1, y1, tcell.RuneULCorner, nil, style)
	v.screen.SetContent(x2, y1, tcell.RuneURCorner, nil, style)
	v.screen.SetContent(x1, y2, tcell.RuneLLCorner, nil, style)
	v.screen.SetContent(x2, y2, tcell.RuneLRCorner, nil, style)
}

func (v *view) drawText(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}

// toDesktop returns the desktop point at the center of a cell.
func (v *view) toDesktop(col, row int) geom.Point {
	return geom.Point{
		X: v.origin.X + (float64(col)+0.5)*v.cellW,
		Y: v.origin.Y + (float64(row)+0.5)*v.cellH,
	}
}
