//go:build windows

package desktop

import (
	"fmt"
	"log"
	"sync"
	"unsafe"

	"github.com/automoto/windowwalker/shared/geom"
	"github.com/automoto/windowwalker/shared/motion"
	"golang.org/x/sys/windows"
)

const spiGetWorkArea = 0x0030

var (
	user32                   = windows.NewLazySystemDLL("user32.dll")
	procEnumWindows          = user32.NewProc("EnumWindows")
	procIsWindowVisible      = user32.NewProc("IsWindowVisible")
	procGetWindowRect        = user32.NewProc("GetWindowRect")
	procGetWindowTextW       = user32.NewProc("GetWindowTextW")
	procGetWindowTextLengthW = user32.NewProc("GetWindowTextLengthW")
	procSystemParametersInfo = user32.NewProc("SystemParametersInfoW")
)

// Win32 enumerates visible top-level windows with user32.
type Win32 struct {
	excludeTitles []string
}

func NewWin32(excludeTitles ...string) *Win32 {
	return &Win32{excludeTitles: excludeTitles}
}

func (p *Win32) VisibleWindowRects() ([]geom.Rect, error) {
	handles, err := enumWindows()
	if err != nil {
		return nil, err
	}
	return p.windowRects(handles), nil
}

// windowRects measures the visible, non-excluded windows among handles.
// A window that closes between enumeration and measuring is skipped.
func (p *Win32) windowRects(handles []windows.HWND) []geom.Rect {
	rects := make([]geom.Rect, 0, len(handles))
	for _, h := range handles {
		if visible, _, _ := procIsWindowVisible.Call(uintptr(h)); visible == 0 {
			continue
		}
		if excluded(windowText(h), p.excludeTitles) {
			continue
		}
		var r windows.Rect
		if ok, _, err := procGetWindowRect.Call(uintptr(h), uintptr(unsafe.Pointer(&r))); ok == 0 {
			log.Printf("[desktop] skip window 0x%x: GetWindowRect: %v", h, err)
			continue
		}
		rects = append(rects, rectFromRECT(r))
	}
	return motion.Sanitize(rects)
}

func (p *Win32) Bounds() (geom.Rect, error) {
	var r windows.Rect
	if ok, _, err := procSystemParametersInfo.Call(spiGetWorkArea, 0, uintptr(unsafe.Pointer(&r)), 0); ok == 0 {
		return geom.Rect{}, fmt.Errorf("SystemParametersInfo: %w", err)
	}
	return rectFromRECT(r), nil
}

// Go callbacks are never freed and the runtime caps how many a process may
// create, so one callback serves every enumeration. enumMu guards
// enumHandles while EnumWindows fills it.
var (
	enumMu      sync.Mutex
	enumHandles []windows.HWND
	enumOnce    sync.Once
	enumProc    uintptr
)

func enumWindows() ([]windows.HWND, error) {
	enumOnce.Do(func() {
		enumProc = windows.NewCallback(func(h windows.HWND, _ uintptr) uintptr {
			enumHandles = append(enumHandles, h)
			return 1
		})
	})

	enumMu.Lock()
	defer enumMu.Unlock()

	enumHandles = nil
	ok, _, err := procEnumWindows.Call(enumProc, 0)
	handles := enumHandles
	enumHandles = nil
	if ok == 0 {
		return nil, fmt.Errorf("EnumWindows: %w", err)
	}
	return handles, nil
}

func windowText(h windows.HWND) string {
	n, _, _ := procGetWindowTextLengthW.Call(uintptr(h))
	if n == 0 {
		return ""
	}
	buf := make([]uint16, n+1)
	procGetWindowTextW.Call(uintptr(h), uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	return windows.UTF16ToString(buf)
}

// rectFromRECT treats an all-zero RECT as empty and counts both edges as
// inside, so a RECT of 0..9 is ten pixels wide.
func rectFromRECT(r windows.Rect) geom.Rect {
	if r.Left == 0 && r.Top == 0 && r.Right == 0 && r.Bottom == 0 {
		return geom.Rect{}
	}
	return geom.NewRect(
		float64(r.Left),
		float64(r.Top),
		float64(r.Right-r.Left+1),
		float64(r.Bottom-r.Top+1),
	)
}
