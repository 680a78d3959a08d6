//go:build !windows

package desktop

import "runtime"

func newPlatform(excludeTitles []string) (Provider, error) {
	switch runtime.GOOS {
	case "linux", "freebsd", "openbsd", "netbsd", "dragonfly":
		x, err := NewX11(excludeTitles...)
		if err != nil {
			return nil, err
		}
		return x, nil
	}
	return nil, ErrUnsupported
}
