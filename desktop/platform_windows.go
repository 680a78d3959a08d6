//go:build windows

package desktop

func newPlatform(excludeTitles []string) (Provider, error) {
	return NewWin32(excludeTitles...), nil
}
