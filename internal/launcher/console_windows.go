//go:build windows

package launcher

import (
	"io"
	"os"

	"golang.org/x/sys/windows"
)

// Console returns where error diagnostics go: stderr when the process has
// one (console build, or redirected), otherwise a message box.
func Console() io.Writer {
	if h, err := windows.GetStdHandle(windows.STD_ERROR_HANDLE); err == nil && h != 0 {
		return os.Stderr
	}
	return dialogWriter{caption: dialogCaption, show: messageBox}
}

func messageBox(caption, text string) error {
	c, err := windows.UTF16PtrFromString(caption)
	if err != nil {
		return err
	}
	t, err := windows.UTF16PtrFromString(text)
	if err != nil {
		return err
	}
	_, err = windows.MessageBox(0, t, c, windows.MB_OK|windows.MB_ICONERROR|windows.MB_SETFOREGROUND)
	return err
}
