//go:build !windows

package launcher

import (
	"io"
	"os"
)

func Console() io.Writer {
	return os.Stderr
}
