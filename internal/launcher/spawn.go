package launcher

import (
	"fmt"
	"syscall"

	"github.com/pkg/errors"
)

// Spawner starts a process whose primary window is hidden and returns
// without waiting for it.
type Spawner interface {
	SpawnHidden(cmd Command) (Child, error)
}

// Child holds the OS handles of a freshly created process. Release must be
// called exactly once the caller is done with it; later calls are no-ops.
type Child interface {
	Pid() int
	Release() error
}

// SpawnError reports that the OS refused to create the process.
type SpawnError struct {
	Command Command
	Err     error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("create process %q: %v", e.Command.Path, e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }

// Code returns the platform error code (GetLastError on Windows, errno
// elsewhere), or -1 when the failure carried none.
func (e *SpawnError) Code() int {
	return ErrorCode(e.Err)
}

// ErrorCode digs the platform error code out of err, or returns -1.
func ErrorCode(err error) int {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return int(errno)
	}
	return -1
}
