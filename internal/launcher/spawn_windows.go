//go:build windows

package launcher

import (
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

// NewSpawner returns the CreateProcess backed spawner.
func NewSpawner() Spawner {
	return hiddenSpawner{}
}

type hiddenSpawner struct{}

// SpawnHidden calls CreateProcess with STARTF_USESHOWWINDOW/SW_HIDE so the
// interpreter's console never shows. Handles are not inherited, creation
// flags are left at zero, environment and current directory are inherited.
func (hiddenSpawner) SpawnHidden(cmd Command) (Child, error) {
	line, err := windows.UTF16PtrFromString(windows.ComposeCommandLine(cmd.Argv()))
	if err != nil {
		return nil, &SpawnError{Command: cmd, Err: errors.Wrap(err, "encode command line")}
	}

	si := hiddenStartupInfo()
	var pi windows.ProcessInformation
	err = windows.CreateProcess(
		nil,   // module name taken from the command line
		line,  // command line
		nil,   // process security attributes
		nil,   // thread security attributes
		false, // inherit handles
		0,     // creation flags
		nil,   // environment
		nil,   // current directory
		&si,
		&pi,
	)
	if err != nil {
		return nil, &SpawnError{Command: cmd, Err: err}
	}
	return &processHandles{info: pi}, nil
}

// hiddenStartupInfo tells the child to start with its main window hidden.
func hiddenStartupInfo() windows.StartupInfo {
	si := windows.StartupInfo{
		Flags:      windows.STARTF_USESHOWWINDOW,
		ShowWindow: windows.SW_HIDE,
	}
	si.Cb = uint32(unsafe.Sizeof(si))
	return si
}

type processHandles struct {
	info     windows.ProcessInformation
	released bool
}

func (p *processHandles) Pid() int { return int(p.info.ProcessId) }

func (p *processHandles) Release() error {
	if p.released {
		return nil
	}
	p.released = true

	errProcess := windows.CloseHandle(p.info.Process)
	errThread := windows.CloseHandle(p.info.Thread)
	if errProcess != nil {
		return errors.Wrap(errProcess, "close process handle")
	}
	if errThread != nil {
		return errors.Wrap(errThread, "close thread handle")
	}
	return nil
}
