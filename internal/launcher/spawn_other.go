//go:build !windows

// Development stub so the launcher can be built and tested off Windows.
// There is no window to hide here; the child simply gets no terminal
// streams attached.

package launcher

import (
	"os"
	"os/exec"

	"github.com/pkg/errors"
)

func NewSpawner() Spawner {
	return execSpawner{}
}

type execSpawner struct{}

func (execSpawner) SpawnHidden(cmd Command) (Child, error) {
	c := exec.Command(cmd.Path, cmd.Args...)
	if err := c.Start(); err != nil {
		return nil, &SpawnError{Command: cmd, Err: err}
	}
	return &processChild{proc: c.Process}, nil
}

type processChild struct {
	proc *os.Process
	pid  int
}

func (p *processChild) Pid() int {
	if p.proc == nil {
		return p.pid
	}
	return p.proc.Pid
}

func (p *processChild) Release() error {
	if p.proc == nil {
		return nil
	}
	p.pid = p.proc.Pid
	err := p.proc.Release()
	p.proc = nil
	return errors.Wrap(err, "release process")
}
