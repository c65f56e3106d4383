// Package launcher starts the bundled Python interpreter on the PSR
// Registration Shuffler script with its console window hidden, then gets
// out of the way. The child is never waited on.
package launcher

import (
	"github.com/sirupsen/logrus"
)

// Process exit statuses.
const (
	ExitOK          = 0
	ExitSpawnFailed = 1
)

// Launcher starts Command through Spawner exactly once.
type Launcher struct {
	Command Command
	Spawner Spawner
	Log     logrus.FieldLogger
}

// Run spawns the command once and returns the exit status for the
// launcher process. Handles of a spawned child are released before Run
// returns.
func (l *Launcher) Run() int {
	l.Log.WithField("command", l.Command.String()).Debug("Launching interpreter.")

	child, err := l.Spawner.SpawnHidden(l.Command)
	if err != nil {
		code := ErrorCode(err)
		l.Log.WithError(err).Errorf("Couldn't run the PSR Registration Shuffler: %d", code)
		return ExitSpawnFailed
	}
	defer func() {
		if err := child.Release(); err != nil {
			l.Log.WithError(err).Warn("Failed to release child handles.")
		}
	}()

	l.Log.WithField("pid", child.Pid()).Info("Interpreter launched.")
	return ExitOK
}
