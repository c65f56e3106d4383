// psrregshuffle — Windows starter for PSR Registration Shuffler
// Compiled as a Windows GUI subsystem binary so no console window flashes
// up, and the interpreter it starts is told to keep its own window hidden.
// Without a console, a failed start is reported in a message box; with
// stderr redirected, the diagnostic line goes there instead.
//
// The binary lives in the root of the bundled Python distribution:
//   <root>\psrregshuffle.exe
//   <root>\python.exe
//   <root>\Scripts\psrregshuffle
//   <root>\launcher.yaml        (optional)
//
// Build: go build -ldflags="-H windowsgui" -o psrregshuffle.exe ./cmd/psrregshuffle

package main

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"psrregshuffle-launcher/internal/launcher"
)

// setup wires the launcher from the install directory and the optional
// config file. Command line arguments are deliberately not read.
func setup(log *logrus.Logger, exeDir string) (*launcher.Launcher, func()) {
	workDir, err := os.Getwd()
	if err != nil {
		workDir = exeDir
	}

	cleanup := func() {}
	cfg, cfgErr := launcher.LoadConfig(filepath.Join(exeDir, launcher.ConfigFileName))

	if path := cfg.LogPath(exeDir, workDir); path != "" {
		f, err := launcher.AttachLogFile(log, path)
		if err != nil {
			log.WithError(err).WithField("path", path).Warn("Log file unavailable.")
		} else {
			cleanup = func() { f.Close() }
		}
	}
	if cfgErr != nil {
		log.WithError(cfgErr).Warn("Config partly unusable, defaults applied.")
	}
	log.WithField("root", cfg.Root(exeDir, workDir)).Debug("Starter running.")

	return &launcher.Launcher{
		Command: cfg.Command(exeDir, workDir),
		Spawner: launcher.NewSpawner(),
		Log:     log,
	}, cleanup
}

func run() int {
	log := launcher.NewLogger(launcher.Console())
	l, cleanup := setup(log, launcher.ExecutableDir())
	defer cleanup()
	return l.Run()
}

func main() {
	os.Exit(run())
}
