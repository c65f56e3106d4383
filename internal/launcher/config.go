package launcher

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ---------------------------------------------------------------------------
// CONFIGURATION
// ---------------------------------------------------------------------------

const (
	ConfigFileName     = "launcher.yaml"
	DefaultInterpreter = "python.exe"
)

// DefaultScript is the shuffler entry point inside the bundled runtime,
// Scripts\psrregshuffle on Windows.
var DefaultScript = filepath.Join("Scripts", "psrregshuffle")

// Base selects the directory relative paths are resolved against.
type Base string

const (
	BaseExecutable Base = "executable"
	BaseWorkDir    Base = "workdir"
)

// Config describes where the bundled interpreter and the script live.
type Config struct {
	Interpreter string `yaml:"interpreter"`
	Script      string `yaml:"script"`
	Base        Base   `yaml:"base"`
	LogFile     string `yaml:"log_file"`
}

// DefaultConfig is the layout of the bundled Windows distribution.
func DefaultConfig() Config {
	return Config{
		Interpreter: DefaultInterpreter,
		Script:      DefaultScript,
		Base:        BaseExecutable,
	}
}

// LoadConfig reads path on top of DefaultConfig. A missing file is not an
// error. An unreadable or unparsable file yields the defaults along with the
// error so the caller can warn and keep going. An invalid base is dropped
// while the remaining fields still apply.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, errors.Wrapf(err, "read %s", path)
	}

	var loaded Config
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return cfg, errors.Wrapf(err, "parse %s", path)
	}

	if loaded.Interpreter != "" {
		cfg.Interpreter = filepath.FromSlash(loaded.Interpreter)
	}
	if loaded.Script != "" {
		cfg.Script = filepath.FromSlash(loaded.Script)
	}
	cfg.LogFile = filepath.FromSlash(loaded.LogFile)

	if err := loaded.Base.validate(); err != nil {
		return cfg, errors.Wrapf(err, "invalid %s", path)
	}
	if loaded.Base != "" {
		cfg.Base = loaded.Base
	}
	return cfg, nil
}

func (b Base) validate() error {
	switch b {
	case "", BaseExecutable, BaseWorkDir:
		return nil
	}
	return errors.Errorf("base must be %q or %q, got %q", BaseExecutable, BaseWorkDir, b)
}

// Root picks the directory relative paths resolve against.
func (c Config) Root(exeDir, workDir string) string {
	if c.Base == BaseWorkDir {
		return workDir
	}
	return exeDir
}

// Command builds the interpreter invocation. The script is the only
// argument the interpreter ever receives.
func (c Config) Command(exeDir, workDir string) Command {
	root := c.Root(exeDir, workDir)
	return Command{
		Path: resolve(root, c.Interpreter),
		Args: []string{resolve(root, c.Script)},
	}
}

// LogPath returns the resolved log file, or "" when file logging is off.
func (c Config) LogPath(exeDir, workDir string) string {
	if c.LogFile == "" {
		return ""
	}
	return resolve(c.Root(exeDir, workDir), c.LogFile)
}

func resolve(root, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(root, p)
}

// ExecutableDir returns the directory holding the running binary.
func ExecutableDir() string {
	if exe, err := os.Executable(); err == nil {
		if real, err := filepath.EvalSymlinks(exe); err == nil {
			exe = real
		}
		return filepath.Dir(exe)
	}
	if dir, err := filepath.Abs(filepath.Dir(os.Args[0])); err == nil {
		return dir
	}
	return "."
}

// Command is a fully resolved process invocation.
type Command struct {
	Path string
	Args []string
}

// Argv returns Path followed by Args.
func (c Command) Argv() []string {
	return append([]string{c.Path}, c.Args...)
}

func (c Command) String() string {
	return strings.Join(c.Argv(), " ")
}
