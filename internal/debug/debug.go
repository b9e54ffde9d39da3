package debug

import (
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	"github.com/kelseyhightower/envconfig"
	"golang.org/x/xerrors"
)

var (
	mu      sync.Mutex
	logFile *os.File
	logPath string
	logger  logr.Logger
)

// Settings is the debug configuration read from the environment.
type Settings struct {
	Path      string `envconfig:"DEBUG"`
	Verbosity int    `envconfig:"DEBUG_VERBOSITY" default:"1"`
}

// Load reads GRIDLAYOUT_DEBUG and GRIDLAYOUT_DEBUG_VERBOSITY.
func Load() (Settings, error) {
	var s Settings
	if err := envconfig.Process("GRIDLAYOUT", &s); err != nil {
		return Settings{}, xerrors.Errorf("debug settings: %w", err)
	}
	return s, nil
}

// Init opens path for appending and returns a logger writing to it. Levels
// above verbosity are dropped. A previously opened file is closed.
func Init(path string, verbosity int) (logr.Logger, error) {
	mu.Lock()
	defer mu.Unlock()
	return open(path, verbosity)
}

func open(path string, verbosity int) (logr.Logger, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return logr.Discard(), xerrors.Errorf("create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return logr.Discard(), xerrors.Errorf("open debug log: %w", err)
	}
	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	logPath = path

	stdr.SetVerbosity(verbosity)
	logger = stdr.New(log.New(f, "", log.Ltime|log.Lmicroseconds))
	return logger, nil
}

// Close closes the debug log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		logPath = ""
		logger = logr.Discard()
		return err
	}
	return nil
}

// Logger returns a file logger when GRIDLAYOUT_DEBUG names a file, and a
// logger that drops everything otherwise. The file is opened once; later
// calls for the same path share the logger until Close.
func Logger() logr.Logger {
	s, err := Load()
	if err != nil || s.Path == "" {
		return logr.Discard()
	}

	mu.Lock()
	defer mu.Unlock()
	if logFile != nil && logPath == s.Path {
		return logger
	}
	l, err := open(s.Path, s.Verbosity)
	if err != nil {
		return logr.Discard()
	}
	return l
}
