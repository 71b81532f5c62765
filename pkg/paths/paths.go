package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/arthur-debert/desks/pkg/errors"
)

// Environment variable names
const (
	// EnvDesksConfigDir overrides the XDG config directory for desks
	EnvDesksConfigDir = "DESKS_CONFIG_DIR"

	// EnvDesksStateDir overrides the XDG state directory for desks
	EnvDesksStateDir = "DESKS_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// DesksDirName is the directory name for desks-specific files
	DesksDirName = "desks"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.toml"

	// StateFileName is the name of the persisted binding file
	StateFileName = "state.toml"

	// LogFileName is the name of the log file
	LogFileName = "desks.log"

	// DefaultTempSuffix is appended to the anchor to name the directory the
	// original folder is moved to
	DefaultTempSuffix = "_desks_temp"

	// DefaultParkingSuffix is appended to the anchor to name the slot a live
	// link is parked in while it is being replaced
	DefaultParkingSuffix = "_desks_parked"
)

// Paths provides the locations of desks' own files
type Paths interface {
	ConfigDir() string
	StateDir() string
	ConfigFilePath() string
	StateFilePath() string
	LogFilePath() string
}

type paths struct {
	configDir string
	stateDir  string
}

// New resolves the config and state directories, honouring the DESKS_*
// overrides.
func New() (Paths, error) {
	p := &paths{}

	if dir := os.Getenv(EnvDesksConfigDir); dir != "" {
		p.configDir = expandHome(dir)
	} else {
		p.configDir = filepath.Join(xdg.ConfigHome, DesksDirName)
	}

	if dir := os.Getenv(EnvDesksStateDir); dir != "" {
		p.stateDir = expandHome(dir)
	} else {
		p.stateDir = filepath.Join(xdg.StateHome, DesksDirName)
	}

	for _, dir := range []*string{&p.configDir, &p.stateDir} {
		abs, err := filepath.Abs(*dir)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for %s", *dir)
		}
		*dir = abs
	}

	return p, nil
}

// ConfigDir returns the configuration directory
func (p *paths) ConfigDir() string {
	return p.configDir
}

// StateDir returns the directory holding the state and log files
func (p *paths) StateDir() string {
	return p.stateDir
}

// ConfigFilePath returns the user configuration file path
func (p *paths) ConfigFilePath() string {
	return filepath.Join(p.configDir, ConfigFileName)
}

// StateFilePath returns the persisted binding file path
func (p *paths) StateFilePath() string {
	return filepath.Join(p.stateDir, StateFileName)
}

// LogFilePath returns the log file path
func (p *paths) LogFilePath() string {
	return filepath.Join(p.stateDir, LogFileName)
}

// expandHome expands ~ to the home directory
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~someone else
	return path
}

// ExpandHome expands a leading ~ in path
func ExpandHome(path string) string {
	return expandHome(path)
}

// NormalizePath expands a leading ~, makes the path absolute and cleans it.
// Anything else, including a literal $ in a directory name, is kept as typed.
func NormalizePath(path string) (string, error) {
	if path == "" {
		return "", errors.New(errors.ErrInvalidInput, "empty path")
	}

	abs, err := filepath.Abs(expandHome(path))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path")
	}

	return filepath.Clean(abs), nil
}

// ExpandPath is NormalizePath for paths that come from the OS or from config
// files, which may hold %VAR%, $VAR or ${VAR} placeholders
func ExpandPath(path string) (string, error) {
	if path == "" {
		return "", errors.New(errors.ErrInvalidInput, "empty path")
	}

	expanded, err := ExpandPlaceholders(path)
	if err != nil {
		return "", err
	}
	return NormalizePath(expanded)
}
