// Package paths resolves the directories figart reads from and writes to.
// It follows the XDG Base Directory specification through adrg/xdg and lets
// each directory be overridden with a FIGART_* environment variable.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for figart
	EnvConfigDir = "FIGART_CONFIG_DIR"

	// EnvDataDir overrides the XDG data directory for figart
	EnvDataDir = "FIGART_DATA_DIR"

	// EnvStateDir overrides the XDG state directory for figart
	EnvStateDir = "FIGART_STATE_DIR"
)

const (
	// AppDirName is the directory name used under each XDG base directory
	AppDirName = "figart"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.toml"

	// FontsDirName is the subdirectory of the data dir holding .flf fonts
	FontsDirName = "fonts"

	// LogFileName is the name of the log file
	LogFileName = "figart.log"
)

// Paths is a resolved set of figart directories.
type Paths struct {
	configDir string
	dataDir   string
	stateDir  string
}

// New resolves all directories from the environment.
func New() *Paths {
	return &Paths{
		configDir: resolve(EnvConfigDir, xdg.ConfigHome),
		dataDir:   resolve(EnvDataDir, xdg.DataHome),
		stateDir:  resolve(EnvStateDir, stateHome()),
	}
}

// ConfigDir returns the figart config directory
func (p *Paths) ConfigDir() string { return p.configDir }

// DataDir returns the figart data directory
func (p *Paths) DataDir() string { return p.dataDir }

// StateDir returns the figart state directory
func (p *Paths) StateDir() string { return p.stateDir }

// ConfigFile returns the path of the user configuration file
func (p *Paths) ConfigFile() string {
	return filepath.Join(p.configDir, ConfigFileName)
}

// FontsDir returns the directory scanned for user .flf fonts
func (p *Paths) FontsDir() string {
	return filepath.Join(p.dataDir, FontsDirName)
}

// LogFile returns the log file path
func (p *Paths) LogFile() string {
	return filepath.Join(p.stateDir, LogFileName)
}

// resolve prefers the override variable and otherwise nests AppDirName
// under the XDG base.
func resolve(envVar, base string) string {
	if dir := os.Getenv(envVar); dir != "" {
		return ExpandHome(dir)
	}
	return filepath.Join(base, AppDirName)
}

// stateHome reads XDG_STATE_HOME at call time so tests can point it at a
// temp dir without reloading xdg.
func stateHome() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return dir
	}
	return xdg.StateHome
}

// ExpandHome replaces a leading ~ with the user's home directory
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
