// Package config resolves the funknotes home directory and reads
// config.yaml with viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Directory and file names under the home directory.
const (
	DefaultHomeDirName = ".funknotes"
	ProjectsDirName    = "projects"
	StateFileName      = "state.yaml"

	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"
)

// Environment variables. Every config key can also be set as
// FUNKNOTES_<KEY>, e.g. FUNKNOTES_STORAGE_FORMAT.
const (
	EnvPrefix = "FUNKNOTES"
	EnvHome   = "FUNKNOTES_HOME"
)

// Config keys
const (
	KeyStorageFormat = "storage_format"
	KeyEditor        = "editor"
)

// DefaultStorageFormat is used when nothing else selects a format
const DefaultStorageFormat = "json"

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# funknotes configuration

# Project file format: json, text or sqlite.
# Existing projects are only visible in the format they were written in.
storage_format: json

# Editor for "funknotes add --edit" (falls back to $EDITOR, then $VISUAL)
# editor: nvim
`

// platformDir holds lookups that tests override
var platformDir = struct {
	homeDir func() (string, error)
}{
	homeDir: os.UserHomeDir,
}

// Settings is the resolved configuration
type Settings struct {
	Home          string
	StorageFormat string
	Editor        string
	// ConfigFile is the file that was read, empty when none was found
	ConfigFile string
}

// ProjectsDir is the directory holding one file per project
func (s *Settings) ProjectsDir() string {
	return filepath.Join(s.Home, ProjectsDirName)
}

// StatePath is the file holding the primary project and index counter
func (s *Settings) StatePath() string {
	return filepath.Join(s.Home, StateFileName)
}

// DefaultHome returns ~/.funknotes
func DefaultHome() (string, error) {
	home, err := platformDir.homeDir()
	if err != nil {
		return "", fmt.Errorf("failed to find home directory: %w", err)
	}
	return filepath.Join(home, DefaultHomeDirName), nil
}

// ResolveHome returns the home directory following the precedence chain:
// flag > FUNKNOTES_HOME env > DefaultHome(). A leading ~ is expanded.
func ResolveHome(flag string) (string, error) {
	if flag != "" {
		return absolute(flag)
	}
	if env := os.Getenv(EnvHome); env != "" {
		return absolute(env)
	}
	return DefaultHome()
}

func absolute(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := platformDir.homeDir()
		if err != nil {
			return "", fmt.Errorf("failed to find home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	return filepath.Abs(path)
}

// Load reads config.yaml from home, creating home and a default config file
// on first run. Environment variables override the file, and flags bound in
// flags override both. A missing config.yaml is not an error.
func Load(home string, flags *pflag.FlagSet) (*Settings, error) {
	if err := os.MkdirAll(home, 0o755); err != nil {
		return nil, fmt.Errorf("ensure home dir: %w", err)
	}
	if err := ensureDefaultConfigFile(home); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(KeyStorageFormat, DefaultStorageFormat)
	v.SetDefault(KeyEditor, "")
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(home)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if flags != nil {
		if f := flags.Lookup("format"); f != nil {
			if err := v.BindPFlag(KeyStorageFormat, f); err != nil {
				return nil, fmt.Errorf("bind format flag: %w", err)
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return &Settings{
		Home:          home,
		StorageFormat: strings.ToLower(strings.TrimSpace(v.GetString(KeyStorageFormat))),
		Editor:        v.GetString(KeyEditor),
		ConfigFile:    v.ConfigFileUsed(),
	}, nil
}

// ensureDefaultConfigFile creates a default config.yaml if none exists
func ensureDefaultConfigFile(home string) error {
	path := filepath.Join(home, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
