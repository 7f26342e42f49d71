// Package settings loads and saves the launcher's TOML settings file.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

const AppName = "Skybound"
const AppVersion = "1.3.0"

// Settings holds everything the launcher persists between runs.
type Settings struct {
	Meta struct {
		Path string `toml:"-"`
	} `toml:"-"`
	General   GeneralSettings   `toml:"general"`
	Targets   TargetSettings    `toml:"targets"`
	Telemetry TelemetrySettings `toml:"telemetry"`
}

type GeneralSettings struct {
	AppDir          string `toml:"app_dir"`
	DebugLogging    bool   `toml:"debug_logging"`
	ConfirmLaunches bool   `toml:"confirm_launches"`
	MultiInstance   bool   `toml:"multi_instance"`
	HelpURL         string `toml:"help_url"`
}

type TargetSettings struct {
	ClientBinary string `toml:"client_binary"`
	StudioBinary string `toml:"studio_binary"`
	PayloadURL   string `toml:"payload_url"`
}

type TelemetrySettings struct {
	ErrorReporting bool `toml:"error_reporting"`
}

func defaultSettingsPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "skybound", "launcher.toml"), nil
}

// Default returns the settings written on first run.
func Default() (*Settings, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home dir: %w", err)
	}

	appDir := filepath.Join(home, ".local", "share", "skybound")
	s := &Settings{}
	s.General.AppDir = appDir
	s.General.DebugLogging = false
	s.General.ConfirmLaunches = true
	s.General.MultiInstance = false
	s.General.HelpURL = "https://skybound.example.com/help/media-components"
	s.Targets.ClientBinary = "SkyboundClient"
	s.Targets.StudioBinary = "SkyboundStudio"
	s.Targets.PayloadURL = ""
	s.Telemetry.ErrorReporting = false
	return s, nil
}

// LoadOrCreate reads the settings file at path, or writes defaults there if
// it does not exist yet. An empty path selects the standard location.
func LoadOrCreate(path string) (*Settings, error) {
	var err error
	if path == "" {
		path, err = defaultSettingsPath()
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		s, err := Default()
		if err != nil {
			return nil, err
		}
		s.Meta.Path = path
		if err := s.Save(); err != nil {
			return nil, err
		}
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	s := &Settings{}
	if err := toml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	s.Meta.Path = path
	return s, nil
}

// Save writes the settings back to their file.
func (s *Settings) Save() error {
	if s.Meta.Path == "" {
		return errors.New("settings have no path")
	}
	if err := os.MkdirAll(filepath.Dir(s.Meta.Path), 0755); err != nil {
		return fmt.Errorf("failed to create settings dir: %w", err)
	}
	data, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := os.WriteFile(s.Meta.Path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}

// LogPath returns the rotating log file location inside the app dir.
func (s *Settings) LogPath() string {
	return filepath.Join(s.General.AppDir, "logs", "launcher.log")
}
