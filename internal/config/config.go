package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings holds per-workspace defaults for the aoc-admin commands.
type Settings struct {
	// BaseName is the package family name, e.g. "day".
	BaseName string `yaml:"base_name"`
	// Digits is the zero-padding width of package numbers.
	Digits uint8 `yaml:"digits"`
	// Year overrides the event year taken from the environment.
	Year uint16 `yaml:"year,omitempty"`
	// StrictToken requires the session token to be 128 hex characters.
	StrictToken bool `yaml:"strict_token"`
	// PackageManager is the program used to update and create packages.
	PackageManager string `yaml:"package_manager"`
	// BaseURL is the puzzle service address.
	BaseURL string `yaml:"base_url"`
	// UserAgent is sent with every puzzle request.
	UserAgent string `yaml:"user_agent,omitempty"`
}

const (
	// DefaultSettingsFilename is looked up in the workspace root.
	DefaultSettingsFilename = "aoc-admin.yaml"

	// DefaultBaseName is the package family used when nothing else is set.
	DefaultBaseName = "day"

	// DefaultDigits pads day numbers to two digits.
	DefaultDigits = 2

	// DefaultPackageManager is the package manager program.
	DefaultPackageManager = "cargo"

	// DefaultBaseURL is the puzzle service address.
	DefaultBaseURL = "https://adventofcode.com"

	// DefaultFilePermissions is used for files written by aoc-admin.
	DefaultFilePermissions = 0o644
)

var (
	// errSettingsIsNotSet is returned when nil settings are provided.
	errSettingsIsNotSet = errors.New("settings are not set")
	// errPackageManagerRequired is returned when the package manager program is blank.
	errPackageManagerRequired = errors.New("package manager must be provided")
)

// Default returns settings with every field at its default.
func Default() *Settings {
	return &Settings{
		BaseName:       DefaultBaseName,
		Digits:         DefaultDigits,
		PackageManager: DefaultPackageManager,
		BaseURL:        DefaultBaseURL,
	}
}

// Load reads settings from path and validates them.
// A missing file yields the defaults with ok set to false.
func Load(path string) (settings *Settings, ok bool, err error) {
	contents, err := os.ReadFile(filepath.Clean(path))
	if errors.Is(err, os.ErrNotExist) {
		return Default(), false, nil
	}

	if err != nil {
		return nil, false, fmt.Errorf("read settings: %w", err)
	}

	cfg := Default()
	if err = yaml.Unmarshal(contents, cfg); err != nil {
		return nil, false, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err = Validate(cfg); err != nil {
		return nil, false, err
	}

	return cfg, true, nil
}

// Save writes settings to path.
func Save(path string, cfg *Settings) error {
	if cfg == nil {
		return errSettingsIsNotSet
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	if err = os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate fills blank fields with defaults and checks the base URL.
func Validate(cfg *Settings) error {
	if cfg == nil {
		return errSettingsIsNotSet
	}

	if cfg.BaseName == "" {
		cfg.BaseName = DefaultBaseName
	}

	if cfg.PackageManager == "" {
		return errPackageManagerRequired
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	if _, err := url.ParseRequestURI(cfg.BaseURL); err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}

	return nil
}
