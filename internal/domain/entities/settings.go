package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	SettingsBackendFile      = "file"
	SettingsBackendExtension = "extension"

	defaultPollInterval = 500 * time.Millisecond
	defaultMergeTimeout = 2 * time.Minute
	defaultConcurrency  = 4
)

// Settings is the top-level configuration for releasekeeper.
type Settings struct {
	Organization        string        `yaml:"organization"`
	Token               string        `yaml:"token"`
	RawToken            string        `yaml:"-"` // token as written, before resolution
	Project             string        `yaml:"project"`
	AllowedRepositories []string      `yaml:"allowed_repositories"`
	Store               StoreSettings `yaml:"settings"`
	Merge               MergeSettings `yaml:"merge"`
	Scan                ScanSettings  `yaml:"scan"`
}

// StoreSettings selects where user and system settings are persisted.
type StoreSettings struct {
	Backend   string `yaml:"backend"`   // "file" or "extension"
	Path      string `yaml:"path"`      // file backend only
	Publisher string `yaml:"publisher"` // extension backend only
	Extension string `yaml:"extension"` // extension backend only
}

// MergeSettings tunes the merge polling loop.
type MergeSettings struct {
	PollInterval time.Duration `yaml:"poll_interval"`
	Timeout      time.Duration `yaml:"timeout"`
}

// ScanSettings bounds the release scan fan-out.
type ScanSettings struct {
	Concurrency int `yaml:"concurrency"`
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// NewSettings reads and parses a configuration file, expanding environment
// variables, resolving token file paths and applying defaults.
func NewSettings(path string) (*Settings, error) {
	settings, err := LoadSettings(path)
	if err != nil {
		return nil, err
	}

	if finalizeErr := settings.Finalize(); finalizeErr != nil {
		return nil, finalizeErr
	}
	return settings, nil
}

// LoadSettings parses a configuration file without validating it, so that
// command-line overrides can still be applied.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var settings Settings
	if unmarshalErr := yaml.Unmarshal(data, &settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	settings.SetToken(settings.Token)
	return &settings, nil
}

// SetToken stores a raw token value and its resolution.
func (s *Settings) SetToken(raw string) {
	s.RawToken = raw
	s.Token = ResolveToken(raw)
}

// Finalize applies defaults and validates the result.
func (s *Settings) Finalize() error {
	s.ApplyDefaults()
	return s.Validate()
}

// ApplyDefaults fills every unset tunable.
func (s *Settings) ApplyDefaults() {
	if s.Store.Backend == "" {
		s.Store.Backend = SettingsBackendFile
	}
	if s.Store.Backend == SettingsBackendFile && s.Store.Path == "" {
		s.Store.Path = defaultSettingsPath()
	}
	if s.Merge.PollInterval <= 0 {
		s.Merge.PollInterval = defaultPollInterval
	}
	if s.Merge.Timeout <= 0 {
		s.Merge.Timeout = defaultMergeTimeout
	}
	if s.Scan.Concurrency <= 0 {
		s.Scan.Concurrency = defaultConcurrency
	}
}

// Validate checks for required configuration values.
func (s *Settings) Validate() error {
	if s.Organization == "" {
		return fmt.Errorf("%w: organization is required", ErrValidation)
	}
	if s.Token == "" {
		return fmt.Errorf(
			"%w: token is required (set inline, via ${ENV_VAR}, or as file path)",
			ErrValidation,
		)
	}

	switch s.Store.Backend {
	case SettingsBackendFile:
	case SettingsBackendExtension:
		if s.Store.Publisher == "" || s.Store.Extension == "" {
			return fmt.Errorf(
				"%w: settings.publisher and settings.extension are required for the extension backend",
				ErrValidation,
			)
		}
	default:
		return fmt.Errorf("%w: unknown settings backend %q", ErrValidation, s.Store.Backend)
	}

	return nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".releasekeeper.yaml",
		".releasekeeper.yml",
		"releasekeeper.yaml",
		"releasekeeper.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// ResolveToken expands environment variable references (${VAR}) and, if the
// resulting string is a path to an existing file, reads the token from the file.
func ResolveToken(raw string) string {
	if raw == "" {
		return raw
	}

	resolved := envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})

	if _, statErr := os.Stat(resolved); statErr == nil {
		data, readErr := os.ReadFile(resolved)
		if readErr != nil {
			logger.Warnf("Failed to read token file %q: %v", resolved, readErr)
			return resolved
		}
		logger.Debugf("Read token from file %q", resolved)
		return strings.TrimSpace(string(data))
	}

	return resolved
}

func defaultSettingsPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "releasekeeper-settings.yaml"
	}
	return filepath.Join(homeDir, ".config", "releasekeeper", "settings.yaml")
}
