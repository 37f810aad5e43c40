package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds the runtime settings of slacalc.
type Config struct {
	DBPath      string `yaml:"db_path"`
	ExportDir   string `yaml:"export_dir"`
	LogUseCases bool   `yaml:"log_use_cases"`
}

// Default returns the built-in settings: the database under ~/.slacalc and
// exports in the current directory.
func Default() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("finding home directory: %w", err)
	}
	return Config{
		DBPath:    filepath.Join(home, ".slacalc", "slacalc.db"),
		ExportDir: ".",
	}, nil
}

// Load applies, in order, the defaults, the optional YAML file and the
// SLACALC_* environment variables. A missing file is not an error.
func Load() (Config, error) {
	cfg, err := Default()
	if err != nil {
		return Config{}, err
	}

	path := os.Getenv("SLACALC_CONFIG")
	if path == "" {
		path = filepath.Join(filepath.Dir(cfg.DBPath), "config.yaml")
	}
	if err := loadFile(path, &cfg); err != nil {
		return Config{}, err
	}

	envOverride(&cfg.DBPath, "SLACALC_DB")
	envOverride(&cfg.ExportDir, "SLACALC_EXPORT_DIR")
	if err := envOverrideBool(&cfg.LogUseCases, "SLACALC_LOG_USE_CASES"); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

func envOverride(field *string, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		*field = val
	}
}

func envOverrideBool(field *bool, envKey string) error {
	val := os.Getenv(envKey)
	if val == "" {
		return nil
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", envKey, val, err)
	}
	*field = parsed
	return nil
}
