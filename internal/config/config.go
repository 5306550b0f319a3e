package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const defaultCommandTimeout = 5 * time.Minute

// defaultCommands bootstrap a development checkout when no config file
// declares its own list.
var defaultCommands = []Command{
	{Name: "download modules", Args: []string{"go", "mod", "download"}},
	{Name: "verify modules", Args: []string{"go", "mod", "verify"}},
	{Name: "install hooks", Args: []string{"pre-commit", "install"}},
}

// Command is one command line to execute during environment setup.
type Command struct {
	Name string   `yaml:"name" validate:"required"`
	Args []string `yaml:"args" validate:"required,min=1,dive,required"`
}

// Config aggregates runtime configuration resolved from multiple sources.
// Precedence: CLI flags > YAML config > Environment variables > Defaults
type Config struct {
	Commands       []Command     `validate:"required,min=1,dive"`
	CommandTimeout time.Duration `validate:"min=0"`
	Verbose        bool
}

// yamlConfig represents the YAML configuration file structure.
type yamlConfig struct {
	Commands       []Command `yaml:"commands"`
	CommandTimeout string    `yaml:"command_timeout"`
	Verbose        *bool     `yaml:"verbose"`
}

// CLIOverrides holds command-line flag overrides.
type CLIOverrides struct {
	ConfigFile     string
	Verbose        *bool
	CommandTimeout *time.Duration
}

// Load extracts configuration from multiple sources with precedence:
// CLI flags > YAML config > Environment variables > Defaults
func Load(overrides *CLIOverrides) (Config, error) {
	cfg := defaultConfig()

	// Apply environment variables (override defaults)
	applyEnvConfig(&cfg)

	// Load from YAML file if specified
	if overrides != nil && overrides.ConfigFile != "" {
		yamlCfg, err := loadFromFile(overrides.ConfigFile)
		if err != nil {
			return Config{}, fmt.Errorf("load YAML config: %w", err)
		}
		applyYAMLConfig(&cfg, yamlCfg)
	}

	// Apply CLI overrides (highest precedence)
	if overrides != nil {
		applyCLIOverrides(&cfg, overrides)
	}

	// Validate final configuration
	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// defaultConfig returns a Config with default values.
func defaultConfig() Config {
	commands := make([]Command, len(defaultCommands))
	copy(commands, defaultCommands)

	return Config{
		Commands:       commands,
		CommandTimeout: defaultCommandTimeout,
		Verbose:        false,
	}
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return &yamlCfg, nil
}

// applyYAMLConfig applies YAML configuration to the Config struct.
func applyYAMLConfig(cfg *Config, yamlCfg *yamlConfig) {
	if len(yamlCfg.Commands) > 0 {
		cfg.Commands = yamlCfg.Commands
	}

	if yamlCfg.CommandTimeout != "" {
		if d, err := time.ParseDuration(yamlCfg.CommandTimeout); err == nil {
			cfg.CommandTimeout = d
		}
	}

	if yamlCfg.Verbose != nil {
		cfg.Verbose = *yamlCfg.Verbose
	}
}

// applyEnvConfig applies environment variable configuration.
func applyEnvConfig(cfg *Config) {
	if verbose := strings.TrimSpace(os.Getenv("ENVSETUP_VERBOSE")); verbose != "" {
		if value, err := strconv.ParseBool(verbose); err == nil {
			cfg.Verbose = value
		}
	}

	if timeout := strings.TrimSpace(os.Getenv("ENVSETUP_COMMAND_TIMEOUT")); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d >= 0 {
			cfg.CommandTimeout = d
		}
	}
}

// applyCLIOverrides applies command-line flag overrides.
func applyCLIOverrides(cfg *Config, overrides *CLIOverrides) {
	if overrides.Verbose != nil {
		cfg.Verbose = *overrides.Verbose
	}

	if overrides.CommandTimeout != nil && *overrides.CommandTimeout >= 0 {
		cfg.CommandTimeout = *overrides.CommandTimeout
	}
}
