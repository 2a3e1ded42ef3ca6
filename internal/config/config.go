// Package config provides Viper-based configuration loading for the combat simulator.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// WorldConfig holds the bounded world settings.
type WorldConfig struct {
	// Name is the world's display name.
	Name string `mapstructure:"name"`
	// MaxX is the inclusive upper bound of the X axis.
	MaxX int `mapstructure:"max_x"`
	// MaxY is the inclusive upper bound of the Y axis.
	MaxY int `mapstructure:"max_y"`
	// Difficulty is a free-form difficulty label carried into logs.
	Difficulty string `mapstructure:"difficulty"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
	// OutputPaths are zap sink URLs or file paths; empty means stderr.
	OutputPaths []string `mapstructure:"output_paths"`
}

// CombatLogConfig controls the dedicated combat event log.
type CombatLogConfig struct {
	Enabled bool `mapstructure:"enabled"`
	// Path is the file the combat log is written to.
	Path string `mapstructure:"path"`
	// Format is "json" or "console".
	Format string `mapstructure:"format"`
}

// ContentConfig points at the YAML and Lua content directories. Empty entries
// are skipped.
type ContentConfig struct {
	WeaponsDir    string `mapstructure:"weapons_dir"`
	ArmorDir      string `mapstructure:"armor_dir"`
	ArchetypesDir string `mapstructure:"archetypes_dir"`
	ScriptsDir    string `mapstructure:"scripts_dir"`
	// ScriptInstructionLimit caps Lua opcodes per modifier call; 0 uses the default.
	ScriptInstructionLimit int `mapstructure:"script_instruction_limit"`
}

// Config is the top-level application configuration.
type Config struct {
	World     WorldConfig     `mapstructure:"world"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	CombatLog CombatLogConfig `mapstructure:"combat_log"`
	Content   ContentConfig   `mapstructure:"content"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateWorld(c.World); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateCombatLog(c.CombatLog); err != nil {
		errs = append(errs, err.Error())
	}
	if c.Content.ScriptInstructionLimit < 0 {
		errs = append(errs, fmt.Sprintf("content.script_instruction_limit must be >= 0, got %d", c.Content.ScriptInstructionLimit))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateWorld(w WorldConfig) error {
	var errs []string
	if w.MaxX < 0 {
		errs = append(errs, fmt.Sprintf("world.max_x must be >= 0, got %d", w.MaxX))
	}
	if w.MaxY < 0 {
		errs = append(errs, fmt.Sprintf("world.max_y must be >= 0, got %d", w.MaxY))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	if !validFormat(l.Format) {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

func validateCombatLog(c CombatLogConfig) error {
	if !c.Enabled {
		return nil
	}
	var errs []string
	if c.Path == "" {
		errs = append(errs, "combat_log.path must not be empty when combat_log.enabled is true")
	}
	if !validFormat(c.Format) {
		errs = append(errs, fmt.Sprintf("combat_log.format must be one of [json, console], got %q", c.Format))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validFormat(f string) bool {
	return f == "json" || f == "console"
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result.
//
// Precondition: path must be a valid file path to a YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	// Environment variable overrides with SKIRMISH_ prefix
	v.SetEnvPrefix("SKIRMISH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	return LoadFromViper(v)
}

// Default returns the configuration built from defaults and SKIRMISH_ environment
// variables alone, for runs without a config file.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Default() (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SKIRMISH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("world.name", "Fantasy Realm")
	v.SetDefault("world.max_x", 100)
	v.SetDefault("world.max_y", 100)
	v.SetDefault("world.difficulty", "normal")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.output_paths", []string{"stderr"})

	v.SetDefault("combat_log.enabled", false)
	v.SetDefault("combat_log.path", "logs/combat.log")
	v.SetDefault("combat_log.format", "json")

	v.SetDefault("content.weapons_dir", "")
	v.SetDefault("content.armor_dir", "")
	v.SetDefault("content.archetypes_dir", "")
	v.SetDefault("content.scripts_dir", "")
	v.SetDefault("content.script_instruction_limit", 0)
}
