/*
Package config manages the TOML config for spelltrie.

The file is created with defaults on first run. Broken files are recovered
section by section, and any value that cannot be read keeps its default.
*/
package config

import (
	"path/filepath"

	"github.com/bastiangx/spelltrie/internal/utils"
	"github.com/charmbracelet/log"
)

// FileName is the config file name inside the config directory.
const FileName = "config.toml"

// Config holds the entire config structure
type Config struct {
	Dict   DictConfig   `toml:"dict"`
	Index  IndexConfig  `toml:"index"`
	CLI    CliConfig    `toml:"cli"`
	Server ServerConfig `toml:"server"`
}

// DictConfig holds dictionary options.
type DictConfig struct {
	Path string `toml:"path"`
}

// IndexConfig selects the word index implementation.
type IndexConfig struct {
	Backend string `toml:"backend"`
}

// CliConfig holds interactive menu options.
type CliConfig struct {
	DisplayLimit int  `toml:"display_limit"`
	MinLen       int  `toml:"min_len"`
	MaxLen       int  `toml:"max_len"`
	NoFilter     bool `toml:"no_filter"`
}

// ServerConfig has IPC server options.
type ServerConfig struct {
	DefaultLimit int `toml:"default_limit"`
	MaxLimit     int `toml:"max_limit"`
	MaxArgLen    int `toml:"max_arg_len"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Dict: DictConfig{
			Path: "words.txt",
		},
		Index: IndexConfig{
			Backend: "node",
		},
		CLI: CliConfig{
			DisplayLimit: 10,
			MinLen:       1,
			MaxLen:       64,
			NoFilter:     false,
		},
		Server: ServerConfig{
			DefaultLimit: 10,
			MaxLimit:     100,
			MaxArgLen:    64,
		},
	}
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. defaultPath (created with defaults when missing)
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath, defaultPath string) (*Config, string) {
	if customConfigPath != "" {
		if utils.FileExists(customConfigPath) {
			config, err := LoadConfig(customConfigPath)
			if err == nil {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath
			}
			log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
		} else {
			log.Warnf("Custom config file not found at %s. Trying default path...", customConfigPath)
		}
	}

	if defaultPath == "" {
		log.Warn("No default config path available. Using built-in defaults...")
		return DefaultConfig(), ""
	}

	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), ""
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML file. Values missing from the file keep their
// defaults, and out of range values are reset.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		config = tryPartialParse(configPath)
	}
	config.normalize()
	return config, nil
}

// tryPartialParse recovers every well-typed value from a config file that
// failed strict decoding.
func tryPartialParse(configPath string) *Config {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config
	}

	if section, ok := utils.ExtractSection(tempConfig, "dict"); ok {
		if val, ok := utils.ExtractString(section, "path"); ok {
			config.Dict.Path = val
		}
	}
	if section, ok := utils.ExtractSection(tempConfig, "index"); ok {
		if val, ok := utils.ExtractString(section, "backend"); ok {
			config.Index.Backend = val
		}
	}
	if section, ok := utils.ExtractSection(tempConfig, "cli"); ok {
		extractCliConfig(section, &config.CLI)
	}
	if section, ok := utils.ExtractSection(tempConfig, "server"); ok {
		extractServerConfig(section, &config.Server)
	}
	return config
}

// extractCliConfig extracts CLI config from a map
func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractInt64(data, "display_limit"); ok {
		cli.DisplayLimit = val
	}
	if val, ok := utils.ExtractInt64(data, "min_len"); ok {
		cli.MinLen = val
	}
	if val, ok := utils.ExtractInt64(data, "max_len"); ok {
		cli.MaxLen = val
	}
	if val, ok := utils.ExtractBool(data, "no_filter"); ok {
		cli.NoFilter = val
	}
}

// extractServerConfig extracts server configuration from a map
func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := utils.ExtractInt64(data, "default_limit"); ok {
		server.DefaultLimit = val
	}
	if val, ok := utils.ExtractInt64(data, "max_limit"); ok {
		server.MaxLimit = val
	}
	if val, ok := utils.ExtractInt64(data, "max_arg_len"); ok {
		server.MaxArgLen = val
	}
}

// normalize resets values that would make the collaborators misbehave.
func (c *Config) normalize() {
	def := DefaultConfig()

	if c.CLI.DisplayLimit < 1 {
		log.Warnf("cli.display_limit %d is invalid, using %d", c.CLI.DisplayLimit, def.CLI.DisplayLimit)
		c.CLI.DisplayLimit = def.CLI.DisplayLimit
	}
	if c.CLI.MinLen < 0 {
		c.CLI.MinLen = def.CLI.MinLen
	}
	if c.CLI.MaxLen < c.CLI.MinLen {
		log.Warnf("cli.max_len %d is below min_len %d, using %d", c.CLI.MaxLen, c.CLI.MinLen, def.CLI.MaxLen)
		c.CLI.MaxLen = def.CLI.MaxLen
	}
	if c.Server.MaxLimit < 1 {
		c.Server.MaxLimit = def.Server.MaxLimit
	}
	if c.Server.DefaultLimit < 1 || c.Server.DefaultLimit > c.Server.MaxLimit {
		c.Server.DefaultLimit = min(def.Server.DefaultLimit, c.Server.MaxLimit)
	}
	if c.Server.MaxArgLen < 1 {
		c.Server.MaxArgLen = def.Server.MaxArgLen
	}
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}
