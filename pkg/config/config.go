/*
Package config manages TOML config for mdserve.
*/
package config

import (
	"os"
	"path/filepath"
	"runtime"
	"slices"

	"github.com/bastiangx/mdserve/internal/utils"
	"github.com/bastiangx/mdserve/pkg/suggest"
	"github.com/bastiangx/mdserve/pkg/symbols"
	"github.com/charmbracelet/log"
)

// FileName is the config file name inside the config directory.
const FileName = "config.toml"

// Config holds the entire config structure
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Completion CompletionConfig `toml:"completion"`
	CLI        CliConfig        `toml:"cli"`
}

// ServerConfig has server related options.
type ServerConfig struct {
	MaxDocumentBytes int    `toml:"max_document_bytes"`
	LogLevel         string `toml:"log_level"`
	WatchConfig      bool   `toml:"watch_config"`
}

// CompletionConfig switches completion domains and sets the environment
// names offered by the \begin snippet.
type CompletionConfig struct {
	Math         bool     `toml:"math"`
	References   bool     `toml:"references"`
	Anchors      bool     `toml:"anchors"`
	Environments []string `toml:"environments"`
}

// CliConfig holds cli interface options.
type CliConfig struct {
	DefaultLimit int `toml:"default_limit"`
}

// GetConfigDir returns the config directory with fallback priority:
// 1. platform config dir (XDG_CONFIG_HOME, ~/.config, %APPDATA%)
// 2. current executable dir
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		return utils.GetExecutableDir()
	}
	primaryPath := utils.ConfigDirFor(runtime.GOOS, homeDir, os.Getenv)
	if result := utils.CheckDirStatus(primaryPath); result.Writable {
		return primaryPath, nil
	}
	execDir, err := utils.GetExecutableDir()
	if err != nil {
		log.Errorf("Failed to get executable directory: %v", err)
		return "", err
	}
	return execDir, nil
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, FileName), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: [UserConfigDir]/mdserve/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
			if err != nil {
				log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}

	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			MaxDocumentBytes: 4 << 20,
			LogLevel:         "warn",
			WatchConfig:      true,
		},
		Completion: CompletionConfig{
			Math:         true,
			References:   true,
			Anchors:      true,
			Environments: append([]string(nil), symbols.DefaultEnvironments...),
		},
		CLI: CliConfig{
			DefaultLimit: 24,
		},
	}
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

// LoadConfig loads from a TOML file. Keys missing from the file keep their
// defaults.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

// tryPartialParse salvages the well-typed keys of a file that failed to
// decode as a whole.
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if serverSection, ok := utils.ExtractSection(tempConfig, "server"); ok {
		extractServerConfig(serverSection, &config.Server)
	}
	if completionSection, ok := utils.ExtractSection(tempConfig, "completion"); ok {
		extractCompletionConfig(completionSection, &config.Completion)
	}
	if cliSection, ok := utils.ExtractSection(tempConfig, "cli"); ok {
		extractCliConfig(cliSection, &config.CLI)
	}
	return config, nil
}

func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := utils.ExtractInt64(data, "max_document_bytes"); ok {
		server.MaxDocumentBytes = val
	}
	if val, ok := utils.ExtractString(data, "log_level"); ok {
		server.LogLevel = val
	}
	if val, ok := utils.ExtractBool(data, "watch_config"); ok {
		server.WatchConfig = val
	}
}

func extractCompletionConfig(data map[string]any, completion *CompletionConfig) {
	if val, ok := utils.ExtractBool(data, "math"); ok {
		completion.Math = val
	}
	if val, ok := utils.ExtractBool(data, "references"); ok {
		completion.References = val
	}
	if val, ok := utils.ExtractBool(data, "anchors"); ok {
		completion.Anchors = val
	}
	if val, ok := utils.ExtractStrings(data, "environments"); ok {
		completion.Environments = val
	}
}

func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractInt64(data, "default_limit"); ok {
		cli.DefaultLimit = val
	}
}

// RebuildConfigFile force creates a new config.toml at default
func RebuildConfigFile() error {
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		return err
	}
	if err := utils.EnsureDir(filepath.Dir(defaultPath)); err != nil {
		return err
	}
	return SaveConfig(DefaultConfig(), defaultPath)
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		if defaultPath, err := GetDefaultConfigPath(); err == nil {
			return defaultPath
		}
		return "unknown"
	}
	return utils.GetAbsolutePath(configPath)
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}

// EngineOptions translates the completion and server sections into engine
// options. A custom environment list gets its own catalog. The default or an
// empty list shares the process-wide one.
func (c *Config) EngineOptions() []suggest.Option {
	opts := []suggest.Option{
		suggest.WithDomains(c.Completion.Math, c.Completion.References, c.Completion.Anchors),
		suggest.WithMaxDocumentBytes(c.Server.MaxDocumentBytes),
	}
	envs := c.Completion.Environments
	if len(envs) > 0 && !slices.Equal(envs, symbols.DefaultEnvironments) {
		opts = append(opts, suggest.WithCatalog(symbols.Build(symbols.Categories, envs)))
	}
	return opts
}
