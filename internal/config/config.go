// Package config provides configuration management for unitgraph
package config

import (
	"os"

	"github.com/spf13/viper"
)

// Provider defines the interface for configuration providers.
type Provider interface {
	// GetConfig returns the current application configuration.
	GetConfig() *Settings
	// SetConfig sets the application configuration.
	SetConfig(c *Settings)
	// InitConfig initializes the application configuration.
	InitConfig() *Settings
	// SetConfigFilePath sets the configuration file path.
	SetConfigFilePath(p string)
}

// defaultConfigProvider implements the Provider interface.
type defaultConfigProvider struct {
	cfg *Settings
}

// NewDefaultConfigProvider creates a new default config provider.
func NewDefaultConfigProvider() Provider {
	return &defaultConfigProvider{}
}

var defaultProvider = NewDefaultConfigProvider()
var cfg *Settings

// Default configuration values for unitgraph.
const (
	DefaultUnicode         = true
	DefaultPrecision       = 6
	DefaultConversionsFile = ""
	DefaultCacheDBPath     = "$HOME/.local/share/unitgraph/unitgraph.db"
	DefaultVerbose         = false
)

// Settings represents the configuration for unitgraph: output rendering,
// the optional user conversion table, and the factor cache database.
type Settings struct {
	Unicode         bool   `yaml:"unicode"`
	Precision       int    `yaml:"precision"`
	ConversionsFile string `yaml:"conversionsFile"`
	CacheDBPath     string `yaml:"cacheDBPath"`
	Verbose         bool   `yaml:"verbose"`
}

// Implementation of Provider methods for defaultConfigProvider

func (p *defaultConfigProvider) SetConfig(c *Settings) {
	p.cfg = c
}

func (p *defaultConfigProvider) GetConfig() *Settings {
	return p.cfg
}

func (p *defaultConfigProvider) SetConfigFilePath(path string) {
	viper.SetConfigFile(path)
}

func (p *defaultConfigProvider) InitConfig() *Settings {
	p.cfg = initConfigInternal()
	return p.cfg
}

// For backward compatibility - pass through to default provider

// SetConfig sets the application configuration.
func SetConfig(c *Settings) {
	defaultProvider.SetConfig(c)
	cfg = c
}

// GetConfig returns the current application configuration.
func GetConfig() *Settings {
	return defaultProvider.GetConfig()
}

// SetConfigFilePath sets the configuration file path.
func SetConfigFilePath(p string) {
	defaultProvider.SetConfigFilePath(p)
}

// InitConfig initializes the application configuration.
func InitConfig() *Settings {
	cfg = defaultProvider.InitConfig()
	return cfg
}

// Internal function to initialize configuration.
func initConfigInternal() *Settings {
	cfg := &Settings{
		Unicode:         DefaultUnicode,
		Precision:       DefaultPrecision,
		ConversionsFile: DefaultConversionsFile,
		CacheDBPath:     os.ExpandEnv(DefaultCacheDBPath),
		Verbose:         DefaultVerbose,
	}

	viper.SetDefault("unicode", DefaultUnicode)
	viper.SetDefault("precision", DefaultPrecision)
	viper.SetDefault("conversionsFile", DefaultConversionsFile)
	viper.SetDefault("cacheDBPath", os.ExpandEnv(DefaultCacheDBPath))
	viper.SetDefault("verbose", DefaultVerbose)

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(os.ExpandEnv("$HOME/.config/unitgraph"))
	viper.AddConfigPath("/etc/opt/unitgraph")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			panic(err)
		}
	}

	if err := viper.Unmarshal(cfg); err != nil {
		panic(err)
	}

	return cfg
}
