// Package config loads runtime settings from a config file, PITCHER_*
// environment variables and built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"startup_pitcher/generator"
)

// EnvPrefix prefixes every environment override, e.g. PITCHER_LLM_MODEL.
const EnvPrefix = "PITCHER"

// Config holds the runtime configuration.
type Config struct {
	ServerAddr string       `mapstructure:"server_addr"`
	Verbose    bool         `mapstructure:"verbose"`
	SecretsDir string       `mapstructure:"secrets_dir"`
	LLM        LLMConfig    `mapstructure:"llm"`
	Search     SearchConfig `mapstructure:"search"`
}

// LLMConfig selects the generative text provider and the model of each step.
type LLMConfig struct {
	Provider      string `mapstructure:"provider"`
	BaseURL       string `mapstructure:"base_url"`
	APIKey        string `mapstructure:"api_key"`
	ResearchModel string `mapstructure:"research_model"`
	PitchModel    string `mapstructure:"pitch_model"`
}

// SearchConfig configures the SerpAPI client.
type SearchConfig struct {
	BaseURL    string        `mapstructure:"base_url"`
	APIKey     string        `mapstructure:"api_key"`
	NumResults int           `mapstructure:"num_results"`
	MaxRetries int           `mapstructure:"max_retries"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

// Load reads path if given, otherwise the first pitcher.{yaml,json} found in
// the working directory or ~/.config/startup-pitcher. A missing default file
// is not an error.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("pitcher")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "startup-pitcher"))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server_addr", ":8080")
	v.SetDefault("verbose", false)
	v.SetDefault("secrets_dir", ".secrets")
	v.SetDefault("llm.provider", "openai")
	v.SetDefault("llm.base_url", "")
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.research_model", generator.DefaultResearchModel)
	v.SetDefault("llm.pitch_model", generator.DefaultPitchModel)
	v.SetDefault("search.base_url", "")
	v.SetDefault("search.api_key", "")
	v.SetDefault("search.num_results", 10)
	v.SetDefault("search.max_retries", 3)
	v.SetDefault("search.timeout", 30*time.Second)
}

// ApplyDefaults fills zero values for configs built without Load.
func (c *Config) ApplyDefaults() {
	if c.ServerAddr == "" {
		c.ServerAddr = ":8080"
	}
	if c.LLM.Provider == "" {
		c.LLM.Provider = "openai"
	}
	if c.LLM.ResearchModel == "" {
		c.LLM.ResearchModel = generator.DefaultResearchModel
	}
	if c.LLM.PitchModel == "" {
		c.LLM.PitchModel = generator.DefaultPitchModel
	}
	if c.Search.NumResults <= 0 {
		c.Search.NumResults = 10
	}
	if c.Search.Timeout <= 0 {
		c.Search.Timeout = 30 * time.Second
	}
}

// Validate applies defaults and checks provider settings.
func (c *Config) Validate() error {
	c.ApplyDefaults()

	switch c.LLM.Provider {
	case "openai":
	case "deepseek":
		if c.LLM.BaseURL == "" {
			return errors.New("llm provider deepseek requires llm.base_url (OpenAI-compatible endpoint)")
		}
	default:
		return fmt.Errorf("llm provider %s not supported", c.LLM.Provider)
	}
	if c.Search.NumResults > 100 {
		return fmt.Errorf("search.num_results must be at most 100, got %d", c.Search.NumResults)
	}
	return nil
}
