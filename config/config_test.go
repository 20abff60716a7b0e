package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"startup_pitcher/generator"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
}

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ServerAddr)
	assert.Equal(t, ".secrets", cfg.SecretsDir)
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, generator.DefaultResearchModel, cfg.LLM.ResearchModel)
	assert.Equal(t, generator.DefaultPitchModel, cfg.LLM.PitchModel)
	assert.Equal(t, 10, cfg.Search.NumResults)
	assert.Equal(t, 3, cfg.Search.MaxRetries)
	assert.Equal(t, 30*time.Second, cfg.Search.Timeout)
	assert.False(t, cfg.Verbose)
}

func TestLoadYAMLFile(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "pitcher.yaml", `
server_addr: ":9090"
verbose: true
llm:
  provider: deepseek
  base_url: https://api.deepseek.com/v1/
  research_model: deepseek-chat
  pitch_model: deepseek-reasoner
search:
  num_results: 5
  timeout: 10s
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.ServerAddr)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, "deepseek", cfg.LLM.Provider)
	assert.Equal(t, "https://api.deepseek.com/v1/", cfg.LLM.BaseURL)
	assert.Equal(t, "deepseek-chat", cfg.LLM.ResearchModel)
	assert.Equal(t, "deepseek-reasoner", cfg.LLM.PitchModel)
	assert.Equal(t, 5, cfg.Search.NumResults)
	assert.Equal(t, 10*time.Second, cfg.Search.Timeout)
	assert.Equal(t, 3, cfg.Search.MaxRetries)
}

func TestLoadEnvOverride(t *testing.T) {
	isolate(t)
	path := writeConfig(t, "pitcher.yaml", "llm:\n  pitch_model: from-file\n")
	t.Setenv("PITCHER_LLM_PITCH_MODEL", "from-env")
	t.Setenv("PITCHER_SEARCH_API_KEY", "serp-env")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.LLM.PitchModel)
	assert.Equal(t, "serp-env", cfg.Search.APIKey)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	isolate(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"zero value", Config{}, false},
		{"deepseek without base url", Config{LLM: LLMConfig{Provider: "deepseek"}}, true},
		{"deepseek with base url", Config{LLM: LLMConfig{Provider: "deepseek", BaseURL: "https://api.deepseek.com/v1/"}}, false},
		{"unknown provider", Config{LLM: LLMConfig{Provider: "anthropic"}}, true},
		{"too many results", Config{Search: SearchConfig{NumResults: 500}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.NotEmpty(t, tt.cfg.ServerAddr)
		})
	}
}
