package secrets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"startup_pitcher/generator"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, OpenAIKeyFile), []byte("  sk-abc\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, SerpAPIKeyFile), []byte("serp-123"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden"), []byte("nope"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "empty"), []byte("\n"), 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o700))

	got, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		OpenAIKeyFile:  "sk-abc",
		SerpAPIKeyFile: "serp-123",
	}, got)

	assert.Equal(t, generator.Credentials{OpenAIKey: "sk-abc", SerpAPIKey: "serp-123"}, Credentials(got))
}

func TestLoadMissingDir(t *testing.T) {
	got, err := Load(filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, generator.Credentials{}, Credentials(got))
}
