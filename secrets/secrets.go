// Package secrets loads API keys from a directory of plain-text files: the
// file name is the key name and the trimmed contents are the value.
//
// Recognized names: openai-api-key, serpapi-api-key.
package secrets

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"startup_pitcher/generator"
)

const (
	OpenAIKeyFile  = "openai-api-key"
	SerpAPIKeyFile = "serpapi-api-key"
)

// Load reads every regular, non-hidden file in dir. A missing directory
// yields an empty map; unreadable files are skipped with a warning.
func Load(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	out := make(map[string]string)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			log.Printf("[WARN] could not read secret %s: %v", name, err)
			continue
		}
		if v := strings.TrimSpace(string(data)); v != "" {
			out[name] = v
		}
	}
	return out, nil
}

// Credentials picks the pipeline keys out of a loaded secrets map.
func Credentials(m map[string]string) generator.Credentials {
	return generator.Credentials{
		OpenAIKey:  m[OpenAIKeyFile],
		SerpAPIKey: m[SerpAPIKeyFile],
	}
}
