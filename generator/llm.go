package generator

import "context"

// LLMClient abstracts the model provider so it can be swapped or mocked.
// Implementations run any tool calls the model requests from prompt.Tools
// and return the final assistant text.
type LLMClient interface {
	Complete(ctx context.Context, prompt Prompt) (string, error)
}

// LLMSettings is the base configuration handed to a concrete client.
type LLMSettings struct {
	Provider string
	Model    string
	APIKey   string
	BaseURL  string
}

// LLMFactory builds a client for one model using a session's API key.
type LLMFactory func(apiKey, model string) (LLMClient, error)

// OpenAIFactory returns an LLMFactory for OpenAI-compatible providers. The
// provider and base URL come from configuration; key and model per call.
func OpenAIFactory(provider, baseURL string) LLMFactory {
	return func(apiKey, model string) (LLMClient, error) {
		return NewOpenAILLMFromConfig(&LLMSettings{
			Provider: provider,
			Model:    model,
			APIKey:   apiKey,
			BaseURL:  baseURL,
		})
	}
}
