package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"startup_pitcher/config"
	"startup_pitcher/generator"
	"startup_pitcher/search"
	"startup_pitcher/secrets"
)

var (
	cfgFile string
	verbose bool

	cfg   config.Config
	creds generator.Credentials
)

var rootCmd = &cobra.Command{
	Use:   "startup-pitcher",
	Short: "Research-grounded startup pitch decks from a short brief",
	Long: `startup-pitcher turns a structured startup description into a pitch deck.
It searches the web for real pitch examples, hands the findings and the brief to
a pitch-writing model, and lays the resulting slides out as two columns of cards.

Run "serve" for the web form or "generate" to build a deck from the terminal.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return err
		}
		if verbose {
			cfg.Verbose = true
		}
		s, err := secrets.Load(cfg.SecretsDir)
		if err != nil {
			return err
		}
		creds = secrets.Credentials(s)
		if cfg.LLM.APIKey != "" {
			creds.OpenAIKey = cfg.LLM.APIKey
		}
		if cfg.Search.APIKey != "" {
			creds.SerpAPIKey = cfg.Search.APIKey
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./pitcher.yaml or ~/.config/startup-pitcher/pitcher.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable info logs")
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildPipeline wires the configured providers, or offline stand-ins when mock is set.
func buildPipeline(cfg config.Config, mock bool) (*generator.Pipeline, error) {
	newLLM, newSearch := buildBackends(cfg)
	if mock {
		newLLM = func(string, string) (generator.LLMClient, error) { return generator.MockLLM{}, nil }
		newSearch = func(string) (generator.Searcher, error) { return search.SampleResults, nil }
	}
	return generator.NewPipeline(newLLM, newSearch, generator.PipelineOptions{
		ResearchModel: cfg.LLM.ResearchModel,
		PitchModel:    cfg.LLM.PitchModel,
		Logger:        log.Default(),
		Verbose:       cfg.Verbose,
	})
}

func buildBackends(cfg config.Config) (generator.LLMFactory, generator.SearchFactory) {
	var newLLM generator.LLMFactory
	switch cfg.LLM.Provider {
	case "openai", "deepseek":
		newLLM = generator.OpenAIFactory(cfg.LLM.Provider, cfg.LLM.BaseURL)
	default:
		newLLM = func(string, string) (generator.LLMClient, error) {
			return nil, fmt.Errorf("llm provider %s not supported", cfg.LLM.Provider)
		}
	}

	httpClient := &http.Client{Timeout: cfg.Search.Timeout}
	newSearch := func(apiKey string) (generator.Searcher, error) {
		return search.New(search.Config{
			APIKey:     apiKey,
			BaseURL:    cfg.Search.BaseURL,
			NumResults: cfg.Search.NumResults,
			MaxRetries: cfg.Search.MaxRetries,
			HTTPClient: httpClient,
		})
	}
	return newLLM, newSearch
}
