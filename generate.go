package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"startup_pitcher/generator"
	"startup_pitcher/render"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Research and generate a pitch deck from the terminal",
	Long: `Generate builds the brief from flags (or a YAML preferences file), runs the
research step and the pitch step, and prints the slides as two columns of cards.
Flags given on the command line override values from --prefs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		prefs, err := preferencesFromFlags(cmd)
		if err != nil {
			return err
		}
		mock, _ := cmd.Flags().GetBool("mock")
		pipeline, err := buildPipeline(cfg, mock)
		if err != nil {
			return err
		}

		c := creds
		if k, _ := cmd.Flags().GetString("openai-key"); k != "" {
			c.OpenAIKey = k
		}
		if k, _ := cmd.Flags().GetString("serp-key"); k != "" {
			c.SerpAPIKey = k
		}
		if mock {
			c = mockCredentials(c)
		}

		sess := generator.NewSession("cli", pipeline)
		sess.SetCredentials(c)
		fmt.Fprintln(os.Stderr, "Crafting your customized startup pitch deck...")
		pitch, err := sess.Generate(context.Background(), prefs)
		if err != nil {
			return err
		}

		width, _ := cmd.Flags().GetInt("width")
		fmt.Println(render.Terminal(generator.ParseSlides(pitch.Document), width))
		for _, w := range pitch.Warnings {
			fmt.Fprintln(os.Stderr, "warning:", w)
		}

		if out, _ := cmd.Flags().GetString("out"); out != "" {
			if err := os.WriteFile(out, []byte(pitch.Document), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}
			fmt.Fprintln(os.Stderr, "Pitch deck written to", out)
		}
		return nil
	},
}

// prefFlags maps flag names to the preference field they set.
var prefFlags = []struct {
	name  string
	usage string
	field func(*generator.Preferences) *string
}{
	{"name", "startup name", func(p *generator.Preferences) *string { return &p.Name }},
	{"one-liner", "one-line pitch", func(p *generator.Preferences) *string { return &p.OneLiner }},
	{"stage", "startup stage", func(p *generator.Preferences) *string { return &p.Stage }},
	{"length", "pitch length, e.g. \"7-slide concise deck\" or 7", func(p *generator.Preferences) *string { return &p.PitchLength }},
	{"problem", "problem you're solving", func(p *generator.Preferences) *string { return &p.Problem }},
	{"solution", "your core solution", func(p *generator.Preferences) *string { return &p.Solution }},
	{"market", "target customers", func(p *generator.Preferences) *string { return &p.TargetMarket }},
	{"unique", "what makes you unique", func(p *generator.Preferences) *string { return &p.Differentiator }},
	{"business-model", "how you will make money", func(p *generator.Preferences) *string { return &p.BusinessModel }},
	{"purpose", "purpose of the pitch", func(p *generator.Preferences) *string { return &p.PitchPurpose }},
}

func preferencesFromFlags(cmd *cobra.Command) (generator.Preferences, error) {
	var prefs generator.Preferences
	if path, _ := cmd.Flags().GetString("prefs"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return prefs, fmt.Errorf("reading preferences: %w", err)
		}
		if err := yaml.Unmarshal(data, &prefs); err != nil {
			return prefs, fmt.Errorf("parsing preferences: %w", err)
		}
	}
	for _, f := range prefFlags {
		if cmd.Flags().Changed(f.name) {
			v, _ := cmd.Flags().GetString(f.name)
			*f.field(&prefs) = v
		}
	}
	if prefs.Stage == "" {
		prefs.Stage = generator.Stages[0]
	}
	if prefs.PitchPurpose == "" {
		prefs.PitchPurpose = generator.Purposes[0]
	}
	if prefs.PitchLength == "" {
		def, _ := generator.OutlineFor(generator.DefaultPitchLength)
		prefs.PitchLength = def.Label
	} else if n, err := generator.ParsePitchLength(prefs.PitchLength); err == nil {
		o, _ := generator.OutlineFor(n)
		prefs.PitchLength = o.Label
	} else {
		return prefs, err
	}
	return prefs, nil
}

func mockCredentials(c generator.Credentials) generator.Credentials {
	if c.OpenAIKey == "" {
		c.OpenAIKey = "mock"
	}
	if c.SerpAPIKey == "" {
		c.SerpAPIKey = "mock"
	}
	return c
}

func addPreferenceFlags(cmd *cobra.Command) {
	cmd.Flags().String("prefs", "", "YAML file with startup preferences")
	for _, f := range prefFlags {
		cmd.Flags().String(f.name, "", f.usage)
	}
}

func init() {
	addPreferenceFlags(generateCmd)
	generateCmd.Flags().String("openai-key", "", "OpenAI API key (overrides secrets/config)")
	generateCmd.Flags().String("serp-key", "", "SerpAPI key (overrides secrets/config)")
	generateCmd.Flags().String("out", "", "write the raw pitch document to this file")
	generateCmd.Flags().Int("width", 120, "terminal width for the card layout")
	generateCmd.Flags().Bool("mock", false, "use the offline model and canned search results")
	rootCmd.AddCommand(generateCmd)
}
