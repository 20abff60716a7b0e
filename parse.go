package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"startup_pitcher/generator"
	"startup_pitcher/render"
)

var parseCmd = &cobra.Command{
	Use:   "parse <pitch-file>",
	Short: "Split an existing pitch document into slides",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		doc := string(data)
		slides := generator.ParseSlides(doc)

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(slides); err != nil {
				return err
			}
		} else {
			width, _ := cmd.Flags().GetInt("width")
			fmt.Println(render.Terminal(slides, width))
		}

		for _, w := range generator.LintSlides(doc) {
			fmt.Fprintln(os.Stderr, "warning:", w)
		}
		if n, _ := cmd.Flags().GetString("length"); n != "" {
			length, err := generator.ParsePitchLength(n)
			if err != nil {
				return err
			}
			outline, _ := generator.OutlineFor(length)
			for _, p := range outline.Check(slides) {
				fmt.Fprintln(os.Stderr, "outline:", p)
			}
		}
		return nil
	},
}

var outlinesCmd = &cobra.Command{
	Use:   "outlines",
	Short: "List the slide outline for every pitch length",
	Run: func(cmd *cobra.Command, args []string) {
		for _, o := range generator.Outlines() {
			fmt.Printf("%-28s %s\n", o.Label, strings.Join(o.Titles, ", "))
		}
	},
}

func init() {
	parseCmd.Flags().Bool("json", false, "print slides as JSON")
	parseCmd.Flags().Int("width", 120, "terminal width for the card layout")
	parseCmd.Flags().String("length", "", "check the slides against this pitch length's outline")
	rootCmd.AddCommand(parseCmd, outlinesCmd)
}
