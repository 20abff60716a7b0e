package main

import (
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"startup_pitcher/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web form and JSON API",
	RunE: func(cmd *cobra.Command, args []string) error {
		mock, _ := cmd.Flags().GetBool("mock")
		pipeline, err := buildPipeline(cfg, mock)
		if err != nil {
			return err
		}
		defaults := creds
		if mock {
			defaults = mockCredentials(defaults)
		}
		srv, err := server.New(pipeline, server.Options{Defaults: defaults, Logger: log.Default()})
		if err != nil {
			return err
		}

		listen := cfg.ServerAddr
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			listen = addr
		}
		log.Printf("Starting web server on %s", listen)
		return http.ListenAndServe(listen, srv.Routes())
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "http listen address (overrides server_addr)")
	serveCmd.Flags().Bool("mock", false, "use the offline model and canned search results")
	rootCmd.AddCommand(serveCmd)
}
