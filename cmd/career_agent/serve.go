package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jordan/career-compass/internal/config"
	"github.com/jordan/career-compass/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Career Compass HTTP API server",
	Long:  "Starts the REST API: auth, questionnaire, profile, courses, announcements, and recommendation runs. Requires DATABASE_URL and GEMINI_API_KEY.",
	RunE:  runServe,
}

var servePort int

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 8080, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	appCfg, err := config.Load()
	if err != nil {
		return err
	}

	srv, err := server.New(server.Config{
		Port: servePort,
		App:  appCfg,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
