// Package main provides the entry point for the Career Compass service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "career_agent",
	Short: "Career Compass API server and tools",
	Long:  "Career Compass pairs a career-guidance questionnaire with AI-generated course recommendations, resolving every suggested course to a live, validated provider URL.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
