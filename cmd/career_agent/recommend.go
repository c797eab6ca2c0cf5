package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jordan/career-compass/internal/config"
	"github.com/jordan/career-compass/internal/db"
	"github.com/jordan/career-compass/internal/llm"
	"github.com/jordan/career-compass/internal/observability"
	"github.com/jordan/career-compass/internal/recommend"
	"github.com/jordan/career-compass/internal/server"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Run the recommendation pipeline for one user",
	Long:  "Builds the prompt from the user's questionnaire answers, calls the model, resolves every suggested course to a validated URL, and saves the result. Prints the final recommendation as JSON.",
	RunE:  runRecommend,
}

var (
	recommendUserID  string
	recommendVerbose bool
)

func init() {
	recommendCmd.Flags().StringVarP(&recommendUserID, "user-id", "u", "", "User ID (required)")
	recommendCmd.Flags().BoolVarP(&recommendVerbose, "verbose", "v", false, "Print detailed progress information")

	if err := recommendCmd.MarkFlagRequired("user-id"); err != nil {
		panic(fmt.Sprintf("failed to mark user-id flag as required: %v", err))
	}

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	appCfg, err := config.Load()
	if err != nil {
		return err
	}
	if recommendVerbose {
		appCfg.Verbose = true
	}

	userID, err := uuid.Parse(recommendUserID)
	if err != nil {
		return fmt.Errorf("invalid user-id: %w", err)
	}

	database, err := db.Connect(ctx, appCfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	llmClient, err := llm.NewClient(ctx, llm.DefaultConfig(), appCfg.GeminiAPIKey)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer func() { _ = llmClient.Close() }()

	resolver := server.NewResolver(appCfg)
	pipeline := recommend.NewPipeline(database, llmClient, resolver, appCfg.Verbose)

	result, err := pipeline.Run(ctx, userID)
	if err != nil {
		return err
	}

	if appCfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintRecommendation(result)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}
