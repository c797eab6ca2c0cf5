package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jordan/career-compass/internal/observability"
	"github.com/jordan/career-compass/internal/resolve"
	"github.com/jordan/career-compass/internal/types"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve a single course title to a validated provider URL",
	Long:  "Debug tool for the resolution pipeline: slugifies the title, probes the provider's URL patterns, optionally scrapes the provider's search page, and falls back to a search URL. No database or API key needed.",
	RunE:  runResolve,
}

var (
	resolveTitle      string
	resolveProvider   string
	resolveUseScrape  bool
	resolveUseBrowser bool
	resolveTimeout    time.Duration
	resolveVerbose    bool
)

func init() {
	resolveCmd.Flags().StringVarP(&resolveTitle, "title", "t", "", "Course title (required)")
	resolveCmd.Flags().StringVarP(&resolveProvider, "provider", "p", "", "Provider name, e.g. Coursera (required)")
	resolveCmd.Flags().BoolVar(&resolveUseScrape, "scrape", false, "Also try scraping the provider's search page")
	resolveCmd.Flags().BoolVar(&resolveUseBrowser, "use-browser", false, "Render search pages in a headless browser (requires Chrome)")
	resolveCmd.Flags().DurationVar(&resolveTimeout, "timeout", 30*time.Second, "Total resolution budget")
	resolveCmd.Flags().BoolVarP(&resolveVerbose, "verbose", "v", false, "Print each probe attempt")

	if err := resolveCmd.MarkFlagRequired("title"); err != nil {
		panic(fmt.Sprintf("failed to mark title flag as required: %v", err))
	}
	if err := resolveCmd.MarkFlagRequired("provider"); err != nil {
		panic(fmt.Sprintf("failed to mark provider flag as required: %v", err))
	}

	rootCmd.AddCommand(resolveCmd)
}

func runResolve(_ *cobra.Command, _ []string) error {
	validator := resolve.NewValidator(5*time.Second, resolveVerbose)
	strategies := []resolve.Strategy{
		resolve.NewPatternDiscovery(validator, resolveVerbose),
	}
	if resolveUseScrape {
		strategies = append(strategies,
			resolve.NewScrapeDiscovery(validator, resolveUseBrowser, 10*time.Second, resolveVerbose))
	}

	resolver := resolve.NewResolver(strategies,
		resolve.WithTimeout(resolveTimeout),
		resolve.WithVerbose(resolveVerbose),
	)

	course := resolver.Resolve(context.Background(), types.CourseSuggestion{
		CourseTitle: resolveTitle,
		Provider:    resolveProvider,
	})

	observability.NewPrinter(os.Stdout).PrintResolvedCourse(&course)
	return nil
}
