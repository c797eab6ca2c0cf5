package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jordan/career-compass/internal/config"
	"github.com/jordan/career-compass/internal/db"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the questionnaire into an empty database",
	Long:  "Inserts the default question set: core questions, one follow-up per industry, and the self-assessment block. Intended for a fresh database; running it twice duplicates questions.",
	RunE:  runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

// seedQuestion is one questionnaire entry. Order matters: follow-up
// selection in the recommendation prompt is keyed by question id.
type seedQuestion struct {
	question string
	options  []string
}

var defaultQuestions = []seedQuestion{
	{question: "What are your career goals?"},
	{question: "Which industry interests you most?", options: []string{
		"Technology & Software Development",
		"Retail & E-Commerce",
		"Finance & Banking",
		"Hospitality & Tourism",
		"Business & Marketing",
		"Language Studies",
		"Media & Entertainment",
	}},
	{question: "Which areas of technology interest you?", options: []string{
		"Web Development", "Mobile Development", "Data Science", "Cybersecurity", "Cloud & DevOps",
	}},
	{question: "Which areas of retail and e-commerce interest you?", options: []string{
		"Online Store Management", "Supply Chain", "Customer Experience", "Digital Merchandising",
	}},
	{question: "Which areas of finance interest you?", options: []string{
		"Accounting", "Investment", "Financial Analysis", "FinTech",
	}},
	{question: "Which areas of hospitality and tourism interest you?", options: []string{
		"Hotel Management", "Event Planning", "Travel Services", "Culinary Arts",
	}},
	{question: "Which areas of business and marketing interest you?", options: []string{
		"Digital Marketing", "Project Management", "Entrepreneurship", "Sales",
	}},
	{question: "Which languages would you like to study?", options: []string{
		"English", "Spanish", "German", "French", "Japanese", "Mandarin",
	}},
	{question: "Which areas of media and entertainment interest you?", options: []string{
		"Video Production", "Graphic Design", "Music Production", "Game Development",
	}},
	{question: "How do you prefer to learn?", options: []string{
		"Video lectures", "Hands-on projects", "Reading", "Live sessions",
	}},
	{question: "How much time can you dedicate to learning per week?", options: []string{
		"Less than 2 hours", "2-5 hours", "5-10 hours", "More than 10 hours",
	}},
	{question: "What is your current experience level?", options: []string{
		"Complete beginner", "Some experience", "Intermediate", "Advanced",
	}},
}

func runSeed(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	appCfg, err := config.Load()
	if err != nil {
		return err
	}

	database, err := db.Connect(ctx, appCfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	existing, err := database.ListQuestions(ctx)
	if err != nil {
		return fmt.Errorf("failed to check existing questions: %w", err)
	}
	if len(existing) > 0 {
		return fmt.Errorf("database already has %d questions; refusing to seed again", len(existing))
	}

	for _, q := range defaultQuestions {
		id, err := database.CreateQuestion(ctx, q.question)
		if err != nil {
			return err
		}
		if len(q.options) > 0 {
			if err := database.AddQuestionOptions(ctx, id, q.options); err != nil {
				return err
			}
		}
		fmt.Printf("Seeded question %d: %s\n", id, q.question)
	}

	return nil
}
