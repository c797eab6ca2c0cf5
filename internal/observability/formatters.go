// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jordan/career-compass/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintProfile outputs a human-readable summary of the user profile going
// into the prompt.
func (p *Printer) PrintProfile(profile *types.UserProfile) {
	if profile == nil || profile.User == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("User:     %s %s\n", profile.User.Forename, profile.User.FamilyName))
	sb.WriteString(fmt.Sprintf("Answers:  %d\n", len(profile.Questions)))

	count := min(len(profile.Questions), maxItemsToShow)
	if count > 0 {
		sb.WriteString("\n")
	}
	for i := 0; i < count; i++ {
		q := profile.Questions[i]
		question := q.Question
		if len(question) > 40 {
			question = question[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("• %s\n", question))
		answer := strings.Join(q.Answer, ", ")
		if len(answer) > 40 {
			answer = answer[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("  → %s\n", answer))
	}
	if len(profile.Questions) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more answers", len(profile.Questions)-maxItemsToShow))
	}

	p.printBox("USER PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRecommendation outputs the final recommendation with resolved URLs.
func (p *Printer) PrintRecommendation(result *types.RecommendationResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	summary := result.Summary
	if len(summary) > 100 {
		summary = summary[:97] + "..."
	}
	sb.WriteString("Summary:\n")
	for _, line := range wrap(summary, boxWidth-6) {
		sb.WriteString(fmt.Sprintf("  %s\n", line))
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Courses resolved: %d\n", len(result.RecommendedCourses)))

	count := min(len(result.RecommendedCourses), maxItemsToShow)
	for i := 0; i < count; i++ {
		course := result.RecommendedCourses[i]
		title := course.CourseTitle
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("\n#%d  %s (%s)\n", i+1, title, course.Provider))
		url := course.URL
		if len(url) > 48 {
			url = url[:45] + "..."
		}
		sb.WriteString(fmt.Sprintf("    %s\n", url))
	}

	if len(result.RecommendedCourses) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more courses", len(result.RecommendedCourses)-maxItemsToShow))
	}

	p.printBox("RECOMMENDATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintResolvedCourse outputs one resolution result, for the debug CLI.
func (p *Printer) PrintResolvedCourse(course *types.ResolvedCourse) {
	if course == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Title:     %s\n", course.CourseTitle))
	sb.WriteString(fmt.Sprintf("Provider:  %s\n", course.Provider))
	sb.WriteString(fmt.Sprintf("URL:       %s\n", course.URL))
	sb.WriteString(fmt.Sprintf("Image:     %s", course.Image))

	p.printBox("RESOLVED COURSE", sb.String())
}

// wrap splits text into lines no longer than width, breaking on spaces.
func wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		if len(current)+1+len(word) > width {
			lines = append(lines, current)
			current = word
			continue
		}
		current += " " + word
	}
	return append(lines, current)
}
