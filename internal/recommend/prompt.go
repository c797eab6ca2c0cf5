// Package recommend orchestrates the recommendation pipeline: profile ->
// prompt -> model -> parsed suggestions -> resolved courses -> persistence.
package recommend

import (
	"fmt"
	"strings"

	"github.com/jordan/career-compass/internal/prompts"
	"github.com/jordan/career-compass/internal/types"
)

// basePromptQuestionIDs are the questionnaire questions every prompt
// includes: goals, industry choice, and the self-assessment block.
var basePromptQuestionIDs = []int{1, 2, 10, 11, 12}

// industryFollowUpIDs maps an industry answer to the id of its follow-up
// question. Only the follow-up matching the user's chosen industry is
// included in the prompt; the other branches are noise.
var industryFollowUpIDs = map[string]int{
	"Technology & Software Development": 3,
	"Retail & E-Commerce":               4,
	"Finance & Banking":                 5,
	"Hospitality & Tourism":             6,
	"Business & Marketing":              7,
	"Language Studies":                  8,
	"Media & Entertainment":             9,
}

// RelevantQuestionIDs returns the question ids worth sending to the model
// for the given answers: the base set plus the follow-up for whichever
// industry the user picked.
func RelevantQuestionIDs(answered []types.AnsweredQuestion) map[int]bool {
	relevant := make(map[int]bool, len(basePromptQuestionIDs)+1)
	for _, id := range basePromptQuestionIDs {
		relevant[id] = true
	}
	for _, q := range answered {
		for _, value := range q.Answer {
			if followUp, ok := industryFollowUpIDs[value]; ok {
				relevant[followUp] = true
			}
		}
	}
	return relevant
}

// BuildPrompt renders the recommendation prompt for a user profile. The
// system instructions come from the embedded prompt file; the user section
// carries the name and the relevant question/answer pairs.
func BuildPrompt(profile *types.UserProfile) (string, error) {
	if profile == nil || profile.User == nil {
		return "", fmt.Errorf("profile is incomplete")
	}
	if len(profile.Questions) == 0 {
		return "", fmt.Errorf("no questionnaire answers to build a prompt from")
	}

	system, err := prompts.Get("recommend.json", "system")
	if err != nil {
		return "", err
	}
	userTemplate, err := prompts.Get("recommend.json", "user")
	if err != nil {
		return "", err
	}

	relevant := RelevantQuestionIDs(profile.Questions)

	var responses strings.Builder
	for _, q := range profile.Questions {
		if !relevant[q.ID] {
			continue
		}
		fmt.Fprintf(&responses, "Q: %s\nA: %s\n\n", q.Question, strings.Join(q.Answer, ", "))
	}
	if responses.Len() == 0 {
		return "", fmt.Errorf("no relevant answers to build a prompt from")
	}

	user := prompts.Format(userTemplate, map[string]string{
		"Name":      strings.TrimSpace(profile.User.Forename + " " + profile.User.FamilyName),
		"Responses": strings.TrimSpace(responses.String()),
	})

	return system + "\n\n" + user, nil
}
