package recommend

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jordan/career-compass/internal/types"
)

func testProfile() *types.UserProfile {
	return &types.UserProfile{
		User: &types.User{
			ID:         uuid.New(),
			Forename:   "Ada",
			FamilyName: "Lovelace",
		},
		Questions: []types.AnsweredQuestion{
			{ID: 1, Question: "What are your career goals?", Answer: []string{"Become a software engineer"}},
			{ID: 2, Question: "Which industry interests you most?", Answer: []string{"Technology & Software Development"}},
			{ID: 3, Question: "Which areas of technology interest you?", Answer: []string{"Backend", "Databases"}},
			{ID: 5, Question: "Which areas of finance interest you?", Answer: []string{"Accounting"}},
			{ID: 10, Question: "How do you prefer to learn?", Answer: []string{"Hands-on projects"}},
		},
	}
}

func TestRelevantQuestionIDs(t *testing.T) {
	relevant := RelevantQuestionIDs(testProfile().Questions)

	for _, id := range []int{1, 2, 10, 11, 12} {
		assert.True(t, relevant[id], "base question %d must be relevant", id)
	}
	// Follow-up for the chosen industry is included.
	assert.True(t, relevant[3])
	// Follow-ups for industries the user did not pick are not.
	assert.False(t, relevant[5])
}

func TestRelevantQuestionIDs_NoIndustryAnswer(t *testing.T) {
	relevant := RelevantQuestionIDs([]types.AnsweredQuestion{
		{ID: 1, Question: "Goals?", Answer: []string{"Learn"}},
	})
	assert.Len(t, relevant, len([]int{1, 2, 10, 11, 12}))
}

func TestBuildPrompt(t *testing.T) {
	prompt, err := BuildPrompt(testProfile())
	require.NoError(t, err)

	assert.Contains(t, prompt, "Ada Lovelace")
	assert.Contains(t, prompt, "What are your career goals?")
	assert.Contains(t, prompt, "Backend, Databases")
	assert.Contains(t, prompt, "recommended_courses")
	// The unchosen industry branch is filtered out.
	assert.NotContains(t, prompt, "areas of finance")
}

func TestBuildPrompt_FiltersToRelevant(t *testing.T) {
	profile := testProfile()
	prompt, err := BuildPrompt(profile)
	require.NoError(t, err)

	qCount := strings.Count(prompt, "Q: ")
	assert.Equal(t, 4, qCount) // ids 1, 2, 3, 10
}

func TestBuildPrompt_IncompleteProfile(t *testing.T) {
	_, err := BuildPrompt(nil)
	require.Error(t, err)

	_, err = BuildPrompt(&types.UserProfile{User: &types.User{Forename: "Ada"}})
	require.Error(t, err)
}

func TestBuildPrompt_OnlyIrrelevantAnswers(t *testing.T) {
	_, err := BuildPrompt(&types.UserProfile{
		User: &types.User{Forename: "Ada"},
		Questions: []types.AnsweredQuestion{
			{ID: 42, Question: "Off-script question", Answer: []string{"yes"}},
		},
	})
	require.Error(t, err)
}
