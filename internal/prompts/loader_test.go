package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_RecommendPrompt(t *testing.T) {
	system, err := Get("recommend.json", "system")
	require.NoError(t, err)
	assert.Contains(t, system, "career advisor")
	assert.Contains(t, system, "recommended_courses")
}

func TestGet_MissingKey(t *testing.T) {
	_, err := Get("recommend.json", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope")
}

func TestGet_MissingFile(t *testing.T) {
	_, err := Get("missing.json", "system")
	require.Error(t, err)
}

func TestFormat(t *testing.T) {
	template := "User Name: {{.Name}}\n\nResponses:\n{{.Responses}}"
	out := Format(template, map[string]string{
		"Name":      "Ada Lovelace",
		"Responses": "Q: A",
	})
	assert.Equal(t, "User Name: Ada Lovelace\n\nResponses:\nQ: A", out)
	assert.False(t, strings.Contains(out, "{{"))
}

func TestMustGet_Panics(t *testing.T) {
	assert.Panics(t, func() {
		MustGet("missing.json", "system")
	})
}
