package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "general software development", Normalize("General Software Development"))
	assert.Equal(t, "ci cd pipelines", Normalize("CI/CD  pipelines!"))
	assert.Equal(t, "", Normalize("  ---  "))
}

func TestContainsPhrase(t *testing.T) {
	text := Normalize("Full-Stack Web Development")
	assert.True(t, ContainsPhrase(text, "web"))
	assert.True(t, ContainsPhrase(text, "web development"))
	assert.False(t, ContainsPhrase(text, "webassembly"))
	assert.False(t, ContainsPhrase(text, ""))
}

func TestContainsAny(t *testing.T) {
	text := Normalize("Machine Learning & Data Science")
	assert.True(t, ContainsAny(text, "ml", "machine learning"))
	assert.False(t, ContainsAny(text, "web", "frontend"))
}
