package workspaces_services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ValidateSlug_ValidSlugs_Accepted(t *testing.T) {
	validSlugs := []string{"ab", "my-team", "team-42", "a1", "x0-y1-z2"}

	for _, slug := range validSlugs {
		assert.NoError(t, validateSlug(slug), "slug %q should be valid", slug)
	}
}

func Test_ValidateSlug_InvalidSlugs_Rejected(t *testing.T) {
	invalidSlugs := []string{
		"",
		"a",
		"UPPER",
		"has space",
		"-leading",
		"trailing-",
		"under_score",
		"dots.here",
		"way-too-long-slug-exceeding-the-thirty-char-limit",
	}

	for _, slug := range invalidSlugs {
		assert.Error(t, validateSlug(slug), "slug %q should be rejected", slug)
	}
}

func Test_GenerateInvitationToken_ProducesUniqueTokens(t *testing.T) {
	first, err := generateInvitationToken()
	assert.NoError(t, err)

	second, err := generateInvitationToken()
	assert.NoError(t, err)

	assert.Len(t, first, 64)
	assert.NotEqual(t, first, second)
}
