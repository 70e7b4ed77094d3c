package projects_services

import (
	"testing"

	users_enums "workhub/internal/features/users/enums"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func Test_BuildMemberships_LeadDuplicatedInMembers_CountedOnce(t *testing.T) {
	projectID := uuid.New()
	leadID := uuid.New()
	memberID := uuid.New()

	memberships := buildMemberships(projectID, &leadID, []uuid.UUID{leadID, memberID, memberID})

	assert.Len(t, memberships, 2)
	assert.Equal(t, leadID, memberships[0].UserID)
	assert.Equal(t, users_enums.ProjectRoleLead, memberships[0].Role)
	assert.Equal(t, memberID, memberships[1].UserID)
	assert.Equal(t, users_enums.ProjectRoleMember, memberships[1].Role)
}

func Test_BuildMemberships_NoLeadNoMembers_Empty(t *testing.T) {
	memberships := buildMemberships(uuid.New(), nil, nil)
	assert.Empty(t, memberships)
}

func Test_ParseDate_ValidDate_Normalized(t *testing.T) {
	raw := " 2026-03-15 "

	parsed, err := parseDate(&raw)

	assert.NoError(t, err)
	assert.Equal(t, "2026-03-15", *parsed)
}

func Test_ParseDate_NilOrEmpty_ReturnsNil(t *testing.T) {
	empty := "  "

	parsed, err := parseDate(nil)
	assert.NoError(t, err)
	assert.Nil(t, parsed)

	parsed, err = parseDate(&empty)
	assert.NoError(t, err)
	assert.Nil(t, parsed)
}

func Test_ParseDate_WrongFormats_Rejected(t *testing.T) {
	wrongFormats := []string{"2026/03/15", "15-03-2026", "2026-3-5", "2026-03-15T00:00:00Z", "not a date"}

	for _, raw := range wrongFormats {
		value := raw
		_, err := parseDate(&value)
		assert.Error(t, err, "date %q should be rejected", raw)
	}
}

func Test_ParseWorkspaceID_MissingOrInvalid_DistinctErrors(t *testing.T) {
	_, err := parseWorkspaceID("")
	assert.EqualError(t, err, "workspace id is required")

	_, err = parseWorkspaceID("not-a-uuid")
	assert.EqualError(t, err, "invalid workspace id")

	id := uuid.New()
	parsed, err := parseWorkspaceID(id.String())
	assert.NoError(t, err)
	assert.Equal(t, id, parsed)
}
