package workspaces_controllers

import (
	"net/http"
	"testing"
	"time"

	users_enums "workhub/internal/features/users/enums"
	users_testing "workhub/internal/features/users/testing"
	workspaces_dto "workhub/internal/features/workspaces/dto"
	workspaces_models "workhub/internal/features/workspaces/models"
	workspaces_repositories "workhub/internal/features/workspaces/repositories"
	workspaces_testing "workhub/internal/features/workspaces/testing"
	test_utils "workhub/internal/util/testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func Test_CreateWorkspace_WithValidData_WorkspaceCreated(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(GetWorkspaceController())
	user := users_testing.CreateTestUser()

	request := workspaces_dto.CreateWorkspaceRequestDTO{
		Name: "Engineering Team",
		Slug: workspaces_testing.UniqueSlug(),
	}

	var response workspaces_dto.CreateWorkspaceResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/workspaces",
		"Bearer "+user.Token,
		request,
		http.StatusCreated,
		&response,
	)

	assert.Equal(t, "Engineering Team", response.Workspace.Name)
	assert.Equal(t, request.Slug, response.Workspace.Slug)
	assert.Equal(t, user.UserID, response.Workspace.OwnerID)
	assert.NotEqual(t, uuid.Nil, response.Workspace.ID)
}

func Test_CreateWorkspace_WithUnicodeName_WorkspaceCreated(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(GetWorkspaceController())
	user := users_testing.CreateTestUser()

	// 5 characters, more than 5 bytes
	request := workspaces_dto.CreateWorkspaceRequestDTO{
		Name: "我的工作区",
		Slug: workspaces_testing.UniqueSlug(),
	}

	var response workspaces_dto.CreateWorkspaceResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/workspaces",
		"Bearer "+user.Token,
		request,
		http.StatusCreated,
		&response,
	)

	assert.Equal(t, "我的工作区", response.Workspace.Name)
}

func Test_CreateWorkspace_WithDuplicateSlug_ReturnsBadRequest(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(GetWorkspaceController())
	firstUser := users_testing.CreateTestUser()
	secondUser := users_testing.CreateTestUser()

	slug := workspaces_testing.UniqueSlug()

	test_utils.MakePostRequest(
		t,
		router,
		"/api/workspaces",
		"Bearer "+firstUser.Token,
		workspaces_dto.CreateWorkspaceRequestDTO{Name: "First Workspace", Slug: slug},
		http.StatusCreated,
	)

	resp := test_utils.MakePostRequest(
		t,
		router,
		"/api/workspaces",
		"Bearer "+secondUser.Token,
		workspaces_dto.CreateWorkspaceRequestDTO{Name: "Second Workspace", Slug: slug},
		http.StatusBadRequest,
	)

	assert.Contains(t, string(resp.Body), "workspace slug is already taken")
}

func Test_CreateWorkspace_WithTooShortName_ReturnsBadRequest(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(GetWorkspaceController())
	user := users_testing.CreateTestUser()

	resp := test_utils.MakePostRequest(
		t,
		router,
		"/api/workspaces",
		"Bearer "+user.Token,
		workspaces_dto.CreateWorkspaceRequestDTO{Name: "A", Slug: workspaces_testing.UniqueSlug()},
		http.StatusBadRequest,
	)

	assert.Contains(t, string(resp.Body), "workspace name must be between")
}

func Test_CreateWorkspace_WithInvalidSlug_ReturnsBadRequest(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(GetWorkspaceController())
	user := users_testing.CreateTestUser()

	invalidSlugs := []string{"UPPER", "has space", "-starts-with-hyphen", "ends-with-hyphen-", "a"}

	for _, slug := range invalidSlugs {
		resp := test_utils.MakePostRequest(
			t,
			router,
			"/api/workspaces",
			"Bearer "+user.Token,
			workspaces_dto.CreateWorkspaceRequestDTO{Name: "Valid Name", Slug: slug},
			http.StatusBadRequest,
		)

		assert.Contains(t, string(resp.Body), "workspace slug", "slug %q should be rejected", slug)
	}
}

func Test_CreateWorkspace_WithoutAuthentication_ReturnsUnauthorized(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(GetWorkspaceController())

	test_utils.MakePostRequest(
		t,
		router,
		"/api/workspaces",
		"",
		workspaces_dto.CreateWorkspaceRequestDTO{Name: "Nope", Slug: workspaces_testing.UniqueSlug()},
		http.StatusUnauthorized,
	)
}

func Test_ListWorkspaces_OwnedAndMemberWorkspaces_NoDuplicates(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(GetWorkspaceController())
	user := users_testing.CreateTestUser()
	otherUser := users_testing.CreateTestUser()

	owned := workspaces_testing.CreateTestWorkspace("Owned Workspace", user, router)
	foreign := workspaces_testing.CreateTestWorkspace("Foreign Workspace", otherUser, router)
	workspaces_testing.AddMemberToWorkspace(foreign.ID, user.UserID)

	var response workspaces_dto.ListWorkspacesResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/workspaces/me",
		"Bearer "+user.Token,
		http.StatusOK,
		&response,
	)

	seen := make(map[uuid.UUID]int)
	for _, workspace := range response.Workspaces {
		seen[workspace.ID]++
	}

	assert.Equal(t, 1, seen[owned.ID])
	assert.Equal(t, 1, seen[foreign.ID])
	for id, count := range seen {
		assert.Equal(t, 1, count, "workspace %s listed more than once", id)
	}
}

func Test_ListWorkspaces_ForeignWorkspace_NotListed(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(GetWorkspaceController())
	user := users_testing.CreateTestUser()
	otherUser := users_testing.CreateTestUser()

	foreign := workspaces_testing.CreateTestWorkspace("Private Workspace", otherUser, router)

	var response workspaces_dto.ListWorkspacesResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/workspaces/me",
		"Bearer "+user.Token,
		http.StatusOK,
		&response,
	)

	for _, workspace := range response.Workspaces {
		assert.NotEqual(t, foreign.ID, workspace.ID)
	}
}

func Test_ListMembers_OwnerWithMembershipRow_OwnerListedOnce(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(GetWorkspaceController())
	owner := users_testing.CreateTestUser()
	member := users_testing.CreateTestUser()

	workspace := workspaces_testing.CreateTestWorkspace("Roster Workspace", owner, router)
	workspaces_testing.AddMemberToWorkspace(workspace.ID, member.UserID)

	var response workspaces_dto.ListMembersResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/workspaces/"+workspace.ID.String()+"/members",
		"Bearer "+owner.Token,
		http.StatusOK,
		&response,
	)

	assert.Len(t, response.Members, 2)

	ownerCount := 0
	for _, m := range response.Members {
		if m.ID == owner.UserID {
			ownerCount++
			assert.Equal(t, users_enums.WorkspaceRoleOwner, m.Role)
		}
	}
	assert.Equal(t, 1, ownerCount)
}

func Test_ListMembers_OwnerWithoutMembershipRow_OwnerListedOnce(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(GetWorkspaceController())
	owner := users_testing.CreateTestUser()

	workspace := workspaces_testing.CreateBareWorkspace(owner.UserID)

	var response workspaces_dto.ListMembersResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/workspaces/"+workspace.ID.String()+"/members",
		"Bearer "+owner.Token,
		http.StatusOK,
		&response,
	)

	assert.Len(t, response.Members, 1)
	assert.Equal(t, owner.UserID, response.Members[0].ID)
	assert.Equal(t, users_enums.WorkspaceRoleOwner, response.Members[0].Role)
}

func Test_ListMembers_WithoutAccess_ReturnsForbidden(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(GetWorkspaceController())
	owner := users_testing.CreateTestUser()
	stranger := users_testing.CreateTestUser()

	workspace := workspaces_testing.CreateTestWorkspace("Closed Workspace", owner, router)

	resp := test_utils.MakeGetRequest(
		t,
		router,
		"/api/workspaces/"+workspace.ID.String()+"/members",
		"Bearer "+stranger.Token,
		http.StatusForbidden,
	)

	assert.Contains(t, string(resp.Body), "no access to this workspace")
}

func Test_ListMembers_NonexistentWorkspace_ReturnsForbidden(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(GetWorkspaceController())
	user := users_testing.CreateTestUser()

	test_utils.MakeGetRequest(
		t,
		router,
		"/api/workspaces/"+uuid.New().String()+"/members",
		"Bearer "+user.Token,
		http.StatusForbidden,
	)
}

func Test_CreateInvitation_WithValidEmail_InvitationCreated(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(GetWorkspaceController())
	owner := users_testing.CreateTestUser()

	workspace := workspaces_testing.CreateTestWorkspace("Inviting Workspace", owner, router)

	request := workspaces_dto.CreateInvitationRequestDTO{
		Email: "invitee@example.com",
		Role:  users_enums.WorkspaceRoleMember,
	}

	var response workspaces_dto.CreateInvitationResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/workspaces/"+workspace.ID.String()+"/invitations",
		"Bearer "+owner.Token,
		request,
		http.StatusCreated,
		&response,
	)

	assert.Equal(t, "invitee@example.com", response.Invitation.Email)
	assert.Equal(t, workspace.ID, response.Invitation.WorkspaceID)
	assert.NotEmpty(t, response.Invitation.Token)
}

func Test_CreateInvitation_DuplicatePendingEmail_ReturnsBadRequest(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(GetWorkspaceController())
	owner := users_testing.CreateTestUser()

	workspace := workspaces_testing.CreateTestWorkspace("Inviting Workspace", owner, router)

	request := workspaces_dto.CreateInvitationRequestDTO{Email: "repeat@example.com"}

	test_utils.MakePostRequest(
		t,
		router,
		"/api/workspaces/"+workspace.ID.String()+"/invitations",
		"Bearer "+owner.Token,
		request,
		http.StatusCreated,
	)

	resp := test_utils.MakePostRequest(
		t,
		router,
		"/api/workspaces/"+workspace.ID.String()+"/invitations",
		"Bearer "+owner.Token,
		request,
		http.StatusBadRequest,
	)

	assert.Contains(t, string(resp.Body), "already pending")
}

func Test_CreateInvitation_WithoutAccess_ReturnsForbidden(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(GetWorkspaceController())
	owner := users_testing.CreateTestUser()
	stranger := users_testing.CreateTestUser()

	workspace := workspaces_testing.CreateTestWorkspace("Closed Workspace", owner, router)

	test_utils.MakePostRequest(
		t,
		router,
		"/api/workspaces/"+workspace.ID.String()+"/invitations",
		"Bearer "+stranger.Token,
		workspaces_dto.CreateInvitationRequestDTO{Email: "someone@example.com"},
		http.StatusForbidden,
	)
}

func Test_AcceptInvitation_WithValidToken_MembershipGranted(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(GetWorkspaceController())
	owner := users_testing.CreateTestUser()
	invitee := users_testing.CreateTestUser()

	workspace := workspaces_testing.CreateTestWorkspace("Joining Workspace", owner, router)

	var created workspaces_dto.CreateInvitationResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/workspaces/"+workspace.ID.String()+"/invitations",
		"Bearer "+owner.Token,
		workspaces_dto.CreateInvitationRequestDTO{Email: invitee.Email},
		http.StatusCreated,
		&created,
	)

	var accepted workspaces_dto.AcceptInvitationResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/invitations/"+created.Invitation.Token+"/accept",
		"Bearer "+invitee.Token,
		nil,
		http.StatusOK,
		&accepted,
	)

	assert.Equal(t, workspace.ID, accepted.Workspace.ID)

	// membership is effective: the invitee can now read the roster
	var members workspaces_dto.ListMembersResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/workspaces/"+workspace.ID.String()+"/members",
		"Bearer "+invitee.Token,
		http.StatusOK,
		&members,
	)

	inviteeSeen := false
	for _, m := range members.Members {
		if m.ID == invitee.UserID {
			inviteeSeen = true
			assert.Equal(t, users_enums.WorkspaceRoleMember, m.Role)
		}
	}
	assert.True(t, inviteeSeen)
}

func Test_AcceptInvitation_SecondRedemption_ReturnsBadRequest(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(GetWorkspaceController())
	owner := users_testing.CreateTestUser()
	invitee := users_testing.CreateTestUser()

	workspace := workspaces_testing.CreateTestWorkspace("Joining Workspace", owner, router)

	var created workspaces_dto.CreateInvitationResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/workspaces/"+workspace.ID.String()+"/invitations",
		"Bearer "+owner.Token,
		workspaces_dto.CreateInvitationRequestDTO{Email: invitee.Email},
		http.StatusCreated,
		&created,
	)

	url := "/api/invitations/" + created.Invitation.Token + "/accept"
	test_utils.MakePostRequest(t, router, url, "Bearer "+invitee.Token, nil, http.StatusOK)

	resp := test_utils.MakePostRequest(t, router, url, "Bearer "+invitee.Token, nil, http.StatusBadRequest)
	assert.Contains(t, string(resp.Body), "invitation is no longer valid")
}

func Test_AcceptInvitation_WithForeignEmail_ReturnsBadRequest(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(GetWorkspaceController())
	owner := users_testing.CreateTestUser()
	stranger := users_testing.CreateTestUser()

	workspace := workspaces_testing.CreateTestWorkspace("Joining Workspace", owner, router)

	var created workspaces_dto.CreateInvitationResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/workspaces/"+workspace.ID.String()+"/invitations",
		"Bearer "+owner.Token,
		workspaces_dto.CreateInvitationRequestDTO{Email: "someone-else@example.com"},
		http.StatusCreated,
		&created,
	)

	resp := test_utils.MakePostRequest(
		t,
		router,
		"/api/invitations/"+created.Invitation.Token+"/accept",
		"Bearer "+stranger.Token,
		nil,
		http.StatusBadRequest,
	)

	assert.Contains(t, string(resp.Body), "invitation was issued for a different email")
}

func Test_AcceptInvitation_Expired_ReturnsBadRequestAndMarksExpired(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(GetWorkspaceController())
	owner := users_testing.CreateTestUser()
	invitee := users_testing.CreateTestUser()

	workspace := workspaces_testing.CreateTestWorkspace("Joining Workspace", owner, router)

	invitationRepository := &workspaces_repositories.InvitationRepository{}
	invitation := &workspaces_models.Invitation{
		WorkspaceID: workspace.ID,
		Email:       invitee.Email,
		Role:        users_enums.WorkspaceRoleMember,
		Token:       uuid.New().String(),
		InvitedBy:   owner.UserID,
		Status:      workspaces_models.InvitationStatusPending,
		ExpiresAt:   time.Now().UTC().Add(-time.Hour),
	}
	assert.NoError(t, invitationRepository.CreateInvitation(invitation))

	resp := test_utils.MakePostRequest(
		t,
		router,
		"/api/invitations/"+invitation.Token+"/accept",
		"Bearer "+invitee.Token,
		nil,
		http.StatusBadRequest,
	)
	assert.Contains(t, string(resp.Body), "invitation has expired")

	stored, err := invitationRepository.GetInvitationByToken(invitation.Token)
	assert.NoError(t, err)
	assert.Equal(t, workspaces_models.InvitationStatusExpired, stored.Status)
}

func Test_GetActivities_WorkspaceScoped_ReturnsOwnActivitiesOnly(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(GetWorkspaceController())
	user := users_testing.CreateTestUser()

	first := workspaces_testing.CreateTestWorkspace("First Workspace", user, router)
	second := workspaces_testing.CreateTestWorkspace("Second Workspace", user, router)

	resp := test_utils.MakeGetRequest(
		t,
		router,
		"/api/workspaces/"+first.ID.String()+"/activities",
		"Bearer "+user.Token,
		http.StatusOK,
	)

	body := string(resp.Body)
	assert.Contains(t, body, first.ID.String())
	assert.NotContains(t, body, second.ID.String())
}

func Test_GetActivities_WithoutAccess_ReturnsForbidden(t *testing.T) {
	router := workspaces_testing.CreateTestRouter(GetWorkspaceController())
	owner := users_testing.CreateTestUser()
	stranger := users_testing.CreateTestUser()

	workspace := workspaces_testing.CreateTestWorkspace("Audited Workspace", owner, router)

	test_utils.MakeGetRequest(
		t,
		router,
		"/api/workspaces/"+workspace.ID.String()+"/activities",
		"Bearer "+stranger.Token,
		http.StatusForbidden,
	)
}
