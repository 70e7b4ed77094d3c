package workspaces_services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"workhub/internal/features/activities"
	users_enums "workhub/internal/features/users/enums"
	users_models "workhub/internal/features/users/models"
	users_services "workhub/internal/features/users/services"
	workspaces_dto "workhub/internal/features/workspaces/dto"
	workspaces_models "workhub/internal/features/workspaces/models"
	workspaces_repositories "workhub/internal/features/workspaces/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	workspaceNameMinLength = 2
	workspaceNameMaxLength = 50
	workspaceSlugMinLength = 2
	workspaceSlugMaxLength = 30

	invitationLifetime = 7 * 24 * time.Hour
)

// ErrWorkspaceAccessDenied covers both a workspace the user cannot see and
// a workspace that does not exist. Controllers map it to 403 without
// distinguishing the two cases.
var ErrWorkspaceAccessDenied = errors.New("no access to this workspace")

// slugRegex allows lowercase alphanumerics with interior hyphens. A single
// character slug is valid by shape but rejected by the length check.
var slugRegex = regexp.MustCompile(`^[a-z0-9]$|^[a-z0-9][a-z0-9-]*[a-z0-9]$`)

type WorkspaceService struct {
	workspaceRepository  *workspaces_repositories.WorkspaceRepository
	membershipRepository *workspaces_repositories.MembershipRepository
	invitationRepository *workspaces_repositories.InvitationRepository
	activityService      *activities.ActivityService
	userService          *users_services.UserService
}

func (s *WorkspaceService) CreateWorkspace(
	request *workspaces_dto.CreateWorkspaceRequestDTO,
	user *users_models.User,
) (*workspaces_models.Workspace, error) {
	name := strings.TrimSpace(request.Name)
	if utf8.RuneCountInString(name) < workspaceNameMinLength ||
		utf8.RuneCountInString(name) > workspaceNameMaxLength {
		return nil, fmt.Errorf(
			"workspace name must be between %d and %d characters",
			workspaceNameMinLength, workspaceNameMaxLength,
		)
	}

	slug := strings.TrimSpace(request.Slug)
	if err := validateSlug(slug); err != nil {
		return nil, err
	}

	// Friendly pre-check. The unique index on workspaces.slug is the
	// authority when two requests race past it.
	existing, err := s.workspaceRepository.GetWorkspaceBySlug(slug)
	if err != nil {
		return nil, fmt.Errorf("failed to check workspace slug: %w", err)
	}
	if existing != nil {
		return nil, errors.New("workspace slug is already taken")
	}

	workspace := &workspaces_models.Workspace{
		ID:      uuid.New(),
		Name:    name,
		Slug:    slug,
		OwnerID: user.ID,
	}

	ownerMembership := &workspaces_models.WorkspaceMembership{
		UserID: user.ID,
		Role:   users_enums.WorkspaceRoleOwner,
	}

	if err = s.workspaceRepository.CreateWorkspaceWithOwner(workspace, ownerMembership); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errors.New("workspace slug is already taken")
		}

		return nil, fmt.Errorf("failed to create workspace: %w", err)
	}

	s.activityService.RecordActivity(
		workspace.ID, user.ID,
		"workspace.created", "workspace", workspace.ID,
		map[string]any{"name": workspace.Name, "slug": workspace.Slug},
	)

	return workspace, nil
}

func (s *WorkspaceService) ListWorkspaces(user *users_models.User) ([]workspaces_models.Workspace, error) {
	workspaces, err := s.workspaceRepository.GetWorkspacesForUser(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list workspaces: %w", err)
	}

	return workspaces, nil
}

// ListMembers returns the member roster of a workspace the user can access.
// The owner appears exactly once: either through their membership row, or
// appended from the workspace record when no such row exists.
func (s *WorkspaceService) ListMembers(
	workspaceID uuid.UUID,
	user *users_models.User,
) ([]*workspaces_dto.WorkspaceMemberDTO, error) {
	workspace, err := s.ResolveWorkspaceAccess(workspaceID, user)
	if err != nil {
		return nil, err
	}

	rows, err := s.membershipRepository.GetMemberRows(workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list workspace members: %w", err)
	}

	members := make([]*workspaces_dto.WorkspaceMemberDTO, 0, len(rows)+1)
	ownerSeen := false

	for _, row := range rows {
		if row.UserID == workspace.OwnerID {
			ownerSeen = true
		}

		members = append(members, &workspaces_dto.WorkspaceMemberDTO{
			ID:    row.UserID,
			Name:  row.Name,
			Email: row.Email,
			Image: row.Image,
			Role:  users_enums.WorkspaceRole(row.Role),
		})
	}

	if !ownerSeen {
		owner, err := s.getOwnerMember(workspace)
		if err != nil {
			return nil, err
		}
		if owner != nil {
			members = append(members, owner)
		}
	}

	return members, nil
}

func (s *WorkspaceService) CreateInvitation(
	workspaceID uuid.UUID,
	request *workspaces_dto.CreateInvitationRequestDTO,
	user *users_models.User,
) (*workspaces_models.Invitation, error) {
	role := request.Role
	if role == "" {
		role = users_enums.WorkspaceRoleMember
	}
	if !role.IsValid() || role == users_enums.WorkspaceRoleOwner {
		return nil, errors.New("invalid invitation role")
	}

	if _, err := s.ResolveWorkspaceAccess(workspaceID, user); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(request.Email))

	pending, err := s.invitationRepository.GetPendingInvitation(workspaceID, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check pending invitations: %w", err)
	}
	if pending != nil {
		return nil, errors.New("an invitation for this email is already pending")
	}

	token, err := generateInvitationToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invitation token: %w", err)
	}

	invitation := &workspaces_models.Invitation{
		WorkspaceID: workspaceID,
		Email:       email,
		Role:        role,
		Token:       token,
		InvitedBy:   user.ID,
		Status:      workspaces_models.InvitationStatusPending,
		ExpiresAt:   time.Now().UTC().Add(invitationLifetime),
	}

	if err = s.invitationRepository.CreateInvitation(invitation); err != nil {
		return nil, fmt.Errorf("failed to create invitation: %w", err)
	}

	s.activityService.RecordActivity(
		workspaceID, user.ID,
		"invitation.created", "invitation", invitation.ID,
		map[string]any{"email": email, "role": string(role)},
	)

	return invitation, nil
}

// AcceptInvitation redeems a pending invitation token for the signed-in
// user. The invitation email must match the user's email; redeeming grants a
// membership with the invited role and consumes the invitation.
func (s *WorkspaceService) AcceptInvitation(
	token string,
	user *users_models.User,
) (*workspaces_models.Workspace, error) {
	invitation, err := s.invitationRepository.GetInvitationByToken(token)
	if err != nil {
		return nil, fmt.Errorf("failed to look up invitation: %w", err)
	}
	if invitation == nil {
		return nil, errors.New("invitation not found")
	}

	if invitation.Status != workspaces_models.InvitationStatusPending {
		return nil, errors.New("invitation is no longer valid")
	}

	if time.Now().UTC().After(invitation.ExpiresAt) {
		if err = s.invitationRepository.UpdateInvitationStatus(
			invitation.ID, workspaces_models.InvitationStatusExpired,
		); err != nil {
			return nil, fmt.Errorf("failed to expire invitation: %w", err)
		}

		return nil, errors.New("invitation has expired")
	}

	if !strings.EqualFold(invitation.Email, user.Email) {
		return nil, errors.New("invitation was issued for a different email")
	}

	workspace, err := s.workspaceRepository.GetWorkspaceByID(invitation.WorkspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load workspace: %w", err)
	}
	if workspace == nil {
		return nil, errors.New("workspace no longer exists")
	}

	membership, err := s.membershipRepository.GetMembershipByWorkspaceAndUser(workspace.ID, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}

	// Already the owner or already a member: consume the invitation without
	// inserting a second membership row.
	if membership == nil && workspace.OwnerID != user.ID {
		err = s.membershipRepository.CreateMembership(&workspaces_models.WorkspaceMembership{
			WorkspaceID: workspace.ID,
			UserID:      user.ID,
			Role:        invitation.Role,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create membership: %w", err)
		}
	}

	if err = s.invitationRepository.UpdateInvitationStatus(
		invitation.ID, workspaces_models.InvitationStatusAccepted,
	); err != nil {
		return nil, fmt.Errorf("failed to accept invitation: %w", err)
	}

	s.activityService.RecordActivity(
		workspace.ID, user.ID,
		"invitation.accepted", "invitation", invitation.ID,
		map[string]any{"email": invitation.Email, "role": string(invitation.Role)},
	)

	return workspace, nil
}

func (s *WorkspaceService) GetWorkspaceActivities(
	workspaceID uuid.UUID,
	request *activities.GetActivitiesRequest,
	user *users_models.User,
) (*activities.GetActivitiesResponse, error) {
	if _, err := s.ResolveWorkspaceAccess(workspaceID, user); err != nil {
		return nil, err
	}

	return s.activityService.GetWorkspaceActivities(workspaceID, request)
}

// ResolveWorkspaceAccess loads the workspace when the user owns it or holds
// a membership. Every workspace-scoped read and write funnels through here.
func (s *WorkspaceService) ResolveWorkspaceAccess(
	workspaceID uuid.UUID,
	user *users_models.User,
) (*workspaces_models.Workspace, error) {
	workspace, err := s.workspaceRepository.GetWorkspaceForUser(workspaceID, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve workspace access: %w", err)
	}
	if workspace == nil {
		return nil, ErrWorkspaceAccessDenied
	}

	return workspace, nil
}

func (s *WorkspaceService) getOwnerMember(
	workspace *workspaces_models.Workspace,
) (*workspaces_dto.WorkspaceMemberDTO, error) {
	owner, err := s.userService.GetUserByID(workspace.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load workspace owner: %w", err)
	}
	if owner == nil {
		return nil, nil
	}

	return &workspaces_dto.WorkspaceMemberDTO{
		ID:    owner.ID,
		Name:  owner.Name,
		Email: owner.Email,
		Image: owner.Image,
		Role:  users_enums.WorkspaceRoleOwner,
	}, nil
}

func validateSlug(slug string) error {
	if len(slug) < workspaceSlugMinLength || len(slug) > workspaceSlugMaxLength {
		return fmt.Errorf(
			"workspace slug must be between %d and %d characters",
			workspaceSlugMinLength, workspaceSlugMaxLength,
		)
	}
	if !slugRegex.MatchString(slug) {
		return errors.New("workspace slug may only contain lowercase letters, numbers and hyphens")
	}

	return nil
}

func generateInvitationToken() (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}

	return hex.EncodeToString(raw), nil
}
