package workspaces_dto

import (
	users_enums "workhub/internal/features/users/enums"
	workspaces_models "workhub/internal/features/workspaces/models"

	"github.com/google/uuid"
)

type CreateWorkspaceRequestDTO struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type CreateWorkspaceResponseDTO struct {
	Workspace *workspaces_models.Workspace `json:"workspace"`
}

type ListWorkspacesResponseDTO struct {
	Workspaces []workspaces_models.Workspace `json:"workspaces"`
}

// WorkspaceMemberDTO is a membership row joined to user identity. ID is the
// user id, matching what the dashboard keys on.
type WorkspaceMemberDTO struct {
	ID    uuid.UUID                 `json:"id"    gorm:"column:id"`
	Name  string                    `json:"name"  gorm:"column:name"`
	Email string                    `json:"email" gorm:"column:email"`
	Image *string                   `json:"image" gorm:"column:image"`
	Role  users_enums.WorkspaceRole `json:"role"  gorm:"column:role"`
}

type ListMembersResponseDTO struct {
	Members []*WorkspaceMemberDTO `json:"members"`
}

type CreateInvitationRequestDTO struct {
	Email string                    `json:"email" binding:"required,email"`
	Role  users_enums.WorkspaceRole `json:"role"`
}

type CreateInvitationResponseDTO struct {
	Invitation *workspaces_models.Invitation `json:"invitation"`
}

type AcceptInvitationResponseDTO struct {
	Workspace *workspaces_models.Workspace `json:"workspace"`
}
