package workspaces_models

import (
	"time"

	users_enums "workhub/internal/features/users/enums"

	"github.com/google/uuid"
)

type InvitationStatus string

const (
	InvitationStatusPending  InvitationStatus = "pending"
	InvitationStatusAccepted InvitationStatus = "accepted"
	InvitationStatusExpired  InvitationStatus = "expired"
)

type Invitation struct {
	ID          uuid.UUID                 `json:"id"          gorm:"column:id"`
	WorkspaceID uuid.UUID                 `json:"workspaceId" gorm:"column:workspace_id"`
	Email       string                    `json:"email"       gorm:"column:email"`
	Role        users_enums.WorkspaceRole `json:"role"        gorm:"column:role"`
	Token       string                    `json:"token"       gorm:"column:token"`
	InvitedBy   uuid.UUID                 `json:"invitedBy"   gorm:"column:invited_by"`
	Status      InvitationStatus          `json:"status"      gorm:"column:status"`
	ExpiresAt   time.Time                 `json:"expiresAt"   gorm:"column:expires_at"`
	CreatedAt   time.Time                 `json:"createdAt"   gorm:"column:created_at"`
}

func (Invitation) TableName() string {
	return "invitations"
}
