package workspaces_models

import (
	"time"

	users_enums "workhub/internal/features/users/enums"

	"github.com/google/uuid"
)

type WorkspaceMembership struct {
	ID          uuid.UUID                 `json:"id"          gorm:"column:id"`
	WorkspaceID uuid.UUID                 `json:"workspaceId" gorm:"column:workspace_id"`
	UserID      uuid.UUID                 `json:"userId"      gorm:"column:user_id"`
	Role        users_enums.WorkspaceRole `json:"role"        gorm:"column:role"`
	JoinedAt    time.Time                 `json:"joinedAt"    gorm:"column:joined_at"`
}

func (WorkspaceMembership) TableName() string {
	return "workspace_members"
}
