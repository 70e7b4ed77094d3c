package activities

import (
	"time"

	"github.com/google/uuid"
)

type GetActivitiesRequest struct {
	Limit      int        `form:"limit"      json:"limit"`
	Offset     int        `form:"offset"     json:"offset"`
	BeforeDate *time.Time `form:"beforeDate" json:"beforeDate"`
}

type GetActivitiesResponse struct {
	Activities []*ActivityDTO `json:"activities"`
	Total      int64          `json:"total"`
	Limit      int            `json:"limit"`
	Offset     int            `json:"offset"`
}

type ActivityDTO struct {
	ID          uuid.UUID `json:"id"          gorm:"column:id"`
	WorkspaceID uuid.UUID `json:"workspaceId" gorm:"column:workspace_id"`
	UserID      uuid.UUID `json:"userId"      gorm:"column:user_id"`
	Action      string    `json:"action"      gorm:"column:action"`
	TargetType  string    `json:"targetType"  gorm:"column:target_type"`
	TargetID    uuid.UUID `json:"targetId"    gorm:"column:target_id"`
	CreatedAt   time.Time `json:"createdAt"   gorm:"column:created_at"`
	UserName    *string   `json:"userName"    gorm:"column:user_name"`
	UserEmail   *string   `json:"userEmail"   gorm:"column:user_email"`
}
