package activities

import (
	"time"

	"github.com/google/uuid"
)

type Activity struct {
	ID          uuid.UUID      `json:"id"          gorm:"column:id"`
	WorkspaceID uuid.UUID      `json:"workspaceId" gorm:"column:workspace_id"`
	UserID      uuid.UUID      `json:"userId"      gorm:"column:user_id"`
	Action      string         `json:"action"      gorm:"column:action"`
	TargetType  string         `json:"targetType"  gorm:"column:target_type"`
	TargetID    uuid.UUID      `json:"targetId"    gorm:"column:target_id"`
	Metadata    map[string]any `json:"metadata"    gorm:"column:metadata;serializer:json"`
	CreatedAt   time.Time      `json:"createdAt"   gorm:"column:created_at"`
}

func (Activity) TableName() string {
	return "activities"
}
