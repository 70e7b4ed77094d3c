package projects_models

import (
	"time"

	users_enums "workhub/internal/features/users/enums"

	"github.com/google/uuid"
)

type ProjectMembership struct {
	ID        uuid.UUID               `json:"id"        gorm:"column:id"`
	ProjectID uuid.UUID               `json:"projectId" gorm:"column:project_id"`
	UserID    uuid.UUID               `json:"userId"    gorm:"column:user_id"`
	Role      users_enums.ProjectRole `json:"role"      gorm:"column:role"`
	JoinedAt  time.Time               `json:"joinedAt"  gorm:"column:joined_at"`
}

func (ProjectMembership) TableName() string {
	return "project_members"
}
