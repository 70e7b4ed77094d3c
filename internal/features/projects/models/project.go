package projects_models

import (
	"time"

	projects_enums "workhub/internal/features/projects/enums"

	"github.com/google/uuid"
)

// Project dates are calendar dates stored as "YYYY-MM-DD" strings. The
// format makes lexicographic order equal to chronological order.
type Project struct {
	ID          uuid.UUID                      `json:"id"          gorm:"column:id"`
	WorkspaceID uuid.UUID                      `json:"workspaceId" gorm:"column:workspace_id"`
	Name        string                         `json:"name"        gorm:"column:name"`
	Description *string                        `json:"description" gorm:"column:description"`
	Status      projects_enums.ProjectStatus   `json:"status"      gorm:"column:status"`
	Priority    projects_enums.ProjectPriority `json:"priority"    gorm:"column:priority"`
	StartDate   *string                        `json:"startDate"   gorm:"column:start_date"`
	EndDate     *string                        `json:"endDate"     gorm:"column:end_date"`
	CreatedBy   uuid.UUID                      `json:"createdBy"   gorm:"column:created_by"`
	CreatedAt   time.Time                      `json:"createdAt"   gorm:"column:created_at"`
	UpdatedAt   time.Time                      `json:"updatedAt"   gorm:"column:updated_at"`
}

func (Project) TableName() string {
	return "projects"
}
