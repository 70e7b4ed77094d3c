package workspaces_models

import (
	"time"

	"github.com/google/uuid"
)

type Workspace struct {
	ID        uuid.UUID `json:"id"        gorm:"column:id"`
	Name      string    `json:"name"      gorm:"column:name"`
	Slug      string    `json:"slug"      gorm:"column:slug"`
	LogoURL   *string   `json:"logoUrl"   gorm:"column:logo_url"`
	OwnerID   uuid.UUID `json:"ownerId"   gorm:"column:owner_id"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"column:updated_at"`
}

func (Workspace) TableName() string {
	return "workspaces"
}
