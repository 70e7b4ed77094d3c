package workspaces_repositories

import (
	"errors"
	"time"

	workspaces_models "workhub/internal/features/workspaces/models"
	"workhub/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MemberRow is one workspace member joined against the users table.
type MemberRow struct {
	UserID uuid.UUID `gorm:"column:user_id"`
	Name   string    `gorm:"column:name"`
	Email  string    `gorm:"column:email"`
	Image  *string   `gorm:"column:image"`
	Role   string    `gorm:"column:role"`
}

type MembershipRepository struct{}

func (r *MembershipRepository) CreateMembership(membership *workspaces_models.WorkspaceMembership) error {
	if membership.ID == uuid.Nil {
		membership.ID = uuid.New()
	}
	if membership.JoinedAt.IsZero() {
		membership.JoinedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(membership).Error
}

func (r *MembershipRepository) GetMembershipByWorkspaceAndUser(
	workspaceID uuid.UUID,
	userID uuid.UUID,
) (*workspaces_models.WorkspaceMembership, error) {
	var membership workspaces_models.WorkspaceMembership

	err := storage.GetDb().
		Where("workspace_id = ? AND user_id = ?", workspaceID, userID).
		First(&membership).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &membership, nil
}

// GetMemberRows returns each membership row joined with its user profile,
// ordered by join date. The owner is included only if an explicit
// membership row exists for them.
func (r *MembershipRepository) GetMemberRows(workspaceID uuid.UUID) ([]MemberRow, error) {
	rows := make([]MemberRow, 0)

	err := storage.GetDb().
		Raw(`
			SELECT wm.user_id, u.name, u.email, u.image, wm.role
			FROM workspace_members wm
			JOIN users u ON u.id = wm.user_id
			WHERE wm.workspace_id = ?
			ORDER BY wm.joined_at ASC, wm.id ASC`,
			workspaceID,
		).
		Scan(&rows).Error

	return rows, err
}