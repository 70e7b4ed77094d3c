package workspaces_repositories

import (
	"errors"
	"time"

	workspaces_models "workhub/internal/features/workspaces/models"
	"workhub/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WorkspaceRepository struct{}

// CreateWorkspaceWithOwner inserts the workspace and its owner-role
// membership row in one transaction. The membership row is a deliberate
// redundancy: access resolution never depends on it for the owner.
func (r *WorkspaceRepository) CreateWorkspaceWithOwner(
	workspace *workspaces_models.Workspace,
	ownerMembership *workspaces_models.WorkspaceMembership,
) error {
	if workspace.ID == uuid.Nil {
		workspace.ID = uuid.New()
	}
	if workspace.CreatedAt.IsZero() {
		workspace.CreatedAt = time.Now().UTC()
	}
	if workspace.UpdatedAt.IsZero() {
		workspace.UpdatedAt = workspace.CreatedAt
	}

	ownerMembership.WorkspaceID = workspace.ID
	if ownerMembership.ID == uuid.Nil {
		ownerMembership.ID = uuid.New()
	}
	if ownerMembership.JoinedAt.IsZero() {
		ownerMembership.JoinedAt = time.Now().UTC()
	}

	return storage.GetDb().Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(workspace).Error; err != nil {
			return err
		}

		return tx.Create(ownerMembership).Error
	})
}

// GetWorkspaceForUser is the workspace access guard: it returns the
// workspace iff the user owns it OR has a membership row. The two predicates
// stay OR-ed in one query; collapsing this to a membership-only lookup would
// lock out owners without an explicit membership row. A missing workspace
// and a denied one are indistinguishable to the caller.
func (r *WorkspaceRepository) GetWorkspaceForUser(
	workspaceID uuid.UUID,
	userID uuid.UUID,
) (*workspaces_models.Workspace, error) {
	var workspace workspaces_models.Workspace

	err := storage.GetDb().
		Where(
			`id = ? AND (owner_id = ? OR EXISTS (
				SELECT 1 FROM workspace_members wm
				WHERE wm.workspace_id = workspaces.id AND wm.user_id = ?
			))`,
			workspaceID, userID, userID,
		).
		First(&workspace).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &workspace, nil
}

func (r *WorkspaceRepository) GetWorkspaceByID(workspaceID uuid.UUID) (*workspaces_models.Workspace, error) {
	var workspace workspaces_models.Workspace

	if err := storage.GetDb().Where("id = ?", workspaceID).First(&workspace).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &workspace, nil
}

func (r *WorkspaceRepository) GetWorkspaceBySlug(slug string) (*workspaces_models.Workspace, error) {
	var workspace workspaces_models.Workspace

	if err := storage.GetDb().Where("slug = ?", slug).First(&workspace).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &workspace, nil
}

// GetWorkspacesForUser returns the de-duplicated union of owned workspaces
// and membership workspaces, in insertion order (stable across calls).
func (r *WorkspaceRepository) GetWorkspacesForUser(
	userID uuid.UUID,
) ([]workspaces_models.Workspace, error) {
	result := make([]workspaces_models.Workspace, 0)

	err := storage.GetDb().
		Raw(`
			SELECT DISTINCT w.*
			FROM workspaces w
			LEFT JOIN workspace_members wm ON wm.workspace_id = w.id
			WHERE w.owner_id = ? OR wm.user_id = ?
			ORDER BY w.created_at ASC, w.id ASC`,
			userID, userID,
		).
		Scan(&result).Error

	return result, err
}
