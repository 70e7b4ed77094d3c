package workspaces_repositories

import (
	"errors"
	"time"

	workspaces_models "workhub/internal/features/workspaces/models"
	"workhub/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InvitationRepository struct{}

func (r *InvitationRepository) CreateInvitation(invitation *workspaces_models.Invitation) error {
	if invitation.ID == uuid.Nil {
		invitation.ID = uuid.New()
	}
	if invitation.CreatedAt.IsZero() {
		invitation.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(invitation).Error
}

func (r *InvitationRepository) GetPendingInvitation(
	workspaceID uuid.UUID,
	email string,
) (*workspaces_models.Invitation, error) {
	var invitation workspaces_models.Invitation

	err := storage.GetDb().
		Where(
			"workspace_id = ? AND email = ? AND status = ?",
			workspaceID, email, workspaces_models.InvitationStatusPending,
		).
		First(&invitation).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &invitation, nil
}

func (r *InvitationRepository) GetInvitationByToken(token string) (*workspaces_models.Invitation, error) {
	var invitation workspaces_models.Invitation

	if err := storage.GetDb().Where("token = ?", token).First(&invitation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &invitation, nil
}

func (r *InvitationRepository) UpdateInvitationStatus(
	invitationID uuid.UUID,
	status workspaces_models.InvitationStatus,
) error {
	return storage.GetDb().
		Model(&workspaces_models.Invitation{}).
		Where("id = ?", invitationID).
		Update("status", status).Error
}
