package projects_repositories

import (
	projects_models "workhub/internal/features/projects/models"
	"workhub/internal/storage"

	"github.com/google/uuid"
)

type MembershipRepository struct{}

func (r *MembershipRepository) GetProjectMembers(
	projectID uuid.UUID,
) ([]projects_models.ProjectMembership, error) {
	memberships := make([]projects_models.ProjectMembership, 0)

	err := storage.GetDb().
		Where("project_id = ?", projectID).
		Order("joined_at ASC, id ASC").
		Find(&memberships).Error

	return memberships, err
}
