package projects_repositories

import (
	"time"

	projects_models "workhub/internal/features/projects/models"
	"workhub/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProjectRepository struct{}

// CreateProjectWithMembers inserts the project and its membership rows in
// one transaction so a failed member insert never leaves a partial project.
func (r *ProjectRepository) CreateProjectWithMembers(
	project *projects_models.Project,
	memberships []*projects_models.ProjectMembership,
) error {
	now := time.Now().UTC()

	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}
	if project.CreatedAt.IsZero() {
		project.CreatedAt = now
	}
	if project.UpdatedAt.IsZero() {
		project.UpdatedAt = now
	}

	for _, membership := range memberships {
		membership.ProjectID = project.ID
		if membership.ID == uuid.Nil {
			membership.ID = uuid.New()
		}
		if membership.JoinedAt.IsZero() {
			membership.JoinedAt = now
		}
	}

	return storage.GetDb().Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(project).Error; err != nil {
			return err
		}

		for _, membership := range memberships {
			if err := tx.Create(membership).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *ProjectRepository) GetProjectsByWorkspace(
	workspaceID uuid.UUID,
) ([]projects_models.Project, error) {
	projects := make([]projects_models.Project, 0)

	err := storage.GetDb().
		Where("workspace_id = ?", workspaceID).
		Order("created_at DESC, id DESC").
		Find(&projects).Error

	return projects, err
}

type memberCountRow struct {
	ProjectID uuid.UUID `gorm:"column:project_id"`
	Count     int       `gorm:"column:count"`
}

// GetMemberCounts returns per-project membership counts for all given
// projects in a single grouped query.
func (r *ProjectRepository) GetMemberCounts(
	projectIDs []uuid.UUID,
) (map[uuid.UUID]int, error) {
	counts := make(map[uuid.UUID]int, len(projectIDs))
	if len(projectIDs) == 0 {
		return counts, nil
	}

	rows := make([]memberCountRow, 0, len(projectIDs))

	err := storage.GetDb().
		Raw(`
			SELECT project_id, COUNT(*) AS count
			FROM project_members
			WHERE project_id IN ?
			GROUP BY project_id`,
			projectIDs,
		).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.ProjectID] = row.Count
	}

	return counts, nil
}