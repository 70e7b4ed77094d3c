package activities

import (
	"time"

	"workhub/internal/storage"

	"github.com/google/uuid"
)

type ActivityRepository struct{}

func (r *ActivityRepository) Create(activity *Activity) error {
	if activity.ID == uuid.Nil {
		activity.ID = uuid.New()
	}

	return storage.GetDb().Create(activity).Error
}

func (r *ActivityRepository) GetByWorkspace(
	workspaceID uuid.UUID,
	limit, offset int,
	beforeDate *time.Time,
) ([]*ActivityDTO, error) {
	var result = make([]*ActivityDTO, 0)

	sql := `
		SELECT
			a.id,
			a.workspace_id,
			a.user_id,
			a.action,
			a.target_type,
			a.target_id,
			a.created_at,
			u.name as user_name,
			u.email as user_email
		FROM activities a
		LEFT JOIN users u ON a.user_id = u.id
		WHERE a.workspace_id = ?`

	args := []interface{}{workspaceID}

	if beforeDate != nil {
		sql += " AND a.created_at < ?"
		args = append(args, *beforeDate)
	}

	sql += " ORDER BY a.created_at DESC LIMIT ? OFFSET ?"
	args = append(args, limit, offset)

	err := storage.GetDb().Raw(sql, args...).Scan(&result).Error

	return result, err
}

func (r *ActivityRepository) CountByWorkspace(workspaceID uuid.UUID, beforeDate *time.Time) (int64, error) {
	var count int64
	query := storage.GetDb().Model(&Activity{}).Where("workspace_id = ?", workspaceID)

	if beforeDate != nil {
		query = query.Where("created_at < ?", *beforeDate)
	}

	err := query.Count(&count).Error
	return count, err
}
