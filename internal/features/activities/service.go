package activities

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
)

type ActivityService struct {
	activityRepository *ActivityRepository
	logger             *slog.Logger
}

// RecordActivity is fire-and-forget: a failed write is logged, never
// surfaced to the request that triggered it.
func (s *ActivityService) RecordActivity(
	workspaceID uuid.UUID,
	userID uuid.UUID,
	action string,
	targetType string,
	targetID uuid.UUID,
	metadata map[string]any,
) {
	activity := &Activity{
		WorkspaceID: workspaceID,
		UserID:      userID,
		Action:      action,
		TargetType:  targetType,
		TargetID:    targetID,
		Metadata:    metadata,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.activityRepository.Create(activity); err != nil {
		s.logger.Error("failed to record activity", "action", action, "error", err)
	}
}

func (s *ActivityService) GetWorkspaceActivities(
	workspaceID uuid.UUID,
	request *GetActivitiesRequest,
) (*GetActivitiesResponse, error) {
	limit := request.Limit
	if limit <= 0 || limit > 1000 {
		limit = 100
	}

	offset := max(request.Offset, 0)

	result, err := s.activityRepository.GetByWorkspace(workspaceID, limit, offset, request.BeforeDate)
	if err != nil {
		return nil, err
	}

	total, err := s.activityRepository.CountByWorkspace(workspaceID, request.BeforeDate)
	if err != nil {
		return nil, err
	}

	return &GetActivitiesResponse{
		Activities: result,
		Total:      total,
		Limit:      limit,
		Offset:     offset,
	}, nil
}
