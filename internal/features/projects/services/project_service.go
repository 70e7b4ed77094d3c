package projects_services

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"workhub/internal/features/activities"
	projects_dto "workhub/internal/features/projects/dto"
	projects_enums "workhub/internal/features/projects/enums"
	projects_models "workhub/internal/features/projects/models"
	projects_repositories "workhub/internal/features/projects/repositories"
	users_enums "workhub/internal/features/users/enums"
	users_models "workhub/internal/features/users/models"
	workspaces_services "workhub/internal/features/workspaces/services"

	"github.com/google/uuid"
)

const (
	projectNameMinLength = 2
	projectNameMaxLength = 200

	dateLayout = "2006-01-02"
)

type ProjectService struct {
	projectRepository *projects_repositories.ProjectRepository
	workspaceService  *workspaces_services.WorkspaceService
	activityService   *activities.ActivityService
}

// CreateProject validates the request fully before touching authorization:
// a malformed request gets 400 even when the workspace would be forbidden.
// The access check runs last, after every field has passed.
func (s *ProjectService) CreateProject(
	request *projects_dto.CreateProjectRequestDTO,
	user *users_models.User,
) (*projects_dto.ProjectResponseDTO, error) {
	workspaceID, err := parseWorkspaceID(request.WorkspaceID)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(request.Name)
	if utf8.RuneCountInString(name) < projectNameMinLength ||
		utf8.RuneCountInString(name) > projectNameMaxLength {
		return nil, fmt.Errorf(
			"project name must be between %d and %d characters",
			projectNameMinLength, projectNameMaxLength,
		)
	}

	status := projects_enums.ProjectStatusPlanning
	if request.Status != "" {
		status = projects_enums.ProjectStatus(request.Status)
		if !status.IsValid() {
			return nil, errors.New("invalid project status")
		}
	}

	priority := projects_enums.ProjectPriorityMedium
	if request.Priority != "" {
		priority = projects_enums.ProjectPriority(request.Priority)
		if !priority.IsValid() {
			return nil, errors.New("invalid project priority")
		}
	}

	startDate, err := parseDate(request.StartDate)
	if err != nil {
		return nil, err
	}

	endDate, err := parseDate(request.EndDate)
	if err != nil {
		return nil, err
	}

	if startDate != nil && endDate != nil && *startDate > *endDate {
		return nil, errors.New("start date must be before or equal to end date")
	}

	leadID, err := parseOptionalUserID(request.LeadID, "invalid lead id")
	if err != nil {
		return nil, err
	}

	memberIDs := make([]uuid.UUID, 0, len(request.MemberIDs))
	for _, raw := range request.MemberIDs {
		memberID, err := uuid.Parse(strings.TrimSpace(raw))
		if err != nil {
			return nil, errors.New("invalid member id")
		}

		memberIDs = append(memberIDs, memberID)
	}

	if _, err = s.workspaceService.ResolveWorkspaceAccess(workspaceID, user); err != nil {
		return nil, err
	}

	project := &projects_models.Project{
		ID:          uuid.New(),
		WorkspaceID: workspaceID,
		Name:        name,
		Description: request.Description,
		Status:      status,
		Priority:    priority,
		StartDate:   startDate,
		EndDate:     endDate,
		CreatedBy:   user.ID,
	}

	memberships := buildMemberships(project.ID, leadID, memberIDs)

	if err = s.projectRepository.CreateProjectWithMembers(project, memberships); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	s.activityService.RecordActivity(
		workspaceID, user.ID,
		"project.created", "project", project.ID,
		map[string]any{"name": project.Name},
	)

	return &projects_dto.ProjectResponseDTO{
		Project:     *project,
		MemberCount: len(memberships),
	}, nil
}

// ListProjects returns the projects of one workspace, newest first. Member
// counts come from a single grouped query over all returned projects.
func (s *ProjectService) ListProjects(
	rawWorkspaceID string,
	user *users_models.User,
) ([]*projects_dto.ProjectResponseDTO, error) {
	workspaceID, err := parseWorkspaceID(rawWorkspaceID)
	if err != nil {
		return nil, err
	}

	if _, err = s.workspaceService.ResolveWorkspaceAccess(workspaceID, user); err != nil {
		return nil, err
	}

	projects, err := s.projectRepository.GetProjectsByWorkspace(workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	projectIDs := make([]uuid.UUID, 0, len(projects))
	for _, project := range projects {
		projectIDs = append(projectIDs, project.ID)
	}

	counts, err := s.projectRepository.GetMemberCounts(projectIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to count project members: %w", err)
	}

	result := make([]*projects_dto.ProjectResponseDTO, 0, len(projects))
	for _, project := range projects {
		result = append(result, &projects_dto.ProjectResponseDTO{
			Project:     project,
			MemberCount: counts[project.ID],
		})
	}

	return result, nil
}

// buildMemberships produces one row per distinct participant. The lead gets
// the lead role; a member id equal to the lead id is folded into that row.
func buildMemberships(
	projectID uuid.UUID,
	leadID *uuid.UUID,
	memberIDs []uuid.UUID,
) []*projects_models.ProjectMembership {
	memberships := make([]*projects_models.ProjectMembership, 0, len(memberIDs)+1)
	seen := make(map[uuid.UUID]bool, len(memberIDs)+1)

	if leadID != nil {
		seen[*leadID] = true
		memberships = append(memberships, &projects_models.ProjectMembership{
			ProjectID: projectID,
			UserID:    *leadID,
			Role:      users_enums.ProjectRoleLead,
		})
	}

	for _, memberID := range memberIDs {
		if seen[memberID] {
			continue
		}
		seen[memberID] = true

		memberships = append(memberships, &projects_models.ProjectMembership{
			ProjectID: projectID,
			UserID:    memberID,
			Role:      users_enums.ProjectRoleMember,
		})
	}

	return memberships
}

func parseWorkspaceID(raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, errors.New("workspace id is required")
	}

	workspaceID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.New("invalid workspace id")
	}

	return workspaceID, nil
}

// parseDate accepts calendar dates only; a parseable timestamp with a time
// component is rejected.
func parseDate(raw *string) (*string, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}

	value := strings.TrimSpace(*raw)
	if _, err := time.Parse(dateLayout, value); err != nil {
		return nil, errors.New("invalid date format, expected YYYY-MM-DD")
	}

	return &value, nil
}

func parseOptionalUserID(raw *string, message string) (*uuid.UUID, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}

	userID, err := uuid.Parse(strings.TrimSpace(*raw))
	if err != nil {
		return nil, errors.New(message)
	}

	return &userID, nil
}
