package projects_dto

import (
	projects_models "workhub/internal/features/projects/models"
)

// CreateProjectRequestDTO keeps identifier fields as plain strings so the
// service can validate them in a fixed order with precise messages.
type CreateProjectRequestDTO struct {
	WorkspaceID string   `json:"workspaceId"`
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Status      string   `json:"status"`
	Priority    string   `json:"priority"`
	StartDate   *string  `json:"startDate"`
	EndDate     *string  `json:"endDate"`
	LeadID      *string  `json:"leadId"`
	MemberIDs   []string `json:"memberIds"`
}

type ProjectResponseDTO struct {
	projects_models.Project
	MemberCount int `json:"memberCount"`
}

type CreateProjectResponseDTO struct {
	Project *ProjectResponseDTO `json:"project"`
}

type ListProjectsResponseDTO struct {
	Projects []*ProjectResponseDTO `json:"projects"`
}
