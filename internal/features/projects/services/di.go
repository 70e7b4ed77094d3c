package projects_services

import (
	"workhub/internal/features/activities"
	projects_repositories "workhub/internal/features/projects/repositories"
	workspaces_services "workhub/internal/features/workspaces/services"
)

var projectRepository = &projects_repositories.ProjectRepository{}

var projectService = &ProjectService{
	projectRepository,
	workspaces_services.GetWorkspaceService(),
	activities.GetActivityService(),
}

func GetProjectService() *ProjectService {
	return projectService
}
