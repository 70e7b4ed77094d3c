package workspaces_services

import (
	"workhub/internal/features/activities"
	users_services "workhub/internal/features/users/services"
	workspaces_repositories "workhub/internal/features/workspaces/repositories"
)

var workspaceRepository = &workspaces_repositories.WorkspaceRepository{}
var membershipRepository = &workspaces_repositories.MembershipRepository{}
var invitationRepository = &workspaces_repositories.InvitationRepository{}

var workspaceService = &WorkspaceService{
	workspaceRepository,
	membershipRepository,
	invitationRepository,
	activities.GetActivityService(),
	users_services.GetUserService(),
}

func GetWorkspaceService() *WorkspaceService {
	return workspaceService
}
