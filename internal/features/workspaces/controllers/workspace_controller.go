package workspaces_controllers

import (
	"errors"
	"net/http"

	"workhub/internal/features/activities"
	users_middleware "workhub/internal/features/users/middleware"
	workspaces_dto "workhub/internal/features/workspaces/dto"
	workspaces_services "workhub/internal/features/workspaces/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type WorkspaceController struct {
	workspaceService *workspaces_services.WorkspaceService
}

func (c *WorkspaceController) RegisterProtectedRoutes(router *gin.RouterGroup) {
	router.POST("/workspaces", c.CreateWorkspace)
	router.GET("/workspaces/me", c.ListWorkspaces)
	router.GET("/workspaces/:workspaceId/members", c.ListMembers)
	router.POST("/workspaces/:workspaceId/invitations", c.CreateInvitation)
	router.POST("/invitations/:token/accept", c.AcceptInvitation)
	router.GET("/workspaces/:workspaceId/activities", c.GetActivities)
}

// CreateWorkspace
// @Summary Create a workspace
// @Description Create a workspace owned by the current user
// @Tags workspaces
// @Accept json
// @Produce json
// @Param request body workspaces_dto.CreateWorkspaceRequestDTO true "Workspace data"
// @Success 201 {object} workspaces_dto.CreateWorkspaceResponseDTO
// @Failure 400 {object} map[string]string
// @Router /workspaces [post]
func (c *WorkspaceController) CreateWorkspace(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	var request workspaces_dto.CreateWorkspaceRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request format"})
		return
	}

	workspace, err := c.workspaceService.CreateWorkspace(&request, user)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, workspaces_dto.CreateWorkspaceResponseDTO{Workspace: workspace})
}

// ListWorkspaces
// @Summary List workspaces of the current user
// @Description List every workspace the user owns or is a member of
// @Tags workspaces
// @Produce json
// @Success 200 {object} workspaces_dto.ListWorkspacesResponseDTO
// @Router /workspaces/me [get]
func (c *WorkspaceController) ListWorkspaces(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	workspaces, err := c.workspaceService.ListWorkspaces(user)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to list workspaces"})
		return
	}

	ctx.JSON(http.StatusOK, workspaces_dto.ListWorkspacesResponseDTO{Workspaces: workspaces})
}

// ListMembers
// @Summary List workspace members
// @Description List members of a workspace the user can access
// @Tags workspaces
// @Produce json
// @Param workspaceId path string true "Workspace ID"
// @Success 200 {object} workspaces_dto.ListMembersResponseDTO
// @Failure 403 {object} map[string]string
// @Router /workspaces/{workspaceId}/members [get]
func (c *WorkspaceController) ListMembers(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	workspaceID, err := uuid.Parse(ctx.Param("workspaceId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid workspace ID"})
		return
	}

	members, err := c.workspaceService.ListMembers(workspaceID, user)
	if err != nil {
		c.respondServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, workspaces_dto.ListMembersResponseDTO{Members: members})
}

// CreateInvitation
// @Summary Invite a user to a workspace
// @Description Create a pending invitation for an email address
// @Tags workspaces
// @Accept json
// @Produce json
// @Param workspaceId path string true "Workspace ID"
// @Param request body workspaces_dto.CreateInvitationRequestDTO true "Invitation data"
// @Success 201 {object} workspaces_dto.CreateInvitationResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /workspaces/{workspaceId}/invitations [post]
func (c *WorkspaceController) CreateInvitation(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	workspaceID, err := uuid.Parse(ctx.Param("workspaceId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid workspace ID"})
		return
	}

	var request workspaces_dto.CreateInvitationRequestDTO
	if err = ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request format"})
		return
	}

	invitation, err := c.workspaceService.CreateInvitation(workspaceID, &request, user)
	if err != nil {
		c.respondServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, workspaces_dto.CreateInvitationResponseDTO{Invitation: invitation})
}

// AcceptInvitation
// @Summary Accept a workspace invitation
// @Description Redeem an invitation token and join the workspace
// @Tags workspaces
// @Produce json
// @Param token path string true "Invitation token"
// @Success 200 {object} workspaces_dto.AcceptInvitationResponseDTO
// @Failure 400 {object} map[string]string
// @Router /invitations/{token}/accept [post]
func (c *WorkspaceController) AcceptInvitation(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	token := ctx.Param("token")
	if token == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid invitation token"})
		return
	}

	workspace, err := c.workspaceService.AcceptInvitation(token, user)
	if err != nil {
		c.respondServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, workspaces_dto.AcceptInvitationResponseDTO{Workspace: workspace})
}

// GetActivities
// @Summary List workspace activities
// @Description List recent activity entries of a workspace the user can access
// @Tags workspaces
// @Produce json
// @Param workspaceId path string true "Workspace ID"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} activities.GetActivitiesResponse
// @Failure 403 {object} map[string]string
// @Router /workspaces/{workspaceId}/activities [get]
func (c *WorkspaceController) GetActivities(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	workspaceID, err := uuid.Parse(ctx.Param("workspaceId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid workspace ID"})
		return
	}

	var request activities.GetActivitiesRequest
	if err = ctx.ShouldBindQuery(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request format"})
		return
	}

	response, err := c.workspaceService.GetWorkspaceActivities(workspaceID, &request, user)
	if err != nil {
		c.respondServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

func (c *WorkspaceController) respondServiceError(ctx *gin.Context, err error) {
	if errors.Is(err, workspaces_services.ErrWorkspaceAccessDenied) {
		ctx.JSON(http.StatusForbidden, gin.H{"message": err.Error()})
		return
	}

	ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
}
