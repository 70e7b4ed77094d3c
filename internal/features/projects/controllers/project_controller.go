package projects_controllers

import (
	"errors"
	"net/http"

	projects_dto "workhub/internal/features/projects/dto"
	projects_services "workhub/internal/features/projects/services"
	users_middleware "workhub/internal/features/users/middleware"
	workspaces_services "workhub/internal/features/workspaces/services"

	"github.com/gin-gonic/gin"
)

type ProjectController struct {
	projectService *projects_services.ProjectService
}

func (c *ProjectController) RegisterProtectedRoutes(router *gin.RouterGroup) {
	router.POST("/projects", c.CreateProject)
	router.GET("/projects", c.ListProjects)
}

// CreateProject
// @Summary Create a project
// @Description Create a project inside a workspace the user can access
// @Tags projects
// @Accept json
// @Produce json
// @Param request body projects_dto.CreateProjectRequestDTO true "Project data"
// @Success 201 {object} projects_dto.CreateProjectResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /projects [post]
func (c *ProjectController) CreateProject(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	var request projects_dto.CreateProjectRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request format"})
		return
	}

	project, err := c.projectService.CreateProject(&request, user)
	if err != nil {
		c.respondServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, projects_dto.CreateProjectResponseDTO{Project: project})
}

// ListProjects
// @Summary List projects of a workspace
// @Description List the projects of a workspace the user can access
// @Tags projects
// @Produce json
// @Param workspaceId query string true "Workspace ID"
// @Success 200 {object} projects_dto.ListProjectsResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /projects [get]
func (c *ProjectController) ListProjects(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
		return
	}

	projects, err := c.projectService.ListProjects(ctx.Query("workspaceId"), user)
	if err != nil {
		c.respondServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, projects_dto.ListProjectsResponseDTO{Projects: projects})
}

func (c *ProjectController) respondServiceError(ctx *gin.Context, err error) {
	if errors.Is(err, workspaces_services.ErrWorkspaceAccessDenied) {
		ctx.JSON(http.StatusForbidden, gin.H{"message": err.Error()})
		return
	}

	ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
}
