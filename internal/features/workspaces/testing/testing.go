package workspaces_testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	users_dto "workhub/internal/features/users/dto"
	users_enums "workhub/internal/features/users/enums"
	users_middleware "workhub/internal/features/users/middleware"
	users_services "workhub/internal/features/users/services"
	workspaces_dto "workhub/internal/features/workspaces/dto"
	workspaces_models "workhub/internal/features/workspaces/models"
	workspaces_repositories "workhub/internal/features/workspaces/repositories"
	"workhub/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func CreateTestRouter(controllers ...ControllerInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	api := router.Group("/api")
	protected := api.Group("")
	protected.Use(users_middleware.AuthMiddleware(users_services.GetUserService()))

	for _, controller := range controllers {
		if public, ok := controller.(PublicControllerInterface); ok {
			public.RegisterRoutes(api)
		}
		controller.RegisterProtectedRoutes(protected)
	}

	return router
}

// CreateTestWorkspace creates a workspace through the API, so the owner gets
// their explicit membership row.
func CreateTestWorkspace(
	name string,
	owner *users_dto.SignInResponseDTO,
	router *gin.Engine,
) *workspaces_models.Workspace {
	request := workspaces_dto.CreateWorkspaceRequestDTO{
		Name: name,
		Slug: UniqueSlug(),
	}

	w := MakeAPIRequest(router, "POST", "/api/workspaces", "Bearer "+owner.Token, request)
	if w.Code != http.StatusCreated {
		panic(fmt.Sprintf("Failed to create workspace. Status: %d, Body: %s", w.Code, w.Body.String()))
	}

	var response workspaces_dto.CreateWorkspaceResponseDTO
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		panic(err)
	}

	return response.Workspace
}

// CreateBareWorkspace inserts a workspace row with no membership rows at
// all. The owner can still access it through the ownership predicate.
func CreateBareWorkspace(ownerID uuid.UUID) *workspaces_models.Workspace {
	workspace := &workspaces_models.Workspace{
		ID:        uuid.New(),
		Name:      "Bare Workspace",
		Slug:      UniqueSlug(),
		OwnerID:   ownerID,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := storage.GetDb().Create(workspace).Error; err != nil {
		panic(err)
	}

	return workspace
}

func AddMemberToWorkspace(workspaceID uuid.UUID, userID uuid.UUID) {
	membershipRepository := &workspaces_repositories.MembershipRepository{}

	err := membershipRepository.CreateMembership(&workspaces_models.WorkspaceMembership{
		WorkspaceID: workspaceID,
		UserID:      userID,
		Role:        users_enums.WorkspaceRoleMember,
	})
	if err != nil {
		panic(err)
	}
}

func UniqueSlug() string {
	return "ws-" + uuid.New().String()[:8]
}

func MakeAPIRequest(router *gin.Engine, method, url, authToken string, body any) *httptest.ResponseRecorder {
	var requestBody *bytes.Buffer
	if body != nil {
		bodyJSON, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		requestBody = bytes.NewBuffer(bodyJSON)
	} else {
		requestBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, url, requestBody)
	if err != nil {
		panic(err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authToken != "" {
		req.Header.Set("Authorization", authToken)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}
