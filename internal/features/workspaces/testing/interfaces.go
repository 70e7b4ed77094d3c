package workspaces_testing

import "github.com/gin-gonic/gin"

type ControllerInterface interface {
	RegisterProtectedRoutes(router *gin.RouterGroup)
}

// PublicControllerInterface is implemented by controllers that also expose
// unauthenticated routes.
type PublicControllerInterface interface {
	RegisterRoutes(router *gin.RouterGroup)
}
