package users_middleware

import (
	"net/http"

	users_models "workhub/internal/features/users/models"
	users_services "workhub/internal/features/users/services"

	"github.com/gin-gonic/gin"
)

// SessionCookieName is the HTTP-only cookie set on sign-in. Bearer headers
// take precedence so API clients stay cookie-free.
const SessionCookieName = "workhub_session"

// AuthMiddleware resolves the session token and adds the user to context
func AuthMiddleware(userService *users_services.UserService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := TokenFromRequest(ctx)
		if token == "" {
			ctx.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			ctx.Abort()
			return
		}

		user, err := userService.GetUserFromToken(token)
		if err != nil {
			ctx.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid session"})
			ctx.Abort()
			return
		}

		ctx.Set("user", user)
		ctx.Next()
	}
}

func TokenFromRequest(ctx *gin.Context) string {
	token := ctx.GetHeader("Authorization")
	if token != "" {
		// Remove "Bearer " prefix if present
		if len(token) > 7 && token[:7] == "Bearer " {
			token = token[7:]
		}
		return token
	}

	cookie, err := ctx.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}

	return cookie
}

// GetUserFromContext helper function to extract user from gin context
func GetUserFromContext(ctx *gin.Context) (*users_models.User, bool) {
	userInterface, exists := ctx.Get("user")
	if !exists {
		return nil, false
	}

	user, ok := userInterface.(*users_models.User)

	return user, ok
}
