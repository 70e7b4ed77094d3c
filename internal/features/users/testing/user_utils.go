package users_testing

import (
	"fmt"
	"time"

	users_dto "workhub/internal/features/users/dto"
	users_models "workhub/internal/features/users/models"
	users_repositories "workhub/internal/features/users/repositories"
	users_services "workhub/internal/features/users/services"

	"github.com/google/uuid"
)

// CreateTestUser inserts a user directly and returns a signed-in session for
// it. Tests exercising the sign-in flow itself should go through the API.
func CreateTestUser() *users_dto.SignInResponseDTO {
	userID := uuid.New()
	email := fmt.Sprintf("user-%s@test.com", userID.String()[:8])

	hashedPassword := "$2a$10$test"
	user := &users_models.User{
		ID:             userID,
		Name:           "Test User " + userID.String()[:8],
		Email:          email,
		HashedPassword: &hashedPassword,
		CreatedAt:      time.Now().UTC(),
		UpdatedAt:      time.Now().UTC(),
	}

	userRepository := &users_repositories.UserRepository{}
	if err := userRepository.CreateUser(user); err != nil {
		panic(err)
	}

	response, err := users_services.GetUserService().CreateSession(user, nil, nil)
	if err != nil {
		panic(err)
	}

	return response
}
