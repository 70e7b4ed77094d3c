package users_services

import (
	users_repositories "workhub/internal/features/users/repositories"
	"workhub/internal/util/logger"
)

var userRepository = &users_repositories.UserRepository{}
var sessionRepository = &users_repositories.SessionRepository{}
var secretKeyRepository = &users_repositories.SecretKeyRepository{}

var userService = &UserService{
	userRepository,
	sessionRepository,
	secretKeyRepository,
	logger.GetLogger(),
}

func GetUserService() *UserService {
	return userService
}
