package users_controllers

import (
	users_services "workhub/internal/features/users/services"

	"golang.org/x/time/rate"
)

var userController = &UserController{
	users_services.GetUserService(),
	rate.NewLimiter(rate.Limit(5), 10),
}

func GetUserController() *UserController {
	return userController
}
