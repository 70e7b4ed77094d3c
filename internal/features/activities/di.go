package activities

import (
	"workhub/internal/util/logger"
)

var activityRepository = &ActivityRepository{}
var activityService = &ActivityService{
	activityRepository: activityRepository,
	logger:             logger.GetLogger(),
}

func GetActivityService() *ActivityService {
	return activityService
}
