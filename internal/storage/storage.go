package storage

import (
	"sync"

	"workhub/internal/config"
	"workhub/internal/util/logger"

	"gorm.io/driver/postgres"
	gorm_logger "gorm.io/gorm/logger"

	"gorm.io/gorm"
)

var (
	db   *gorm.DB
	once sync.Once
)

func GetDb() *gorm.DB {
	once.Do(func() {
		log := logger.GetLogger()

		// TranslateError is required: unique-index violations must surface
		// as gorm.ErrDuplicatedKey so services can treat the constraint as
		// the authoritative conflict check.
		database, err := gorm.Open(postgres.Open(config.GetEnv().DatabaseDsn), &gorm.Config{
			TranslateError: true,
			Logger:         gorm_logger.Default.LogMode(gorm_logger.Silent),
		})
		if err != nil {
			log.Error("Failed to connect to database", "error", err)
			panic(err)
		}

		db = database
	})

	return db
}
