package boot

import (
	"log"

	"culturebites/src/db"
	"culturebites/src/models"

	"gorm.io/gorm"
)

func InitDb() *gorm.DB {
	db := db.GetDb()

	err := db.AutoMigrate(
		&models.User{},
		&models.Host{},
		&models.Cook{},
		&models.Event{},
		&models.CollaborationRequest{},
		&models.SeatRequest{},
	)
	if err != nil {
		log.Fatalf("error migration: %s", err.Error())
	}

	return db
}
