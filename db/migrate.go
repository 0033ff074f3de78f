package db

import (
	"github.com/meinhoongagan/service-marketplace/models"
	"gorm.io/gorm"
)

// Migrate creates or updates every table the marketplace uses.
func Migrate(conn *gorm.DB) error {
	return conn.AutoMigrate(
		&models.User{},
		&models.UserSkill{},
		&models.Address{},
		&models.Availability{},
		&models.ServiceCategory{},
		&models.ServiceListing{},
		&models.ServiceMedia{},
		&models.BookingRequest{},
		&models.MessageThread{},
		&models.Message{},
	)
}
