package repository

import (
	"github.com/meinhoongagan/service-marketplace/models"
	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(booking *models.BookingRequest) error {
	return r.db.Create(booking).Error
}

func (r *BookingRepository) FindByID(id uint) (*models.BookingRequest, error) {
	var booking models.BookingRequest
	if err := r.db.First(&booking, id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// ListForUser returns the user's bookings seen from one side of the
// engagement: role "provider" selects bookings they fulfil, anything else
// selects bookings they requested. An empty status means no status filter.
func (r *BookingRepository) ListForUser(userID uint, role string, status models.BookingStatus) ([]models.BookingRequest, error) {
	query := r.db.Model(&models.BookingRequest{})
	if role == "provider" {
		query = query.Where("provider_id = ?", userID)
	} else {
		query = query.Where("requester_id = ?", userID)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var bookings []models.BookingRequest
	err := query.Find(&bookings).Error
	return bookings, err
}

// UpdateStatus runs the state-machine transition inside a transaction.
func (r *BookingRepository) UpdateStatus(booking *models.BookingRequest, next models.BookingStatus) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return booking.UpdateStatus(tx, next)
	})
}
