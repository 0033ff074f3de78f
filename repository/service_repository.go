package repository

import (
	"github.com/meinhoongagan/service-marketplace/models"
	"gorm.io/gorm"
)

type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

func (r *ServiceRepository) ListCategories() ([]models.ServiceCategory, error) {
	var categories []models.ServiceCategory
	err := r.db.Find(&categories).Error
	return categories, err
}

func (r *ServiceRepository) CategoryNameExists(name string) (bool, error) {
	var count int64
	err := r.db.Model(&models.ServiceCategory{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}

func (r *ServiceRepository) CreateCategory(category *models.ServiceCategory) error {
	return r.db.Create(category).Error
}

func (r *ServiceRepository) ListActiveListings() ([]models.ServiceListing, error) {
	var listings []models.ServiceListing
	err := r.db.Where("is_active = ?", true).Find(&listings).Error
	return listings, err
}

func (r *ServiceRepository) FindListingByID(id uint) (*models.ServiceListing, error) {
	var listing models.ServiceListing
	if err := r.db.First(&listing, id).Error; err != nil {
		return nil, err
	}
	return &listing, nil
}

// FindListingDetail loads a listing with its provider, category and media
// eagerly joined.
func (r *ServiceRepository) FindListingDetail(id uint) (*models.ServiceListing, error) {
	var listing models.ServiceListing
	err := r.db.
		Preload("Provider").
		Preload("Category").
		Preload("MediaItems").
		First(&listing, id).Error
	if err != nil {
		return nil, err
	}
	return &listing, nil
}

func (r *ServiceRepository) CreateListing(listing *models.ServiceListing) error {
	return r.db.Create(listing).Error
}

// UpdateListing writes the given columns on the listing row. A map is used
// so false/zero values (e.g. deactivating a listing) are persisted.
func (r *ServiceRepository) UpdateListing(id uint, updates map[string]interface{}) error {
	return r.db.Model(&models.ServiceListing{}).Where("id = ?", id).Updates(updates).Error
}

func (r *ServiceRepository) DeleteListing(id uint) error {
	return r.db.Delete(&models.ServiceListing{}, id).Error
}

func (r *ServiceRepository) AddMedia(media *models.ServiceMedia) error {
	return r.db.Create(media).Error
}
