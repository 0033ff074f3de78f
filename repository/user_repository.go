package repository

import (
	"github.com/meinhoongagan/service-marketplace/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByPhone(phone string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("phone = ?", phone).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) PhoneExists(phone string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("phone = ?", phone).Count(&count).Error
	return count > 0, err
}

func (r *UserRepository) EmailExists(email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// CreateWithProfile persists the user together with the optional address
// and availability rows in a single transaction, so a failed profile write
// rolls back the whole registration.
func (r *UserRepository) CreateWithProfile(user *models.User, address *models.Address, availabilities []models.Availability) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		if address != nil {
			address.UserID = user.ID
			if err := tx.Create(address).Error; err != nil {
				return err
			}
		}
		for i := range availabilities {
			availabilities[i].UserID = user.ID
			if err := tx.Create(&availabilities[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *UserRepository) ListProviders() ([]models.User, error) {
	var providers []models.User
	err := r.db.Where("role = ?", models.RoleProvider).Find(&providers).Error
	return providers, err
}
