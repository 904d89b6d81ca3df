package repository

import (
	"flagfootball-backend/internal/database/models"

	"gorm.io/gorm"
)

// UserRepository handles database operations for accounts
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(id int64) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsernameOrEmail retrieves the first user matching either the username or the email
func (r *UserRepository) GetByUsernameOrEmail(username, email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("username = ? OR email = ?", username, email).Order("id ASC").First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Delete removes a user. Used as the compensation of a failed registration.
func (r *UserRepository) Delete(id int64) error {
	return r.db.Delete(&models.User{}, "id = ?", id).Error
}
