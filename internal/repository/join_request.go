package repository

import (
	"flagfootball-backend/internal/database/models"

	"gorm.io/gorm"
)

// JoinRequestRepository handles database operations for team join requests
type JoinRequestRepository struct {
	db *gorm.DB
}

// NewJoinRequestRepository creates a new join request repository
func NewJoinRequestRepository(db *gorm.DB) *JoinRequestRepository {
	return &JoinRequestRepository{db: db}
}

// Create creates a new join request
func (r *JoinRequestRepository) Create(req *models.JoinRequest) error {
	return r.db.Create(req).Error
}

// GetByID retrieves a join request by ID
func (r *JoinRequestRepository) GetByID(id int64) (*models.JoinRequest, error) {
	var req models.JoinRequest
	err := r.db.First(&req, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// List returns matching requests newest first, each with its target team
func (r *JoinRequestRepository) List(filter JoinRequestFilter) ([]models.JoinRequest, error) {
	var requests []models.JoinRequest
	query := r.db.Model(&models.JoinRequest{}).Preload("Team")
	if filter.TeamID != nil {
		query = query.Where("team_id = ?", *filter.TeamID)
	}
	if filter.PlayerUserID != nil {
		query = query.Where("player_user_id = ?", *filter.PlayerUserID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if err := query.Order("created_at DESC, id DESC").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// HasOpen reports whether the user has an undecided request for the team
func (r *JoinRequestRepository) HasOpen(playerUserID, teamID int64) (bool, error) {
	var count int64
	err := r.db.Model(&models.JoinRequest{}).
		Where("player_user_id = ? AND team_id = ? AND status IN ?", playerUserID, teamID, models.OpenJoinRequestStatuses).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateStatus sets the status and bumps updated_at
func (r *JoinRequestRepository) UpdateStatus(id int64, status models.JoinRequestStatus) error {
	result := r.db.Model(&models.JoinRequest{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
