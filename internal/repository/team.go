package repository

import (
	"flagfootball-backend/internal/database/models"

	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create creates a new team
func (r *TeamRepository) Create(team *models.Team) error {
	return r.db.Create(team).Error
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(id int64) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// List returns teams ordered by name, optionally only those coached by coachID
func (r *TeamRepository) List(coachID *int64) ([]models.Team, error) {
	var teams []models.Team
	query := r.db.Model(&models.Team{})
	if coachID != nil {
		query = query.Where("coach_id = ?", *coachID)
	}
	if err := query.Order("name ASC").Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}
