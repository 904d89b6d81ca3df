package service

import (
	"fmt"
	"strings"
	"time"

	"flagfootball-backend/internal/database/models"
	apperrors "flagfootball-backend/internal/errors"
	"flagfootball-backend/internal/logger"
	"flagfootball-backend/internal/repository"

	"github.com/go-playground/validator/v10"
)

const (
	msgRequestCoordinator = "Solicitud de transferencia enviada. Requiere aprobacion del coordinador de liga y ambos capitanes."
	msgRequestTransfer    = "Solicitud de transferencia enviada exitosamente"
	msgRequestJoin        = "Solicitud enviada exitosamente"
	msgTransferDone       = "Transferencia completada exitosamente"
	msgJoinAccepted       = "Jugador aceptado al equipo exitosamente"
	msgRequestRejected    = "Solicitud rechazada"
)

// JoinRequestService runs the join/transfer request workflow
type JoinRequestService struct {
	repo       repository.JoinRequestRepositoryInterface
	teamRepo   repository.TeamRepositoryInterface
	playerRepo repository.PlayerRepositoryInterface
	validator  *validator.Validate
}

// NewJoinRequestService creates a new join request service
func NewJoinRequestService(repo repository.JoinRequestRepositoryInterface, teamRepo repository.TeamRepositoryInterface, playerRepo repository.PlayerRepositoryInterface, validator *validator.Validate) *JoinRequestService {
	return &JoinRequestService{
		repo:       repo,
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		validator:  validator,
	}
}

// CreateJoinRequest represents a player's request to join or transfer to a team
type CreateJoinRequest struct {
	PlayerUserID int64  `json:"player_user_id" validate:"required" example:"12"`
	PlayerID     *int64 `json:"player_id,omitempty" example:"40"`
	TeamID       int64  `json:"team_id" validate:"required" example:"3"`
	PlayerName   string `json:"player_name" validate:"required" example:"Juan Perez"`
	Position     string `json:"position" validate:"required" example:"WR"`
	JerseyNumber int    `json:"jersey_number" validate:"required" example:"11"`
	Phone        string `json:"phone,omitempty"`
	Message      string `json:"message,omitempty"`
	IsTransfer   bool   `json:"is_transfer"`
	FromTeamID   *int64 `json:"from_team_id,omitempty"`
}

// ReviewJoinRequest represents a coach's decision on a request
type ReviewJoinRequest struct {
	ID          int64                    `json:"id" validate:"required" example:"5"`
	Status      models.JoinRequestStatus `json:"status" validate:"required" example:"accepted"`
	CoachUserID int64                    `json:"coach_user_id" validate:"required" example:"2"`
}

// JoinRequestResponse is a request joined with its target team
type JoinRequestResponse struct {
	ID                          int64                    `json:"id"`
	PlayerUserID                int64                    `json:"player_user_id"`
	PlayerID                    *int64                   `json:"player_id"`
	TeamID                      int64                    `json:"team_id"`
	PlayerName                  string                   `json:"player_name"`
	Position                    string                   `json:"position"`
	JerseyNumber                int                      `json:"jersey_number"`
	Phone                       string                   `json:"phone"`
	Message                     string                   `json:"message"`
	Status                      models.JoinRequestStatus `json:"status"`
	IsTransfer                  bool                     `json:"is_transfer"`
	FromTeamID                  *int64                   `json:"from_team_id"`
	RequiresCoordinatorApproval bool                     `json:"requires_coordinator_approval"`
	CreatedAt                   time.Time                `json:"created_at"`
	UpdatedAt                   time.Time                `json:"updated_at"`
	Team                        *TeamSummary             `json:"teams,omitempty"`
}

// JoinRequestResult pairs the outcome of a create or review with its client message
type JoinRequestResult struct {
	Request *JoinRequestResponse
	Message string
}

func toJoinRequestResponse(req *models.JoinRequest) JoinRequestResponse {
	return JoinRequestResponse{
		ID:                          req.ID,
		PlayerUserID:                req.PlayerUserID,
		PlayerID:                    req.PlayerID,
		TeamID:                      req.TeamID,
		PlayerName:                  req.PlayerName,
		Position:                    req.Position,
		JerseyNumber:                req.JerseyNumber,
		Phone:                       req.Phone,
		Message:                     req.Message,
		Status:                      req.Status,
		IsTransfer:                  req.IsTransfer,
		FromTeamID:                  req.FromTeamID,
		RequiresCoordinatorApproval: req.RequiresCoordinatorApproval,
		CreatedAt:                   req.CreatedAt,
		UpdatedAt:                   req.UpdatedAt,
		Team:                        toTeamSummary(req.Team),
	}
}

// List returns requests newest first. A caller sees their own requests, or a team's
// requests when they coach it. With no filter the caller's own requests are listed.
func (s *JoinRequestService) List(actorID int64, filter repository.JoinRequestFilter) ([]JoinRequestResponse, error) {
	if filter.PlayerUserID != nil && *filter.PlayerUserID != actorID {
		return nil, apperrors.ErrActorMismatch
	}
	if filter.PlayerUserID == nil {
		if filter.TeamID == nil {
			filter.PlayerUserID = &actorID
		} else if err := s.requireCoach(*filter.TeamID, actorID); err != nil {
			return nil, err
		}
	}

	requests, err := s.repo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list join requests: %w", err)
	}
	out := make([]JoinRequestResponse, 0, len(requests))
	for i := range requests {
		out = append(out, toJoinRequestResponse(&requests[i]))
	}
	return out, nil
}

// Create files a join or transfer request after the membership and duplicate checks
func (s *JoinRequestService) Create(req *CreateJoinRequest) (*JoinRequestResult, error) {
	req.PlayerName = strings.TrimSpace(req.PlayerName)
	req.Position = strings.TrimSpace(req.Position)
	if err := s.validator.Struct(req); err != nil {
		return nil, translateValidation(err, apperrors.ErrMissingFields, nil)
	}
	if req.JerseyNumber < minJersey || req.JerseyNumber > maxJersey {
		return nil, apperrors.ErrInvalidJerseyNumber
	}

	if err := s.checkOwnership(req); err != nil {
		return nil, err
	}

	onTeam, err := s.findTeamRow(req.PlayerUserID, req.PlayerName, req.TeamID)
	if err != nil {
		return nil, err
	}
	if onTeam != nil {
		return nil, apperrors.ErrAlreadyOnTeam
	}

	open, err := s.repo.HasOpen(req.PlayerUserID, req.TeamID)
	if err != nil {
		return nil, fmt.Errorf("failed to check open requests: %w", err)
	}
	if open {
		return nil, apperrors.ErrPendingRequestExists
	}

	needsCoordinator := false
	if req.IsTransfer && req.FromTeamID != nil {
		needsCoordinator, err = s.transferNeedsCoordinator(*req.FromTeamID, req.TeamID)
		if err != nil {
			return nil, err
		}
	}

	status := models.JoinRequestStatusPending
	if needsCoordinator {
		status = models.JoinRequestStatusPendingCoordinator
	}

	joinRequest := &models.JoinRequest{
		PlayerUserID:                req.PlayerUserID,
		PlayerID:                    req.PlayerID,
		TeamID:                      req.TeamID,
		PlayerName:                  plainText(req.PlayerName),
		Position:                    req.Position,
		JerseyNumber:                req.JerseyNumber,
		Phone:                       plainText(req.Phone),
		Message:                     plainText(req.Message),
		Status:                      status,
		IsTransfer:                  req.IsTransfer,
		FromTeamID:                  req.FromTeamID,
		RequiresCoordinatorApproval: needsCoordinator,
	}
	if err := s.repo.Create(joinRequest); err != nil {
		return nil, fmt.Errorf("failed to create join request: %w", err)
	}

	message := msgRequestJoin
	switch {
	case needsCoordinator:
		message = msgRequestCoordinator
	case req.IsTransfer:
		message = msgRequestTransfer
	}

	resp := toJoinRequestResponse(joinRequest)
	return &JoinRequestResult{Request: &resp, Message: message}, nil
}

// Review records the coach's decision and, on acceptance, places the player on the team.
// The status update and the player write are not atomic.
func (s *JoinRequestService) Review(req *ReviewJoinRequest) (*JoinRequestResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, translateValidation(err, apperrors.ErrMissingFields, nil)
	}
	if !req.Status.IsDecision() {
		return nil, apperrors.ErrInvalidStatus
	}

	joinRequest, err := s.repo.GetByID(req.ID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrJoinRequestNotFound
		}
		return nil, fmt.Errorf("failed to load join request: %w", err)
	}

	if err := s.requireCoach(joinRequest.TeamID, req.CoachUserID); err != nil {
		return nil, err
	}

	if !joinRequest.Status.IsOpen() {
		return nil, apperrors.ErrRequestAlreadyReviewed
	}

	if err := s.repo.UpdateStatus(joinRequest.ID, req.Status); err != nil {
		return nil, fmt.Errorf("failed to update join request: %w", err)
	}
	joinRequest.Status = req.Status

	log := logger.New().WithFields(map[string]interface{}{
		"join_request_id": joinRequest.ID,
		"team_id":         joinRequest.TeamID,
		"status":          req.Status,
	})

	if req.Status == models.JoinRequestStatusRejected {
		log.Info("join request rejected")
		resp := toJoinRequestResponse(joinRequest)
		return &JoinRequestResult{Request: &resp, Message: msgRequestRejected}, nil
	}

	if err := s.assignToTeam(joinRequest); err != nil {
		log.WithError(err).Error("join request accepted but player assignment failed")
		return nil, err
	}
	log.Info("join request accepted")

	message := msgJoinAccepted
	if joinRequest.IsTransfer {
		message = msgTransferDone
	}
	resp := toJoinRequestResponse(joinRequest)
	return &JoinRequestResult{Request: &resp, Message: message}, nil
}

// assignToTeam places an accepted player on the request's team. An existing row on the
// team is patched; a transfer moves the named row; otherwise the player's profile is cloned.
func (s *JoinRequestService) assignToTeam(req *models.JoinRequest) error {
	existing, err := s.findTeamRow(req.PlayerUserID, req.PlayerName, req.TeamID)
	if err != nil {
		return err
	}

	if existing != nil {
		updates := map[string]interface{}{
			"position":      req.Position,
			"jersey_number": req.JerseyNumber,
		}
		if existing.UserID == nil && req.PlayerUserID != 0 {
			updates["user_id"] = req.PlayerUserID
		}
		if err := s.playerRepo.Update(existing.ID, updates); err != nil {
			return fmt.Errorf("failed to update existing team player: %w", err)
		}
		return nil
	}

	if req.IsTransfer && req.PlayerID != nil {
		err := s.playerRepo.Update(*req.PlayerID, map[string]interface{}{
			"team_id":       req.TeamID,
			"position":      req.Position,
			"jersey_number": req.JerseyNumber,
		})
		if err != nil {
			return fmt.Errorf("failed to move player for transfer: %w", err)
		}
		return nil
	}

	original, err := s.originalRow(req)
	if err != nil {
		return err
	}
	if err := s.playerRepo.Create(cloneForTeam(original, req)); err != nil {
		return fmt.Errorf("failed to create player for new team: %w", err)
	}
	return nil
}

// requireCoach fails unless coachID coaches the team. A missing team is also a refusal.
func (s *JoinRequestService) requireCoach(teamID, coachID int64) error {
	team, err := s.teamRepo.GetByID(teamID)
	if err != nil && !isNotFound(err) {
		return fmt.Errorf("failed to load team: %w", err)
	}
	if team == nil || team.CoachID == nil || *team.CoachID != coachID {
		return apperrors.ErrNotTeamCoach
	}
	return nil
}

// checkOwnership makes sure the roster row and origin team named in a request belong to the requester
func (s *JoinRequestService) checkOwnership(req *CreateJoinRequest) error {
	if req.PlayerID != nil {
		row, err := s.playerRepo.GetByID(*req.PlayerID)
		if err != nil {
			if isNotFound(err) {
				return apperrors.ErrPlayerNotFound
			}
			return fmt.Errorf("failed to load player: %w", err)
		}
		if row.UserID == nil || *row.UserID != req.PlayerUserID {
			return apperrors.ErrActorMismatch
		}
	}

	if req.FromTeamID != nil {
		_, err := s.playerRepo.GetByUserAndTeam(req.PlayerUserID, *req.FromTeamID)
		if err != nil {
			if isNotFound(err) {
				return apperrors.ErrNotOnOriginTeam
			}
			return fmt.Errorf("failed to check origin team: %w", err)
		}
	}
	return nil
}

// findTeamRow looks the player up on a team by account first, then by name
func (s *JoinRequestService) findTeamRow(userID int64, name string, teamID int64) (*models.Player, error) {
	if userID != 0 {
		row, err := s.playerRepo.GetByUserAndTeam(userID, teamID)
		if err == nil {
			return row, nil
		}
		if !isNotFound(err) {
			return nil, fmt.Errorf("failed to check team membership: %w", err)
		}
	}

	row, err := s.playerRepo.GetByNameAndTeam(name, teamID)
	if err == nil {
		return row, nil
	}
	if !isNotFound(err) {
		return nil, fmt.Errorf("failed to check team membership by name: %w", err)
	}
	return nil, nil
}

// originalRow picks the row whose profile is cloned: the named row, else the user's oldest
func (s *JoinRequestService) originalRow(req *models.JoinRequest) (*models.Player, error) {
	if req.PlayerID != nil {
		row, err := s.playerRepo.GetByID(*req.PlayerID)
		if err == nil {
			return row, nil
		}
		if !isNotFound(err) {
			return nil, fmt.Errorf("failed to load original player: %w", err)
		}
	}
	if req.PlayerUserID != 0 {
		row, err := s.playerRepo.GetOldestByUser(req.PlayerUserID)
		if err == nil {
			return row, nil
		}
		if !isNotFound(err) {
			return nil, fmt.Errorf("failed to load original player: %w", err)
		}
	}
	return nil, nil
}

func (s *JoinRequestService) transferNeedsCoordinator(fromTeamID, toTeamID int64) (bool, error) {
	from, err := s.teamRepo.GetByID(fromTeamID)
	if err != nil && !isNotFound(err) {
		return false, fmt.Errorf("failed to load origin team: %w", err)
	}
	to, err := s.teamRepo.GetByID(toTeamID)
	if err != nil && !isNotFound(err) {
		return false, fmt.Errorf("failed to load target team: %w", err)
	}
	if from == nil || to == nil {
		return false, nil
	}
	return RequiresCoordinatorApproval(from.Category, to.Category), nil
}

// cloneForTeam builds the new roster row for req's team, copying every profile field of original
func cloneForTeam(original *models.Player, req *models.JoinRequest) *models.Player {
	teamID := req.TeamID
	userID := req.PlayerUserID
	row := &models.Player{
		Name:         req.PlayerName,
		TeamID:       &teamID,
		Position:     req.Position,
		JerseyNumber: req.JerseyNumber,
		UserID:       &userID,
	}
	if original == nil {
		return row
	}

	if original.Name != "" {
		row.Name = original.Name
	}
	if original.UserID != nil {
		row.UserID = original.UserID
	}
	row.PhotoURL = original.PhotoURL
	row.Phone = original.Phone
	row.PersonalEmail = original.PersonalEmail
	row.BirthDate = original.BirthDate
	row.Address = original.Address
	row.EmergencyContactName = original.EmergencyContactName
	row.EmergencyContactPhone = original.EmergencyContactPhone
	row.BloodType = original.BloodType
	row.SeasonsPlayed = original.SeasonsPlayed
	row.PlayingSince = original.PlayingSince
	row.MedicalConditions = original.MedicalConditions
	row.CedulaURL = original.CedulaURL
	row.ProfileCompleted = original.ProfileCompleted
	return row
}
