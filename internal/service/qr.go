package service

import (
	"encoding/json"
	"fmt"

	"flagfootball-backend/internal/database/models"
	apperrors "flagfootball-backend/internal/errors"
	"flagfootball-backend/internal/logger"
	"flagfootball-backend/internal/qrcode"
	"flagfootball-backend/internal/repository"
)

// QRService issues player codes and records attendance from scans
type QRService struct {
	playerRepo     repository.PlayerRepositoryInterface
	gameRepo       repository.GameRepositoryInterface
	attendanceRepo repository.AttendanceRepositoryInterface
	renderer       *qrcode.Renderer
	baseURL        string
}

// NewQRService creates a new QR service. Codes point at baseURL/perfil/{id}.
func NewQRService(playerRepo repository.PlayerRepositoryInterface, gameRepo repository.GameRepositoryInterface, attendanceRepo repository.AttendanceRepositoryInterface, renderer *qrcode.Renderer, baseURL string) *QRService {
	return &QRService{
		playerRepo:     playerRepo,
		gameRepo:       gameRepo,
		attendanceRepo: attendanceRepo,
		renderer:       renderer,
		baseURL:        baseURL,
	}
}

// PlayerQRResponse is a player with their profile link and rendered code
type PlayerQRResponse struct {
	PlayerSummary
	ProfileURL string `json:"profile_url"`
	QRCode     string `json:"qr_code"`
}

// ScanRequest is a scanned code for a game. QRData may be a JSON string or object.
type ScanRequest struct {
	QRData json.RawMessage `json:"qr_data" swaggertype:"string" example:"https://liga.example.com/perfil/40"`
	GameID int64           `json:"game_id" example:"8"`
}

// ScanResult describes the attendance outcome of a scan
type ScanResult struct {
	AlreadyRegistered bool                   `json:"-"`
	Message           string                 `json:"-"`
	Player            PlayerSummary          `json:"player"`
	Game              GameSummary            `json:"game"`
	Attended          bool                   `json:"attended"`
	Attendance        *models.GameAttendance `json:"attendance,omitempty"`
}

// GeneratePlayer renders the code of one player
func (s *QRService) GeneratePlayer(playerID int64, format qrcode.Format) (*PlayerQRResponse, error) {
	if playerID <= 0 {
		return nil, apperrors.ErrQRTargetRequired
	}

	player, err := s.playerRepo.GetByID(playerID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to load player: %w", err)
	}
	return s.render(player, format)
}

// GenerateTeam renders the codes of a roster ordered by jersey number
func (s *QRService) GenerateTeam(teamID int64, format qrcode.Format) ([]PlayerQRResponse, error) {
	if teamID <= 0 {
		return nil, apperrors.ErrQRTargetRequired
	}

	players, err := s.playerRepo.GetByTeamID(teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}

	out := make([]PlayerQRResponse, 0, len(players))
	for i := range players {
		code, err := s.render(&players[i], format)
		if err != nil {
			return nil, err
		}
		out = append(out, *code)
	}
	return out, nil
}

func (s *QRService) render(player *models.Player, format qrcode.Format) (*PlayerQRResponse, error) {
	url := qrcode.ProfileURL(s.baseURL, player.ID)
	image, err := s.renderer.Render(url, format)
	if err != nil {
		return nil, fmt.Errorf("failed to render code for player %d: %w", player.ID, err)
	}
	return &PlayerQRResponse{
		PlayerSummary: toPlayerSummary(player),
		ProfileURL:    url,
		QRCode:        image,
	}, nil
}

// Scan decodes a code and marks the player present at the game. Scanning twice is a no-op.
func (s *QRService) Scan(req *ScanRequest) (*ScanResult, error) {
	raw := qrcode.Normalize(req.QRData)
	if raw == "" || req.GameID <= 0 {
		return nil, apperrors.ErrScanFieldsRequired
	}

	playerID, ok := qrcode.Decode(raw)
	if !ok {
		return nil, apperrors.ErrInvalidQR
	}

	player, err := s.playerRepo.GetByID(playerID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrScannedPlayerNotFound
		}
		return nil, fmt.Errorf("failed to load player: %w", err)
	}

	game, err := s.gameRepo.GetByID(req.GameID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to load game: %w", err)
	}

	result := &ScanResult{
		Player:   toPlayerSummary(player),
		Game:     toGameSummary(game),
		Attended: true,
	}

	existing, err := s.attendanceRepo.GetByGameAndPlayer(game.ID, player.ID)
	if err != nil && !isNotFound(err) {
		return nil, fmt.Errorf("failed to check attendance: %w", err)
	}
	if existing != nil && existing.Attended {
		result.AlreadyRegistered = true
		result.Message = fmt.Sprintf("%s ya tiene asistencia registrada", player.Name)
		return result, nil
	}

	record, err := s.attendanceRepo.MarkAttended(game.ID, player.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to record attendance: %w", err)
	}
	logger.New().WithFields(map[string]interface{}{"game_id": game.ID, "player_id": player.ID}).Info("attendance recorded")

	result.Attendance = record
	result.Message = fmt.Sprintf("Asistencia registrada para %s", player.Name)
	return result, nil
}
