package service

import (
	"time"

	"flagfootball-backend/internal/database/models"
	"flagfootball-backend/internal/qrcode"
	"flagfootball-backend/internal/repository"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// TokenIssuer signs session tokens for authenticated users
type TokenIssuer interface {
	Generate(user *models.User) (string, time.Time, error)
}

// RegistrationServiceInterface defines the interface for sign-up and sign-in
type RegistrationServiceInterface interface {
	Register(req *RegisterRequest) (*RegisterResponse, error)
	Login(req *LoginRequest) (*LoginResponse, error)
	Me(userID int64) (*UserResponse, error)
}

// ProfileServiceInterface defines the interface for a player's own profile
type ProfileServiceInterface interface {
	GetProfile(userID int64) (*ProfileResponse, error)
	UpdateProfile(userID int64, patch *ProfilePatch) (*ProfileResponse, error)
}

// PlayerServiceInterface defines the interface for the public player page
type PlayerServiceInterface interface {
	GetPublicPlayer(id int64) (*PublicPlayerResponse, error)
}

// JoinRequestServiceInterface defines the interface for the join/transfer workflow
type JoinRequestServiceInterface interface {
	List(actorID int64, filter repository.JoinRequestFilter) ([]JoinRequestResponse, error)
	Create(req *CreateJoinRequest) (*JoinRequestResult, error)
	Review(req *ReviewJoinRequest) (*JoinRequestResult, error)
}

// QRServiceInterface defines the interface for player codes and attendance scans
type QRServiceInterface interface {
	GeneratePlayer(playerID int64, format qrcode.Format) (*PlayerQRResponse, error)
	GenerateTeam(teamID int64, format qrcode.Format) ([]PlayerQRResponse, error)
	Scan(req *ScanRequest) (*ScanResult, error)
}

// TeamServiceInterface defines the interface for team listings
type TeamServiceInterface interface {
	List(coachID *int64) ([]TeamResponse, error)
}

// GameServiceInterface defines the interface for game listings
type GameServiceInterface interface {
	List(status string) ([]GameSummary, error)
	GetAttendance(gameID int64) ([]AttendanceResponse, error)
}
