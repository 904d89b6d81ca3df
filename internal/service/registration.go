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
	"golang.org/x/crypto/bcrypt"
)

const (
	defaultPosition = "QB"
	minJersey       = 1
	maxJersey       = 99

	registeredPlayerMessage = "Cuenta de jugador creada exitosamente. Ya puedes iniciar sesion y solicitar unirte a un equipo."
	registeredCoachMessage  = "Usuario registrado exitosamente. Ya puedes iniciar sesion."
)

// RegistrationService creates accounts and signs users in
type RegistrationService struct {
	userRepo   repository.UserRepositoryInterface
	playerRepo repository.PlayerRepositoryInterface
	tokens     TokenIssuer
	validator  *validator.Validate
}

// NewRegistrationService creates a new registration service
func NewRegistrationService(userRepo repository.UserRepositoryInterface, playerRepo repository.PlayerRepositoryInterface, tokens TokenIssuer, validator *validator.Validate) *RegistrationService {
	return &RegistrationService{
		userRepo:   userRepo,
		playerRepo: playerRepo,
		tokens:     tokens,
		validator:  validator,
	}
}

// RegisterRequest represents the sign-up form
type RegisterRequest struct {
	Username     string `json:"username" validate:"required,max=50" example:"jperez"`
	Email        string `json:"email" validate:"required,email,max=255" example:"jperez@correo.com"`
	Password     string `json:"password" validate:"required" example:"secreto123"`
	Role         string `json:"role" example:"player"`
	PlayerName   string `json:"playerName" example:"Juan Perez"`
	Position     string `json:"position" example:"WR"`
	JerseyNumber int    `json:"jerseyNumber" example:"11"`
}

// LoginRequest represents the sign-in form. Username may also be the email.
type LoginRequest struct {
	Username string `json:"username" validate:"required" example:"jperez"`
	Password string `json:"password" validate:"required" example:"secreto123"`
}

// UserResponse is the public view of an account
type UserResponse struct {
	ID        int64             `json:"id"`
	Username  string            `json:"username"`
	Email     string            `json:"email"`
	Role      models.UserRole   `json:"role"`
	Status    models.UserStatus `json:"status"`
	CreatedAt string            `json:"created_at"`
}

// RegisterResponse carries the created account and the role specific greeting
type RegisterResponse struct {
	User    UserResponse `json:"user"`
	Message string       `json:"-"`
}

// LoginResponse carries the session token
type LoginResponse struct {
	Token     string       `json:"token"`
	TokenType string       `json:"token_type"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

func toUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
		Status:    user.Status,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}

// Register creates a user and, for players, a teamless player row. The two writes run
// as a saga: if the player row cannot be created the user is deleted again.
func (s *RegistrationService) Register(req *RegisterRequest) (*RegisterResponse, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.PlayerName = strings.TrimSpace(req.PlayerName)

	if err := s.validator.Struct(req); err != nil {
		return nil, translateValidation(err, apperrors.ErrRegistrationFieldsRequired, map[string]error{
			"Email.email":  apperrors.ErrInvalidEmail,
			"Username.max": apperrors.NewValidationError("username", "El usuario no puede exceder 50 caracteres."),
		})
	}

	role := models.UserRoleCoach
	if strings.EqualFold(strings.TrimSpace(req.Role), string(models.UserRolePlayer)) {
		role = models.UserRolePlayer
	}

	position := strings.TrimSpace(req.Position)
	if role == models.UserRolePlayer {
		if req.PlayerName == "" {
			return nil, apperrors.ErrPlayerNameRequired
		}
		if req.JerseyNumber < minJersey || req.JerseyNumber > maxJersey {
			return nil, apperrors.ErrInvalidJerseyNumber
		}
		if position == "" {
			position = defaultPosition
		}
	}

	existing, err := s.userRepo.GetByUsernameOrEmail(req.Username, req.Email)
	if err != nil && !isNotFound(err) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
		Status:       models.UserStatusActive,
	}

	steps := []sagaStep{{
		name: "create user",
		action: func() error {
			if err := s.userRepo.Create(user); err != nil {
				if repository.IsUniqueViolation(err) {
					return apperrors.ErrUserExists
				}
				return err
			}
			return nil
		},
		compensate: func() error { return s.userRepo.Delete(user.ID) },
	}}

	if role == models.UserRolePlayer {
		steps = append(steps, sagaStep{
			name: "create player profile",
			action: func() error {
				return s.playerRepo.Create(&models.Player{
					Name:         plainText(req.PlayerName),
					JerseyNumber: req.JerseyNumber,
					Position:     position,
					UserID:       &user.ID,
				})
			},
		})
	}

	log := logger.New().WithField("username", user.Username)
	if err := runSaga(log, steps...); err != nil {
		if apperrors.IsAlreadyExists(err) {
			return nil, apperrors.ErrUserExists
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	log.WithField("role", role).Info("user registered")

	message := registeredCoachMessage
	if role == models.UserRolePlayer {
		message = registeredPlayerMessage
	}
	return &RegisterResponse{User: toUserResponse(user), Message: message}, nil
}

// Login verifies credentials and issues a session token
func (s *RegistrationService) Login(req *LoginRequest) (*LoginResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, translateValidation(err, apperrors.ErrRegistrationFieldsRequired, nil)
	}

	identifier := strings.TrimSpace(req.Username)
	user, err := s.userRepo.GetByUsernameOrEmail(identifier, strings.ToLower(identifier))
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Generate(user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &LoginResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresAt: expiresAt,
		User:      toUserResponse(user),
	}, nil
}

// Me returns the account behind a session
func (s *RegistrationService) Me(userID int64) (*UserResponse, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	resp := toUserResponse(user)
	return &resp, nil
}
