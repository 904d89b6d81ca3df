package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity  string
	Message string // user-facing text, Spanish
}

func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Message string
}

func (e *AlreadyExistsError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error. Message is returned to the client as is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrUserNotFound          = &NotFoundError{Entity: "user", Message: "Usuario no encontrado"}
	ErrTeamNotFound          = &NotFoundError{Entity: "team", Message: "Equipo no encontrado"}
	ErrPlayerNotFound        = &NotFoundError{Entity: "player", Message: "Jugador no encontrado"}
	ErrPlayerProfileNotFound = &NotFoundError{Entity: "player profile", Message: "Perfil de jugador no encontrado"}
	ErrScannedPlayerNotFound = &NotFoundError{Entity: "scanned player", Message: "Jugador no encontrado en la base de datos"}
	ErrGameNotFound          = &NotFoundError{Entity: "game", Message: "Partido no encontrado"}
	ErrJoinRequestNotFound   = &NotFoundError{Entity: "join request", Message: "Solicitud no encontrada"}
	ErrSchemaVersionNotFound = &NotFoundError{Entity: "schema version"}
)

// Already Exists Errors
var (
	ErrUserExists = &AlreadyExistsError{Entity: "user", Message: "El usuario o email ya existe."}
)

// Validation Errors
var (
	ErrRegistrationFieldsRequired = &ValidationError{Message: "Todos los campos son requeridos."}
	ErrInvalidEmail               = &ValidationError{Field: "email", Message: "El email no es valido."}
	ErrPlayerNameRequired         = &ValidationError{Field: "playerName", Message: "El nombre completo es requerido para jugadores."}
	ErrInvalidJerseyNumber        = &ValidationError{Field: "jersey_number", Message: "El numero de jersey debe ser entre 1 y 99."}
	ErrMissingFields              = &ValidationError{Message: "Faltan campos requeridos"}
	ErrInvalidStatus              = &ValidationError{Field: "status", Message: "Estado invalido"}
	ErrInvalidID                  = &ValidationError{Field: "id", Message: "ID invalido"}
	ErrUserIDRequired             = &ValidationError{Field: "user_id", Message: "ID de usuario requerido"}
	ErrAlreadyOnTeam              = &ValidationError{Field: "team_id", Message: "Ya perteneces a este equipo."}
	ErrPendingRequestExists       = &ValidationError{Field: "team_id", Message: "Ya tienes una solicitud pendiente para este equipo"}
	ErrRequestAlreadyReviewed     = &ValidationError{Field: "status", Message: "La solicitud ya fue procesada"}
	ErrQRTargetRequired           = &ValidationError{Message: "player_id o team_id es requerido"}
	ErrScanFieldsRequired         = &ValidationError{Message: "qr_data y game_id son requeridos"}
	ErrInvalidQR                  = &ValidationError{Field: "qr_data", Message: "QR invalido - no se pudo leer los datos"}
)

// Authentication Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "Usuario o contraseña incorrectos"}
	ErrMissingToken       = &AuthenticationError{Message: "Se requiere iniciar sesion"}
	ErrInvalidToken       = &AuthenticationError{Message: "Sesion invalida o expirada"}
)

// Authorization Errors
var (
	ErrNotTeamCoach    = &AuthorizationError{Message: "No tienes permisos para gestionar solicitudes de este equipo"}
	ErrActorMismatch   = &AuthorizationError{Message: "No tienes permisos para actuar en nombre de otro usuario"}
	ErrNotOnOriginTeam = &AuthorizationError{Message: "No perteneces al equipo de origen de la transferencia"}
)

// Infrastructure Errors
var (
	ErrSchemaOutdated = errors.New("database schema is older than this build requires")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}
