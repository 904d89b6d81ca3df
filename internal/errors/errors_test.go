package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message falls back to entity", func(t *testing.T) {
		err := &NotFoundError{Entity: "team"}
		assert.Equal(t, "team not found", err.Error())
	})

	t.Run("Error message uses client text when set", func(t *testing.T) {
		assert.Equal(t, "Jugador no encontrado", ErrPlayerNotFound.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "team"}
		err2 := &NotFoundError{Entity: "team"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrTeamNotFound, ErrTeamNotFound))
		assert.False(t, errors.Is(ErrTeamNotFound, ErrGameNotFound))
	})

	t.Run("errors.Is through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("failed to load request: %w", ErrJoinRequestNotFound)
		assert.True(t, errors.Is(wrapped, ErrJoinRequestNotFound))
		assert.True(t, IsNotFound(wrapped))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrPlayerProfileNotFound))
		assert.False(t, IsNotFound(ErrUserExists))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message without client text", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "team"}
		assert.Equal(t, "team already exists", err.Error())
	})

	t.Run("Error message with client text", func(t *testing.T) {
		assert.Equal(t, "El usuario o email ya existe.", ErrUserExists.Error())
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrUserExists))
		assert.False(t, IsAlreadyExists(ErrTeamNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message is the client message", func(t *testing.T) {
		assert.Equal(t, "El numero de jersey debe ser entre 1 y 99.", ErrInvalidJerseyNumber.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		err := NewValidationError("email", "invalid")
		assert.True(t, IsValidation(err))
		assert.True(t, IsValidation(fmt.Errorf("create: %w", ErrPendingRequestExists)))
		assert.False(t, IsValidation(ErrTeamNotFound))
	})
}

func TestAuthErrors(t *testing.T) {
	assert.True(t, IsAuthentication(ErrInvalidToken))
	assert.False(t, IsAuthentication(ErrNotTeamCoach))
	assert.True(t, IsAuthorization(ErrNotTeamCoach))
	assert.True(t, IsAuthorization(ErrNotOnOriginTeam))
	assert.True(t, IsAuthorization(NewAuthorizationError("nope")))
	assert.False(t, IsAuthorization(ErrMissingToken))
}
