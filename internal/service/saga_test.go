package service

import (
	"errors"
	"testing"

	"flagfootball-backend/internal/logger"

	"github.com/stretchr/testify/assert"
)

func TestRunSaga(t *testing.T) {
	log := logger.New()

	t.Run("all steps succeed", func(t *testing.T) {
		var trail []string
		err := runSaga(log,
			sagaStep{name: "a", action: func() error { trail = append(trail, "a"); return nil }},
			sagaStep{name: "b", action: func() error { trail = append(trail, "b"); return nil }},
		)
		assert.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, trail)
	})

	t.Run("failure compensates completed steps in reverse", func(t *testing.T) {
		var trail []string
		boom := errors.New("boom")
		err := runSaga(log,
			sagaStep{
				name:       "a",
				action:     func() error { trail = append(trail, "a"); return nil },
				compensate: func() error { trail = append(trail, "undo a"); return nil },
			},
			sagaStep{
				name:       "b",
				action:     func() error { trail = append(trail, "b"); return nil },
				compensate: func() error { trail = append(trail, "undo b"); return nil },
			},
			sagaStep{
				name:       "c",
				action:     func() error { return boom },
				compensate: func() error { trail = append(trail, "undo c"); return nil },
			},
		)
		assert.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "c: boom")
		assert.Equal(t, []string{"a", "b", "undo b", "undo a"}, trail)
	})

	t.Run("compensation failure is reported alongside", func(t *testing.T) {
		boom := errors.New("boom")
		stuck := errors.New("stuck")
		err := runSaga(log,
			sagaStep{name: "a", action: func() error { return nil }, compensate: func() error { return stuck }},
			sagaStep{name: "b", action: func() error { return boom }},
		)
		assert.ErrorIs(t, err, boom)
		assert.ErrorIs(t, err, stuck)
	})
}
