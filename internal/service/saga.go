package service

import (
	"errors"
	"fmt"

	"flagfootball-backend/internal/logger"
)

// sagaStep is one forward action with the compensation that undoes it
type sagaStep struct {
	name       string
	action     func() error
	compensate func() error
}

// runSaga executes steps in order. When a step fails, the compensations of the
// steps that already succeeded run in reverse order and the step error is returned.
func runSaga(log *logger.Logger, steps ...sagaStep) error {
	for i, step := range steps {
		err := step.action()
		if err == nil {
			continue
		}

		stepErr := fmt.Errorf("%s: %w", step.name, err)
		for j := i - 1; j >= 0; j-- {
			done := steps[j]
			if done.compensate == nil {
				continue
			}
			if cerr := done.compensate(); cerr != nil {
				log.WithError(cerr).WithField("step", done.name).Error("saga compensation failed")
				stepErr = errors.Join(stepErr, fmt.Errorf("compensate %s: %w", done.name, cerr))
			}
		}
		return stepErr
	}
	return nil
}
