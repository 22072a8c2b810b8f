package overtime

import (
	"fmt"

	"github.com/KirkDiggler/otsim/internal/models"
)

// SimulatorError is a custom error type for simulator setup errors
type SimulatorError string

// Error implements the error interface
func (e SimulatorError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig     SimulatorError = "config cannot be nil"
	ErrNilDriveModel SimulatorError = "drive model cannot be nil"
)

// InvariantViolationError is returned when a game reaches the sudden-death cap
// without a winner and ties are not allowed
type InvariantViolationError struct {
	// State is the full game at the moment the cap was hit
	State *models.GameState

	// MaxPossessions is the sudden-death possession cap that was reached
	MaxPossessions int
}

// Error implements the error interface
func (e *InvariantViolationError) Error() string {
	return fmt.Sprintf("%s: no winner after %d sudden-death possessions (%s)",
		models.ErrInvariantViolation, e.MaxPossessions, e.State)
}

// Unwrap lets errors.Is match models.ErrInvariantViolation
func (e *InvariantViolationError) Unwrap() error {
	return models.ErrInvariantViolation
}
