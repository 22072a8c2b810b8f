package drive

import (
	"github.com/KirkDiggler/otsim/internal/models"
	"github.com/KirkDiggler/otsim/internal/random"
)

// Situation is what the offense knows about the game before its drive
type Situation struct {
	// OwnPoints is the offense's overtime score so far
	OwnPoints int

	// OpponentPoints is the defense's overtime score so far
	OpponentPoints int
}

// Deficit returns how many points the offense trails by (negative when ahead)
func (s *Situation) Deficit() int {
	if s == nil {
		return 0
	}
	return s.OpponentPoints - s.OwnPoints
}

// DriveInput contains parameters for sampling a possession
type DriveInput struct {
	// Strategy is the offense's strategy
	Strategy *models.StrategyConfig

	// Source is the random stream to consume
	Source random.Source

	// Situation is the known game context. Nil means the opponent's result is
	// unknown, which is always the case for the opening possession.
	Situation *Situation
}
