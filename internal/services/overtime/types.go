package overtime

import (
	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/otsim/internal/models"
	"github.com/KirkDiggler/otsim/internal/random"
	"github.com/KirkDiggler/otsim/internal/services/drive"
)

// DefaultSuddenDeathRounds is the number of sudden-death rounds played before
// a game is declared a tie (or an invariant violation)
const DefaultSuddenDeathRounds = 20

// Config holds configuration for the overtime simulator
type Config struct {
	// DriveModel samples each possession
	DriveModel drive.Model

	// SuddenDeathRounds caps sudden death at this many rounds of one
	// possession per team. Zero means DefaultSuddenDeathRounds.
	SuddenDeathRounds int

	// TiesAllowed records a tie when the cap is reached instead of failing
	TiesAllowed bool

	// Logger receives invariant violations. Defaults to the logrus standard logger.
	Logger logrus.FieldLogger
}

// PlayGameInput contains parameters for simulating one overtime period
type PlayGameInput struct {
	// First is the strategy of the team receiving the opening kickoff
	First *models.StrategyConfig

	// Second is the strategy of the team kicking off
	Second *models.StrategyConfig

	// Source is the random stream for every drive in the game
	Source random.Source
}

// PlayGameOutput contains the finished game
type PlayGameOutput struct {
	// Game is the completed state; Winner is set unless Tie is true
	Game *models.GameState
}
