package overtime

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/otsim/internal/models"
	"github.com/KirkDiggler/otsim/internal/services/drive"
)

// simulator implements the Simulator interface with the 2024 playoff rule:
// both teams are guaranteed a possession, then the next score wins.
type simulator struct {
	driveModel     drive.Model
	maxSuddenDeath int
	tiesAllowed    bool
	logger         logrus.FieldLogger
}

// New creates a new overtime simulator
func New(cfg *Config) (*simulator, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.DriveModel == nil {
		return nil, ErrNilDriveModel
	}
	if cfg.SuddenDeathRounds < 0 {
		return nil, fmt.Errorf("%w: sudden death rounds must not be negative, got %d",
			models.ErrInvalidArgument, cfg.SuddenDeathRounds)
	}

	rounds := cfg.SuddenDeathRounds
	if rounds == 0 {
		rounds = DefaultSuddenDeathRounds
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &simulator{
		driveModel:     cfg.DriveModel,
		maxSuddenDeath: 2 * rounds,
		tiesAllowed:    cfg.TiesAllowed,
		logger:         logger,
	}, nil
}

// PlayGame simulates one overtime period to completion
func (s *simulator) PlayGame(input *PlayGameInput) (*PlayGameOutput, error) {
	if input == nil || input.First == nil || input.Second == nil {
		return nil, fmt.Errorf("%w: play game input and both strategies are required", models.ErrInvalidArgument)
	}
	if input.Source == nil {
		return nil, fmt.Errorf("%w: random source cannot be nil", models.ErrInvalidArgument)
	}

	game := models.NewGameState()

	// Opening possession, nothing known yet
	result, err := s.drive(input, models.TeamFirst, nil)
	if err != nil {
		return nil, err
	}
	game.Record(models.TeamFirst, result)

	// A defensive score on the opening possession ends overtime
	if result.Kind() == models.DriveResultSafety {
		return s.finish(game, models.TeamSecond), nil
	}

	// Answering possession; an informed team knows what it needs
	game.Phase = models.GamePhaseSecondPossession
	var situation *drive.Situation
	if input.Second.Kind == models.StrategyInformed {
		situation = &drive.Situation{
			OwnPoints:      game.Score(models.TeamSecond),
			OpponentPoints: game.Score(models.TeamFirst),
		}
	}
	result, err = s.drive(input, models.TeamSecond, situation)
	if err != nil {
		return nil, err
	}
	game.Record(models.TeamSecond, result)

	if leader := game.Leader(); leader != models.TeamNone {
		return s.finish(game, leader), nil
	}

	// Still level, next score of any kind wins
	game.Phase = models.GamePhaseSuddenDeath
	offense := models.TeamFirst
	for i := 0; i < s.maxSuddenDeath; i++ {
		result, err = s.drive(input, offense, nil)
		if err != nil {
			return nil, err
		}
		game.Record(offense, result)

		if result.Scored() {
			return s.finish(game, game.Leader()), nil
		}
		offense = offense.Opponent()
	}

	if s.tiesAllowed {
		game.Tie = true
		return s.finish(game, models.TeamNone), nil
	}

	s.logger.WithFields(logrus.Fields{
		"phase":           game.Phase,
		"first_score":     game.FirstScore,
		"second_score":    game.SecondScore,
		"possessions":     game.Possessions,
		"max_possessions": s.maxSuddenDeath,
		"first_strategy":  input.First.Name,
		"second_strategy": input.Second.Name,
	}).Error("Sudden death reached its cap without a winner")

	return nil, &InvariantViolationError{
		State:          game,
		MaxPossessions: s.maxSuddenDeath,
	}
}

func (s *simulator) drive(input *PlayGameInput, offense models.Team, situation *drive.Situation) (models.DriveResult, error) {
	strategy := input.First
	if offense == models.TeamSecond {
		strategy = input.Second
	}

	result, err := s.driveModel.Drive(&drive.DriveInput{
		Strategy:  strategy,
		Source:    input.Source,
		Situation: situation,
	})
	if err != nil {
		return models.DriveResult{}, fmt.Errorf("%s team drive: %w", offense, err)
	}
	return result, nil
}

func (s *simulator) finish(game *models.GameState, winner models.Team) *PlayGameOutput {
	game.Winner = winner
	game.Phase = models.GamePhaseGameOver
	return &PlayGameOutput{Game: game}
}
