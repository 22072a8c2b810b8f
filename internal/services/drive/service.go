package drive

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/KirkDiggler/otsim/internal/models"
)

// model implements the Model interface by sampling a categorical distribution
type model struct{}

// New creates a drive outcome model
func New() *model {
	return &model{}
}

// Drive samples one possession
func (m *model) Drive(input *DriveInput) (models.DriveResult, error) {
	if input == nil || input.Strategy == nil {
		return models.DriveResult{}, fmt.Errorf("%w: drive input and strategy cannot be nil", models.ErrInvalidArgument)
	}
	if input.Source == nil {
		return models.DriveResult{}, fmt.Errorf("%w: random source cannot be nil", models.ErrInvalidArgument)
	}
	if err := input.Strategy.Validate(); err != nil {
		return models.DriveResult{}, err
	}

	dist := Distribution(input.Strategy, input.Situation)
	draw := distuv.NewCategorical(dist.Weights(), input.Source).Rand()

	switch models.DriveResultKinds[int(draw)] {
	case models.DriveResultTouchdown:
		return models.Touchdown(m.try(input)), nil
	case models.DriveResultFieldGoal:
		return models.FieldGoal(), nil
	case models.DriveResultSafety:
		return models.Safety(), nil
	default:
		return models.NoScore(), nil
	}
}

// try resolves the play after a touchdown and returns the points it added
func (m *model) try(input *DriveInput) int {
	if goForTwo(input.Strategy, input.Situation) {
		return 2 * bernoulli(input.Strategy.TwoPointRate, input)
	}
	return bernoulli(input.Strategy.ExtraPointRate, input)
}

func bernoulli(p float64, input *DriveInput) int {
	return int(distuv.Bernoulli{P: p, Src: input.Source}.Rand())
}

func goForTwo(cfg *models.StrategyConfig, situation *Situation) bool {
	switch cfg.TryPolicy {
	case models.TryPolicyTwoPoint:
		return true
	case models.TryPolicySituational:
		// a kick can at best tie
		return situation != nil && situation.Deficit() >= models.TouchdownPoints+1
	default:
		return false
	}
}

// Distribution returns the drive result distribution a strategy actually plays
// in the given situation. The result always sums to the same total as the
// configured probabilities.
func Distribution(cfg *models.StrategyConfig, situation *Situation) models.OutcomeProbabilities {
	dist := cfg.Probabilities
	if cfg.Kind != models.StrategyInformed || situation == nil {
		return dist
	}

	var extended float64
	switch deficit := situation.Deficit(); {
	case deficit > models.FieldGoalPoints:
		// a field goal loses, so every field-goal drive keeps going on 4th down
		extended = dist.FieldGoal
	case deficit == models.FieldGoalPoints:
		// a field goal only ties
		extended = dist.FieldGoal * cfg.Aggressiveness
	default:
		return dist
	}

	dist.FieldGoal -= extended
	dist.Touchdown += extended * cfg.FourthDownConversionRate
	dist.NoScore += extended * (1 - cfg.FourthDownConversionRate)
	return dist
}
