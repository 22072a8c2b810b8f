package drive

import "github.com/KirkDiggler/otsim/internal/models"

// Default drive distribution, roughly the league-wide outcome of an overtime
// possession starting at the 25 after a touchback.
var defaultProbabilities = models.OutcomeProbabilities{
	Touchdown: 0.25,
	FieldGoal: 0.20,
	NoScore:   0.55,
	Safety:    0,
}

// Standard returns the conservative strategy: kick field goals in range, kick extra points
func Standard() models.StrategyConfig {
	return models.StrategyConfig{
		Name:                     string(models.StrategyStandard),
		Kind:                     models.StrategyStandard,
		Probabilities:            defaultProbabilities,
		Aggressiveness:           0,
		FourthDownConversionRate: 0.4,
		ExtraPointRate:           1,
		TwoPointRate:             0.5,
		TryPolicy:                models.TryPolicyKick,
	}
}

// Informed returns the strategy that plays to the known score when answering
func Informed() models.StrategyConfig {
	return models.StrategyConfig{
		Name:                     string(models.StrategyInformed),
		Kind:                     models.StrategyInformed,
		Probabilities:            defaultProbabilities,
		Aggressiveness:           0.5,
		FourthDownConversionRate: 0.4,
		ExtraPointRate:           1,
		TwoPointRate:             0.5,
		TryPolicy:                models.TryPolicySituational,
	}
}

// Preset returns the default config for a strategy kind
func Preset(kind models.StrategyKind) (models.StrategyConfig, error) {
	switch kind {
	case models.StrategyStandard:
		return Standard(), nil
	case models.StrategyInformed:
		return Informed(), nil
	default:
		_, err := models.ParseStrategyKind(string(kind))
		return models.StrategyConfig{}, err
	}
}
