package models

import (
	"fmt"
	"math"
)

// ProbabilityTolerance is how far outcome probabilities may drift from summing to 1
const ProbabilityTolerance = 1e-9

// StrategyKind selects how a team uses what it knows about the opponent
type StrategyKind string

const (
	// StrategyStandard ignores the opponent's result and plays the base distribution
	StrategyStandard StrategyKind = "standard"

	// StrategyInformed adjusts 4th-down decisions once the opponent's result is known
	StrategyInformed StrategyKind = "informed"
)

// ParseStrategyKind converts a user supplied name into a StrategyKind
func ParseStrategyKind(name string) (StrategyKind, error) {
	switch StrategyKind(name) {
	case StrategyStandard, StrategyInformed:
		return StrategyKind(name), nil
	default:
		return "", fmt.Errorf("%w: unknown strategy %q (want standard or informed)", ErrInvalidArgument, name)
	}
}

// TryPolicy decides what a team does after a touchdown
type TryPolicy string

const (
	// TryPolicyKick always kicks the extra point
	TryPolicyKick TryPolicy = "kick"

	// TryPolicyTwoPoint always goes for two
	TryPolicyTwoPoint TryPolicy = "two_point"

	// TryPolicySituational goes for two only when a kick could at best tie a known score
	TryPolicySituational TryPolicy = "situational"
)

// OutcomeProbabilities is the base distribution of drive results
type OutcomeProbabilities struct {
	Touchdown float64 `json:"touchdown"`
	FieldGoal float64 `json:"field_goal"`
	NoScore   float64 `json:"no_score"`
	Safety    float64 `json:"safety"`
}

// Sum returns the total probability mass
func (p OutcomeProbabilities) Sum() float64 {
	return p.Touchdown + p.FieldGoal + p.NoScore + p.Safety
}

// Weights returns the probabilities in DriveResultKinds order
func (p OutcomeProbabilities) Weights() []float64 {
	return []float64{p.Touchdown, p.FieldGoal, p.NoScore, p.Safety}
}

// DriveResultKinds is the order used by OutcomeProbabilities.Weights
var DriveResultKinds = []DriveResultKind{
	DriveResultTouchdown,
	DriveResultFieldGoal,
	DriveResultNoScore,
	DriveResultSafety,
}

// Validate checks every probability is in range and that they sum to 1
func (p OutcomeProbabilities) Validate() error {
	for i, w := range p.Weights() {
		if math.IsNaN(w) || w < 0 || w > 1 {
			return fmt.Errorf("%w: %s probability %v outside [0,1]", ErrInvalidConfiguration, DriveResultKinds[i], w)
		}
	}
	if sum := p.Sum(); math.Abs(sum-1) > ProbabilityTolerance {
		return fmt.Errorf("%w: outcome probabilities sum to %v, want 1", ErrInvalidConfiguration, sum)
	}
	return nil
}

// StrategyConfig parameterises one team's drives for a whole game
type StrategyConfig struct {
	// Name labels the strategy in reports
	Name string `json:"name"`

	// Kind is standard or informed
	Kind StrategyKind `json:"kind"`

	// Probabilities is the base drive result distribution
	Probabilities OutcomeProbabilities `json:"probabilities"`

	// Aggressiveness is the share of field-goal drives an informed team extends
	// on 4th down when a field goal would only tie
	Aggressiveness float64 `json:"aggressiveness"`

	// FourthDownConversionRate is how often an extended drive ends in a touchdown
	FourthDownConversionRate float64 `json:"fourth_down_conversion_rate"`

	// ExtraPointRate is the chance a kicked try is good
	ExtraPointRate float64 `json:"extra_point_rate"`

	// TwoPointRate is the chance a two-point try is good
	TwoPointRate float64 `json:"two_point_rate"`

	// TryPolicy decides between kicking and going for two
	TryPolicy TryPolicy `json:"try_policy"`
}

// Validate returns ErrInvalidConfiguration describing the first problem found
func (c *StrategyConfig) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: strategy config cannot be nil", ErrInvalidConfiguration)
	}

	switch c.Kind {
	case StrategyStandard, StrategyInformed:
	default:
		return fmt.Errorf("%w: strategy %q has unknown kind %q", ErrInvalidConfiguration, c.Name, c.Kind)
	}

	switch c.TryPolicy {
	case TryPolicyKick, TryPolicyTwoPoint, TryPolicySituational:
	default:
		return fmt.Errorf("%w: strategy %q has unknown try policy %q", ErrInvalidConfiguration, c.Name, c.TryPolicy)
	}

	if err := c.Probabilities.Validate(); err != nil {
		return fmt.Errorf("strategy %q: %w", c.Name, err)
	}

	rates := []struct {
		name  string
		value float64
	}{
		{"aggressiveness", c.Aggressiveness},
		{"fourth down conversion rate", c.FourthDownConversionRate},
		{"extra point rate", c.ExtraPointRate},
		{"two point rate", c.TwoPointRate},
	}
	for _, r := range rates {
		if math.IsNaN(r.value) || r.value < 0 || r.value > 1 {
			return fmt.Errorf("%w: strategy %q %s %v outside [0,1]", ErrInvalidConfiguration, c.Name, r.name, r.value)
		}
	}

	return nil
}
