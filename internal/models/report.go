package models

import "time"

// Estimate is an empirical proportion with its uncertainty
type Estimate struct {
	// Rate is the observed proportion
	Rate float64 `json:"rate"`

	// StdErr is the binomial standard error sqrt(p(1-p)/n)
	StdErr float64 `json:"std_err"`

	// Lower is the lower bound of the Wilson score interval
	Lower float64 `json:"lower"`

	// Upper is the upper bound of the Wilson score interval
	Upper float64 `json:"upper"`
}

// Pairing matches the strategy of the receiving team against the kicking team
type Pairing struct {
	// ID identifies the pairing in reports, e.g. "standard-vs-informed"
	ID string `json:"id"`

	// First is the strategy of the team that receives first
	First StrategyConfig `json:"first"`

	// Second is the strategy of the team that kicks first
	Second StrategyConfig `json:"second"`
}

// PairingResult holds the outcome of all trials for one pairing
type PairingResult struct {
	Pairing Pairing         `json:"pairing"`
	Tally   SimulationTally `json:"tally"`

	FirstWin  Estimate `json:"first_win"`
	SecondWin Estimate `json:"second_win"`
	Tie       Estimate `json:"tie"`

	// MeanPossessions is the average number of drives per game
	MeanPossessions float64 `json:"mean_possessions"`

	// SuddenDeathRate is the share of games level after the guaranteed round
	SuddenDeathRate float64 `json:"sudden_death_rate"`
}

// Report is the result of one experiment run. ID is unique per run;
// ExperimentID is shared by runs that would reproduce the same tallies.
type Report struct {
	ID                string           `json:"id"`
	ExperimentID      string           `json:"experiment_id"`
	StartedAt         time.Time        `json:"started_at"`
	Duration          time.Duration    `json:"duration"`
	Seed              uint64           `json:"seed"`
	Trials            int              `json:"trials"`
	Workers           int              `json:"workers"`
	Confidence        float64          `json:"confidence"`
	TiesAllowed       bool             `json:"ties_allowed"`
	SuddenDeathRounds int              `json:"sudden_death_rounds"`
	Results           []*PairingResult `json:"results"`
}
