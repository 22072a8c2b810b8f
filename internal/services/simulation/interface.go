package simulation

import "context"

// Service runs Monte Carlo experiments over strategy pairings
type Service interface {
	// RunExperiment simulates every pairing Trials times and reports win rates
	RunExperiment(ctx context.Context, input *RunExperimentInput) (*RunExperimentOutput, error)
}
