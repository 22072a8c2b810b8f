package simulation

import (
	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/otsim/internal/common/clock"
	"github.com/KirkDiggler/otsim/internal/common/uuid"
	"github.com/KirkDiggler/otsim/internal/models"
	"github.com/KirkDiggler/otsim/internal/services/overtime"
)

const (
	// DefaultChunkSize is the number of trials sharing one random stream
	DefaultChunkSize = 1024

	// DefaultConfidence is the confidence level of reported intervals
	DefaultConfidence = 0.95
)

// Config holds configuration for the simulation service
type Config struct {
	// Workers is the number of chunks simulated concurrently. Zero means runtime.NumCPU().
	Workers int

	// ChunkSize is the number of trials per random stream. Zero means DefaultChunkSize.
	// Tallies depend on it, so reproducing a run needs the same chunk size.
	ChunkSize int

	// SuddenDeathRounds and TiesAllowed describe the rules the Simulator was
	// built with; they are copied into reports.
	SuddenDeathRounds int
	TiesAllowed       bool

	// Service dependencies
	Simulator     overtime.Simulator
	Clock         clock.Clock
	UUIDGenerator uuid.Generator
	Logger        logrus.FieldLogger
}

// RunExperimentInput contains parameters for an experiment run
type RunExperimentInput struct {
	// Pairings are the strategy match-ups to simulate, reported in order
	Pairings []*models.Pairing

	// Trials is the number of games simulated per pairing
	Trials int

	// Seed makes the run reproducible. Nil draws a random seed, which is
	// recorded in the report.
	Seed *uint64

	// Confidence is the interval confidence level. Zero means DefaultConfidence.
	Confidence float64
}

// RunExperimentOutput contains the result of an experiment run
type RunExperimentOutput struct {
	Report *models.Report
}
