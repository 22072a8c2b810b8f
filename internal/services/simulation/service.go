package simulation

import (
	"context"
	"encoding/json"
	"fmt"
	"runtime"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/otsim/internal/common/clock"
	"github.com/KirkDiggler/otsim/internal/common/uuid"
	"github.com/KirkDiggler/otsim/internal/models"
	"github.com/KirkDiggler/otsim/internal/random"
	"github.com/KirkDiggler/otsim/internal/services/overtime"
)

// service implements the Service interface
type service struct {
	workers           int
	chunkSize         int
	suddenDeathRounds int
	tiesAllowed       bool

	simulator     overtime.Simulator
	clock         clock.Clock
	uuidGenerator uuid.Generator
	logger        logrus.FieldLogger
}

// New creates a new simulation service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Simulator == nil {
		return nil, ErrNilSimulator
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}
	if cfg.Workers < 0 || cfg.ChunkSize < 0 {
		return nil, fmt.Errorf("%w: workers and chunk size must not be negative", models.ErrInvalidArgument)
	}

	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}
	chunkSize := cfg.ChunkSize
	if chunkSize == 0 {
		chunkSize = DefaultChunkSize
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &service{
		workers:           workers,
		chunkSize:         chunkSize,
		suddenDeathRounds: cfg.SuddenDeathRounds,
		tiesAllowed:       cfg.TiesAllowed,
		simulator:         cfg.Simulator,
		clock:             cfg.Clock,
		uuidGenerator:     cfg.UUIDGenerator,
		logger:            logger,
	}, nil
}

// RunExperiment simulates every pairing Trials times and reports win rates
func (s *service) RunExperiment(ctx context.Context, input *RunExperimentInput) (*RunExperimentOutput, error) {
	pairings, confidence, err := s.validate(input)
	if err != nil {
		return nil, err
	}

	var seed uint64
	if input.Seed != nil {
		seed = *input.Seed
	} else {
		seed, err = random.NewSeed()
		if err != nil {
			return nil, err
		}
	}

	startedAt := s.clock.Now()
	runLogger := s.logger.WithFields(logrus.Fields{
		"seed":     seed,
		"trials":   input.Trials,
		"pairings": len(pairings),
		"workers":  s.workers,
	})
	runLogger.Info("Starting Monte Carlo simulation")

	results := make([]*models.PairingResult, 0, len(pairings))
	for i, pairing := range pairings {
		tally, err := s.runPairing(ctx, uint64(i), pairing, input.Trials, seed)
		if err != nil {
			runLogger.WithError(err).WithField("pairing", pairing.ID).Error("Monte Carlo simulation aborted")
			return nil, err
		}

		result := summarize(pairing, tally, confidence)
		results = append(results, result)

		runLogger.WithFields(logrus.Fields{
			"pairing":         pairing.ID,
			"first_win_rate":  result.FirstWin.Rate,
			"second_win_rate": result.SecondWin.Rate,
			"ties":            tally.Ties,
		}).Debug("Pairing simulated")
	}

	report := &models.Report{
		ID:                s.uuidGenerator.NewID(),
		ExperimentID:      s.experimentID(pairings, input.Trials, seed),
		StartedAt:         startedAt,
		Duration:          s.clock.Since(startedAt),
		Seed:              seed,
		Trials:            input.Trials,
		Workers:           s.workers,
		Confidence:        confidence,
		TiesAllowed:       s.tiesAllowed,
		SuddenDeathRounds: s.suddenDeathRounds,
		Results:           results,
	}

	runLogger.WithFields(logrus.Fields{
		"report_id":      report.ID,
		"execution_time": report.Duration,
	}).Info("Monte Carlo simulation completed")

	return &RunExperimentOutput{Report: report}, nil
}

// validate checks every argument and configuration before any trial runs
func (s *service) validate(input *RunExperimentInput) ([]*models.Pairing, float64, error) {
	if input == nil {
		return nil, 0, fmt.Errorf("%w: input cannot be nil", models.ErrInvalidArgument)
	}
	if input.Trials <= 0 {
		return nil, 0, fmt.Errorf("%w: trials must be positive, got %d", models.ErrInvalidArgument, input.Trials)
	}
	if len(input.Pairings) == 0 {
		return nil, 0, fmt.Errorf("%w: at least one strategy pairing is required", models.ErrInvalidArgument)
	}

	confidence := input.Confidence
	if confidence == 0 {
		confidence = DefaultConfidence
	}
	if confidence <= 0 || confidence >= 1 {
		return nil, 0, fmt.Errorf("%w: confidence must be in (0,1), got %v", models.ErrInvalidArgument, confidence)
	}

	pairings := make([]*models.Pairing, 0, len(input.Pairings))
	for i, p := range input.Pairings {
		if p == nil {
			return nil, 0, fmt.Errorf("%w: pairing %d is nil", models.ErrInvalidArgument, i)
		}
		if err := p.First.Validate(); err != nil {
			return nil, 0, fmt.Errorf("pairing %d first team: %w", i, err)
		}
		if err := p.Second.Validate(); err != nil {
			return nil, 0, fmt.Errorf("pairing %d second team: %w", i, err)
		}

		pairing := *p
		if pairing.ID == "" {
			pairing.ID = fmt.Sprintf("%s-vs-%s", pairing.First.Name, pairing.Second.Name)
		}
		pairings = append(pairings, &pairing)
	}

	return pairings, confidence, nil
}

// runPairing splits the trials into chunks, each with its own random stream,
// and sums the chunk tallies.
func (s *service) runPairing(ctx context.Context, index uint64, pairing *models.Pairing, trials int, seed uint64) (models.SimulationTally, error) {
	var (
		mu    sync.Mutex
		total models.SimulationTally
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for start := 0; start < trials; start += s.chunkSize {
		if gctx.Err() != nil {
			break
		}

		chunk := uint64(start / s.chunkSize)
		n := min(s.chunkSize, trials-start)
		g.Go(func() error {
			tally, err := s.runChunk(gctx, pairing, random.NewSource(random.Derive(seed, index, chunk)), n)
			if err != nil {
				return fmt.Errorf("pairing %s chunk %d: %w", pairing.ID, chunk, err)
			}

			mu.Lock()
			total.Merge(tally)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return models.SimulationTally{}, err
	}
	if err := ctx.Err(); err != nil {
		return models.SimulationTally{}, err
	}

	if total.Games() != int64(trials) {
		return models.SimulationTally{}, fmt.Errorf("%w: pairing %s recorded %d games for %d trials",
			models.ErrInvariantViolation, pairing.ID, total.Games(), trials)
	}

	return total, nil
}

func (s *service) runChunk(ctx context.Context, pairing *models.Pairing, source random.Source, n int) (models.SimulationTally, error) {
	var tally models.SimulationTally

	input := &overtime.PlayGameInput{
		First:  &pairing.First,
		Second: &pairing.Second,
		Source: source,
	}

	for i := 0; i < n; i++ {
		if i%256 == 0 {
			if err := ctx.Err(); err != nil {
				return tally, err
			}
		}

		output, err := s.simulator.PlayGame(input)
		if err != nil {
			return tally, err
		}
		if output == nil || output.Game == nil || !output.Game.Phase.IsTerminal() {
			return tally, fmt.Errorf("%w: simulator returned an unfinished game", models.ErrInvariantViolation)
		}
		tally.Record(output.Game)
	}

	return tally, nil
}

// experimentID fingerprints everything that determines the tallies
func (s *service) experimentID(pairings []*models.Pairing, trials int, seed uint64) string {
	fingerprint, err := json.Marshal(struct {
		Pairings          []*models.Pairing `json:"pairings"`
		Trials            int               `json:"trials"`
		Seed              uint64            `json:"seed"`
		ChunkSize         int               `json:"chunk_size"`
		SuddenDeathRounds int               `json:"sudden_death_rounds"`
		TiesAllowed       bool              `json:"ties_allowed"`
	}{pairings, trials, seed, s.chunkSize, s.suddenDeathRounds, s.tiesAllowed})
	if err != nil {
		// only reachable with NaN probabilities, which validation rejects
		return ""
	}
	return s.uuidGenerator.NameID(fingerprint)
}
