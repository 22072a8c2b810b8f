// Package otsim wires the overtime strategy simulator command.
package otsim

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/KirkDiggler/otsim/internal/common/clock"
	"github.com/KirkDiggler/otsim/internal/common/uuid"
	"github.com/KirkDiggler/otsim/internal/config"
	"github.com/KirkDiggler/otsim/internal/handlers/cli"
	"github.com/KirkDiggler/otsim/internal/logger"
	"github.com/KirkDiggler/otsim/internal/models"
	"github.com/KirkDiggler/otsim/internal/services/drive"
	"github.com/KirkDiggler/otsim/internal/services/overtime"
	"github.com/KirkDiggler/otsim/internal/services/simulation"
)

// Config holds otsim command configuration.
type Config struct {
	Trials            int     `env:"OTSIM_TRIALS"              envDefault:"10000"`
	StrategyA         string  `env:"OTSIM_STRATEGY_A"          envDefault:"standard"`
	StrategyB         string  `env:"OTSIM_STRATEGY_B"          envDefault:"standard"`
	Seed              uint64  `env:"OTSIM_SEED"`
	Compare           bool    `env:"OTSIM_COMPARE"`
	Workers           int     `env:"OTSIM_WORKERS"`
	SuddenDeathRounds int     `env:"OTSIM_SUDDEN_DEATH_ROUNDS" envDefault:"20"`
	TiesAllowed       bool    `env:"OTSIM_TIES_ALLOWED"`
	Confidence        float64 `env:"OTSIM_CONFIDENCE"          envDefault:"0.95"`
	Format            string  `env:"OTSIM_FORMAT"              envDefault:"text"`
	LogLevel          string  `env:"OTSIM_LOG_LEVEL"           envDefault:"info"`
	LogFormat         string  `env:"OTSIM_LOG_FORMAT"          envDefault:"text"`

	TouchdownProb  float64 `env:"OTSIM_TOUCHDOWN_PROB"   envDefault:"0.25"`
	FieldGoalProb  float64 `env:"OTSIM_FIELD_GOAL_PROB"  envDefault:"0.20"`
	SafetyProb     float64 `env:"OTSIM_SAFETY_PROB"      envDefault:"0"`
	Aggressiveness float64 `env:"OTSIM_AGGRESSIVENESS"   envDefault:"0.5"`
	ConversionRate float64 `env:"OTSIM_CONVERSION_RATE"  envDefault:"0.4"`
	TwoPointRate   float64 `env:"OTSIM_TWO_POINT_RATE"   envDefault:"0.5"`
}

// ParseConfig parses environment defaults and then flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.IntVar(&cfg.Trials, "trials", cfg.Trials, "games simulated per pairing")
	fs.StringVar(&cfg.StrategyA, "strategy-a", cfg.StrategyA, "strategy of the team receiving first (standard|informed)")
	fs.StringVar(&cfg.StrategyB, "strategy-b", cfg.StrategyB, "strategy of the team kicking first (standard|informed)")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed; 0 means draw a random seed, which is recorded in the report")
	fs.BoolVar(&cfg.Compare, "compare", cfg.Compare, "simulate all four strategy pairings")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "concurrent workers, 0 uses every CPU")
	fs.IntVar(&cfg.SuddenDeathRounds, "sudden-death-rounds", cfg.SuddenDeathRounds, "sudden death rounds before a game is capped")
	fs.BoolVar(&cfg.TiesAllowed, "ties-allowed", cfg.TiesAllowed, "record a tie instead of failing when sudden death is capped")
	fs.Float64Var(&cfg.Confidence, "confidence", cfg.Confidence, "confidence level of reported intervals")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "report format (text|json)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format (text|json)")
	fs.Float64Var(&cfg.TouchdownProb, "touchdown-prob", cfg.TouchdownProb, "chance a drive ends in a touchdown")
	fs.Float64Var(&cfg.FieldGoalProb, "field-goal-prob", cfg.FieldGoalProb, "chance a drive ends in a field goal")
	fs.Float64Var(&cfg.SafetyProb, "safety-prob", cfg.SafetyProb, "chance a drive ends in a safety")
	fs.Float64Var(&cfg.Aggressiveness, "aggressiveness", cfg.Aggressiveness, "share of tying field goals an informed team passes up")
	fs.Float64Var(&cfg.ConversionRate, "conversion-rate", cfg.ConversionRate, "chance an extended 4th-down drive scores a touchdown")
	fs.Float64Var(&cfg.TwoPointRate, "two-point-rate", cfg.TwoPointRate, "chance a two-point try is good")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Pairings builds the strategy match-ups the config asks for.
func (c Config) Pairings() ([]*models.Pairing, error) {
	if c.Compare {
		kinds := []models.StrategyKind{models.StrategyStandard, models.StrategyInformed}
		pairings := make([]*models.Pairing, 0, len(kinds)*len(kinds))
		for _, first := range kinds {
			for _, second := range kinds {
				pairing, err := c.pairing(string(first), string(second))
				if err != nil {
					return nil, err
				}
				pairings = append(pairings, pairing)
			}
		}
		return pairings, nil
	}

	pairing, err := c.pairing(c.StrategyA, c.StrategyB)
	if err != nil {
		return nil, err
	}
	return []*models.Pairing{pairing}, nil
}

func (c Config) pairing(first, second string) (*models.Pairing, error) {
	a, err := c.strategy(first)
	if err != nil {
		return nil, fmt.Errorf("strategy-a: %w", err)
	}
	b, err := c.strategy(second)
	if err != nil {
		return nil, fmt.Errorf("strategy-b: %w", err)
	}
	return &models.Pairing{First: a, Second: b}, nil
}

// strategy applies the distribution overrides to a preset
func (c Config) strategy(name string) (models.StrategyConfig, error) {
	kind, err := models.ParseStrategyKind(name)
	if err != nil {
		return models.StrategyConfig{}, err
	}
	cfg, err := drive.Preset(kind)
	if err != nil {
		return models.StrategyConfig{}, err
	}

	cfg.Probabilities = models.OutcomeProbabilities{
		Touchdown: c.TouchdownProb,
		FieldGoal: c.FieldGoalProb,
		Safety:    c.SafetyProb,
		NoScore:   1 - c.TouchdownProb - c.FieldGoalProb - c.SafetyProb,
	}
	cfg.FourthDownConversionRate = c.ConversionRate
	cfg.TwoPointRate = c.TwoPointRate
	if kind == models.StrategyInformed {
		cfg.Aggressiveness = c.Aggressiveness
	}

	if err := cfg.Validate(); err != nil {
		return models.StrategyConfig{}, err
	}
	return cfg, nil
}

// Run executes the otsim command.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}

	format, err := cli.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}
	if cfg.Trials <= 0 {
		return fmt.Errorf("%w: trials must be positive, got %d", models.ErrInvalidArgument, cfg.Trials)
	}
	if cfg.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative, got %d", models.ErrInvalidArgument, cfg.Workers)
	}
	if cfg.Confidence <= 0 || cfg.Confidence >= 1 {
		return fmt.Errorf("%w: confidence must be in (0,1), got %v", models.ErrInvalidArgument, cfg.Confidence)
	}
	if cfg.SuddenDeathRounds <= 0 {
		return fmt.Errorf("%w: sudden death rounds must be positive, got %d", models.ErrInvalidArgument, cfg.SuddenDeathRounds)
	}
	pairings, err := cfg.Pairings()
	if err != nil {
		return err
	}

	log := logger.New(&logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: errOut,
	})

	simulator, err := overtime.New(&overtime.Config{
		DriveModel:        drive.New(),
		SuddenDeathRounds: cfg.SuddenDeathRounds,
		TiesAllowed:       cfg.TiesAllowed,
		Logger:            log,
	})
	if err != nil {
		return fmt.Errorf("failed to create overtime simulator: %w", err)
	}

	service, err := simulation.New(&simulation.Config{
		Workers:           cfg.Workers,
		SuddenDeathRounds: cfg.SuddenDeathRounds,
		TiesAllowed:       cfg.TiesAllowed,
		Simulator:         simulator,
		Clock:             clock.New(),
		UUIDGenerator:     uuid.New(),
		Logger:            log,
	})
	if err != nil {
		return fmt.Errorf("failed to create simulation service: %w", err)
	}

	input := &simulation.RunExperimentInput{
		Pairings:   pairings,
		Trials:     cfg.Trials,
		Confidence: cfg.Confidence,
	}
	if cfg.Seed != 0 {
		seed := cfg.Seed
		input.Seed = &seed
	}

	output, err := service.RunExperiment(ctx, input)
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"report_id": output.Report.ID,
		"format":    format,
	}).Debug("Rendering report")

	return cli.Render(out, output.Report, format)
}

// ExitCode maps a Run error to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return config.ExitOK
	case errors.Is(err, models.ErrInvalidArgument), errors.Is(err, models.ErrInvalidConfiguration):
		return config.ExitBadUsage
	default:
		return config.ExitFailure
	}
}
