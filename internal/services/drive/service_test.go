package drive

import (
	"math"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/otsim/internal/models"
	"github.com/KirkDiggler/otsim/internal/random"
)

type DriveModelTestSuite struct {
	suite.Suite
	model  *model
	source random.Source

	standard models.StrategyConfig
	informed models.StrategyConfig
}

func (s *DriveModelTestSuite) SetupTest() {
	s.model = New()
	s.source = random.NewSource(20240211)
	s.standard = Standard()
	s.informed = Informed()
}

func TestDriveModelTestSuite(t *testing.T) {
	suite.Run(t, new(DriveModelTestSuite))
}

func (s *DriveModelTestSuite) sample(cfg *models.StrategyConfig, situation *Situation, n int) map[models.DriveResultKind]int {
	counts := make(map[models.DriveResultKind]int)
	for i := 0; i < n; i++ {
		result, err := s.model.Drive(&DriveInput{
			Strategy:  cfg,
			Source:    s.source,
			Situation: situation,
		})
		s.Require().NoError(err)
		counts[result.Kind()]++
	}
	return counts
}

func (s *DriveModelTestSuite) TestDrive_AlwaysTouchdown() {
	cfg := s.standard
	cfg.Probabilities = models.OutcomeProbabilities{Touchdown: 1}

	for i := 0; i < 100; i++ {
		result, err := s.model.Drive(&DriveInput{Strategy: &cfg, Source: s.source})
		s.Require().NoError(err)
		s.Equal(models.DriveResultTouchdown, result.Kind())
		s.Equal(7, result.Points())
		s.Equal(0, result.DefensePoints())
	}
}

func (s *DriveModelTestSuite) TestDrive_NeverScores() {
	cfg := s.standard
	cfg.Probabilities = models.OutcomeProbabilities{NoScore: 1}

	counts := s.sample(&cfg, nil, 1000)
	s.Equal(map[models.DriveResultKind]int{models.DriveResultNoScore: 1000}, counts)
}

func (s *DriveModelTestSuite) TestDrive_SafetyCreditsDefense() {
	cfg := s.standard
	cfg.Probabilities = models.OutcomeProbabilities{Safety: 1}

	result, err := s.model.Drive(&DriveInput{Strategy: &cfg, Source: s.source})
	s.Require().NoError(err)
	s.Equal(models.DriveResultSafety, result.Kind())
	s.Equal(0, result.Points())
	s.Equal(2, result.DefensePoints())
	s.True(result.Scored())
}

func (s *DriveModelTestSuite) TestDrive_FrequenciesMatchConfiguration() {
	n := 100000
	counts := s.sample(&s.standard, nil, n)

	s.InDelta(0.25, float64(counts[models.DriveResultTouchdown])/float64(n), 0.01)
	s.InDelta(0.20, float64(counts[models.DriveResultFieldGoal])/float64(n), 0.01)
	s.InDelta(0.55, float64(counts[models.DriveResultNoScore])/float64(n), 0.01)
	s.Zero(counts[models.DriveResultSafety])
}

func (s *DriveModelTestSuite) TestDrive_StandardIgnoresSituation() {
	n := 20000
	counts := s.sample(&s.standard, &Situation{OpponentPoints: 7}, n)

	s.InDelta(0.20, float64(counts[models.DriveResultFieldGoal])/float64(n), 0.015)
}

func (s *DriveModelTestSuite) TestDrive_InformedNeverKicksWhenTouchdownNeeded() {
	counts := s.sample(&s.informed, &Situation{OpponentPoints: 7}, 20000)

	s.Zero(counts[models.DriveResultFieldGoal])
	s.InDelta(0.25+0.20*0.4, float64(counts[models.DriveResultTouchdown])/20000, 0.015)
}

func (s *DriveModelTestSuite) TestDrive_InformedOpeningPossessionUsesBase() {
	n := 20000
	counts := s.sample(&s.informed, nil, n)

	s.InDelta(0.20, float64(counts[models.DriveResultFieldGoal])/float64(n), 0.015)
}

func (s *DriveModelTestSuite) TestDrive_SituationalTryGoesForTwoWhenKickTies() {
	cfg := s.informed
	cfg.Probabilities = models.OutcomeProbabilities{Touchdown: 1}
	cfg.TwoPointRate = 1

	result, err := s.model.Drive(&DriveInput{
		Strategy:  &cfg,
		Source:    s.source,
		Situation: &Situation{OpponentPoints: 7},
	})
	s.Require().NoError(err)
	s.Equal(8, result.Points())

	cfg.TwoPointRate = 0
	result, err = s.model.Drive(&DriveInput{
		Strategy:  &cfg,
		Source:    s.source,
		Situation: &Situation{OpponentPoints: 7},
	})
	s.Require().NoError(err)
	s.Equal(6, result.Points())
}

func (s *DriveModelTestSuite) TestDrive_SituationalTryKicksWhenTouchdownWins() {
	cfg := s.informed
	cfg.Probabilities = models.OutcomeProbabilities{Touchdown: 1}
	cfg.TwoPointRate = 0

	result, err := s.model.Drive(&DriveInput{
		Strategy:  &cfg,
		Source:    s.source,
		Situation: &Situation{OpponentPoints: 3},
	})
	s.Require().NoError(err)
	s.Equal(7, result.Points())
}

func (s *DriveModelTestSuite) TestDrive_MissedExtraPoint() {
	cfg := s.standard
	cfg.Probabilities = models.OutcomeProbabilities{Touchdown: 1}
	cfg.ExtraPointRate = 0

	result, err := s.model.Drive(&DriveInput{Strategy: &cfg, Source: s.source})
	s.Require().NoError(err)
	s.Equal(6, result.Points())
}

func (s *DriveModelTestSuite) TestDrive_InvalidConfiguration() {
	cfg := s.standard
	cfg.Probabilities.NoScore = 0.6

	_, err := s.model.Drive(&DriveInput{Strategy: &cfg, Source: s.source})
	s.ErrorIs(err, models.ErrInvalidConfiguration)
}

func (s *DriveModelTestSuite) TestDrive_InvalidArgument() {
	_, err := s.model.Drive(nil)
	s.ErrorIs(err, models.ErrInvalidArgument)

	_, err = s.model.Drive(&DriveInput{Strategy: &s.standard})
	s.ErrorIs(err, models.ErrInvalidArgument)
}

func (s *DriveModelTestSuite) TestDistribution_SumsToOne() {
	for _, cfg := range []models.StrategyConfig{s.standard, s.informed} {
		for _, aggressiveness := range []float64{0, 0.25, 1} {
			cfg.Aggressiveness = aggressiveness
			situations := []*Situation{nil}
			for opp := 0; opp <= 8; opp++ {
				situations = append(situations, &Situation{OpponentPoints: opp})
			}
			for _, situation := range situations {
				dist := Distribution(&cfg, situation)
				s.InDelta(1, dist.Sum(), models.ProbabilityTolerance, "cfg=%s situation=%+v", cfg.Name, situation)
				s.NoError(dist.Validate())
			}
		}
	}
}

func (s *DriveModelTestSuite) TestDistribution_FieldGoalOnlyTies() {
	cfg := s.informed
	cfg.Aggressiveness = 0.5

	dist := Distribution(&cfg, &Situation{OpponentPoints: 3})

	s.InDelta(0.10, dist.FieldGoal, 1e-12)
	s.InDelta(0.25+0.10*0.4, dist.Touchdown, 1e-12)
	s.InDelta(0.55+0.10*0.6, dist.NoScore, 1e-12)
}

func (s *DriveModelTestSuite) TestDistribution_AlreadyWinningUsesBase() {
	dist := Distribution(&s.informed, &Situation{OpponentPoints: 0})
	s.Equal(s.informed.Probabilities, dist)

	dist = Distribution(&s.informed, &Situation{OwnPoints: 2, OpponentPoints: 0})
	s.Equal(s.informed.Probabilities, dist)
}

func TestPreset(t *testing.T) {
	cfg, err := Preset(models.StrategyInformed)
	if err != nil {
		t.Fatalf("preset: %v", err)
	}
	if cfg.Kind != models.StrategyInformed {
		t.Fatalf("expected informed, got %s", cfg.Kind)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("informed preset invalid: %v", err)
	}
	if sum := cfg.Probabilities.Sum(); math.Abs(sum-1) > models.ProbabilityTolerance {
		t.Fatalf("preset probabilities sum to %v", sum)
	}

	if _, err := Preset("reckless"); err == nil {
		t.Fatal("expected error for unknown preset")
	}
}
