package models

import "fmt"

// GamePhase represents where an overtime period is in its state machine
type GamePhase string

const (
	// GamePhaseFirstPossession indicates the receiving team is about to drive
	GamePhaseFirstPossession GamePhase = "first_possession"

	// GamePhaseSecondPossession indicates the kicking team is about to answer
	GamePhaseSecondPossession GamePhase = "second_possession"

	// GamePhaseSuddenDeath indicates the guaranteed round ended tied
	GamePhaseSuddenDeath GamePhase = "sudden_death"

	// GamePhaseGameOver indicates a winner (or a tie) has been recorded
	GamePhaseGameOver GamePhase = "game_over"
)

// IsTerminal returns true once no more possessions will be played
func (p GamePhase) IsTerminal() bool {
	return p == GamePhaseGameOver
}

// Possession is one team's drive within an overtime period
type Possession struct {
	// Team is the offense for this drive
	Team Team

	// Phase is GamePhaseFirstPossession, GamePhaseSecondPossession or GamePhaseSuddenDeath
	Phase GamePhase

	// Result is how the drive ended
	Result DriveResult
}

// GameState records a single simulated overtime period
type GameState struct {
	// Phase is the current state machine phase
	Phase GamePhase

	// Possessions holds every drive in the order it was played
	Possessions []Possession

	// FirstScore is the overtime score of the team that received first
	FirstScore int

	// SecondScore is the overtime score of the team that kicked first
	SecondScore int

	// Winner is set once the game is decided
	Winner Team

	// Tie is set when the sudden-death cap was reached and ties are allowed
	Tie bool
}

// NewGameState returns an overtime period ready for the opening possession
func NewGameState() *GameState {
	return &GameState{
		Phase:       GamePhaseFirstPossession,
		Possessions: make([]Possession, 0, 4),
	}
}

// Record appends a drive and credits its points to the right side
func (g *GameState) Record(team Team, result DriveResult) {
	g.Possessions = append(g.Possessions, Possession{
		Team:   team,
		Phase:  g.Phase,
		Result: result,
	})
	g.addPoints(team, result.Points())
	g.addPoints(team.Opponent(), result.DefensePoints())
}

func (g *GameState) addPoints(team Team, points int) {
	switch team {
	case TeamFirst:
		g.FirstScore += points
	case TeamSecond:
		g.SecondScore += points
	}
}

// Score returns a team's overtime points
func (g *GameState) Score(team Team) int {
	switch team {
	case TeamFirst:
		return g.FirstScore
	case TeamSecond:
		return g.SecondScore
	default:
		return 0
	}
}

// Leader returns the team ahead, or TeamNone when level
func (g *GameState) Leader() Team {
	switch {
	case g.FirstScore > g.SecondScore:
		return TeamFirst
	case g.SecondScore > g.FirstScore:
		return TeamSecond
	default:
		return TeamNone
	}
}

// SuddenDeathPossessions counts the drives played after the guaranteed round
func (g *GameState) SuddenDeathPossessions() int {
	count := 0
	for _, p := range g.Possessions {
		if p.Phase == GamePhaseSuddenDeath {
			count++
		}
	}
	return count
}

// WentToSuddenDeath reports whether the guaranteed round ended level
func (g *GameState) WentToSuddenDeath() bool {
	return g.SuddenDeathPossessions() > 0
}

// String summarises the state for logs
func (g *GameState) String() string {
	return fmt.Sprintf("phase=%s score=%d-%d possessions=%d winner=%q tie=%t",
		g.Phase, g.FirstScore, g.SecondScore, len(g.Possessions), g.Winner, g.Tie)
}
