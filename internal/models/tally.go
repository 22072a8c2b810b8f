package models

// SimulationTally counts the outcomes of simulated games for one pairing
type SimulationTally struct {
	// FirstWins counts games won by the team that received first
	FirstWins int64 `json:"first_wins"`

	// SecondWins counts games won by the team that kicked first
	SecondWins int64 `json:"second_wins"`

	// Ties counts games that reached the sudden-death cap with ties allowed
	Ties int64 `json:"ties"`

	// SuddenDeathGames counts games still level after the guaranteed round
	SuddenDeathGames int64 `json:"sudden_death_games"`

	// Possessions is the total number of drives played
	Possessions int64 `json:"possessions"`
}

// Record adds one finished game
func (t *SimulationTally) Record(game *GameState) {
	switch {
	case game.Tie:
		t.Ties++
	case game.Winner == TeamFirst:
		t.FirstWins++
	case game.Winner == TeamSecond:
		t.SecondWins++
	}
	if game.WentToSuddenDeath() {
		t.SuddenDeathGames++
	}
	t.Possessions += int64(len(game.Possessions))
}

// Merge adds another tally into this one
func (t *SimulationTally) Merge(other SimulationTally) {
	t.FirstWins += other.FirstWins
	t.SecondWins += other.SecondWins
	t.Ties += other.Ties
	t.SuddenDeathGames += other.SuddenDeathGames
	t.Possessions += other.Possessions
}

// Games returns the number of games recorded
func (t SimulationTally) Games() int64 {
	return t.FirstWins + t.SecondWins + t.Ties
}
