package models

// Team identifies a side by its overtime possession order
type Team string

const (
	// TeamNone is used when no winner has been decided
	TeamNone Team = ""

	// TeamFirst is the team that receives the opening overtime possession
	TeamFirst Team = "first"

	// TeamSecond is the team that kicks off to start overtime
	TeamSecond Team = "second"
)

// Opponent returns the other team
func (t Team) Opponent() Team {
	switch t {
	case TeamFirst:
		return TeamSecond
	case TeamSecond:
		return TeamFirst
	default:
		return TeamNone
	}
}
