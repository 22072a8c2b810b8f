package overtime

//go:generate mockgen -package=mocks -destination=mocks/mock_simulator.go github.com/KirkDiggler/otsim/internal/services/overtime Simulator

// Simulator plays single overtime periods
type Simulator interface {
	// PlayGame simulates one overtime period to completion
	PlayGame(input *PlayGameInput) (*PlayGameOutput, error)
}
