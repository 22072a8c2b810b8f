package simulation

// SimulationError is a custom error type for simulation service setup errors
type SimulationError string

// Error implements the error interface
func (e SimulationError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig        SimulationError = "config cannot be nil"
	ErrNilSimulator     SimulationError = "overtime simulator cannot be nil"
	ErrNilClock         SimulationError = "clock cannot be nil"
	ErrNilUUIDGenerator SimulationError = "UUID generator cannot be nil"
)
