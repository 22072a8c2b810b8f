package drive

//go:generate mockgen -package=mocks -destination=mocks/mock_model.go github.com/KirkDiggler/otsim/internal/services/drive Model

import "github.com/KirkDiggler/otsim/internal/models"

// Model produces the result of a single possession
type Model interface {
	// Drive samples one possession for the given strategy
	Drive(input *DriveInput) (models.DriveResult, error)
}
