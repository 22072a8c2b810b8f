package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/otsim/internal/common/uuid Generator

// experimentNamespace scopes name-based experiment IDs
var experimentNamespace = uuid.MustParse("6f1d3c2a-8b5e-4f0a-9d7c-2e4b6a8c0f13")

// Generator hands out identifiers for experiment runs
type Generator interface {
	// NewID returns a random identifier, unique per call
	NewID() string

	// NameID returns the same identifier for the same name
	NameID(name []byte) string
}

// DefaultGenerator implements Generator using the google/uuid package
type DefaultGenerator struct{}

// New returns the default generator
func New() *DefaultGenerator {
	return &DefaultGenerator{}
}

// NewID returns a random (version 4) UUID
func (d *DefaultGenerator) NewID() string {
	return uuid.NewString()
}

// NameID returns a name-based (version 5) UUID in the experiment namespace
func (d *DefaultGenerator) NameID(name []byte) string {
	return uuid.NewSHA1(experimentNamespace, name).String()
}
