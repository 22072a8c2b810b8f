// Package random provides the seeded streams that drive sampling consumes.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"

	"golang.org/x/exp/rand"
)

// Source is a stream of pseudo-random numbers. It is the source type the
// gonum distuv samplers draw from.
type Source = rand.Source

// NewSource returns a PCG stream seeded with seed
func NewSource(seed uint64) Source {
	return rand.NewSource(seed)
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return binary.LittleEndian.Uint64(b[:]), nil
}

// Derive mixes keys into seed so that every (seed, keys...) combination maps to
// its own stream. Streams derived from neighbouring keys are uncorrelated.
func Derive(seed uint64, keys ...uint64) uint64 {
	state := splitmix64(seed)
	for _, k := range keys {
		state = splitmix64(state ^ splitmix64(k+0x9e3779b97f4a7c15))
	}
	return state
}

func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}
