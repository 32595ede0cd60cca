package simulation

import "math/rand"

// NormalSource yields independent standard-normal draws. It is injected into
// the path simulator so tests can supply an explicitly seeded source and get
// bit-identical matrices across runs.
type NormalSource interface {
	NormFloat64() float64
}

// NewSource returns a NormalSource backed by math/rand with the given seed.
func NewSource(seed int64) NormalSource {
	return rand.New(rand.NewSource(seed))
}
