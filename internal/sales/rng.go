package sales

import (
	rng "github.com/leesper/go_rng"
)

// SalesRNG produces random daily sale quantities.
type SalesRNG interface {
	// Quantity returns a non-negative quantity with mean lambda.
	Quantity(lambda float64) int64
}

type poissonRNG struct {
	gen *rng.PoissonGenerator
}

// NewPoissonRNG returns a SalesRNG drawing Poisson distributed
// quantities from a generator seeded with seed.
func NewPoissonRNG(seed int64) SalesRNG {
	return &poissonRNG{gen: rng.NewPoissonGenerator(seed)}
}

func (r *poissonRNG) Quantity(lambda float64) int64 {
	return r.gen.Poisson(lambda)
}
