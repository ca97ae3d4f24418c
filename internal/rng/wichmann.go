// Package rng provides the seeded generator behind infinite mode layouts.
//
// The recurrence is a Wichmann-Hill style combination of three small
// multiplicative congruential generators. Layouts depend on it reproducing
// the exact same sequence for a given seed, so the arithmetic must not change.
package rng

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidSeed is returned when a seed normalizes outside (0, seedModulus].
var ErrInvalidSeed = errors.New("rng: invalid seed")

const (
	seedOffset  = 10
	seedModulus = 30000

	m1 = 30269
	m2 = 30307
	m3 = 30323
)

// Generator is a deterministic pseudo-random sequence keyed by an integer seed.
type Generator struct {
	seed       int
	s1, s2, s3 int
}

// New creates a generator for seed. Level numbers are the intended seeds.
// Seeds at or below -seedOffset normalize to a non-positive value and fail
// with ErrInvalidSeed.
func New(seed int) (*Generator, error) {
	s := (seed + seedOffset) % seedModulus
	if s <= 0 || s > seedModulus {
		return nil, fmt.Errorf("%w: %d normalizes to %d", ErrInvalidSeed, seed, s)
	}

	return &Generator{
		seed: seed,
		s1:   s,
		s2:   s + 1,
		s3:   s + 2,
	}, nil
}

// Seed returns the seed the generator was created with.
func (g *Generator) Seed() int {
	return g.seed
}

// Next advances the three counters and returns a value in [0, 1).
func (g *Generator) Next() float64 {
	g.s1 = 171*(g.s1%177) - 2*(g.s1/177)
	if g.s1 < 0 {
		g.s1 += m1
	}
	g.s2 = 172*(g.s2%176) - 35*(g.s2/176)
	if g.s2 < 0 {
		g.s2 += m2
	}
	g.s3 = 170*(g.s3%178) - 63*(g.s3/178)
	if g.s3 < 0 {
		g.s3 += m3
	}

	r := float64(g.s1)/m1 + float64(g.s2)/m2 + float64(g.s3)/m3
	return r - math.Trunc(r)
}

// Signed returns the next value remapped from [0, 1) to [-1, 1).
func (g *Generator) Signed() float64 {
	return (g.Next() - 0.5) * 2
}
