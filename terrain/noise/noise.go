// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package noise

import (
	"math"
	"math/rand"
)

const (
	permSize = 256

	// Fractal defaults.
	Lacunarity  = 2.0
	Persistence = 0.5
)

// Generator produces seeded 1D gradient noise in [-1, 1].
// Immutable after construction; two generators built with the same
// seed return identical samples forever.
type Generator struct {
	// Permutation of 0..255 duplicated to avoid wrapping the lookup index.
	perm [permSize * 2]int
}

// New creates a Generator by shuffling the identity permutation with
// a deterministic seeded source.
func New(seed int64) *Generator {
	g := new(Generator)
	p := rand.New(rand.NewSource(seed)).Perm(permSize)
	copy(g.perm[:permSize], p)
	copy(g.perm[permSize:], p)
	return g
}

// grad maps a permuted index to a 1D gradient of +1 or -1.
func grad(hash int) float64 {
	if hash&1 == 0 {
		return 1
	}
	return -1
}

// Noise1D samples a single octave at x.
func (g *Generator) Noise1D(x float64) float64 {
	floor := math.Floor(x)
	frac := x - floor

	// Unit segment containing x. Negative coordinates wrap like
	// positive ones because Go's & keeps the low bits.
	x0 := int(floor) & (permSize - 1)
	x1 := (x0 + 1) & (permSize - 1)

	// In 1D the dot product is just gradient * distance.
	d0 := grad(g.perm[x0]) * frac
	d1 := grad(g.perm[x1]) * (frac - 1)

	return lerp(d0, d1, fade(frac))
}

// Fractal layers octaves of Noise1D with the default lacunarity and
// persistence, normalized back into approximately [-1, 1].
func (g *Generator) Fractal(x float64, octaves int) float64 {
	return g.FractalEx(x, octaves, Lacunarity, Persistence)
}

// FractalEx is Fractal with explicit frequency and amplitude falloff.
// Returns 0 when octaves <= 0.
func (g *Generator) FractalEx(x float64, octaves int, lacunarity, persistence float64) float64 {
	total := 0.0
	maxAmp := 0.0
	amp := 1.0
	freq := 1.0

	for i := 0; i < octaves; i++ {
		total += g.Noise1D(x*freq) * amp
		maxAmp += amp
		amp *= persistence
		freq *= lacunarity
	}

	if maxAmp == 0 {
		return 0
	}
	return total / maxAmp
}
