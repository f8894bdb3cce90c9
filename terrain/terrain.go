// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package terrain generates an unbounded side-scrolling landscape as
// chunks of height samples, streamed in and out of memory around a
// camera position.
package terrain

// Point is a terrain sample in world coordinates.
// Y grows downward (screen space).
type Point struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

// Config holds every tunable the generator consumes at construction.
type Config struct {
	Seed int64

	// Chunk sampling
	ChunkWidth    int     // world units per chunk
	PointSpacing  int     // distance between sampled noise points
	Octaves       int
	NoiseScale    float64 // base frequency scale
	Amplitude     float32 // vertical scale of terrain
	Baseline      float32 // y level around which hills vary
	AllowNegative bool    // allow generation to the left of x=0

	// Streaming
	PrefetchAhead     int // chunks beyond the right edge to keep generated
	PrefetchBehind    int // chunks behind the camera to retain
	MaxChunksPerFrame int // cap on generations per EnsureWindow call

	// Ridge smoothing
	SmoothingEnabled    bool
	SmoothSubdivs       int     // interpolated points per source interval
	SmoothMinPoints     int     // minimum raw points before smoothing
	SmoothVerticalClamp float32 // max deviation from the raw sample envelope

	// Spike relaxation (post smoothing)
	SpikeFilterEnabled bool
	SpikeThreshold     float32
	SpikeRelaxFactor   float32
	SpikeMaxPasses     int
}

// DefaultConfig returns the tuning the demo game ships with.
func DefaultConfig() Config {
	return Config{
		Seed:          1337,
		ChunkWidth:    256,
		PointSpacing:  16,
		Octaves:       4,
		NoiseScale:    0.005,
		Amplitude:     140,
		Baseline:      297, // 55% of a 540 unit tall viewport
		AllowNegative: true,

		PrefetchAhead:     12,
		PrefetchBehind:    2,
		MaxChunksPerFrame: 3,

		SmoothingEnabled:    true,
		SmoothSubdivs:       4,
		SmoothMinPoints:     8,
		SmoothVerticalClamp: 220,

		SpikeFilterEnabled: true,
		SpikeThreshold:     18,
		SpikeRelaxFactor:   0.55,
		SpikeMaxPasses:     1,
	}
}
