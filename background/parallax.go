// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package background generates decorative hill layers behind the
// terrain. Layers scroll slower than the camera for parallax depth and
// consume only noise; they never touch the chunk store.
package background

import (
	"image/color"

	"github.com/aquilax/go-perlin"
	"github.com/chewxy/math32"

	"terrastream/terrain"
)

const (
	// PointSpacing is the horizontal distance between contour samples.
	PointSpacing = 48

	// Horizon height as a fraction of the viewport.
	horizonFraction = 0.45

	perlinAlpha = 2.0
	perlinBeta  = 2.0
	perlinN     = 3
)

// LayerConfig tunes one parallax hill band.
type LayerConfig struct {
	Scale       float64 // horizontal noise frequency
	Amplitude   float32 // vertical contour amplitude
	SpeedFactor float32 // scroll speed relative to the camera, < 1
	Color       color.RGBA
}

// DefaultLayers returns the two hill bands the demo ships with, far
// band last so callers can paint back to front in reverse.
func DefaultLayers() []LayerConfig {
	return []LayerConfig{
		{Scale: 0.25, Amplitude: 40, SpeedFactor: 0.3, Color: color.RGBA{R: 35, G: 80, B: 50, A: 255}},
		{Scale: 0.12, Amplitude: 25, SpeedFactor: 0.15, Color: color.RGBA{R: 25, G: 60, B: 40, A: 255}},
	}
}

type layer struct {
	cfg   LayerConfig
	noise *perlin.Perlin
}

// Parallax owns one seeded noise generator per layer so bands never
// correlate with each other or with the terrain.
type Parallax struct {
	layers []layer
}

func New(seed int64, configs []LayerConfig) *Parallax {
	p := &Parallax{layers: make([]layer, 0, len(configs))}
	for i, cfg := range configs {
		p.layers = append(p.layers, layer{
			cfg:   cfg,
			noise: perlin.NewPerlin(perlinAlpha, perlinBeta, perlinN, seed+int64(i)*101),
		})
	}
	return p
}

// Layers returns the layer configs in construction order.
func (p *Parallax) Layers() []LayerConfig {
	configs := make([]LayerConfig, len(p.layers))
	for i := range p.layers {
		configs[i] = p.layers[i].cfg
	}
	return configs
}

// LayerPoints returns one layer's contour in screen space for the
// given camera position. Sample positions are anchored to multiples of
// PointSpacing in scrolled space, so the contour slides smoothly
// instead of re-rippling every frame.
func (p *Parallax) LayerPoints(index int, cameraX float32, viewportWidth, viewportHeight int) []terrain.Point {
	l := p.layers[index]

	scroll := cameraX * l.cfg.SpeedFactor
	start := math32.Floor(scroll/PointSpacing) * PointSpacing
	horizon := float32(viewportHeight) * horizonFraction

	points := make([]terrain.Point, 0, viewportWidth/PointSpacing+3)
	for x := start - PointSpacing; x <= scroll+float32(viewportWidth)+PointSpacing; x += PointSpacing {
		n := l.noise.Noise1D(float64(x) * l.cfg.Scale * 0.01)
		points = append(points, terrain.Point{
			X: x - scroll,
			Y: horizon - float32(n)*l.cfg.Amplitude,
		})
	}
	return points
}
