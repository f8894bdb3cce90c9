// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package background

import (
	"github.com/aquilax/go-perlin"
	"github.com/chewxy/math32"

	"terrastream/terrain"
)

const (
	foregroundSpacing = 22
	foregroundSpeed   = 0.75 // slightly slower than the terrain
	foregroundHeight  = 70   // band height above the anchor line
	foregroundAmp     = 18
	foregroundScale   = 0.55
	foregroundJitter  = 0.22 // per-point vertical jitter fraction
	jitterNoiseScale  = 0.9  // high-frequency jitter source
)

type foregroundLayer struct {
	contour *perlin.Perlin
	jitter  *perlin.Perlin
}

// Foreground generates close decorative silhouette bands (grass and
// foliage contours) that scroll just slower than the terrain.
type Foreground struct {
	layers []foregroundLayer
}

func NewForeground(seed int64, count int) *Foreground {
	if count < 1 {
		count = 1
	}
	f := &Foreground{layers: make([]foregroundLayer, 0, count)}
	for i := 0; i < count; i++ {
		f.layers = append(f.layers, foregroundLayer{
			contour: perlin.NewPerlin(perlinAlpha, perlinBeta, perlinN, seed+5000+int64(i)*137),
			jitter:  perlin.NewPerlin(perlinAlpha, perlinBeta, perlinN, seed+7000+int64(i)*977),
		})
	}
	return f
}

func (f *Foreground) LayerCount() int {
	return len(f.layers)
}

// Contour returns one silhouette band's top edge in screen space.
// anchorY is the line the band grows up from, usually near the bottom
// of the viewport. Jitter comes from a second noise source so the
// contour is reproducible for a camera position.
func (f *Foreground) Contour(index int, cameraX float32, viewportWidth int, anchorY float32) []terrain.Point {
	l := f.layers[index]

	// Back bands sit higher and calmer than front ones.
	depth := float32(index) / float32(len(f.layers))
	base := anchorY - foregroundHeight*(1-depth*0.4)

	scroll := cameraX * foregroundSpeed
	start := math32.Floor(scroll/foregroundSpacing) * foregroundSpacing

	points := make([]terrain.Point, 0, viewportWidth/foregroundSpacing+3)
	for x := start - foregroundSpacing; x <= scroll+float32(viewportWidth)+foregroundSpacing; x += foregroundSpacing {
		n := l.contour.Noise1D(float64(x) * foregroundScale * 0.01)
		j := l.jitter.Noise1D(float64(x) * jitterNoiseScale)
		y := base - float32(n)*foregroundAmp*(1-depth*0.5) - float32(j)*foregroundAmp*foregroundJitter
		points = append(points, terrain.Point{X: x - scroll, Y: y})
	}
	return points
}
