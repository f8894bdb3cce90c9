// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package background

import "testing"

func TestParallax_RelativeMotion(t *testing.T) {
	p := New(123, DefaultLayers())

	const (
		camA = 100.0
		camB = 400.0
	)

	type motion struct {
		speed float32
		delta float32
	}
	motions := make([]motion, 0, len(p.layers))

	for i, cfg := range p.Layers() {
		ptsA := p.LayerPoints(i, camA, 800, 600)
		ptsB := p.LayerPoints(i, camB, 800, 600)
		if len(ptsA) == 0 || len(ptsB) == 0 {
			t.Fatal("layer", i, "returned no points")
		}

		midA := ptsA[len(ptsA)/2].X
		idxB := len(ptsA) / 2
		if idxB >= len(ptsB) {
			idxB = len(ptsB) - 1
		}
		motions = append(motions, motion{speed: cfg.SpeedFactor, delta: ptsB[idxB].X - midA})
	}

	// Faster layers must shift at least as far left as slower ones
	// (small tolerance for bucket snapping).
	for i := 0; i < len(motions); i++ {
		for j := i + 1; j < len(motions); j++ {
			a, b := motions[i], motions[j]
			if a.speed > b.speed && a.delta > b.delta+PointSpacing {
				t.Error("parallax ordering unexpected:", a, "vs", b)
			}
		}
	}
}

func TestParallax_Determinism(t *testing.T) {
	p1 := New(77, DefaultLayers())
	p2 := New(77, DefaultLayers())

	for i := range p1.Layers() {
		a := p1.LayerPoints(i, 250, 800, 600)
		b := p2.LayerPoints(i, 250, 800, 600)
		if len(a) != len(b) {
			t.Fatal("layer", i, "lengths diverged")
		}
		for j := range a {
			if a[j] != b[j] {
				t.Error("layer", i, "point", j, "diverged")
			}
		}
	}
}

func TestForeground_ContourAboveAnchor(t *testing.T) {
	f := NewForeground(9, 2)

	const anchorY = 500.0
	for i := 0; i < f.LayerCount(); i++ {
		pts := f.Contour(i, 0, 800, anchorY)
		if len(pts) == 0 {
			t.Fatal("band", i, "returned no points")
		}
		for _, p := range pts {
			// Contours grow upward from the anchor (smaller y).
			if p.Y >= anchorY {
				t.Error("band", i, "contour dipped below its anchor:", p)
			}
		}
	}
}
