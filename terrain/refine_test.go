// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import (
	"math"
	"testing"
)

// gentleRidge builds a ridge with no cliff-sized deltas so the
// segmenter keeps it whole.
func gentleRidge(n int) []Point {
	points := make([]Point, n)
	for i := range points {
		x := float32(i * 16)
		points[i] = Point{X: x, Y: 300 + 40*float32(math.Sin(float64(i)*0.7))}
	}
	return points
}

func TestRefine_PassthroughBelowMinPoints(t *testing.T) {
	r := NewRefiner(testConfig(1))

	points := gentleRidge(r.cfg.SmoothMinPoints - 1)
	out := r.Refine(points, r.cfg.SmoothSubdivs)

	if len(out) != len(points) {
		t.Fatal("short input should pass through unchanged")
	}
	for i := range points {
		if out[i] != points[i] {
			t.Error("short input mutated at", i)
		}
	}
}

func TestRefine_PassthroughLowSubdivs(t *testing.T) {
	r := NewRefiner(testConfig(1))

	points := gentleRidge(20)
	if out := r.Refine(points, 1); len(out) != len(points) {
		t.Error("subdivs <= 1 should pass through unchanged")
	}
}

func TestRefine_Densifies(t *testing.T) {
	r := NewRefiner(testConfig(1))

	points := gentleRidge(20)
	out := r.Refine(points, 4)

	if len(out) <= len(points) {
		t.Error("smoothing should densify the ridge: got", len(out), "from", len(points))
	}
	if out[0] != points[0] {
		t.Error("first point should be preserved")
	}
	if out[len(out)-1] != points[len(points)-1] {
		t.Error("last point should be preserved")
	}
}

func TestRefine_Deterministic(t *testing.T) {
	r := NewRefiner(testConfig(1))

	points := gentleRidge(30)
	a := r.Refine(points, 4)
	b := r.Refine(points, 4)

	if len(a) != len(b) {
		t.Fatal("refine output lengths diverged")
	}
	for i := range a {
		if a[i] != b[i] {
			t.Error("refine diverged at", i)
		}
	}
}

func TestRefine_EnvelopeClamp(t *testing.T) {
	r := NewRefiner(testConfig(1))

	points := gentleRidge(30)
	rawMin, rawMax := points[0].Y, points[0].Y
	for _, p := range points[1:] {
		rawMin = minf(rawMin, p.Y)
		rawMax = maxf(rawMax, p.Y)
	}

	out := r.Refine(points, 4)
	for _, p := range out {
		if p.Y < rawMin-r.cfg.SmoothVerticalClamp || p.Y > rawMax+r.cfg.SmoothVerticalClamp {
			t.Error("smoothed point escaped the clamp band:", p)
		}
	}
}

func TestRefine_CliffSegmentation(t *testing.T) {
	r := NewRefiner(testConfig(1))

	// A genuine cliff in the middle: the segmenter must split there
	// rather than let the spline ring across it.
	points := gentleRidge(30)
	for i := 15; i < len(points); i++ {
		points[i].Y += r.cfg.Amplitude * 2
	}

	segments := r.segment(points)
	if len(segments) != 2 {
		t.Fatal("expected 2 segments across the cliff, got", len(segments))
	}

	// Order preserved across the concatenated output.
	out := r.Refine(points, 4)
	for i := 1; i < len(out); i++ {
		if out[i].X < out[i-1].X-1e-3 {
			t.Error("refined points reordered at", i)
		}
	}
}

func TestRelaxSpikes_UpwardOnly(t *testing.T) {
	r := NewRefiner(testConfig(1))

	flat := func() []Point {
		points := make([]Point, 9)
		for i := range points {
			points[i] = Point{X: float32(i * 4), Y: 300}
		}
		return points
	}

	// Upward spike (smaller y is higher on screen) gets pulled back
	// toward the neighborhood.
	up := flat()
	up[4].Y = 220
	relaxed := r.relaxSpikes(up)
	if relaxed[4].Y <= 220 {
		t.Error("upward spike not relaxed:", relaxed[4].Y)
	}

	// Downward dip is deliberately left alone.
	down := flat()
	down[4].Y = 380
	relaxed = r.relaxSpikes(down)
	if relaxed[4].Y != 380 {
		t.Error("downward dip should not be touched, got", relaxed[4].Y)
	}
}

func TestRelaxSpikes_EarlyExit(t *testing.T) {
	cfg := testConfig(1)
	cfg.SpikeMaxPasses = 8
	r := NewRefiner(cfg)

	// Already-flat input must come back unchanged no matter how many
	// passes are allowed.
	points := make([]Point, 12)
	for i := range points {
		points[i] = Point{X: float32(i * 4), Y: 250}
	}

	relaxed := r.relaxSpikes(points)
	for i := range points {
		if relaxed[i] != points[i] {
			t.Error("flat ridge mutated at", i)
		}
	}
}
