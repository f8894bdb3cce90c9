// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import "github.com/chewxy/math32"

// Refiner turns merged raw chunk points into a denser, smoother
// polyline for rendering. The pipeline is segmentation, per-segment
// Catmull-Rom interpolation, a vertical overshoot clamp and an
// iterative spike relaxation. Pure; each stage works on its own
// buffer.
type Refiner struct {
	cfg Config
}

func NewRefiner(cfg Config) *Refiner {
	return &Refiner{cfg: cfg}
}

// Refine smooths an x-ascending polyline. Inputs shorter than the
// minimum point count, or subdivs <= 1, pass through unchanged.
func (r *Refiner) Refine(points []Point, subdivs int) []Point {
	if len(points) < r.cfg.SmoothMinPoints || subdivs <= 1 {
		return points
	}

	smoothed := make([]Point, 0, len(points)*subdivs)
	for _, seg := range r.segment(points) {
		smoothed = append(smoothed, r.smoothSegment(seg, subdivs)...)
	}
	if len(smoothed) == 0 {
		return points
	}

	if r.cfg.SmoothVerticalClamp > 0 {
		smoothed = clampToEnvelope(smoothed, points, r.cfg.SmoothVerticalClamp)
	}
	if r.cfg.SpikeFilterEnabled {
		smoothed = r.relaxSpikes(smoothed)
	}
	return smoothed
}

// segment splits the ridge wherever the vertical delta or local slope
// is extreme, so genuine cliffs are not smoothed across. Order is
// preserved; segment outputs are concatenated as-is.
func (r *Refiner) segment(points []Point) [][]Point {
	maxDy := r.cfg.Amplitude * 1.2
	maxSlope := maxDy / float32(r.cfg.PointSpacing) * 0.8

	var segments [][]Point
	cur := []Point{points[0]}

	for i := 1; i < len(points); i++ {
		p0, p1 := points[i-1], points[i]
		dy := math32.Abs(p1.Y - p0.Y)
		slope := dy / maxf(1e-6, p1.X-p0.X)

		if dy > maxDy || slope > maxSlope {
			if len(cur) >= 2 {
				segments = append(segments, cur)
			}
			cur = []Point{p1}
		} else {
			cur = append(cur, p1)
		}
	}
	if len(cur) >= 2 {
		segments = append(segments, cur)
	}
	return segments
}

// smoothSegment runs Catmull-Rom interpolation over one segment,
// repeating the end points as phantom control points. Segments too
// short for a stable fit are returned unchanged.
func (r *Refiner) smoothSegment(seg []Point, subdivs int) []Point {
	if len(seg) < r.cfg.SmoothMinPoints {
		return seg
	}

	ext := make([]Point, 0, len(seg)+2)
	ext = append(ext, seg[0])
	ext = append(ext, seg...)
	ext = append(ext, seg[len(seg)-1])

	out := make([]Point, 0, (len(seg)-1)*subdivs+1)
	for j := 1; j < len(ext)-2; j++ {
		p0, p1, p2, p3 := ext[j-1], ext[j], ext[j+1], ext[j+2]
		for s := 0; s < subdivs; s++ {
			t := float32(s) / float32(subdivs)
			t2 := t * t
			t3 := t2 * t
			out = append(out, Point{
				X: 0.5 * (2*p1.X + (-p0.X+p2.X)*t + (2*p0.X-5*p1.X+4*p2.X-p3.X)*t2 + (-p0.X+3*p1.X-3*p2.X+p3.X)*t3),
				Y: 0.5 * (2*p1.Y + (-p0.Y+p2.Y)*t + (2*p0.Y-5*p1.Y+4*p2.Y-p3.Y)*t2 + (-p0.Y+3*p1.Y-3*p2.Y+p3.Y)*t3),
			})
		}
	}
	out = append(out, seg[len(seg)-1])
	return out
}

// clampToEnvelope bounds spline overshoot to the raw input's vertical
// envelope expanded by margin.
func clampToEnvelope(smoothed, raw []Point, margin float32) []Point {
	rawMin := raw[0].Y
	rawMax := raw[0].Y
	for _, p := range raw[1:] {
		rawMin = minf(rawMin, p.Y)
		rawMax = maxf(rawMax, p.Y)
	}

	bandMin := rawMin - margin
	bandMax := rawMax + margin
	for i := range smoothed {
		smoothed[i].Y = clampf(smoothed[i].Y, bandMin, bandMax)
	}
	return smoothed
}

// relaxSpikes pulls isolated points sitting significantly above their
// local neighborhood back toward the average (y grows downward, so an
// upward spike has diff < -threshold). Downward dips are deliberately
// left alone. Each pass reads the previous pass's buffer; early exit
// when nothing moves.
func (r *Refiner) relaxSpikes(points []Point) []Point {
	passes := r.cfg.SpikeMaxPasses
	if passes <= 0 {
		passes = 1
	}

	for pass := 0; pass < passes; pass++ {
		changed := false
		next := make([]Point, len(points))
		copy(next, points)

		for i := 2; i < len(points)-2; i++ {
			// Two-point averages on each side for stability.
			yPrev := (points[i-1].Y + points[i-2].Y) * 0.5
			yNext := (points[i+1].Y + points[i+2].Y) * 0.5
			avg := 0.5 * (yPrev + yNext)

			diff := points[i].Y - avg
			if diff < -r.cfg.SpikeThreshold {
				next[i].Y = points[i].Y - diff*r.cfg.SpikeRelaxFactor
				changed = true
			}
		}

		points = next
		if !changed {
			break
		}
	}
	return points
}
