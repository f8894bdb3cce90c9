// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import (
	"sort"

	"github.com/chewxy/math32"

	"terrastream/terrain/noise"
)

// Store owns the mapping from chunk index to generated points.
// It generates chunks on demand, blends adjacent boundaries and
// evicts chunks that fall out of the retention window.
// Not safe for concurrent use; generation is synchronous by design.
type Store struct {
	cfg    Config
	noise  *noise.Generator
	chunks map[int]*Chunk
}

func NewStore(cfg Config) *Store {
	return &Store{
		cfg:    cfg,
		noise:  noise.New(cfg.Seed),
		chunks: make(map[int]*Chunk),
	}
}

func (s *Store) Config() Config {
	return s.cfg
}

// ChunkRange returns the world x interval covered by a chunk index.
func (s *Store) ChunkRange(index int) (startX, endX int) {
	startX = index * s.cfg.ChunkWidth
	endX = startX + s.cfg.ChunkWidth
	return
}

// heightAt is the raw procedural height before any blending.
func (s *Store) heightAt(x float32) float32 {
	n := s.noise.Fractal(float64(x)*s.cfg.NoiseScale, s.cfg.Octaves)
	return s.cfg.Baseline - float32(n)*s.cfg.Amplitude
}

// Generate creates the chunk at index if absent. It is an idempotent
// no-op for present chunks and a silent no-op for negative indices
// when negative generation is disabled.
func (s *Store) Generate(index int) {
	if index < 0 && !s.cfg.AllowNegative {
		return
	}
	if _, ok := s.chunks[index]; ok {
		return
	}

	startX, endX := s.ChunkRange(index)

	// One extra sample beyond the nominal right edge so the next
	// chunk can blend against this one.
	points := make([]Point, 0, s.cfg.ChunkWidth/s.cfg.PointSpacing+1)
	for sx := startX; sx <= endX; sx += s.cfg.PointSpacing {
		x := float32(sx)
		points = append(points, Point{X: x, Y: s.heightAt(x)})
	}

	c := &Chunk{Index: index, Points: points}
	s.chunks[index] = c

	if left, ok := s.chunks[index-1]; ok {
		s.blend(left, c)
	}
}

// blend fades a slope continuation of left's tail into right's head so
// the first-derivative discontinuity at the seam decays over the
// overlap band. Only right is mutated; left is never touched again.
func (s *Store) blend(left, right *Chunk) {
	if len(left.Points) < 2 || len(right.Points) == 0 {
		return
	}

	last := left.Points[len(left.Points)-1]
	prev := left.Points[len(left.Points)-2]

	var boundarySlope float32
	if last.X != prev.X {
		boundarySlope = (last.Y - prev.Y) / (last.X - prev.X)
	}

	overlap := float32(2 * s.cfg.PointSpacing)
	span := overlap + float32(s.cfg.PointSpacing)

	for i, p := range right.Points {
		if p.X > last.X+overlap {
			break
		}
		t := clampf((p.X-last.X)/span, 0, 1)
		predicted := last.Y + boundarySlope*(p.X-last.X)
		right.Points[i].Y = predicted*(1-t) + p.Y*t
	}

	right.state = chunkBlended
}

// Get returns the chunk at index if present.
func (s *Store) Get(index int) (*Chunk, bool) {
	c, ok := s.chunks[index]
	return c, ok
}

// Len returns the number of resident chunks.
func (s *Store) Len() int {
	return len(s.chunks)
}

// Evict removes the chunk at index.
func (s *Store) Evict(index int) {
	delete(s.chunks, index)
}

// Prune evicts every chunk with index strictly less than minIndex and
// returns how many were removed. Kept separate from generation so the
// retention-window invariant is testable on its own.
func (s *Store) Prune(minIndex int) int {
	evicted := 0
	for index := range s.chunks {
		if index < minIndex {
			delete(s.chunks, index)
			evicted++
		}
	}
	return evicted
}

// SampleHeight returns the terrain height at world x, generating the
// owning chunk if needed. Queries beyond a chunk's last sample clamp
// to the last point's height.
func (s *Store) SampleHeight(x float32) float32 {
	index := int(math32.Floor(x / float32(s.cfg.ChunkWidth)))
	s.Generate(index)

	c, ok := s.chunks[index]
	if !ok {
		// Disallowed negative chunk; treat as flat ground.
		return s.cfg.Baseline
	}

	points := c.Points
	for i := 0; i < len(points)-1; i++ {
		p0, p1 := points[i], points[i+1]
		if p0.X <= x && x <= p1.X {
			if p1.X == p0.X {
				return p0.Y
			}
			t := (x - p0.X) / (p1.X - p0.X)
			return p0.Y + (p1.Y-p0.Y)*t
		}
	}
	return points[len(points)-1].Y
}

// VisiblePoints collects every retained point whose x falls within
// [cameraX-margin, cameraX+viewportWidth+margin], sorted ascending.
func (s *Store) VisiblePoints(cameraX float32, viewportWidth int, margin float32) []Point {
	leftBound := cameraX - margin
	rightBound := cameraX + float32(viewportWidth) + margin

	var visible []Point
	for _, c := range s.chunks {
		for _, p := range c.Points {
			if p.X < 0 && !s.cfg.AllowNegative {
				continue
			}
			if p.X >= leftBound && p.X <= rightBound {
				visible = append(visible, p)
			}
		}
	}

	sort.Slice(visible, func(i, j int) bool {
		return visible[i].X < visible[j].X
	})
	return visible
}
