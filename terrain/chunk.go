// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

type chunkState uint8

const (
	// chunkRaw is freshly generated, boundary not yet adjusted.
	chunkRaw chunkState = iota
	// chunkBlended had its left boundary band blended toward the
	// neighbor's slope continuation. A chunk is never mutated again
	// after reaching this state.
	chunkBlended
)

// Chunk is one fixed-width horizontal slice of terrain. It covers the
// half-open interval [Index*ChunkWidth, (Index+1)*ChunkWidth) but
// stores one extra sample at the far boundary so the next chunk can
// blend against it.
type Chunk struct {
	Index  int
	Points []Point
	state  chunkState
}

// Blended reports whether the chunk's boundary band was adjusted by a
// left neighbor. Exposed for tests of the two-phase lifecycle.
func (c *Chunk) Blended() bool {
	return c.state == chunkBlended
}
