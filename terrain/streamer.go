// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import "github.com/chewxy/math32"

// Streamer decides which chunks must exist around the camera and keeps
// per-frame generation cost bounded. It owns the Store's lifecycle
// decisions; nothing else generates or prunes during play.
type Streamer struct {
	store *Store
}

func NewStreamer(store *Store) *Streamer {
	return &Streamer{store: store}
}

// EnsureWindow generates missing chunks around cameraX under the
// per-call budget and prunes chunks behind the retention window.
// Forward terrain is filled first since the subject generally advances
// rightward; the prune is unconditional regardless of remaining budget.
func (s *Streamer) EnsureWindow(cameraX float32, viewportWidth int) {
	cfg := s.store.cfg
	current := int(math32.Floor(cameraX / float32(cfg.ChunkWidth)))
	leftKeep := current - cfg.PrefetchBehind
	rightTarget := current + cfg.PrefetchAhead

	budget := cfg.MaxChunksPerFrame

	for index := current - 1; index <= rightTarget; index++ {
		if budget <= 0 {
			break
		}
		if index < 0 && !cfg.AllowNegative {
			continue
		}
		if _, ok := s.store.Get(index); !ok {
			s.store.Generate(index)
			budget--
		}
	}

	if budget > 0 {
		for index := current - 2; index >= leftKeep; index-- {
			if budget <= 0 {
				break
			}
			if index < 0 && !cfg.AllowNegative {
				continue
			}
			if _, ok := s.store.Get(index); !ok {
				s.store.Generate(index)
				budget--
			}
		}
	}

	s.store.Prune(leftKeep)
}
