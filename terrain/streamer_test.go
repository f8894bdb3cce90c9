// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import "testing"

func TestStreamer_BudgetRespected(t *testing.T) {
	s := NewStore(testConfig(1))
	st := NewStreamer(s)

	st.EnsureWindow(0, 960)
	if s.Len() > s.cfg.MaxChunksPerFrame {
		t.Error("single call generated", s.Len(), "chunks, budget is", s.cfg.MaxChunksPerFrame)
	}
}

func TestStreamer_ForwardPriority(t *testing.T) {
	s := NewStore(testConfig(2))
	st := NewStreamer(s)

	// Budget of 3 from an empty store around chunk 0 fills the
	// forward pass first: -1, 0, 1.
	st.EnsureWindow(0, 960)
	for _, index := range []int{-1, 0, 1} {
		if _, ok := s.Get(index); !ok {
			t.Error("expected forward chunk", index)
		}
	}
	if _, ok := s.Get(2); ok {
		t.Error("chunk 2 should have been deferred past the budget")
	}
}

func TestStreamer_WindowFillsOverFrames(t *testing.T) {
	s := NewStore(testConfig(3))
	st := NewStreamer(s)

	// Repeated calls at a fixed camera must converge on the full
	// retention window.
	for i := 0; i < 20; i++ {
		st.EnsureWindow(0, 960)
	}

	for index := -s.cfg.PrefetchBehind; index <= s.cfg.PrefetchAhead; index++ {
		if _, ok := s.Get(index); !ok {
			t.Error("window not filled, missing chunk", index)
		}
	}
}

func TestStreamer_EvictionUnconditional(t *testing.T) {
	s := NewStore(testConfig(4))
	st := NewStreamer(s)

	s.Generate(-5)

	// Camera far to the right; the behind window excludes -5 and the
	// prune must drop it even with the generation budget exhausted.
	cameraX := float32(20 * s.cfg.ChunkWidth)
	st.EnsureWindow(cameraX, 960)

	if _, ok := s.Get(-5); ok {
		t.Error("chunk -5 survived outside the retention window")
	}

	current := 20
	leftKeep := current - s.cfg.PrefetchBehind
	for index := range s.chunks {
		if index < leftKeep {
			t.Error("retained chunk", index, "behind keep boundary", leftKeep)
		}
	}
}

func TestStreamer_NegativeSkippedWhenDisabled(t *testing.T) {
	cfg := testConfig(5)
	cfg.AllowNegative = false
	s := NewStore(cfg)
	st := NewStreamer(s)

	st.EnsureWindow(0, 960)

	for index := range s.chunks {
		if index < 0 {
			t.Error("negative chunk generated while disabled:", index)
		}
	}
	// Budget must be spent on allowed indices instead.
	for _, index := range []int{0, 1, 2} {
		if _, ok := s.Get(index); !ok {
			t.Error("expected chunk", index)
		}
	}
}

func TestStreamer_IdempotentPerCamera(t *testing.T) {
	s := NewStore(testConfig(6))
	st := NewStreamer(s)

	for i := 0; i < 20; i++ {
		st.EnsureWindow(512, 960)
	}
	count := s.Len()

	st.EnsureWindow(512, 960)
	if s.Len() != count {
		t.Error("settled window changed size on repeat call")
	}
}
