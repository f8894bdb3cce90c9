// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import "testing"

func TestRender_SizeAndContent(t *testing.T) {
	cfg := testConfig(1337)
	s := NewStore(cfg)
	r := NewRefiner(cfg)

	const (
		width  = 200
		height = 120
	)
	img := Render(s, r, 0, width, height, 1)

	bounds := img.Bounds()
	if bounds.Dx() != width || bounds.Dy() != height {
		t.Fatal("unexpected image size:", bounds)
	}

	// Sky at the top must differ from terrain at the bottom.
	top := img.At(width/2, 0)
	bottom := img.At(width/2, height-1)
	if top == bottom {
		t.Error("expected distinct sky and terrain pixels")
	}
}

func TestRender_Deterministic(t *testing.T) {
	const (
		width  = 64
		height = 48
	)

	render := func() []byte {
		cfg := testConfig(55)
		s := NewStore(cfg)
		r := NewRefiner(cfg)
		img := Render(s, r, 128, width, height, 0.5)

		buf := make([]byte, 0, width*height*4)
		for j := 0; j < height; j++ {
			for i := 0; i < width; i++ {
				c, _, _, _ := img.At(i, j).RGBA()
				buf = append(buf, byte(c>>8))
			}
		}
		return buf
	}

	a := render()
	b := render()
	for i := range a {
		if a[i] != b[i] {
			t.Fatal("render diverged at pixel", i)
		}
	}
}
