// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package game

import (
	"image/color"
	"math"

	"github.com/chewxy/math32"
)

const (
	dayNightDuration = 60.0 // seconds for a full day->night->day period
)

var (
	dayColorTop      = color.RGBA{R: 90, G: 150, B: 210, A: 255}
	dayColorBottom   = color.RGBA{R: 170, G: 200, B: 240, A: 255}
	nightColorTop    = color.RGBA{R: 10, G: 15, B: 30, A: 255}
	nightColorBottom = color.RGBA{R: 25, G: 35, B: 60, A: 255}

	terrainDayColor   = color.RGBA{R: 60, G: 150, B: 80, A: 255}
	terrainNightColor = color.RGBA{R: 30, G: 90, B: 70, A: 255}
)

// DayNight tracks the time-of-day scalar consumed by every draw layer.
type DayNight struct {
	time float32
}

func (d *DayNight) Advance(dt float32) {
	d.time += dt
}

// Factor returns the blend in [0, 1]: 0 deep night, 1 midday.
func (d *DayNight) Factor() float32 {
	phase := float64(d.time) / dayNightDuration * 2 * math.Pi
	return float32(math.Sin(phase)+1) * 0.5
}

// StarAlpha returns star brightness for the current time; stars fade
// in sharply once the sky darkens.
func (d *DayNight) StarAlpha() float32 {
	night := 1 - d.Factor()
	return math32.Pow(night, 1.6)
}

func lerpColor(a, b color.RGBA, t float32) color.RGBA {
	t = math32.Min(math32.Max(t, 0), 1)
	return color.RGBA{
		R: uint8(float32(a.R) + (float32(b.R)-float32(a.R))*t),
		G: uint8(float32(a.G) + (float32(b.G)-float32(a.G))*t),
		B: uint8(float32(a.B) + (float32(b.B)-float32(a.B))*t),
		A: 255,
	}
}
