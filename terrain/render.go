// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package terrain

import (
	"image"
	"image/color"
)

type ColorVec [3]float32

var (
	skyTopDay      = RGB(90, 150, 210)
	skyBottomDay   = RGB(170, 200, 240)
	skyTopNight    = RGB(10, 15, 30)
	skyBottomNight = RGB(25, 35, 60)
	terrainDay     = RGB(60, 150, 80)
	terrainNight   = RGB(30, 90, 70)
	terrainEdge    = RGB(30, 90, 45)
)

// Render draws a filled silhouette strip of the terrain starting at
// cameraX, generating whatever chunks the strip needs. dayT blends the
// palette between night (0) and day (1).
func Render(s *Store, r *Refiner, cameraX float32, width, height int, dayT float32) image.Image {
	dayT = clampf(dayT, 0, 1)

	// Pull the whole strip in before collecting, ignoring the
	// streaming budget; an offline render wants the complete window.
	for sx := 0; sx <= width; sx += s.cfg.PointSpacing {
		s.SampleHeight(cameraX + float32(sx))
	}

	ridge := s.VisiblePoints(cameraX, width, float32(s.cfg.PointSpacing))
	if s.cfg.SmoothingEnabled {
		ridge = r.Refine(ridge, s.cfg.SmoothSubdivs)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if len(ridge) == 0 {
		return img
	}

	skyTop := skyTopNight.Lerp(skyTopDay, dayT)
	skyBottom := skyBottomNight.Lerp(skyBottomDay, dayT)
	ground := terrainNight.Lerp(terrainDay, dayT)

	for i := 0; i < width; i++ {
		ridgeY := ridgeHeight(ridge, cameraX+float32(i))

		for j := 0; j < height; j++ {
			var c ColorVec
			switch {
			case float32(j) < ridgeY-1:
				c = skyTop.Lerp(skyBottom, float32(j)/float32(height))
			case float32(j) < ridgeY+2:
				c = terrainEdge
			default:
				// Darken with depth below the ridge.
				depth := clampf((float32(j)-ridgeY)/float32(height), 0, 1)
				c = ground.Lerp(terrainEdge, depth*0.6)
			}
			img.Set(i, j, c.Color())
		}
	}

	return img
}

// ridgeHeight interpolates the refined polyline at world x, clamping
// to the nearest end outside its range.
func ridgeHeight(ridge []Point, x float32) float32 {
	if x <= ridge[0].X {
		return ridge[0].Y
	}
	for i := 0; i < len(ridge)-1; i++ {
		p0, p1 := ridge[i], ridge[i+1]
		if p0.X <= x && x <= p1.X {
			if p1.X == p0.X {
				return p0.Y
			}
			t := (x - p0.X) / (p1.X - p0.X)
			return p0.Y + (p1.Y-p0.Y)*t
		}
	}
	return ridge[len(ridge)-1].Y
}

func RGB(r, g, b byte) ColorVec {
	const factor = 1.0 / 255
	return ColorVec{float32(r) * factor, float32(g) * factor, float32(b) * factor}
}

func (vec ColorVec) Lerp(other ColorVec, factor float32) ColorVec {
	for i := range vec {
		vec[i] += (other[i] - vec[i]) * factor
	}
	return vec
}

func (vec ColorVec) Color() color.RGBA {
	return color.RGBA{R: floatToByte(vec[0]), G: floatToByte(vec[1]), B: floatToByte(vec[2]), A: 255}
}

func floatToByte(f float32) byte {
	if f < 0 {
		return 0
	}
	if f > 1.0 {
		return 255
	}
	return byte(f * 255)
}
