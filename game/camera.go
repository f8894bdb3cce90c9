// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package game

import (
	"math"

	"github.com/chewxy/math32"
)

const (
	cameraLerp    = 0.15
	cameraAnchorX = 0.75 // fraction of the viewport where the player is kept

	cameraBobAmplitude = 6.0
	cameraBobSpeed     = 1.2
)

// Camera eases toward keeping the target at the anchor fraction of the
// viewport and adds a small vertical bob while the target runs.
type Camera struct {
	X float32

	BobOffset float32
	bobPhase  float32
}

// Follow moves the camera a lerp step toward the desired position.
func (c *Camera) Follow(targetX float32, viewportWidth int) {
	desired := targetX - float32(viewportWidth)*cameraAnchorX
	c.X += (desired - c.X) * cameraLerp
}

// Bob advances the visual-only vertical bob. speed is the target's
// horizontal speed as a fraction of full run speed.
func (c *Camera) Bob(dt, speed float32) {
	norm := math32.Abs(speed)
	if norm > 1 {
		norm = 1
	}
	if norm < 0.05 {
		c.BobOffset = 0
		return
	}
	c.bobPhase += dt * cameraBobSpeed * (0.3 + 0.7*norm)
	c.BobOffset = math32.Sin(c.bobPhase*2*math.Pi) * cameraBobAmplitude
}
