// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"terrastream/terrain"
)

const (
	playerMoveSpeed    = 240 // world units per second
	playerJumpVelocity = -520
	gravity            = 1500
	playerWidth        = 32
	playerHeight       = 48
)

// Player is the controllable subject. X and Y reference the feet at
// ground contact; collision is a single height query against the
// terrain store.
type Player struct {
	X, Y     float32
	VX, VY   float32
	OnGround bool
	Facing   int // 1 right, -1 left

	terrain *terrain.Store
}

func NewPlayer(store *terrain.Store) *Player {
	return &Player{
		Y:       store.Config().Baseline,
		Facing:  1,
		terrain: store,
	}
}

func (p *Player) handleInput() {
	var move float32
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		move--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		move++
	}
	p.VX = move * playerMoveSpeed

	jump := ebiten.IsKeyPressed(ebiten.KeySpace) ||
		ebiten.IsKeyPressed(ebiten.KeyArrowUp) ||
		ebiten.IsKeyPressed(ebiten.KeyW)
	if jump && p.OnGround {
		p.VY = playerJumpVelocity
		p.OnGround = false
	}
}

// Step integrates gravity and velocity, then clamps to the ground.
// Separate from Update so tests can drive physics without a window.
func (p *Player) Step(dt float32) {
	p.VY += gravity * dt
	p.X += p.VX * dt
	p.Y += p.VY * dt

	if ground := p.terrain.SampleHeight(p.X); p.Y > ground {
		p.Y = ground
		p.VY = 0
		p.OnGround = true
	} else {
		p.OnGround = false
	}
}

func (p *Player) Update(dt float32) {
	p.handleInput()
	p.Step(dt)

	if p.VX < 0 {
		p.Facing = -1
	} else if p.VX > 0 {
		p.Facing = 1
	}
}
