// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package game wires the terrain core, parallax background and player
// into a playable ebiten demo.
package game

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"terrastream/background"
	"terrastream/terrain"
)

const (
	WindowWidth  = 960
	WindowHeight = 540

	Title = "Terrastream"

	initialLeftChunks = 3

	starCount    = 140
	skyBandCount = 36

	visibleMargin = 50
)

type star struct {
	x, y  float32
	alpha float32
	phase float32
	speed float32
}

type Game struct {
	store    *terrain.Store
	streamer *terrain.Streamer
	refiner  *terrain.Refiner
	parallax *background.Parallax
	fg       *background.Foreground
	player   *Player
	camera   Camera
	cycle    DayNight

	stars     []star
	elapsed   float32
	timeScale float32
}

// SetTimeScale speeds the day/night cycle up, mostly for eyeballing
// palette blends without waiting a full minute.
func (g *Game) SetTimeScale(scale float32) {
	if scale > 0 {
		g.timeScale = scale
	}
}

func New(cfg terrain.Config) *Game {
	store := terrain.NewStore(cfg)

	g := &Game{
		store:     store,
		streamer:  terrain.NewStreamer(store),
		refiner:   terrain.NewRefiner(cfg),
		parallax:  background.New(cfg.Seed, background.DefaultLayers()),
		fg:        background.NewForeground(cfg.Seed, 2),
		player:    NewPlayer(store),
		timeScale: 1,
	}

	// Static star field with per-star twinkle phase.
	rng := rand.New(rand.NewSource(cfg.Seed * 9991))
	g.stars = make([]star, starCount)
	for i := range g.stars {
		g.stars[i] = star{
			x:     rng.Float32() * WindowWidth,
			y:     rng.Float32() * WindowHeight * 0.6,
			alpha: 30 + rng.Float32()*150,
			phase: rng.Float32() * 2 * math.Pi,
			speed: 0.6 + rng.Float32()*0.8,
		}
	}

	// Guarantee some terrain to the left of the spawn.
	if cfg.AllowNegative {
		for neg := 1; neg <= initialLeftChunks; neg++ {
			store.Generate(-neg)
		}
	}

	return g
}

func (g *Game) Update() error {
	dt := float32(1.0 / float64(ebiten.TPS()))
	g.elapsed += dt

	g.player.Update(dt)
	g.camera.Follow(g.player.X, WindowWidth)
	g.camera.Bob(dt, g.player.VX/playerMoveSpeed)
	g.cycle.Advance(dt * g.timeScale)

	g.streamer.EnsureWindow(g.camera.X, WindowWidth)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	dayT := g.cycle.Factor()

	g.drawSky(screen, dayT)
	g.drawStars(screen)
	g.drawParallax(screen, dayT)
	g.drawTerrain(screen, dayT)
	g.drawForeground(screen)
	g.drawPlayer(screen)
	g.drawHUD(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return WindowWidth, WindowHeight
}

func (g *Game) drawSky(screen *ebiten.Image, dayT float32) {
	top := lerpColor(nightColorTop, dayColorTop, dayT)
	bottom := lerpColor(nightColorBottom, dayColorBottom, dayT)

	bandH := float32(WindowHeight) / skyBandCount
	for i := 0; i < skyBandCount; i++ {
		t := float32(i) / (skyBandCount - 1)
		c := lerpColor(top, bottom, t)
		vector.DrawFilledRect(screen, 0, float32(i)*bandH, WindowWidth, bandH+1, c, false)
	}
}

func (g *Game) drawStars(screen *ebiten.Image) {
	strength := g.cycle.StarAlpha()
	if strength <= 0.01 {
		return
	}

	for _, s := range g.stars {
		twinkle := 1 + 0.35*float32(math.Sin(float64(s.phase+g.elapsed*s.speed*0.4*2*math.Pi)))
		a := s.alpha * strength * twinkle
		if a <= 0 {
			continue
		}
		if a > 255 {
			a = 255
		}
		c := color.RGBA{R: 240, G: 240, B: 255, A: uint8(a)}
		vector.DrawFilledRect(screen, s.x, s.y, 2, 2, c, false)
	}
}

func (g *Game) drawParallax(screen *ebiten.Image, dayT float32) {
	layers := g.parallax.Layers()

	// Far band first.
	for i := len(layers) - 1; i >= 0; i-- {
		points := g.parallax.LayerPoints(i, g.camera.X, WindowWidth, WindowHeight)
		c := lerpColor(color.RGBA{
			R: layers[i].Color.R / 2,
			G: layers[i].Color.G / 2,
			B: layers[i].Color.B / 2,
			A: 255,
		}, layers[i].Color, dayT)
		fillBelow(screen, points, 0, 0, c)
	}
}

func (g *Game) drawTerrain(screen *ebiten.Image, dayT float32) {
	cfg := g.store.Config()

	ridge := g.store.VisiblePoints(g.camera.X, WindowWidth, visibleMargin)
	if len(ridge) == 0 {
		return
	}
	if cfg.SmoothingEnabled {
		ridge = g.refiner.Refine(ridge, cfg.SmoothSubdivs)
	}

	ground := lerpColor(terrainNightColor, terrainDayColor, dayT)
	fillBelow(screen, ridge, -g.camera.X, g.camera.BobOffset, ground)

	// Ridge highlight line just above the silhouette edge.
	highlight := color.RGBA{R: 180, G: 225, B: 170, A: 110}
	for i := 0; i < len(ridge)-1; i++ {
		p0, p1 := ridge[i], ridge[i+1]
		vector.StrokeLine(screen,
			p0.X-g.camera.X, p0.Y-1+g.camera.BobOffset,
			p1.X-g.camera.X, p1.Y-1+g.camera.BobOffset,
			2, highlight, false)
	}
}

func (g *Game) drawForeground(screen *ebiten.Image) {
	base := color.RGBA{R: 15, G: 40, B: 25, A: 165}
	for i := g.fg.LayerCount() - 1; i >= 0; i-- {
		points := g.fg.Contour(i, g.camera.X, WindowWidth, WindowHeight)
		c := base
		c.R += uint8(i * 12)
		c.G += uint8(i * 18)
		c.B += uint8(i * 10)
		fillBelow(screen, points, 0, g.camera.BobOffset, c)
	}
}

func (g *Game) drawPlayer(screen *ebiten.Image) {
	x := g.player.X - g.camera.X - playerWidth/2
	y := g.player.Y - playerHeight + g.camera.BobOffset

	// Soft ground shadow.
	vector.DrawFilledCircle(screen,
		g.player.X-g.camera.X, g.player.Y+g.camera.BobOffset,
		playerWidth*0.55, color.RGBA{A: 70}, false)

	body := color.RGBA{R: 250, G: 240, B: 230, A: 255}
	vector.DrawFilledRect(screen, x, y+playerWidth/2, playerWidth, playerHeight-playerWidth/2, body, false)
	vector.DrawFilledCircle(screen, x+playerWidth/2, y+playerWidth/2, playerWidth/2, body, false)

	// Eye on the facing side.
	eyeX := x + playerWidth/2 + float32(g.player.Facing)*playerWidth*0.2
	vector.DrawFilledCircle(screen, eyeX, y+playerWidth*0.45, 3, color.RGBA{R: 35, G: 35, B: 40, A: 255}, false)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	hud := fmt.Sprintf("x %.0f  chunks %d  day %.2f", g.player.X, g.store.Len(), g.cycle.Factor())
	text.Draw(screen, hud, basicfont.Face7x13, 8, 16, color.RGBA{R: 235, G: 235, B: 235, A: 255})
}

// fillBelow fills the area between a polyline and the bottom of the
// screen. offsetX and offsetY shift world-space points into screen
// space.
func fillBelow(dst *ebiten.Image, points []terrain.Point, offsetX, offsetY float32, c color.RGBA) {
	if len(points) < 2 {
		return
	}

	var path vector.Path
	path.MoveTo(points[0].X+offsetX, points[0].Y+offsetY)
	for _, p := range points[1:] {
		path.LineTo(p.X+offsetX, p.Y+offsetY)
	}
	path.LineTo(points[len(points)-1].X+offsetX, WindowHeight)
	path.LineTo(points[0].X+offsetX, WindowHeight)
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.FillRule = ebiten.FillRuleNonZero
	dst.DrawTriangles(vs, is, whiteImage(), op)
}

var whiteImageInstance *ebiten.Image

// whiteImage returns a small white image for solid color fills.
func whiteImage() *ebiten.Image {
	if whiteImageInstance == nil {
		whiteImageInstance = ebiten.NewImage(3, 3)
		whiteImageInstance.Fill(color.White)
	}
	return whiteImageInstance
}
