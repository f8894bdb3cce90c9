// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"terrastream/game"
	"terrastream/terrain"
)

func main() {
	var (
		seed     int64
		noNeg    bool
		fastTime bool
	)

	flag.Int64Var(&seed, "seed", 1337, "world seed")
	flag.BoolVar(&noNeg, "no-negative", false, "disable terrain left of x=0")
	flag.BoolVar(&fastTime, "fast-time", false, "run the day/night cycle at 4x")
	flag.Parse()

	cfg := terrain.DefaultConfig()
	cfg.Seed = seed
	cfg.AllowNegative = !noNeg

	g := game.New(cfg)
	if fastTime {
		g.SetTimeScale(4)
	}

	ebiten.SetWindowSize(game.WindowWidth, game.WindowHeight)
	ebiten.SetWindowTitle(game.Title)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
