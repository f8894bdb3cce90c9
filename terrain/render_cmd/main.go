// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"flag"
	"image/png"
	"log"
	"os"

	jsoniter "github.com/json-iterator/go"

	"terrastream/terrain"
)

var json = jsoniter.Config{
	MarshalFloatWith6Digits: true,
	EscapeHTML:              false,
	TagKey:                  "json",
}.Froze()

func main() {
	var (
		seed    int64
		cameraX float64
		width   int
		height  int
		dayT    float64
		out     string
		dump    string
	)

	flag.Int64Var(&seed, "seed", 1337, "terrain seed")
	flag.Float64Var(&cameraX, "camera", 0, "left edge of the rendered strip in world x")
	flag.IntVar(&width, "width", 1920, "strip width in pixels")
	flag.IntVar(&height, "height", 540, "strip height in pixels")
	flag.Float64Var(&dayT, "day", 1, "day/night blend, 0 night to 1 day")
	flag.StringVar(&out, "o", "out.png", "output image path")
	flag.StringVar(&dump, "dump", "", "also write the refined polyline as JSON to `file`")
	flag.Parse()

	cfg := terrain.DefaultConfig()
	cfg.Seed = seed

	store := terrain.NewStore(cfg)
	refiner := terrain.NewRefiner(cfg)

	img := terrain.Render(store, refiner, float32(cameraX), width, height, float32(dayT))

	file, err := os.Create(out)
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	if err = png.Encode(file, img); err != nil {
		log.Fatal(err)
	}

	if dump != "" {
		ridge := refiner.Refine(store.VisiblePoints(float32(cameraX), width, float32(cfg.PointSpacing)), cfg.SmoothSubdivs)
		buf, err := json.Marshal(ridge)
		if err != nil {
			log.Fatal(err)
		}
		if err = os.WriteFile(dump, buf, 0644); err != nil {
			log.Fatal(err)
		}
	}
}
