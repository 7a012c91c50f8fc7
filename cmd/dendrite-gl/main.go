//go:build ebiten

// Command dendrite-gl runs the windowed viewer. It requires the ebiten build
// tag so the default build stays free of GPU dependencies.
package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"dendrite/internal/gl"
	"dendrite/internal/render"
	"dendrite/internal/sim"
)

func main() {
	width := flag.Int("width", 256, "grid width in cells")
	height := flag.Int("height", 256, "grid height in cells")
	scale := flag.Int("scale", 3, "window pixels per grid cell")
	particles := flag.Int("particles", 0, "target particle count (0 = grid default)")
	stickiness := flag.Float64("stickiness", 1.0, "base sticking probability (0.1-1.0)")
	seed := flag.String("seed", "point", "seed pattern")
	speed := flag.Int("speed", 20, "simulation steps per frame (1-50)")
	scheme := flag.String("scheme", "Rainbow", "color scheme")
	flag.Parse()

	s := sim.New(max(*width, 64), max(*height, 64))
	s.Stickiness = min(max(*stickiness, 0.1), 1.0)
	if *particles > 0 {
		s.NumParticles = min(max(*particles, 100), s.MaxParticles())
	}
	s.ResetWithSeed(sim.ParseSeedPattern(*seed))

	var sc render.Scheme
	if err := sc.UnmarshalText([]byte(*scheme)); err != nil {
		log.Fatalf("dendrite-gl: %v", err)
	}

	game := gl.New(s, sc, *scale, min(max(*speed, 1), 50))

	ebiten.SetWindowTitle("dendrite")
	ebiten.SetWindowSize(s.Width()*(*scale), s.Height()*(*scale))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
