package main

import (
	"flag"
	"log"

	"chosenoffset.com/zonearena/internal/game"
	ebitenrender "chosenoffset.com/zonearena/internal/render/ebiten"
	"chosenoffset.com/zonearena/internal/simulation"
)

func main() {
	configPath := flag.String("config", "zonearena.yaml", "path to the arena rules (defaults are used if missing)")
	seed := flag.Int64("seed", 0, "enemy placement seed (0 = from the clock)")
	mute := flag.Bool("mute", false, "start with sound off")
	flag.Parse()

	cfg, err := simulation.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *seed != 0 {
		cfg.Session.Seed = *seed
	}
	if *mute {
		cfg.Audio.Enabled = false
	}
	rng, usedSeed := cfg.NewRand()
	log.Printf("Arena seed: %d", usedSeed)

	// Initialize the renderer backend (ebiten)
	renderer, err := ebitenrender.NewRenderer()
	if err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	// Sound is optional; the game runs silent without it
	var audio game.AudioSink
	if a, err := ebitenrender.NewAudio(cfg.Audio); err != nil {
		log.Printf("Warning: Audio disabled: %v", err)
	} else {
		audio = a
		defer a.Close()
	}

	gameManager := game.NewManager(cfg, renderer, inputMgr, audio, rng)

	// Set up the window
	engine.SetWindowSize(int(cfg.Field.Width), int(cfg.Field.Height))
	engine.SetWindowTitle("Zone Arena")
	engine.SetWindowResizable(true)
	engine.SetTPS(cfg.Session.FrameTPS)

	log.Println("Starting game...")
	if err := engine.RunGame(gameManager); err != nil {
		log.Fatal(err)
	}
}
