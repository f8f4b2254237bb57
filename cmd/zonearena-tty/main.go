package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/zonearena/internal/game"
	"chosenoffset.com/zonearena/internal/input"
	"chosenoffset.com/zonearena/internal/simulation"
	"chosenoffset.com/zonearena/internal/tty"
)

func main() {
	configPath := flag.String("config", "zonearena.yaml", "path to the arena rules (defaults are used if missing)")
	seed := flag.Int64("seed", 0, "enemy placement seed (0 = from the clock)")
	mute := flag.Bool("mute", false, "start with sound off")
	fps := flag.Int("fps", 0, "frames per second (0 = session.frame_tps from the config)")
	logPath := flag.String("log", "zonearena-tty.log", "log file; the terminal is busy drawing")
	flag.Parse()

	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	log.SetOutput(logFile)

	cfg, err := simulation.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *seed != 0 {
		cfg.Session.Seed = *seed
	}
	if *mute {
		cfg.Audio.Enabled = false
	}
	if *fps > 0 {
		cfg.Session.FrameTPS = *fps
	}
	rng, usedSeed := cfg.NewRand()
	log.Printf("Arena seed: %d", usedSeed)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	// Non-fatal, game can run without sound
	audio := tty.NewAudio(cfg.Audio)
	if err := audio.Start(); err != nil {
		log.Printf("Audio initialization failed: %v", err)
	}
	defer audio.Close()

	renderer := tty.NewRenderer(screen, cfg.Field, cfg.Keys)
	controller := game.NewController(cfg, input.NewState(), renderer, audio, rng)
	frontend := tty.NewFrontend(screen, controller, cfg.Keys, tty.DefaultHold)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := frontend.Run(ctx, cfg.Session.FrameTPS); err != nil && ctx.Err() == nil {
		log.Printf("Frontend stopped: %v", err)
	}
}
