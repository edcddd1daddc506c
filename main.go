package main

import (
	"flag"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"sketchbook/internal/config"
)

var (
	pageFlag  = flag.String("page", "", "start page: sketch or landscape")
	muteFlag  = flag.Bool("mute", false, "disable bounce sounds")
	debugFlag = flag.Bool("debug", false, "show the debug overlay (toggle with F3)")
)

func main() {
	flag.Parse()

	// 1. Config (.env, environment, then flags)
	cfg := config.Load()
	if *pageFlag != "" {
		cfg.StartPage = strings.ToLower(*pageFlag)
	}
	if *muteFlag {
		cfg.Sound = false
	}
	if *debugFlag {
		cfg.Debug = true
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[Config] %v", err)
	}

	// 2. Window Setup
	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(true)
	ebiten.SetTPS(cfg.TPS)

	// 3. Audio is optional
	var bouncer *Bouncer
	if cfg.Sound {
		b, err := NewBouncer(cfg.Volume)
		if err != nil {
			log.Printf("[Audio] disabled: %v", err)
		} else {
			bouncer = b
			defer bouncer.Close()
		}
	}

	// 4. Initialize Game
	game := NewGame(cfg, bouncer)
	defer game.Close()

	// 5. Run Loop
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
