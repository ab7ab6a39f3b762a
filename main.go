package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/particle-network/internal/audio"
	"github.com/iburimskiy/particle-network/internal/config"
	"github.com/iburimskiy/particle-network/internal/game"
	"github.com/iburimskiy/particle-network/internal/webhook"
)

func main() {
	log.SetPrefix("particle-network: ")
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	configPath := flag.String("config", "config.json", "path to the JSON config file")
	writeConfig := flag.Bool("write-config", false, "write the effective config to -config and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *writeConfig {
		if err := config.Save(cfg, *configPath); err != nil {
			return err
		}
		fmt.Printf("Wrote config to %v\n", *configPath)
		return nil
	}

	var player *audio.Player
	if cfg.Sound {
		player = audio.NewPlayer()
		if cfg.Soundtrack != "" {
			if err := player.PlaySoundtrack(cfg.Soundtrack); err != nil {
				log.Printf("soundtrack %s: %v", cfg.Soundtrack, err)
			}
		}
		defer player.Close()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g, err := game.New(ctx, cfg, webhook.New(cfg.WebhookURL, time.Duration(cfg.RequestTimeout)), player)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
