package main

import (
	"flag"
	"io/fs"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/krefel/bossfight/internal/application/game"
	"github.com/krefel/bossfight/internal/application/replay"
	"github.com/krefel/bossfight/internal/application/scene/arena"
	"github.com/krefel/bossfight/internal/infrastructure/assets"
	"github.com/krefel/bossfight/internal/infrastructure/config"
)

func main() {
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play back a recorded fight (e.g., -replay replay.json)")
	flag.Parse()

	// Load configurations using embedded filesystem
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}
	loader := config.NewFSLoader(fsys)
	cfg, err := loader.LoadAll()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Textures load from the working directory; missing files degrade
	// to invisible actors rather than aborting.
	registry := assets.NewRegistry()
	registry.LoadAll(os.DirFS("."), cfg.Animations.Textures)

	opts := arena.Options{RecordPath: *recordFlag}
	if *replayFlag != "" {
		data, err := replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		opts.Replay = data
		log.Printf("Replaying %s (%d frames, seed: %d)", *replayFlag, len(data.Frames), data.Seed)
	}

	scene := arena.New(cfg, registry, opts)

	display := cfg.Balance.Display
	ebiten.SetWindowSize(display.ScreenWidth, display.ScreenHeight)
	ebiten.SetWindowTitle("Boss Fight")
	ebiten.SetTPS(display.Framerate)

	if err := ebiten.RunGame(game.New(scene, display.ScreenWidth, display.ScreenHeight)); err != nil {
		log.Fatal(err)
	}
}
