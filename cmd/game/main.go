package main

import (
	"flag"
	"fmt"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/protozombie/internal/application/game"
	"github.com/younwookim/protozombie/internal/application/scene/playing"
	"github.com/younwookim/protozombie/internal/application/system"
	"github.com/younwookim/protozombie/internal/infrastructure/audio"
	"github.com/younwookim/protozombie/internal/infrastructure/config"
	"github.com/younwookim/protozombie/internal/infrastructure/storage"
)

const appName = "protozombie"

func main() {
	// Parse command line flags
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Run a recorded session headless and print the outcome")
	levelFlag := flag.String("level", "demo", "Level to play")
	seedFlag := flag.Int64("seed", 0, "Spawn seed (0 = configured seed, then the clock)")
	flag.Parse()

	// Load configurations using embedded filesystem
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}
	loader := config.NewFSLoader(fsys, "configs")

	if *replayFlag != "" {
		summary, err := runReplay(loader, *replayFlag)
		if err != nil {
			log.Fatalf("Failed to replay %s: %v", *replayFlag, err)
		}
		fmt.Println(summary)
		return
	}

	cfg, err := loader.LoadAll(*levelFlag)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	display := cfg.Settings.Display
	profile := storage.Open(appName, storage.Profile{MouseSensitivity: cfg.Settings.Player.MouseSensitivity})

	var sounds system.SoundPlayer
	if cfg.Settings.Audio.Enabled {
		ctx := audio.Context(cfg.Settings.Audio.SampleRate)
		sounds = audio.NewPlayer(ctx, cfg.Settings.Audio.Volume)
	}

	scene, err := playing.New(cfg, playing.Options{
		Seed:       *seedFlag,
		RecordPath: *recordFlag,
		Sounds:     sounds,
		Profile:    profile,
	})
	if err != nil {
		log.Fatalf("Failed to start level %s: %v", *levelFlag, err)
	}

	g := game.New(scene, display.ScreenWidth, display.ScreenHeight, display.Framerate)

	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle(fmt.Sprintf("ProtoZombie - %s", cfg.Level.Name))
	ebiten.SetTPS(display.Framerate)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
