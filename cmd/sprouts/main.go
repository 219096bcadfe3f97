package main

import (
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/mpihlak/gosprouts/pkg/game"
	"github.com/mpihlak/gosprouts/pkg/sprouts"
)

func main() {
	var (
		dots      int
		seed      int64
		logLevel  string
		exportDir string
		width     int
		height    int
	)
	flag.IntVar(&dots, "dots", 0, "Starting dots, 2-10 (default 3)")
	flag.Int64Var(&seed, "seed", 0, "Seed for the starting layout (0 = random)")
	flag.StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn or error")
	flag.StringVar(&exportDir, "export-dir", ".", "Directory for P/F board snapshots")
	flag.IntVar(&width, "width", game.ScreenWidth, "Window width")
	flag.IntVar(&height, "height", game.ScreenHeight, "Window height")
	flag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		log.Fatalf("invalid -log-level %q: %v", logLevel, err)
	}
	sprouts.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if game.IsWASM() {
		dots = sprouts.ParseStartingDots(game.QueryString())
	}

	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("Sprouts")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := game.NewGame(game.Options{
		Config:    sprouts.Config{StartingDots: dots, Seed: seed},
		ExportDir: exportDir,
	})

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
