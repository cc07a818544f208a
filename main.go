package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/venge/common"
	"github.com/milk9111/venge/logger"
	"github.com/milk9111/venge/prefabs"
)

func main() {
	configDir := flag.String("config-dir", prefabs.DefaultDir, "directory whose yaml files override the embedded prefabs")
	watch := flag.Bool("watch", false, "reload prefabs from -config-dir when they change")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	logFormat := flag.String("log-format", "console", "log format: console, text or json")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	logger.Init(logger.Config{Level: *logLevel, Format: *logFormat})
	prefabs.SetDir(*configDir)

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("venge")

	game, err := NewGame(GameOptions{Watch: *watch})
	if err != nil {
		slog.Error("startup failed", "err", err)
		os.Exit(1)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		slog.Error("game exited", "err", err)
		game.Close()
		os.Exit(1)
	}
}
