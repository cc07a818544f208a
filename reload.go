package main

import (
	"log/slog"
	"time"

	"github.com/milk9111/venge/input"
	"github.com/milk9111/venge/prefabs"
)

// drainReloads applies every pending prefab change without blocking. It runs
// at the top of Update so tuning never changes mid-tick.
func (g *Game) drainReloads() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(name)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			slog.Warn("prefab watcher", "err", err)
		default:
			return
		}
	}
}

// reload applies one changed prefab. On failure the previous values stay.
func (g *Game) reload(name string) {
	var err error
	switch name {
	case prefabs.PlayerFile:
		var spec *prefabs.PlayerSpec
		if spec, err = prefabs.LoadPlayerSpec(); err == nil {
			g.player.SetTuning(tuningFromSpec(spec))
		}
	case prefabs.LookFile:
		var spec *prefabs.LookSpec
		if spec, err = prefabs.LoadLookSpec(); err == nil {
			g.controls.SetSensitivity(spec.Sensitivity)
		}
	case prefabs.LoopFile:
		var spec *prefabs.LoopSpec
		if spec, err = prefabs.LoadLoopSpec(); err == nil {
			g.applyLoop(spec)
		}
	case prefabs.BindingsFile:
		var spec *prefabs.BindingsSpec
		if spec, err = prefabs.LoadBindingsSpec(); err == nil {
			if b, berr := input.Bindings(*spec); berr != nil {
				err = berr
			} else {
				g.player.SetBindings(b)
			}
		}
	case prefabs.ArenaFile:
		slog.Info("arena changes apply on restart; collidables are captured once", "file", name)
		return
	default:
		return
	}

	if err != nil {
		slog.Warn("prefab reload failed, keeping previous values", "file", name, "err", err)
		return
	}
	if mod, ok := prefabs.ModTime(name); ok {
		slog.Info("prefab reloaded", "file", name, "modified", mod.Format(time.TimeOnly))
		return
	}
	slog.Info("prefab reloaded", "file", name)
}
