package main

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/venge/common"
	"github.com/milk9111/venge/controller"
	"github.com/milk9111/venge/ecs"
	"github.com/milk9111/venge/ecs/entity"
	"github.com/milk9111/venge/input"
	"github.com/milk9111/venge/look"
	"github.com/milk9111/venge/prefabs"
)

type GameOptions struct {
	Watch bool
}

type Game struct {
	world     *ecs.World
	arena     *entity.Arena
	arenaSize float64

	keyboard *input.Keyboard
	controls *look.Controls
	player   *controller.Controller
	overlay  *ebitenui.UI
	watcher  *prefabs.Watcher
	frame    *ecs.Scheduler

	maxDelta   float64
	lastUpdate time.Time

	// cursor baseline for mouse look; reset whenever capture begins
	cursorX, cursorY int
	resetCursor      bool
	playRequested    bool

	closeOnce sync.Once
}

func NewGame(opts GameOptions) (*Game, error) {
	playerSpec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return nil, err
	}
	arenaSpec, err := prefabs.LoadArenaSpec()
	if err != nil {
		return nil, err
	}
	bindingsSpec, err := prefabs.LoadBindingsSpec()
	if err != nil {
		return nil, err
	}
	bindings, err := input.Bindings(*bindingsSpec)
	if err != nil {
		return nil, err
	}
	loopSpec, err := prefabs.LoadLoopSpec()
	if err != nil {
		return nil, err
	}
	lookSpec, err := prefabs.LoadLookSpec()
	if err != nil {
		return nil, err
	}

	world := ecs.NewWorld()
	arena, err := entity.BuildArena(world, *arenaSpec)
	if err != nil {
		return nil, err
	}

	keyboard := input.NewKeyboard()
	g := &Game{
		world:      world,
		arena:      arena,
		arenaSize:  arenaSpec.Size,
		keyboard:   keyboard,
		controls:   look.NewControls(playerSpec.Spawn.Vec3(), lookSpec.Sensitivity),
		lastUpdate: time.Now(),
	}
	g.player = controller.New(world, keyboard,
		controller.WithTuning(tuningFromSpec(playerSpec)),
		controller.WithBindings(bindings),
	)
	g.applyLoop(loopSpec)
	g.overlay = NewOverlayUI(g)
	g.frame = ecs.NewScheduler(
		ecs.SystemFunc(func(*ecs.World, float64) { g.drainReloads() }),
		ecs.SystemFunc(func(*ecs.World, float64) { g.keyboard.Update() }),
		ecs.SystemFunc(func(*ecs.World, float64) { g.updateLock() }),
		ecs.SystemFunc(func(*ecs.World, float64) { g.updateLook() }),
		ecs.SystemFunc(func(_ *ecs.World, dt float64) { g.player.Tick(dt, g.controls) }),
	)

	if opts.Watch {
		dir := prefabs.Dir()
		if dir == "" {
			slog.Warn("prefab watch requested without a config dir; hot reload disabled")
		} else {
			w, err := prefabs.NewWatcher(dir)
			if err != nil {
				g.player.Dispose()
				return nil, fmt.Errorf("watch %s: %w", dir, err)
			}
			g.watcher = w
			slog.Info("watching prefabs", "dir", dir)
		}
	}

	slog.Info("arena ready",
		"size", arenaSpec.Size,
		"collidables", g.player.Registry().Len(),
		"spawn", playerSpec.Spawn.Vec3(),
	)
	return g, nil
}

func tuningFromSpec(spec *prefabs.PlayerSpec) controller.Tuning {
	return controller.Tuning{
		PlayerHeight: spec.Height,
		PlayerSpeed:  spec.Speed,
		JumpImpulse:  spec.JumpImpulse,
		Gravity:      spec.Gravity,
		ProbeEpsilon: spec.ProbeEpsilon,
		ProbeMargin:  spec.ProbeMargin,
	}
}

func (g *Game) applyLoop(spec *prefabs.LoopSpec) {
	if spec.TPS > 0 {
		ebiten.SetTPS(spec.TPS)
	}
	g.maxDelta = spec.MaxDelta
}

func (g *Game) Update() error {
	now := time.Now()
	dt := common.FrameDelta(now.Sub(g.lastUpdate), g.maxDelta)
	g.lastUpdate = now

	g.frame.Update(g.world, dt)
	return nil
}

func (g *Game) updateLock() {
	if g.controls.IsLocked() {
		lost := ebiten.CursorMode() != ebiten.CursorModeCaptured || !ebiten.IsFocused()
		if lost || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.unlock()
		}
		return
	}

	g.overlay.Update()
	if g.playRequested || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.playRequested = false
		g.lock()
	}
}

func (g *Game) lock() {
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	g.controls.Lock()
	g.resetCursor = true
	slog.Debug("pointer locked")
}

func (g *Game) unlock() {
	ebiten.SetCursorMode(ebiten.CursorModeVisible)
	g.controls.Unlock()
	slog.Debug("pointer unlocked")
}

func (g *Game) updateLook() {
	if !g.controls.IsLocked() {
		return
	}
	x, y := ebiten.CursorPosition()
	if g.resetCursor {
		g.cursorX, g.cursorY = x, y
		g.resetCursor = false
		return
	}
	g.controls.Look(float64(x-g.cursorX), float64(y-g.cursorY))
	g.cursorX, g.cursorY = x, y
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(common.Background)

	g.drawMap(screen)
	g.drawHUD(screen)

	if g.controls.IsLocked() {
		drawReticle(screen)
		return
	}
	g.overlay.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}

// Close releases the input subscription and stops the prefab watcher.
func (g *Game) Close() {
	g.closeOnce.Do(func() {
		g.player.Dispose()
		if g.watcher != nil {
			if err := g.watcher.Close(); err != nil {
				slog.Warn("close prefab watcher", "err", err)
			}
		}
	})
}
