// Command simulate runs the movement controller headless against the arena
// and prints one CSV row per sampled tick.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/milk9111/venge/controller"
	"github.com/milk9111/venge/ecs"
	"github.com/milk9111/venge/ecs/entity"
	"github.com/milk9111/venge/event"
	"github.com/milk9111/venge/logger"
	"github.com/milk9111/venge/look"
	"github.com/milk9111/venge/prefabs"
)

type options struct {
	ticks  int
	dt     float64
	every  int
	yaw    float64
	script string
}

func main() {
	configDir := flag.String("config-dir", prefabs.DefaultDir, "directory whose yaml files override the embedded prefabs")
	logLevel := flag.String("log-level", "warn", "log level: debug, info, warn, error")
	var opts options
	flag.IntVar(&opts.ticks, "ticks", 180, "number of ticks to simulate")
	flag.Float64Var(&opts.dt, "dt", 1.0/60.0, "seconds per tick")
	flag.IntVar(&opts.every, "every", 1, "print every n-th tick")
	flag.Float64Var(&opts.yaw, "yaw", 0, "initial yaw in radians")
	flag.StringVar(&opts.script, "script", "", `key edges, e.g. "0:W+,30:Space+,31:Space-,90:W-"`)
	flag.Parse()

	logger.Init(logger.Config{Level: *logLevel})
	prefabs.SetDir(*configDir)

	if err := run(os.Stdout, opts); err != nil {
		slog.Error("simulate failed", "err", err)
		os.Exit(1)
	}
}

func run(out io.Writer, opts options) error {
	if opts.ticks < 0 || opts.dt <= 0 || opts.every <= 0 {
		return fmt.Errorf("ticks must be >= 0, dt and every must be positive")
	}
	steps, err := parseScript(opts.script)
	if err != nil {
		return err
	}

	playerSpec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return err
	}
	arenaSpec, err := prefabs.LoadArenaSpec()
	if err != nil {
		return err
	}

	world := ecs.NewWorld()
	if _, err := entity.BuildArena(world, *arenaSpec); err != nil {
		return err
	}

	bus := event.NewBus[controller.KeyEvent]()
	controls := look.NewControls(playerSpec.Spawn.Vec3(), 0)
	controls.SetYaw(opts.yaw)
	controls.Lock()

	player := controller.New(world, bus, controller.WithTuning(controller.Tuning{
		PlayerHeight: playerSpec.Height,
		PlayerSpeed:  playerSpec.Speed,
		JumpImpulse:  playerSpec.JumpImpulse,
		Gravity:      playerSpec.Gravity,
		ProbeEpsilon: playerSpec.ProbeEpsilon,
		ProbeMargin:  playerSpec.ProbeMargin,
	}))
	defer player.Dispose()

	fmt.Fprintln(out, "tick,x,y,z,vy,grounded,can_jump")
	next := 0
	for tick := 0; tick < opts.ticks; tick++ {
		for next < len(steps) && steps[next].tick <= tick {
			bus.Publish(steps[next].event)
			next++
		}
		player.Tick(opts.dt, controls)

		if tick%opts.every == 0 || tick == opts.ticks-1 {
			pos := controls.Position()
			fmt.Fprintf(out, "%d,%.4f,%.4f,%.4f,%.4f,%t,%t\n",
				tick, pos.X(), pos.Y(), pos.Z(), player.Velocity().Y(), player.Grounded(), player.CanJump())
		}
	}
	return nil
}
