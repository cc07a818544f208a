package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/venge/common"
	"github.com/milk9111/venge/ecs"
	"github.com/milk9111/venge/ecs/component"
	"golang.org/x/image/colornames"
)

const (
	mapFill     = 0.9
	facingReach = 3.0
)

// mapView projects the XZ plane onto the screen, top-down, with -Z up.
type mapView struct {
	cx, cy float64
	scale  float64
}

func (g *Game) view() mapView {
	size := g.arenaSize
	if size <= 0 {
		size = 1
	}
	return mapView{
		cx:    common.BaseWidth / 2,
		cy:    common.BaseHeight / 2,
		scale: mapFill * math.Min(common.BaseWidth, common.BaseHeight) / size,
	}
}

func (v mapView) point(p mgl64.Vec3) (float32, float32) {
	return float32(v.cx + p.X()*v.scale), float32(v.cy + p.Z()*v.scale)
}

func (g *Game) drawMap(screen *ebiten.Image) {
	v := g.view()

	ecs.ForEach2(g.world, component.TransformComponent, component.BoxComponent, func(e ecs.Entity, t component.Transform, b component.Box) {
		if ecs.Has(g.world, e, component.GridTagComponent) {
			g.drawGrid(screen, v, t, b)
			return
		}
		clr := color.Color(colornames.Dimgray)
		if m, ok := ecs.Get(g.world, e, component.MaterialComponent); ok {
			clr = m.Color
		}
		lo, hi := b.Bounds(t)
		x0, y0 := v.point(lo)
		x1, y1 := v.point(hi)
		vector.FillRect(screen, x0, y0, x1-x0, y1-y0, clr, false)
		if ecs.Has(g.world, e, component.CollidableTagComponent) && b.Size.Y() > 0 {
			vector.StrokeRect(screen, x0, y0, x1-x0, y1-y0, 1, colornames.Gray, false)
		}
	})

	ecs.ForEach2(g.world, component.TransformComponent, component.LightComponent, func(_ ecs.Entity, t component.Transform, l component.Light) {
		if l.Kind != component.LightDirectional {
			return
		}
		x, y := v.point(t.Position)
		vector.FillCircle(screen, x, y, 6, l.Color, true)
		vector.StrokeLine(screen, x, y, float32(v.cx), float32(v.cy), 1, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x30}, true)
	})

	pos := g.controls.Position()
	px, py := v.point(pos)
	fx, fy := v.point(pos.Add(g.controls.Forward().Mul(facingReach)))
	vector.StrokeLine(screen, px, py, fx, fy, 2, colornames.Lightgrey, true)
	vector.FillCircle(screen, px, py, float32(max(4, 0.4*v.scale)), colornames.Crimson, true)
}

// drawGrid draws one line per world unit across the grid's footprint.
func (g *Game) drawGrid(screen *ebiten.Image, v mapView, t component.Transform, b component.Box) {
	lo, hi := b.Bounds(t)
	m, ok := ecs.Get(g.world, g.arena.Grid, component.MaterialComponent)
	clr := color.Color(colornames.Darkslategray)
	if ok {
		clr = m.Color
	}
	for x := math.Ceil(lo.X()); x <= hi.X(); x++ {
		x0, y0 := v.point(mgl64.Vec3{x, 0, lo.Z()})
		x1, y1 := v.point(mgl64.Vec3{x, 0, hi.Z()})
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, clr, false)
	}
	for z := math.Ceil(lo.Z()); z <= hi.Z(); z++ {
		x0, y0 := v.point(mgl64.Vec3{lo.X(), 0, z})
		x1, y1 := v.point(mgl64.Vec3{hi.X(), 0, z})
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, clr, false)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	pos := g.controls.Position()
	vel := g.player.Velocity()
	in := g.player.Intents()

	msg := fmt.Sprintf(
		"TPS: %.1f  FPS: %.1f\npos: (%.2f, %.2f, %.2f)\nvel.y: %.2f\ngrounded: %t  canJump: %t\nyaw: %.1f°  pitch: %.1f°\nF:%t B:%t L:%t R:%t",
		ebiten.ActualTPS(), ebiten.ActualFPS(),
		pos.X(), pos.Y(), pos.Z(),
		vel.Y(),
		g.player.Grounded(), g.player.CanJump(),
		mgl64.RadToDeg(g.controls.Yaw()), mgl64.RadToDeg(g.controls.Pitch()),
		in.Forward, in.Backward, in.Left, in.Right,
	)
	ebitenutil.DebugPrintAt(screen, msg, 8, 8)
}

func drawReticle(screen *ebiten.Image) {
	x, y := common.ScreenCenter()
	vector.FillCircle(screen, x, y, common.ReticleRadius, common.ReticleColor, true)
}
