package controller

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var down = mgl64.Vec3{0, -1, 0}

// Ray is a half-line from Origin along unit Dir, limited to Far.
type Ray struct {
	Origin mgl64.Vec3
	Dir    mgl64.Vec3
	Far    float64
}

// Intersect reports the distance at which the ray enters the box [min, max].
// Boxes behind the origin or containing it do not count as hits.
func (r Ray) Intersect(min, max mgl64.Vec3) (float64, bool) {
	tmin := 0.0
	tmax := r.Far
	enter := math.Inf(-1)

	for axis := 0; axis < 3; axis++ {
		o, d := r.Origin[axis], r.Dir[axis]
		if d == 0 {
			if o < min[axis] || o > max[axis] {
				return 0, false
			}
			continue
		}
		invD := 1.0 / d
		t1 := (min[axis] - o) * invD
		t2 := (max[axis] - o) * invD
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		enter = math.Max(enter, t1)
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
	}

	if enter < 0 || tmax < tmin {
		return 0, false
	}
	return tmin, true
}

// Probe casts the short downward ray used for ground detection.
type Probe struct {
	tuning Tuning
}

func NewProbe(t Tuning) *Probe {
	return &Probe{tuning: t}
}

// Ray returns the probe ray for a player whose center is at pos.
func (p *Probe) Ray(pos mgl64.Vec3) Ray {
	half := p.tuning.PlayerHeight / 2
	origin := pos
	origin[1] = pos.Y() - half + p.tuning.ProbeEpsilon
	return Ray{
		Origin: origin,
		Dir:    down,
		Far:    half + p.tuning.ProbeMargin,
	}
}

// Grounded reports whether any surface in reg lies within probe range below
// the player's feet. The first hit found is enough.
func (p *Probe) Grounded(pos mgl64.Vec3, reg *Registry) bool {
	if reg == nil {
		return false
	}
	ray := p.Ray(pos)
	for _, s := range reg.Near(ray.Origin.X(), ray.Origin.Z()) {
		if _, ok := ray.Intersect(s.Min, s.Max); ok {
			return true
		}
	}
	return false
}
