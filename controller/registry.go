package controller

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/venge/ecs"
	"github.com/milk9111/venge/ecs/component"
)

// Surface is the world-space bounds of a collidable scene node.
type Surface struct {
	Entity ecs.Entity
	Min    mgl64.Vec3
	Max    mgl64.Vec3
}

// Registry is a snapshot of the collidable surfaces present in a scene when
// it was built. Nodes added or moved afterwards are not seen.
type Registry struct {
	surfaces []Surface

	// space indexes each surface's XZ footprint for point lookups.
	space  *cp.Space
	shapes map[*cp.Shape]int
}

// NewRegistry scans w once for entities tagged collidable that carry a box.
func NewRegistry(w *ecs.World) *Registry {
	r := &Registry{
		space:  cp.NewSpace(),
		shapes: make(map[*cp.Shape]int),
	}
	ecs.ForEach2(w, component.TransformComponent, component.BoxComponent, func(e ecs.Entity, t component.Transform, b component.Box) {
		if !ecs.Has(w, e, component.CollidableTagComponent) {
			return
		}
		min, max := b.Bounds(t)
		r.add(Surface{Entity: e, Min: min, Max: max})
	})
	return r
}

func (r *Registry) add(s Surface) {
	idx := len(r.surfaces)
	r.surfaces = append(r.surfaces, s)

	bb := cp.BB{L: s.Min.X(), B: s.Min.Z(), R: s.Max.X(), T: s.Max.Z()}
	shape := cp.NewBox2(r.space.StaticBody, bb, 0)
	r.space.AddShape(shape)
	r.shapes[shape] = idx
}

// Candidates returns every surface in the snapshot.
func (r *Registry) Candidates() []Surface {
	if r == nil {
		return nil
	}
	out := make([]Surface, len(r.surfaces))
	copy(out, r.surfaces)
	return out
}

// Near returns the surfaces whose XZ footprint contains (x, z).
func (r *Registry) Near(x, z float64) []Surface {
	if r == nil || len(r.surfaces) == 0 {
		return nil
	}
	var out []Surface
	query := cp.BB{L: x, B: z, R: x, T: z}
	r.space.BBQuery(query, cp.SHAPE_FILTER_ALL, func(shape *cp.Shape, _ interface{}) {
		if idx, ok := r.shapes[shape]; ok {
			out = append(out, r.surfaces[idx])
		}
	}, nil)
	return out
}

func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.surfaces)
}
