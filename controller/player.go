package controller

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/venge/ecs"
)

// Tuning holds the movement constants. Gravity is negative.
type Tuning struct {
	PlayerHeight float64
	PlayerSpeed  float64
	JumpImpulse  float64
	Gravity      float64
	ProbeEpsilon float64
	ProbeMargin  float64
}

func DefaultTuning() Tuning {
	return Tuning{
		PlayerHeight: 1.8,
		PlayerSpeed:  15.0,
		JumpImpulse:  9.0,
		Gravity:      -30.0,
		ProbeEpsilon: 0.1,
		ProbeMargin:  0.2,
	}
}

// Mover is the look controller that owns the player's transform. Its
// translate calls are relative to the current look direction.
type Mover interface {
	IsLocked() bool
	MoveForward(distance float64)
	MoveRight(distance float64)
	Position() mgl64.Vec3
	SetPosition(pos mgl64.Vec3)
}

// Controller advances the player each tick from latched input, gravity and
// jump impulses, and keeps it standing on collidable surfaces.
type Controller struct {
	tuning   Tuning
	bindings Bindings

	input    InputState
	velocity mgl64.Vec3
	canJump  bool
	grounded bool

	registry *Registry
	probe    *Probe

	unsubscribe func()
}

type Option func(*Controller)

func WithBindings(b Bindings) Option {
	return func(c *Controller) {
		if b != nil {
			c.bindings = b
		}
	}
}

func WithTuning(t Tuning) Option {
	return func(c *Controller) {
		c.tuning = t
	}
}

// New snapshots the collidable surfaces in scene and subscribes to src.
// Call Dispose to release the subscription.
func New(scene *ecs.World, src InputSource, opts ...Option) *Controller {
	c := &Controller{
		tuning:   DefaultTuning(),
		bindings: DefaultBindings(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.registry = NewRegistry(scene)
	c.probe = NewProbe(c.tuning)

	if src != nil {
		c.unsubscribe = src.Subscribe(c.handleKey)
	}

	slog.Debug("controller ready", "surfaces", c.registry.Len())
	return c
}

func (c *Controller) handleKey(evt KeyEvent) {
	if evt.Pressed {
		c.OnPress(evt.Code)
		return
	}
	c.OnRelease(evt.Code)
}

// OnPress latches a movement intent, or fires the jump impulse when allowed.
// A jump press always clears canJump so a held key cannot re-trigger.
func (c *Controller) OnPress(code KeyCode) {
	intent := c.bindings.Lookup(code)
	switch intent {
	case IntentNone:
		return
	case IntentJump:
		if c.canJump {
			c.velocity[1] += c.tuning.JumpImpulse
		}
		c.canJump = false
	default:
		c.input.set(intent, true)
	}
}

// OnRelease clears a movement intent. Jump has no release behavior.
func (c *Controller) OnRelease(code KeyCode) {
	intent := c.bindings.Lookup(code)
	if intent == IntentNone || intent == IntentJump {
		return
	}
	c.input.set(intent, false)
}

// Tick advances the simulation by dt seconds. Nothing happens while m is
// not locked. dt is used as given.
func (c *Controller) Tick(dt float64, m Mover) {
	if m == nil || !m.IsLocked() {
		return
	}

	c.velocity[1] += c.tuning.Gravity * dt

	move := c.moveVector().Mul(c.tuning.PlayerSpeed * dt)
	m.MoveForward(move.Y())
	m.MoveRight(move.X())

	pos := m.Position()
	pos[1] += c.velocity.Y() * dt

	c.grounded = c.probe.Grounded(pos, c.registry)
	if c.grounded {
		c.velocity[1] = max(0, c.velocity.Y())
		c.canJump = true
	}

	if floor := c.tuning.PlayerHeight / 2; pos.Y() < floor {
		c.velocity[1] = 0
		pos[1] = floor
		c.canJump = true
	}

	m.SetPosition(pos)
}

// moveVector returns the unit intent on the horizontal plane: X is
// rightward and Y is forward. No input yields the zero vector.
func (c *Controller) moveVector() mgl64.Vec2 {
	v := mgl64.Vec2{
		boolAxis(c.input.Right, c.input.Left),
		boolAxis(c.input.Forward, c.input.Backward),
	}
	if v.Len() == 0 {
		return v
	}
	return v.Normalize()
}

// SetTuning swaps the movement constants. Call it between ticks.
func (c *Controller) SetTuning(t Tuning) {
	c.tuning = t
	c.probe = NewProbe(t)
}

// SetBindings replaces the key map and clears latched movement intents,
// since their releases may no longer map to anything.
func (c *Controller) SetBindings(b Bindings) {
	if b != nil {
		c.bindings = b
		c.input = InputState{}
	}
}

// Dispose releases the input subscription. It is safe to call twice.
func (c *Controller) Dispose() {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
		slog.Debug("controller disposed")
	}
}

func (c *Controller) Tuning() Tuning { return c.tuning }

func (c *Controller) Velocity() mgl64.Vec3 { return c.velocity }

// SetVelocity replaces the velocity integrated on the next tick.
func (c *Controller) SetVelocity(v mgl64.Vec3) { c.velocity = v }

func (c *Controller) CanJump() bool { return c.canJump }

// Grounded reports the probe result from the last tick.
func (c *Controller) Grounded() bool { return c.grounded }

func (c *Controller) Intents() InputState { return c.input }

func (c *Controller) Registry() *Registry { return c.registry }
