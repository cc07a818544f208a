package controller

// KeyCode names a physical key the way the host reports it ("W", "Space").
type KeyCode string

// KeyEvent is a single press or release edge from the input source.
type KeyEvent struct {
	Code    KeyCode
	Pressed bool
}

// InputSource delivers key edges to subscribers until the returned
// unsubscribe handle is called.
type InputSource interface {
	Subscribe(fn func(KeyEvent)) (unsubscribe func())
}

type Intent int

const (
	IntentNone Intent = iota
	IntentForward
	IntentBackward
	IntentLeft
	IntentRight
	IntentJump
)

func (i Intent) String() string {
	switch i {
	case IntentForward:
		return "forward"
	case IntentBackward:
		return "backward"
	case IntentLeft:
		return "left"
	case IntentRight:
		return "right"
	case IntentJump:
		return "jump"
	default:
		return "none"
	}
}

// Bindings maps key codes to intents. Several codes may share an intent.
type Bindings map[KeyCode]Intent

// DefaultBindings mirrors the usual WASD plus arrow keys layout.
func DefaultBindings() Bindings {
	return Bindings{
		"W":          IntentForward,
		"ArrowUp":    IntentForward,
		"S":          IntentBackward,
		"ArrowDown":  IntentBackward,
		"A":          IntentLeft,
		"ArrowLeft":  IntentLeft,
		"D":          IntentRight,
		"ArrowRight": IntentRight,
		"Space":      IntentJump,
	}
}

// Lookup returns the intent bound to code, or IntentNone.
func (b Bindings) Lookup(code KeyCode) Intent {
	if b == nil {
		return IntentNone
	}
	return b[code]
}

// InputState holds the latched movement intents.
type InputState struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
}

func (s *InputState) set(intent Intent, v bool) {
	switch intent {
	case IntentForward:
		s.Forward = v
	case IntentBackward:
		s.Backward = v
	case IntentLeft:
		s.Left = v
	case IntentRight:
		s.Right = v
	}
}

func boolAxis(pos, neg bool) float64 {
	var v float64
	if pos {
		v++
	}
	if neg {
		v--
	}
	return v
}
