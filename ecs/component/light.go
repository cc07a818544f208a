package component

import "image/color"

type LightKind int

const (
	LightAmbient LightKind = iota
	LightDirectional
)

func (k LightKind) String() string {
	switch k {
	case LightAmbient:
		return "ambient"
	case LightDirectional:
		return "directional"
	default:
		return "unknown"
	}
}

type Light struct {
	Kind       LightKind
	Color      color.RGBA
	Intensity  float64
	CastShadow bool
}

var LightComponent = NewComponent[Light]()
