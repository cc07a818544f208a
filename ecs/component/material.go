package component

import "image/color"

type Material struct {
	Color     color.RGBA
	Roughness float64
}

var MaterialComponent = NewComponent[Material]()
