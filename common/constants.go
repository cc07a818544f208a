package common

import "image/color"

const (
	BaseWidth  = 1280
	BaseHeight = 720
)

var Background = color.RGBA{R: 0x11, G: 0x11, B: 0x11, A: 0xff}

// ReticleRadius is the size of the aim dot drawn while the pointer is captured.
const ReticleRadius = 2

var ReticleColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// ScreenCenter returns the middle of the logical screen.
func ScreenCenter() (float32, float32) {
	return BaseWidth / 2, BaseHeight / 2
}
