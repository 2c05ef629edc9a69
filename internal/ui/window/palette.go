package window

import (
	"image/color"

	"pomodoro/internal/core/session"
)

var (
	backgroundColor = rgb(0x2c, 0x3e, 0x50)
	separatorColor  = rgb(0x34, 0x49, 0x5e)
	mutedColor      = rgb(0x95, 0xa5, 0xa6)
	textColor       = rgb(0xec, 0xf0, 0xf1)

	workColor       = rgb(0x27, 0xae, 0x60)
	shortBreakColor = rgb(0x34, 0x98, 0xdb)
	longBreakColor  = rgb(0x9b, 0x59, 0xb6)
)

func rgb(r, g, b uint8) color.NRGBA {
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// kindColor returns the accent color of a session kind.
func kindColor(kind session.Kind) color.Color {
	switch kind {
	case session.KindShortBreak:
		return shortBreakColor
	case session.KindLongBreak:
		return longBreakColor
	default:
		return workColor
	}
}
