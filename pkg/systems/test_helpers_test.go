package systems

import "image/color"

var colorGray = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
