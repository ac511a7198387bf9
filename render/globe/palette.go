package globe

import "image/color"

// category10 is the d3 schemeCategory10 palette used to colour sites.
var category10 = [10]color.RGBA{
	{0x1f, 0x77, 0xb4, 0xff},
	{0xff, 0x7f, 0x0e, 0xff},
	{0x2c, 0xa0, 0x2c, 0xff},
	{0xd6, 0x27, 0x28, 0xff},
	{0x94, 0x67, 0xbd, 0xff},
	{0x8c, 0x56, 0x4b, 0xff},
	{0xe3, 0x77, 0xc2, 0xff},
	{0x7f, 0x7f, 0x7f, 0xff},
	{0xbc, 0xbd, 0x22, 0xff},
	{0x17, 0xbe, 0xcf, 0xff},
}

var (
	colorBackground = color.RGBA{0xff, 0xff, 0xff, 0xff}
	colorOutline    = color.RGBA{0x00, 0x00, 0x00, 0xff}
	colorSphere     = color.RGBA{0xf1, 0xf5, 0xf9, 0xff}
)
