package fonts

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// bitmapFace is the fixed 7x13 bitmap face bundled with x/image. Its
// advance widths are exact for any string, which makes measurements
// deterministic across machines.
var bitmapFace = basicfont.Face7x13

// BitmapMeasurer measures text with the bundled bitmap face, scaled
// linearly to the requested font size. It needs no font file, no window,
// and no GPU, so layout can run headless (tools, tests, server-side
// snapshots). For on-screen text use the renderer's measurer instead so
// measurements match the loaded TTF.
type BitmapMeasurer struct{}

// MeasureText returns the pixel extent of text at fontSize. Height is the
// font size itself; width is the face advance scaled from the face's
// native 13px line height.
func (BitmapMeasurer) MeasureText(text string, fontSize int) (w, h int) {
	if fontSize <= 0 {
		fontSize = bitmapFace.Height
	}
	if text == "" {
		return 0, fontSize
	}
	adv := font.MeasureString(bitmapFace, text).Ceil()
	return adv * fontSize / bitmapFace.Height, fontSize
}
