package ui

// TextMeasurer is the host-supplied text measurement capability. The layout
// engine calls it only for Fit-sized text-bearing leaves; the core performs
// no shaping or rasterization of its own.
type TextMeasurer interface {
	MeasureText(text string, fontSize int) (w, h int)
}

// MeasureFunc adapts a plain function to TextMeasurer.
type MeasureFunc func(text string, fontSize int) (w, h int)

// MeasureText implements TextMeasurer.
func (f MeasureFunc) MeasureText(text string, fontSize int) (w, h int) {
	return f(text, fontSize)
}
