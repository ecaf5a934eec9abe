package render

import (
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"ui-engine/internal/ui"
)

// Renderer translates a laid-out widget tree into raylib draw calls. Draw
// order is tree order: a node paints before its children, children paint
// in insertion order. If a font is loaded (LoadFont), text is drawn and
// measured with it; otherwise raylib's default (pixel) font is used.
type Renderer struct {
	font rl.Font
}

// New creates a renderer using raylib's default font.
func New() *Renderer {
	return &Renderer{}
}

// LoadFont loads a TTF font from path for text rendering and measurement.
// If loading fails, the renderer keeps using the default font. Call after
// the window exists (fonts need the GL context).
func (r *Renderer) LoadFont(path string) error {
	f := rl.LoadFontEx(path, 64, nil)
	if f.Texture.ID == 0 {
		return os.ErrNotExist
	}
	if r.font.Texture.ID != 0 {
		rl.UnloadFont(r.font)
	}
	rl.SetTextureFilter(f.Texture, rl.FilterBilinear)
	r.font = f
	return nil
}

// Unload releases the loaded font, if any. Call before closing the window.
func (r *Renderer) Unload() {
	if r.font.Texture.ID != 0 {
		rl.UnloadFont(r.font)
		r.font = rl.Font{}
	}
}

// MeasureText implements ui.TextMeasurer with the renderer's current font,
// so layout sees the same metrics drawing will use.
func (r *Renderer) MeasureText(text string, fontSize int) (w, h int) {
	if text == "" {
		return 0, fontSize
	}
	if r.font.Texture.ID != 0 {
		v := rl.MeasureTextEx(r.font, text, float32(fontSize), 1)
		return int(v.X), int(v.Y)
	}
	return int(rl.MeasureText(text, int32(fontSize))), fontSize
}

// Draw renders a laid-out tree. Passing nil is a no-op.
func (r *Renderer) Draw(root *ui.Node) {
	if root == nil {
		return
	}
	r.drawNode(root)
}

func (r *Renderer) drawNode(n *ui.Node) {
	if !n.Background.Transparent() {
		r.fillRect(n.X, n.Y, n.W, n.H, n.CornerRadius, n.Background)
	}
	if n.HasBorder {
		rl.DrawRectangleLines(int32(n.X), int32(n.Y), int32(n.W), int32(n.H), rlColor(n.Border))
	}

	switch n.Kind {
	case ui.KindText:
		r.drawText(n.Text, n.X, n.Y, n.FontSize, n.FontColor)

	case ui.KindButton:
		// Label centered in the button box.
		tw, th := r.MeasureText(n.Text, n.FontSize)
		r.drawText(n.Text, n.X+(n.W-tw)/2, n.Y+(n.H-th)/2, n.FontSize, n.FontColor)

	case ui.KindCheckbox:
		box := ui.CheckboxBoxSize
		by := n.Y + (n.H-box)/2
		rl.DrawRectangleLines(int32(n.X), int32(by), int32(box), int32(box), rlColor(n.FontColor))
		if n.Checked {
			inset := 4
			rl.DrawRectangle(int32(n.X+inset), int32(by+inset), int32(box-2*inset), int32(box-2*inset), rlColor(n.FontColor))
		}
		_, th := r.MeasureText(n.Text, n.FontSize)
		r.drawText(n.Text, n.X+box+ui.CheckboxLabelGap, n.Y+(n.H-th)/2, n.FontSize, n.FontColor)

	case ui.KindSlider:
		trackH := 4
		ty := n.Y + (n.H-trackH)/2
		rl.DrawRectangle(int32(n.X), int32(ty), int32(n.W), int32(trackH), rlColor(n.TrackColor))
		hx := n.X + int(n.Value*float32(n.W-n.HandleWidth))
		rl.DrawRectangle(int32(hx), int32(n.Y), int32(n.HandleWidth), int32(n.H), rlColor(n.HandleColor))

	case ui.KindProgressBar:
		fill := int(n.Progress * float32(n.W))
		if fill > 0 {
			r.fillRect(n.X, n.Y, fill, n.H, n.CornerRadius, n.FillColor)
		}

	case ui.KindInputText:
		text, color := n.Text, n.FontColor
		if text == "" && !n.Focused {
			text, color = n.Placeholder, n.PlaceholderColor
		}
		tx := n.X + n.Padding.Left
		tw, th := r.MeasureText(text, n.FontSize)
		ty := n.Y + (n.H-th)/2
		r.drawText(text, tx, ty, n.FontSize, color)
		if n.Focused {
			// Caret after the content.
			rl.DrawRectangle(int32(tx+tw+2), int32(ty), 2, int32(th), rlColor(n.FontColor))
		}
	}

	for _, c := range n.Children {
		r.drawNode(c)
	}
}

func (r *Renderer) drawText(text string, x, y, fontSize int, c ui.Color) {
	if text == "" {
		return
	}
	if r.font.Texture.ID != 0 {
		rl.DrawTextEx(r.font, text, rl.NewVector2(float32(x), float32(y)), float32(fontSize), 1, rlColor(c))
		return
	}
	rl.DrawText(text, int32(x), int32(y), int32(fontSize), rlColor(c))
}

// fillRect draws a filled rectangle, rounded when radius > 0. raylib wants
// roundness relative to the shorter side.
func (r *Renderer) fillRect(x, y, w, h, radius int, c ui.Color) {
	if radius <= 0 || w <= 0 || h <= 0 {
		rl.DrawRectangle(int32(x), int32(y), int32(w), int32(h), rlColor(c))
		return
	}
	short := w
	if h < short {
		short = h
	}
	roundness := float32(radius*2) / float32(short)
	if roundness > 1 {
		roundness = 1
	}
	rect := rl.NewRectangle(float32(x), float32(y), float32(w), float32(h))
	rl.DrawRectangleRounded(rect, roundness, 8, rlColor(c))
}

func rlColor(c ui.Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
