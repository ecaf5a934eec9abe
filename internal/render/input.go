package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"ui-engine/internal/ui"
)

// PollPointer snapshots the mouse for this frame. Pressed/Released are the
// edges raylib reports for this frame only; Down is the sustained level
// sliders drag against.
func PollPointer() ui.Pointer {
	pos := rl.GetMousePosition()
	return ui.Pointer{
		X:        int(pos.X),
		Y:        int(pos.Y),
		Pressed:  rl.IsMouseButtonPressed(rl.MouseButtonLeft),
		Down:     rl.IsMouseButtonDown(rl.MouseButtonLeft),
		Released: rl.IsMouseButtonReleased(rl.MouseButtonLeft),
	}
}

// PollKeyboard snapshots the keyboard for this frame: all characters typed
// this frame in order, plus the editing keys the focused input consumes.
func PollKeyboard() ui.Keyboard {
	var chars []rune
	for ch := rl.GetCharPressed(); ch != 0; ch = rl.GetCharPressed() {
		chars = append(chars, ch)
	}
	return ui.Keyboard{
		Chars:     chars,
		Backspace: rl.IsKeyPressed(rl.KeyBackspace),
		Enter:     rl.IsKeyPressed(rl.KeyEnter),
		Escape:    rl.IsKeyPressed(rl.KeyEscape),
	}
}
