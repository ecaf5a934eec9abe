package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Run opens the window and drives the main loop. Each frame it calls
// update (input polling and tree building), then clears the screen and
// calls draw (UI rendering). This keeps the windowing layer separate from
// what is on screen.
// ESC is reserved for the UI (it clears keyboard focus); close via the
// window button.
func Run(title string, width, height int, update, draw func()) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(width), int32(height), title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull) // ESC clears focus, not the window
	rl.SetTargetFPS(60)

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		draw()
		rl.EndDrawing()
	}
}
