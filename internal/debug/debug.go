package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	overlayFontSize   = 20
	overlayPadding    = 12
	overlayLineHeight = overlayFontSize + 4
	// updateInterval: only refresh the overlay text every N frames to
	// reduce allocations.
	updateInterval = 30
)

// Debug draws runtime overlays in the top-right corner: FPS, heap
// allocation, and the per-frame UI node count. All overlays are off by
// default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowNodes    bool

	nodeCount    int
	frameCount   uint32
	lastFpsText  string
	lastMemText  string
	lastNodeText string
	lastMemStats runtime.MemStats
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// SetNodeCount records how many nodes the UI built this frame, shown when
// ShowNodes is on. Call it after EndFrame.
func (d *Debug) SetNodeCount(n int) {
	d.nodeCount = n
}

// Draw renders any enabled overlays. Call last in the draw loop so the
// overlay sits on top of the UI. Text is only recomputed every
// updateInterval frames to limit allocations.
func (d *Debug) Draw() {
	d.frameCount++
	update := (d.frameCount % updateInterval) == 0
	if d.frameCount == 1 {
		update = true
	}

	screenW := int32(rl.GetScreenWidth())
	y := int32(overlayPadding)

	if d.ShowFPS {
		if update {
			d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		drawRight(d.lastFpsText, screenW, y)
		y += overlayLineHeight
	}

	if d.ShowMemAlloc {
		if update {
			runtime.ReadMemStats(&d.lastMemStats)
			mb := float64(d.lastMemStats.Alloc) / (1024 * 1024)
			d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", mb)
		}
		drawRight(d.lastMemText, screenW, y)
		y += overlayLineHeight
	}

	if d.ShowNodes {
		if update {
			d.lastNodeText = fmt.Sprintf("Nodes: %d", d.nodeCount)
		}
		drawRight(d.lastNodeText, screenW, y)
	}
}

func drawRight(text string, screenW, y int32) {
	if text == "" {
		return
	}
	w := rl.MeasureText(text, overlayFontSize)
	rl.DrawText(text, screenW-w-overlayPadding, y, overlayFontSize, rl.Green)
}
