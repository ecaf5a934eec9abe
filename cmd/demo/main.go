package main

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"ui-engine/internal/debug"
	"ui-engine/internal/fonts"
	"ui-engine/internal/graphics"
	"ui-engine/internal/logger"
	"ui-engine/internal/render"
	"ui-engine/internal/theme"
	"ui-engine/internal/ui"
)

// appState is the caller-owned widget state. The toolkit mutates these
// fields only through the references passed per call; it keeps nothing.
type appState struct {
	clicks int
	muted  bool
	volume float32
	name   string
}

func main() {
	th, _ := theme.Load(theme.DefaultPath)
	log := logger.New("logs/ui.txt")
	r := render.New()
	u := ui.New(r)
	dbg := debug.New()
	dbg.ShowFPS = true
	dbg.ShowNodes = true

	state := appState{volume: 0.4}
	var root *ui.Node
	fontLoaded := false

	update := func() {
		if !fontLoaded {
			// Fonts need the GL context, so load on the first frame.
			fontLoaded = true
			if path, err := fonts.Find("Inter"); err == nil {
				_ = r.LoadFont(path)
			}
		}
		kb := render.PollKeyboard()
		focusedBefore := u.FocusedID()
		u.BeginFrame(render.PollPointer(), kb)
		buildScreen(u, th, log, &state)
		root = u.EndFrame(rl.GetScreenWidth(), rl.GetScreenHeight())
		dbg.SetNodeCount(u.NodeCount())
		if kb.Enter && focusedBefore == "name" && state.name != "" {
			log.Logf("name committed: %q", state.name)
		}
	}
	draw := func() {
		r.Draw(root)
		dbg.Draw()
	}
	graphics.Run("ui-engine demo", 1280, 800, update, draw)
}

// buildScreen rebuilds the whole demo tree for one frame.
func buildScreen(u *ui.UI, th theme.Theme, log *logger.Logger, s *appState) {
	u.Begin(ui.ContainerConfig{
		Width:      ui.Grow(1),
		Height:     ui.Grow(1),
		Padding:    ui.Pad(th.Padding),
		Gap:        th.Gap,
		Background: th.BackgroundColor(),
	})
	defer u.End()

	u.Text("ui-engine demo", ui.TextConfig{FontColor: th.TextColor(), FontSize: th.FontSize + 8})

	// Two panels side by side, sharing the leftover height.
	u.Begin(ui.ContainerConfig{
		Direction: ui.Horizontal,
		Width:     ui.Grow(1),
		Height:    ui.Grow(1),
		Gap:       th.Gap,
	})

	buttonsPanel(u, th, log, s)
	controlsPanel(u, th, log, s)

	u.End()

	logPanel(u, th, log)
}

func buttonsPanel(u *ui.UI, th theme.Theme, log *logger.Logger, s *appState) {
	u.Begin(ui.ContainerConfig{
		Width:        ui.Grow(1),
		Height:       ui.Grow(1),
		Padding:      ui.Pad(th.Padding),
		Gap:          th.Gap,
		Background:   th.PanelColor(),
		Border:       th.BorderColor(),
		CornerRadius: th.CornerRadius,
	})
	defer u.End()

	u.Text(fmt.Sprintf("clicks: %d", s.clicks), ui.TextConfig{
		FontColor: th.TextColor(),
		FontSize:  th.FontSize,
	})
	if u.Button("click-me", "Click me", ui.ButtonConfig{
		Padding:      ui.PadXY(14, 8),
		Background:   th.AccentColor(),
		CornerRadius: th.CornerRadius,
	}) {
		s.clicks++
		log.Logf("button pressed, clicks=%d", s.clicks)
	}
	if u.Button("reset", "Reset", ui.ButtonConfig{
		Padding:      ui.PadXY(14, 8),
		CornerRadius: th.CornerRadius,
	}) {
		s.clicks = 0
		log.Log("counter reset")
	}
	if u.Checkbox("mute", "Mute", &s.muted, ui.CheckboxConfig{FontColor: th.TextColor()}) {
		log.Logf("mute toggled: %v", s.muted)
	}
}

func controlsPanel(u *ui.UI, th theme.Theme, log *logger.Logger, s *appState) {
	u.Begin(ui.ContainerConfig{
		Width:        ui.Grow(1),
		Height:       ui.Grow(1),
		Padding:      ui.Pad(th.Padding),
		Gap:          th.Gap,
		Background:   th.PanelColor(),
		Border:       th.BorderColor(),
		CornerRadius: th.CornerRadius,
	})
	defer u.End()

	u.Text("volume", ui.TextConfig{FontColor: th.TextColor(), FontSize: th.FontSize})
	u.Slider("volume", &s.volume, ui.SliderConfig{
		Width:       ui.Grow(1),
		HandleColor: th.AccentColor(),
	})
	u.ProgressBar(s.volume, ui.ProgressBarConfig{
		Width:     ui.Grow(1),
		FillColor: th.AccentColor(),
	})
	u.InputText("name", &s.name, ui.InputTextConfig{
		Placeholder:  "your name",
		Width:        ui.Grow(1),
		Padding:      ui.PadXY(10, 6),
		Background:   th.BackgroundColor(),
		Border:       th.BorderColor(),
		CornerRadius: th.CornerRadius,
	})
}

func logPanel(u *ui.UI, th theme.Theme, log *logger.Logger) {
	u.Begin(ui.ContainerConfig{
		Width:        ui.Grow(1),
		Height:       ui.Fixed(180),
		Padding:      ui.Pad(th.Padding),
		Gap:          4,
		Background:   th.PanelColor(),
		Border:       th.BorderColor(),
		CornerRadius: th.CornerRadius,
	})
	defer u.End()

	small := th.FontSize - 4
	for _, line := range log.Tail(6) {
		u.Text(line, ui.TextConfig{FontColor: th.TextColor(), FontSize: small})
	}
}
