package ui

import (
	"errors"
	"unicode/utf8"
)

// ErrNoOpenContainer is returned by End when there is no matching Begin.
// It always signals a caller bug (mismatched begin/end pairs).
var ErrNoOpenContainer = errors.New("ui: End called with no open container")

// DefaultFontSize is used when a config leaves FontSize zero.
const DefaultFontSize = 20

// DefaultInputCapacity bounds an input field's content (in characters)
// when its config leaves MaxLen zero. Overflow is saturation, not an
// error: excess characters are dropped.
const DefaultInputCapacity = 256

// Default colors applied when a config leaves the field zero.
var (
	DefaultFontColor        = RGB(235, 235, 235)
	DefaultButtonColor      = RGB(55, 55, 65)
	DefaultTrackColor       = RGB(70, 70, 80)
	DefaultHandleColor      = RGB(220, 220, 220)
	DefaultFillColor        = RGB(90, 170, 90)
	DefaultPlaceholderColor = RGB(130, 130, 130)
)

// UI owns one widget tree per frame plus the state that survives between
// frames: the node arena, the interaction tracker, and the focus id. The
// tree is rebuilt from scratch every frame through Begin/End and the leaf
// calls; nothing of the previous tree survives BeginFrame.
//
// One UI instance is single-threaded: build, layout, and interaction
// bookkeeping all run in order within one frame on one goroutine.
type UI struct {
	measure  TextMeasurer
	arena    *nodeArena
	root     *Node
	stack    []*Node
	track    tracker
	pointer  Pointer
	keyboard Keyboard
}

// New creates a UI. The measurer is the host's text-measurement
// capability; layout calls it for every Fit-sized text-bearing leaf.
func New(m TextMeasurer) *UI {
	return &UI{
		measure: m,
		arena:   newNodeArena(),
		track:   newTracker(),
	}
}

// BeginFrame starts a new frame: the previous tree is recycled wholesale,
// the interaction buffers swap (last frame's layout results become the
// hit-test source), and the input snapshots are latched for the widget
// calls that follow. Escape is consumed here, before any widget call runs:
// it clears focus unconditionally.
func (u *UI) BeginFrame(p Pointer, k Keyboard) {
	u.arena.Reset()
	u.root = nil
	u.stack = u.stack[:0]
	u.pointer = p
	u.keyboard = k
	u.track.swap()
	if k.Escape {
		u.track.focus = ""
	}
}

// EndFrame lays out the tree built since BeginFrame into the given
// rectangle anchored at the origin, records every interactive widget's
// final rectangle for next frame's hit-testing, and returns the laid-out
// root for the render stage. Returns nil if no node was built.
func (u *UI) EndFrame(availW, availH int) *Node {
	if u.root == nil {
		return nil
	}
	Layout(u.measure, u.root, 0, 0, availW, availH)
	u.track.record(u.root)
	return u.root
}

// FocusedID returns the id of the widget holding keyboard focus, or "".
func (u *UI) FocusedID() string {
	return u.track.focus
}

// NodeCount returns the number of nodes built so far this frame.
func (u *UI) NodeCount() int {
	return u.arena.Len()
}

// attach appends a node to the innermost open container. With no container
// open it becomes the root; a second top-level node replaces the root,
// which is a caller bug but kept deterministic.
func (u *UI) attach(n *Node) {
	if len(u.stack) == 0 {
		u.root = n
		return
	}
	u.stack[len(u.stack)-1].Append(n)
}

// ContainerConfig configures Begin. Zero values mean: vertical direction,
// Fit sizing on both axes, no padding, no gap, no background, no border,
// start-aligned children.
type ContainerConfig struct {
	Direction    Direction
	Width        Size
	Height       Size
	Padding      Padding
	Gap          int
	ChildAlign   Align
	SelfAlign    Align
	Background   Color
	Border       Color // zero alpha = no border
	CornerRadius int
}

// Begin opens a container, appends it to the innermost open container (or
// installs it as the root), and makes it the target of subsequent calls
// until the matching End.
func (u *UI) Begin(cfg ContainerConfig) {
	n := u.arena.alloc()
	n.Kind = KindContainer
	n.Direction = cfg.Direction
	n.Width = cfg.Width
	n.Height = cfg.Height
	n.Padding = cfg.Padding
	n.Gap = cfg.Gap
	n.ChildAlign = cfg.ChildAlign
	n.SelfAlign = cfg.SelfAlign
	n.Background = cfg.Background
	n.CornerRadius = cfg.CornerRadius
	if !cfg.Border.Transparent() {
		n.Border = cfg.Border
		n.HasBorder = true
	}
	u.attach(n)
	u.stack = append(u.stack, n)
}

// End closes the innermost open container. Calling it with no open
// container returns ErrNoOpenContainer and changes nothing.
func (u *UI) End() error {
	if len(u.stack) == 0 {
		return ErrNoOpenContainer
	}
	u.stack = u.stack[:len(u.stack)-1]
	return nil
}

// TextConfig configures a text leaf.
type TextConfig struct {
	FontColor Color
	FontSize  int
	Width     Size
	Height    Size
	SelfAlign Align
}

// Text builds a text leaf.
func (u *UI) Text(content string, cfg TextConfig) {
	n := u.arena.alloc()
	n.Kind = KindText
	n.Text = content
	n.FontColor = defaultColor(cfg.FontColor, DefaultFontColor)
	n.FontSize = defaultFontSize(cfg.FontSize)
	n.Width = cfg.Width
	n.Height = cfg.Height
	n.SelfAlign = cfg.SelfAlign
	u.attach(n)
}

// ButtonConfig configures a button leaf.
type ButtonConfig struct {
	FontColor    Color
	FontSize     int
	Width        Size
	Height       Size
	Padding      Padding
	SelfAlign    Align
	Background   Color
	Border       Color // zero alpha = no border
	CornerRadius int
}

// Button builds a button leaf and reports whether it was pressed this
// frame. The press test runs immediately against the rectangle layout
// produced for this id last frame; a button built for the first time
// cannot be pressed until the next frame.
func (u *UI) Button(id, label string, cfg ButtonConfig) bool {
	n := u.arena.alloc()
	n.Kind = KindButton
	n.ID = id
	n.Text = label
	n.FontColor = defaultColor(cfg.FontColor, DefaultFontColor)
	n.FontSize = defaultFontSize(cfg.FontSize)
	n.Width = cfg.Width
	n.Height = cfg.Height
	n.Padding = cfg.Padding
	n.SelfAlign = cfg.SelfAlign
	n.Background = defaultColor(cfg.Background, DefaultButtonColor)
	n.CornerRadius = cfg.CornerRadius
	if !cfg.Border.Transparent() {
		n.Border = cfg.Border
		n.HasBorder = true
	}
	u.attach(n)
	return u.pressedIn(id)
}

// CheckboxConfig configures a checkbox leaf.
type CheckboxConfig struct {
	FontColor Color
	FontSize  int
	Width     Size
	Height    Size
	SelfAlign Align
}

// Checkbox builds a checkbox leaf bound to the caller's boolean. A press
// inside last frame's rectangle toggles the boolean and returns true;
// anything else leaves it alone and returns false. The reference is used
// only within this call.
func (u *UI) Checkbox(id, label string, checked *bool, cfg CheckboxConfig) bool {
	toggled := u.pressedIn(id)
	if toggled {
		*checked = !*checked
	}
	n := u.arena.alloc()
	n.Kind = KindCheckbox
	n.ID = id
	n.Text = label
	n.Checked = *checked
	n.FontColor = defaultColor(cfg.FontColor, DefaultFontColor)
	n.FontSize = defaultFontSize(cfg.FontSize)
	n.Width = cfg.Width
	n.Height = cfg.Height
	n.SelfAlign = cfg.SelfAlign
	u.attach(n)
	return toggled
}

// SliderConfig configures a slider leaf.
type SliderConfig struct {
	TrackColor  Color
	HandleColor Color
	HandleWidth int
	Width       Size
	Height      Size
	SelfAlign   Align
}

// Slider builds a slider leaf bound to the caller's value in [0,1]. Unlike
// buttons it reacts to the held pointer level, not the press edge, so a
// drag that started inside keeps updating the value as long as the pointer
// stays inside last frame's rectangle. Returns true when it wrote the
// value this frame.
func (u *UI) Slider(id string, value *float32, cfg SliderConfig) bool {
	handleW := cfg.HandleWidth
	if handleW == 0 {
		handleW = 12
	}
	changed := false
	if u.pointer.Down {
		if r, ok := u.track.prevRect(id); ok && r.Contains(u.pointer.X, u.pointer.Y) {
			trackW := r.W - handleW
			if trackW > 0 {
				rel := u.pointer.X - r.X - handleW/2
				v := float32(rel) / float32(trackW)
				if v < 0 {
					v = 0
				} else if v > 1 {
					v = 1
				}
				*value = v
				changed = true
			}
		}
	}
	n := u.arena.alloc()
	n.Kind = KindSlider
	n.ID = id
	n.Value = *value
	n.TrackColor = defaultColor(cfg.TrackColor, DefaultTrackColor)
	n.HandleColor = defaultColor(cfg.HandleColor, DefaultHandleColor)
	n.HandleWidth = handleW
	n.Width = cfg.Width
	n.Height = cfg.Height
	n.SelfAlign = cfg.SelfAlign
	u.attach(n)
	return changed
}

// ProgressBarConfig configures a progress bar leaf.
type ProgressBarConfig struct {
	FillColor  Color
	Background Color
	Width      Size
	Height     Size
	SelfAlign  Align
}

// ProgressBar builds a non-interactive progress bar leaf. Progress is
// clamped to [0,1].
func (u *UI) ProgressBar(progress float32, cfg ProgressBarConfig) {
	if progress < 0 {
		progress = 0
	} else if progress > 1 {
		progress = 1
	}
	n := u.arena.alloc()
	n.Kind = KindProgressBar
	n.Progress = progress
	n.FillColor = defaultColor(cfg.FillColor, DefaultFillColor)
	n.Background = defaultColor(cfg.Background, DefaultTrackColor)
	n.Width = cfg.Width
	n.Height = cfg.Height
	n.SelfAlign = cfg.SelfAlign
	u.attach(n)
}

// InputTextConfig configures an input text leaf.
type InputTextConfig struct {
	Placeholder      string
	FontColor        Color
	PlaceholderColor Color
	FontSize         int
	MaxLen           int // capacity in characters, 0 = DefaultInputCapacity
	Width            Size
	Height           Size
	Padding          Padding
	SelfAlign        Align
	Background       Color
	Border           Color // zero alpha = no border
	CornerRadius     int
}

// InputText builds a text input leaf bound to the caller's string. A press
// inside last frame's rectangle focuses it; a press outside while it holds
// focus clears focus. While focused it consumes the frame's keyboard:
// typed characters append up to the capacity (excess dropped), backspace
// removes the last character, enter commits and clears focus. Returns true
// when the content changed this frame.
func (u *UI) InputText(id string, text *string, cfg InputTextConfig) bool {
	if u.pointer.Pressed {
		r, ok := u.track.prevRect(id)
		if ok && r.Contains(u.pointer.X, u.pointer.Y) {
			u.track.focus = id
		} else if u.track.focus == id {
			u.track.focus = ""
		}
	}
	maxLen := cfg.MaxLen
	if maxLen == 0 {
		maxLen = DefaultInputCapacity
	}
	changed := false
	if u.track.focus == id {
		for _, ch := range u.keyboard.Chars {
			if utf8.RuneCountInString(*text) >= maxLen {
				break
			}
			*text += string(ch)
			changed = true
		}
		if u.keyboard.Backspace && len(*text) > 0 {
			_, size := utf8.DecodeLastRuneInString(*text)
			*text = (*text)[:len(*text)-size]
			changed = true
		}
		if u.keyboard.Enter {
			u.track.focus = ""
		}
	}
	n := u.arena.alloc()
	n.Kind = KindInputText
	n.ID = id
	n.Text = *text
	n.Placeholder = cfg.Placeholder
	n.Focused = u.track.focus == id
	n.FontColor = defaultColor(cfg.FontColor, DefaultFontColor)
	n.PlaceholderColor = defaultColor(cfg.PlaceholderColor, DefaultPlaceholderColor)
	n.FontSize = defaultFontSize(cfg.FontSize)
	n.Width = cfg.Width
	n.Height = cfg.Height
	n.Padding = cfg.Padding
	n.SelfAlign = cfg.SelfAlign
	n.Background = cfg.Background
	n.CornerRadius = cfg.CornerRadius
	if !cfg.Border.Transparent() {
		n.Border = cfg.Border
		n.HasBorder = true
	}
	u.attach(n)
	return changed
}

// pressedIn is the shared press-edge test: true iff the pointer pressed
// this frame inside the rectangle recorded for id by last frame's layout.
func (u *UI) pressedIn(id string) bool {
	if !u.pointer.Pressed {
		return false
	}
	r, ok := u.track.prevRect(id)
	return ok && r.Contains(u.pointer.X, u.pointer.Y)
}

func defaultColor(c, fallback Color) Color {
	if c == (Color{}) {
		return fallback
	}
	return c
}

func defaultFontSize(sz int) int {
	if sz == 0 {
		return DefaultFontSize
	}
	return sz
}
