package ui

// Kind tags what a Node is: one container kind plus the leaf widget kinds.
// Leaf nodes never own children; containers own nothing but geometry,
// styling, and their children.
type Kind int

const (
	KindContainer Kind = iota
	KindText
	KindButton
	KindCheckbox
	KindSlider
	KindProgressBar
	KindInputText
)

// Direction is the main axis of a container: vertical stacks children along
// Y, horizontal along X.
type Direction int

const (
	Vertical Direction = iota
	Horizontal
)

// SizeMode selects how one axis of a node is sized. The zero value is Fit
// so an unset config field means "size from content".
type SizeMode int

const (
	SizeFit SizeMode = iota
	SizeFixed
	SizeGrow
)

// Size is a per-axis sizing spec: Fit from content, Fixed pixels, or a
// weighted share of the parent's leftover space.
type Size struct {
	Mode   SizeMode
	Px     int
	Weight float32
}

// Fixed returns a literal pixel size.
func Fixed(px int) Size { return Size{Mode: SizeFixed, Px: px} }

// Fit returns a size derived from content.
func Fit() Size { return Size{Mode: SizeFit} }

// Grow returns a weighted share of the parent's remaining space on the main
// axis; on the cross axis any positive weight means "fill".
func Grow(weight float32) Size { return Size{Mode: SizeGrow, Weight: weight} }

// Padding holds four independent insets in pixels.
type Padding struct {
	Top, Bottom, Left, Right int
}

// Pad returns uniform padding on all four sides.
func Pad(px int) Padding {
	return Padding{Top: px, Bottom: px, Left: px, Right: px}
}

// PadXY returns padding with horizontal and vertical insets.
func PadXY(h, v int) Padding {
	return Padding{Top: v, Bottom: v, Left: h, Right: h}
}

// Horizontal returns Left+Right.
func (p Padding) Horizontal() int { return p.Left + p.Right }

// Vertical returns Top+Bottom.
func (p Padding) Vertical() int { return p.Top + p.Bottom }

// Alignment places a child inside its parent's content box on one axis.
// The zero value AlignInherit falls back to the container's child
// alignment; a container whose own child alignment is AlignInherit behaves
// as AlignStart.
type Alignment int

const (
	AlignInherit Alignment = iota
	AlignStart
	AlignCenter
	AlignEnd
)

// Align is a per-axis alignment pair.
type Align struct {
	X, Y Alignment
}

// Node is the single entity type of the widget tree. The Kind tag says
// which fields are meaningful; all nodes share the sizing, padding,
// alignment, and computed-geometry fields. X/Y/W/H are written only by the
// layout pass and are meaningless before it runs.
type Node struct {
	Kind Kind

	Width, Height Size
	Padding       Padding
	SelfAlign     Align // per-axis override of the parent's child alignment

	X, Y int // absolute position, set by layout
	W, H int // computed size, set by layout

	Background   Color // zero alpha = no fill
	CornerRadius int

	// Container fields.
	Direction  Direction
	Gap        int
	ChildAlign Align
	Children   []*Node

	// Leaf fields. Text doubles as content for KindText/KindInputText and
	// as the label for KindButton/KindCheckbox.
	ID          string
	Text        string
	Placeholder string
	FontColor   Color
	FontSize    int

	Border    Color
	HasBorder bool

	Checked     bool    // checkbox
	Value       float32 // slider, in [0,1]
	Progress    float32 // progress bar, in [0,1]
	TrackColor  Color
	HandleColor Color
	HandleWidth int
	FillColor   Color

	Focused          bool // input text
	PlaceholderColor Color
}

// Append adds a child to a container, preserving insertion order. Insertion
// order is paint order and main-axis order.
func (n *Node) Append(child *Node) {
	n.Children = append(n.Children, child)
}

// Interactive reports whether this node kind participates in hit-testing
// and is recorded in the interaction tracker.
func (n *Node) Interactive() bool {
	switch n.Kind {
	case KindButton, KindCheckbox, KindSlider, KindInputText:
		return true
	}
	return false
}

// Rect returns the node's computed geometry. Only meaningful after layout.
func (n *Node) Rect() Rect {
	return Rect{X: n.X, Y: n.Y, W: n.W, H: n.H}
}
