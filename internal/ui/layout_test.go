package ui

import (
	"testing"
)

// fakeMeasurer gives every character a width of half the font size and
// every string a height of the font size. Deterministic and proportional,
// which is all layout cares about.
type fakeMeasurer struct{}

func (fakeMeasurer) MeasureText(text string, fontSize int) (w, h int) {
	return len(text) * fontSize / 2, fontSize
}

func TestFitWidthHorizontalFixedChildren(t *testing.T) {
	root := &Node{
		Kind:      KindContainer,
		Direction: Horizontal,
		Gap:       10,
		Children: []*Node{
			{Width: Fixed(100), Height: Fixed(10)},
			{Width: Fixed(150), Height: Fixed(10)},
		},
	}

	Layout(fakeMeasurer{}, root, 0, 0, 1000, 1000)

	if root.W != 260 {
		t.Errorf("fit width = %d, want 260 (100+150+10)", root.W)
	}
}

func TestFitHeightVerticalMixedChildren(t *testing.T) {
	root := &Node{
		Kind: KindContainer,
		Gap:  5,
		Children: []*Node{
			{Width: Fixed(60), Height: Fixed(40)},
			{Kind: KindText, Text: "hi", FontSize: 20},
		},
	}

	Layout(fakeMeasurer{}, root, 0, 0, 1000, 1000)

	if root.H != 65 {
		t.Errorf("fit height = %d, want 65 (40+20+5)", root.H)
	}
}

func TestGrowthTruncation(t *testing.T) {
	a := &Node{Width: Grow(1), Height: Fixed(10)}
	b := &Node{Width: Grow(1), Height: Fixed(10)}
	root := &Node{
		Kind:      KindContainer,
		Direction: Horizontal,
		Width:     Fixed(101),
		Height:    Fixed(20),
		Children:  []*Node{a, b},
	}

	Layout(fakeMeasurer{}, root, 0, 0, 101, 20)

	// floor(101*1/2) = 50 each; the odd pixel stays unassigned.
	if a.W != 50 || b.W != 50 {
		t.Errorf("grow widths = %d, %d, want 50, 50", a.W, b.W)
	}
	if b.X != 50 {
		t.Errorf("second child X = %d, want 50", b.X)
	}
}

func TestNoNegativeGrowth(t *testing.T) {
	fixed := &Node{Width: Fixed(200), Height: Fixed(10)}
	grow := &Node{Width: Grow(1), Height: Fixed(10)}
	root := &Node{
		Kind:      KindContainer,
		Direction: Horizontal,
		Width:     Fixed(100),
		Height:    Fixed(20),
		Children:  []*Node{fixed, grow},
	}

	Layout(fakeMeasurer{}, root, 0, 0, 100, 20)

	if grow.W != 0 {
		t.Errorf("grow child width = %d, want 0 when remaining space is negative", grow.W)
	}
}

func TestWeightedGrowthDistribution(t *testing.T) {
	a := &Node{Width: Grow(1), Height: Fixed(10)}
	b := &Node{Width: Grow(3), Height: Fixed(10)}
	root := &Node{
		Kind:      KindContainer,
		Direction: Horizontal,
		Width:     Fixed(100),
		Height:    Fixed(20),
		Children:  []*Node{a, b},
	}

	Layout(fakeMeasurer{}, root, 0, 0, 100, 20)

	if a.W != 25 || b.W != 75 {
		t.Errorf("weighted grow = %d, %d, want 25, 75", a.W, b.W)
	}
}

func TestEmptyFitContainerIsPadding(t *testing.T) {
	root := &Node{Kind: KindContainer, Padding: Pad(7)}

	Layout(fakeMeasurer{}, root, 0, 0, 500, 500)

	if root.W != 14 || root.H != 14 {
		t.Errorf("empty fit container = %dx%d, want 14x14", root.W, root.H)
	}
}

func TestSingleChildHasNoGap(t *testing.T) {
	child := &Node{Width: Fixed(30), Height: Fixed(30)}
	root := &Node{
		Kind:     KindContainer,
		Gap:      25,
		Children: []*Node{child},
	}

	Layout(fakeMeasurer{}, root, 0, 0, 500, 500)

	if root.H != 30 {
		t.Errorf("fit height = %d, want 30 (gap only applies between children)", root.H)
	}
}

func TestChildAlignment(t *testing.T) {
	type tc struct {
		align Align
		x, y  int
	}

	tests := map[string]tc{
		"start start":   {align: Align{X: AlignStart, Y: AlignStart}, x: 0, y: 0},
		"center center": {align: Align{X: AlignCenter, Y: AlignCenter}, x: 40, y: 45},
		"end end":       {align: Align{X: AlignEnd, Y: AlignEnd}, x: 80, y: 90},
		"inherit is start": {align: Align{}, x: 0, y: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			child := &Node{Width: Fixed(20), Height: Fixed(10)}
			root := &Node{
				Kind:       KindContainer,
				Width:      Fixed(100),
				Height:     Fixed(100),
				ChildAlign: tt.align,
				Children:   []*Node{child},
			}

			Layout(fakeMeasurer{}, root, 0, 0, 100, 100)

			if child.X != tt.x || child.Y != tt.y {
				t.Errorf("child at (%d,%d), want (%d,%d)", child.X, child.Y, tt.x, tt.y)
			}
		})
	}
}

func TestSelfAlignOverridesParent(t *testing.T) {
	a := &Node{Width: Fixed(20), Height: Fixed(10)}
	b := &Node{Width: Fixed(20), Height: Fixed(10), SelfAlign: Align{X: AlignEnd}}
	root := &Node{
		Kind:       KindContainer,
		Width:      Fixed(100),
		Height:     Fixed(100),
		ChildAlign: Align{X: AlignCenter},
		Children:   []*Node{a, b},
	}

	Layout(fakeMeasurer{}, root, 0, 0, 100, 100)

	if a.X != 40 {
		t.Errorf("inheriting child X = %d, want 40 (centered)", a.X)
	}
	if b.X != 80 {
		t.Errorf("self-aligned child X = %d, want 80 (end)", b.X)
	}
}

func TestCrossAxisGrowFillsContent(t *testing.T) {
	child := &Node{Width: Grow(1), Height: Fixed(10)}
	root := &Node{
		Kind:     KindContainer, // vertical: cross axis is X
		Width:    Fixed(120),
		Height:   Fixed(50),
		Padding:  Pad(10),
		Children: []*Node{child},
	}

	Layout(fakeMeasurer{}, root, 0, 0, 120, 50)

	if child.W != 100 {
		t.Errorf("cross-axis grow width = %d, want 100 (content extent)", child.W)
	}
	if child.X != 10 || child.Y != 10 {
		t.Errorf("child at (%d,%d), want (10,10) inside padding", child.X, child.Y)
	}
}

func TestNestedFitPropagates(t *testing.T) {
	inner := &Node{
		Kind:      KindContainer,
		Direction: Horizontal,
		Gap:       4,
		Children: []*Node{
			{Width: Fixed(30), Height: Fixed(12)},
			{Width: Fixed(30), Height: Fixed(12)},
		},
	}
	root := &Node{
		Kind:     KindContainer,
		Padding:  Pad(5),
		Children: []*Node{inner},
	}

	Layout(fakeMeasurer{}, root, 0, 0, 500, 500)

	if inner.W != 64 {
		t.Errorf("inner fit width = %d, want 64 (30+30+4)", inner.W)
	}
	if root.W != 74 {
		t.Errorf("root fit width = %d, want 74 (64+10 padding)", root.W)
	}
}

func TestLeafFitSizes(t *testing.T) {
	m := fakeMeasurer{}

	type tc struct {
		node *Node
		w, h int
	}

	tests := map[string]tc{
		"text": {
			node: &Node{Kind: KindText, Text: "abcd", FontSize: 20},
			w:    40, h: 20,
		},
		"button includes padding": {
			node: &Node{Kind: KindButton, Text: "ok", FontSize: 20, Padding: PadXY(12, 8)},
			w:    44, h: 36,
		},
		"checkbox box plus gap plus label": {
			node: &Node{Kind: KindCheckbox, Text: "abcd", FontSize: 10},
			w:    CheckboxBoxSize + CheckboxLabelGap + 20, h: CheckboxBoxSize,
		},
		"checkbox tall label wins": {
			node: &Node{Kind: KindCheckbox, Text: "x", FontSize: 32},
			w:    CheckboxBoxSize + CheckboxLabelGap + 16, h: 32,
		},
		"input floors at minimum width": {
			node: &Node{Kind: KindInputText, Text: "", FontSize: 20},
			w:    120, h: 20,
		},
		"input measures placeholder": {
			node: &Node{Kind: KindInputText, Placeholder: "type your full name here", FontSize: 20},
			w:    240, h: 20,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			Layout(m, tt.node, 0, 0, 1000, 1000)
			if tt.node.W != tt.w || tt.node.H != tt.h {
				t.Errorf("fit size = %dx%d, want %dx%d", tt.node.W, tt.node.H, tt.w, tt.h)
			}
		})
	}
}

func TestLayoutIsPure(t *testing.T) {
	build := func() *Node {
		return &Node{
			Kind:    KindContainer,
			Gap:     6,
			Padding: Pad(8),
			Children: []*Node{
				{Kind: KindText, Text: "hello", FontSize: 20},
				{Width: Grow(1), Height: Fixed(24)},
				{Kind: KindContainer, Direction: Horizontal, Children: []*Node{
					{Width: Fixed(40), Height: Fixed(16)},
					{Width: Grow(2), Height: Grow(1)},
				}},
			},
		}
	}

	a, b := build(), build()
	Layout(fakeMeasurer{}, a, 3, 7, 300, 200)
	Layout(fakeMeasurer{}, b, 3, 7, 300, 200)
	// Run one of them twice: a second pass over already-laid-out nodes must
	// not drift.
	Layout(fakeMeasurer{}, b, 3, 7, 300, 200)

	ra, rb := collectRects(a), collectRects(b)
	if len(ra) != len(rb) {
		t.Fatalf("rect counts differ: %d vs %d", len(ra), len(rb))
	}
	for i := range ra {
		if ra[i] != rb[i] {
			t.Errorf("node %d: %+v vs %+v", i, ra[i], rb[i])
		}
	}
}

// collectRects walks a tree preorder and returns every node's geometry.
func collectRects(n *Node) []Rect {
	out := []Rect{n.Rect()}
	for _, c := range n.Children {
		out = append(out, collectRects(c)...)
	}
	return out
}
