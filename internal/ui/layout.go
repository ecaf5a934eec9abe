package ui

import "math"

// CheckboxBoxSize and CheckboxLabelGap fix the checkbox glyph's geometry;
// the renderer draws with the same constants layout measures with.
const (
	CheckboxBoxSize  = 20
	CheckboxLabelGap = 8
)

// Intrinsic sizes for leaves that have no text to measure.
const (
	defaultSliderWidth    = 160
	defaultSliderHeight   = 20
	defaultProgressWidth  = 160
	defaultProgressHeight = 12
	defaultInputWidth     = 120
)

// Layout computes the final position and size of every node in the tree.
// It is pure with respect to the input rectangle: the same tree and the
// same rectangle always produce the same geometry. It mutates each node's
// X/Y/W/H in place and touches nothing else.
//
// Containers are sized in two phases per axis: first each child's extent is
// measured (Fixed uses the literal, Fit measures content, Grow is deferred
// at zero), then the leftover content extent is distributed to Grow
// children by weight and the children are positioned in order.
func Layout(m TextMeasurer, root *Node, x, y, availW, availH int) {
	layoutNode(m, root, x, y, availW, availH)
}

func layoutNode(m TextMeasurer, n *Node, x, y, availW, availH int) {
	n.X, n.Y = x, y
	n.W = resolveExtent(m, n, n.Width, availW, true)
	n.H = resolveExtent(m, n, n.Height, availH, false)
	if n.Kind == KindContainer {
		layoutChildren(m, n)
	}
}

// resolveExtent turns one axis's sizing spec into pixels. Grow resolves to
// the full space made available by the parent; by the time a grow child
// recurses here, that space is exactly the share the parent assigned it.
func resolveExtent(m TextMeasurer, n *Node, s Size, avail int, horizontal bool) int {
	switch s.Mode {
	case SizeFixed:
		return s.Px
	case SizeGrow:
		return avail
	default:
		if horizontal {
			return fitWidth(m, n)
		}
		return fitHeight(m, n)
	}
}

// fitWidth measures a node's content width. Grow children contribute a zero
// placeholder: their real extent is only known once the parent distributes
// leftover space.
func fitWidth(m TextMeasurer, n *Node) int {
	switch n.Kind {
	case KindContainer:
		if n.Direction == Horizontal {
			sum := 0
			for _, c := range n.Children {
				sum += childFitExtent(m, c, true)
			}
			return sum + gapTotal(n) + n.Padding.Horizontal()
		}
		max := 0
		for _, c := range n.Children {
			if w := childFitExtent(m, c, true); w > max {
				max = w
			}
		}
		return max + n.Padding.Horizontal()
	case KindText:
		w, _ := m.MeasureText(n.Text, n.FontSize)
		return w
	case KindButton:
		w, _ := m.MeasureText(n.Text, n.FontSize)
		return w + n.Padding.Horizontal()
	case KindCheckbox:
		w, _ := m.MeasureText(n.Text, n.FontSize)
		return CheckboxBoxSize + CheckboxLabelGap + w
	case KindSlider:
		return defaultSliderWidth
	case KindProgressBar:
		return defaultProgressWidth
	case KindInputText:
		w, _ := m.MeasureText(n.Text, n.FontSize)
		if pw, _ := m.MeasureText(n.Placeholder, n.FontSize); pw > w {
			w = pw
		}
		w += n.Padding.Horizontal()
		if w < defaultInputWidth {
			w = defaultInputWidth
		}
		return w
	}
	return 0
}

// fitHeight is fitWidth's vertical counterpart.
func fitHeight(m TextMeasurer, n *Node) int {
	switch n.Kind {
	case KindContainer:
		if n.Direction == Vertical {
			sum := 0
			for _, c := range n.Children {
				sum += childFitExtent(m, c, false)
			}
			return sum + gapTotal(n) + n.Padding.Vertical()
		}
		max := 0
		for _, c := range n.Children {
			if h := childFitExtent(m, c, false); h > max {
				max = h
			}
		}
		return max + n.Padding.Vertical()
	case KindText:
		_, h := m.MeasureText(n.Text, n.FontSize)
		return h
	case KindButton:
		_, h := m.MeasureText(n.Text, n.FontSize)
		return h + n.Padding.Vertical()
	case KindCheckbox:
		_, h := m.MeasureText(n.Text, n.FontSize)
		if h < CheckboxBoxSize {
			h = CheckboxBoxSize
		}
		return h
	case KindSlider:
		return defaultSliderHeight
	case KindProgressBar:
		return defaultProgressHeight
	case KindInputText:
		_, h := m.MeasureText(n.Text, n.FontSize)
		if _, ph := m.MeasureText(n.Placeholder, n.FontSize); ph > h {
			h = ph
		}
		return h + n.Padding.Vertical()
	}
	return 0
}

func childFitExtent(m TextMeasurer, c *Node, horizontal bool) int {
	var s Size
	if horizontal {
		s = c.Width
	} else {
		s = c.Height
	}
	switch s.Mode {
	case SizeFixed:
		return s.Px
	case SizeGrow:
		return 0
	default:
		if horizontal {
			return fitWidth(m, c)
		}
		return fitHeight(m, c)
	}
}

// gapTotal is the space the gaps between children occupy. Saturating: a
// container with fewer than two children has no gaps, never a negative
// count.
func gapTotal(n *Node) int {
	if len(n.Children) < 2 {
		return 0
	}
	return n.Gap * (len(n.Children) - 1)
}

func layoutChildren(m TextMeasurer, n *Node) {
	if len(n.Children) == 0 {
		return
	}
	contentX := n.X + n.Padding.Left
	contentY := n.Y + n.Padding.Top
	contentW := n.W - n.Padding.Horizontal()
	contentH := n.H - n.Padding.Vertical()

	horizontal := n.Direction == Horizontal
	contentMain, contentCross := contentH, contentW
	if horizontal {
		contentMain, contentCross = contentW, contentH
	}

	// Measurement: resolve what can be resolved now, defer grow children at
	// zero extent so a negative remainder leaves them well-defined.
	used := 0
	var totalWeight float64
	for _, c := range n.Children {
		main, cross := c.Height, c.Width
		if horizontal {
			main, cross = c.Width, c.Height
		}
		switch main.Mode {
		case SizeFixed:
			setMain(c, horizontal, main.Px)
			used += main.Px
		case SizeGrow:
			setMain(c, horizontal, 0)
			totalWeight += float64(main.Weight)
		default:
			e := childFitExtent(m, c, horizontal)
			setMain(c, horizontal, e)
			used += e
		}
		switch cross.Mode {
		case SizeFixed:
			setCross(c, horizontal, cross.Px)
		case SizeGrow:
			// Cross-axis growth is not weighted: fill the content extent.
			setCross(c, horizontal, contentCross)
		default:
			setCross(c, horizontal, childFitExtent(m, c, !horizontal))
		}
	}

	// Growth distribution. Shares truncate toward zero, so up to
	// len(children)-1 pixels of the remainder may go unassigned; that
	// truncation is part of the layout contract.
	gaps := gapTotal(n)
	remaining := contentMain - used - gaps
	if totalWeight > 0 && remaining > 0 {
		for _, c := range n.Children {
			main := c.Height
			if horizontal {
				main = c.Width
			}
			if main.Mode == SizeGrow {
				share := int(math.Floor(float64(remaining) * float64(main.Weight) / totalWeight))
				setMain(c, horizontal, share)
			}
		}
	}

	// Positioning: anchor the group per the container's main-axis child
	// alignment, then place children in order. Slack only ever shifts
	// forward; an overflowing group stays anchored at the start.
	totalChildren := gaps
	for _, c := range n.Children {
		totalChildren += getMain(c, horizontal)
	}
	mainAlign, crossAlign := n.ChildAlign.Y, n.ChildAlign.X
	if horizontal {
		mainAlign, crossAlign = n.ChildAlign.X, n.ChildAlign.Y
	}
	anchor := contentY
	crossOrigin := contentX
	if horizontal {
		anchor = contentX
		crossOrigin = contentY
	}
	anchor += alignShift(mainAlign, contentMain-totalChildren)

	for _, c := range n.Children {
		// Cross-axis placement is per child: its own alignment if set,
		// else the container's.
		selfCross := c.SelfAlign.X
		if horizontal {
			selfCross = c.SelfAlign.Y
		}
		effective := selfCross
		if effective == AlignInherit {
			effective = crossAlign
		}
		crossPos := crossOrigin + alignShift(effective, contentCross-getCross(c, horizontal))

		cx, cy := crossPos, anchor
		if horizontal {
			cx, cy = anchor, crossPos
		}
		layoutNode(m, c, cx, cy, c.W, c.H)
		anchor += getMain(c, horizontal) + n.Gap
	}
}

// alignShift converts alignment plus slack into a leading offset. Negative
// slack never shifts: the group or child overflows past the end edge.
func alignShift(a Alignment, slack int) int {
	if slack <= 0 {
		return 0
	}
	switch a {
	case AlignCenter:
		return slack / 2
	case AlignEnd:
		return slack
	}
	return 0
}

func setMain(c *Node, horizontal bool, px int) {
	if horizontal {
		c.W = px
	} else {
		c.H = px
	}
}

func setCross(c *Node, horizontal bool, px int) {
	if horizontal {
		c.H = px
	} else {
		c.W = px
	}
}

func getMain(c *Node, horizontal bool) int {
	if horizontal {
		return c.W
	}
	return c.H
}

func getCross(c *Node, horizontal bool) int {
	if horizontal {
		return c.H
	}
	return c.W
}
