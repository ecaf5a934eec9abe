package fonts

import "testing"

func TestBitmapMeasurer(t *testing.T) {
	var m BitmapMeasurer

	w, h := m.MeasureText("", 20)
	if w != 0 || h != 20 {
		t.Errorf("empty string = %dx%d, want 0x20", w, h)
	}

	// Face7x13 advances 7px per glyph at its native 13px size.
	w, h = m.MeasureText("abcd", 13)
	if w != 28 || h != 13 {
		t.Errorf("native size = %dx%d, want 28x13", w, h)
	}

	// Double the font size, double the width.
	w2, h2 := m.MeasureText("abcd", 26)
	if w2 != 2*w || h2 != 26 {
		t.Errorf("scaled size = %dx%d, want %dx26", w2, h2, 2*w)
	}

	// Longer text is never narrower.
	short, _ := m.MeasureText("ab", 20)
	long, _ := m.MeasureText("abcdef", 20)
	if long <= short {
		t.Errorf("width not monotonic: %d <= %d", long, short)
	}
}
