package table

import "testing"

func TestMouseClickedOncePerPress(t *testing.T) {
	in := NewInputState()

	in.SetMouseButton(MouseButtonLeft, true)
	if !in.MouseClicked(MouseButtonLeft) {
		t.Fatal("press not reported")
	}

	// Held across frames
	in.Reset()
	in.SetMouseButton(MouseButtonLeft, true)
	if in.MouseClicked(MouseButtonLeft) {
		t.Error("held button reported as a new press")
	}

	in.SetMouseButton(MouseButtonLeft, false)
	in.Reset()
	in.SetMouseButton(MouseButtonLeft, true)
	if !in.MouseClicked(MouseButtonLeft) {
		t.Error("second press not reported")
	}

	if in.MouseClicked(MouseButtonRight) || in.MouseClicked(MouseButtonCount) || in.MouseClicked(-1) {
		t.Error("unexpected press on other buttons")
	}
}
