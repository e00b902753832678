package animations

import "testing"

func TestFlipbookAdvancesAndLoops(t *testing.T) {
	f := NewFlipbook(0, 3, 2, 2)

	var frames []int
	for i := 0; i < 8; i++ {
		f.Update()
		frames = append(frames, f.Frame())
	}

	want := []int{2, 3, 3, 0, 0, 1, 1, 2}
	for i := range want {
		if frames[i] != want[i] {
			t.Fatalf("Expected frames %v, got %v", want, frames)
		}
	}
	if f.Loops != 1 {
		t.Errorf("Expected 1 loop, got %d", f.Loops)
	}
}

func TestFlipbookClampsStart(t *testing.T) {
	f := NewFlipbook(1, 3, 0, 9)
	if f.Frame() != 1 {
		t.Errorf("Expected start clamped to 1, got %d", f.Frame())
	}
	if f.TicksPerFrame != 1 {
		t.Errorf("Expected at least one tick per frame, got %d", f.TicksPerFrame)
	}
	f.Update()
	f.Restart()
	if f.Frame() != 1 {
		t.Errorf("Expected restart at first frame, got %d", f.Frame())
	}
}
