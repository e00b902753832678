package animations

// Flipbook steps through a range of atlas frames, one frame every TicksPerFrame
// updates. Petals use it to tumble through the atlas variants.
type Flipbook struct {
	First         int
	Last          int
	TicksPerFrame int
	tick          int
	frame         int
	Loops         int // completed passes over the range
}

func (f *Flipbook) Update() {
	f.tick++
	if f.tick < f.TicksPerFrame {
		return
	}
	f.tick = 0
	f.frame++
	if f.frame > f.Last {
		f.frame = f.First
		f.Loops++
	}
}

func (f *Flipbook) Frame() int {
	return f.frame
}

func (f *Flipbook) Restart() {
	f.frame = f.First
	f.tick = 0
}

// NewFlipbook starts at frame start, clamped into [first, last].
func NewFlipbook(first, last, ticksPerFrame, start int) *Flipbook {
	if ticksPerFrame < 1 {
		ticksPerFrame = 1
	}
	if start < first || start > last {
		start = first
	}
	return &Flipbook{
		First:         first,
		Last:          last,
		TicksPerFrame: ticksPerFrame,
		frame:         start,
	}
}
