package ui

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Bob is a dynamic coordinate that swings around a base value. Update
// advances it once per tick; Value only reads, so it can be sampled any
// number of times per frame.
type Bob struct {
	base      float64
	amplitude float64
	duration  float32
	tween     *gween.Tween
	rising    bool
	offset    float64
}

// NewBob swings between base-amplitude and base+amplitude, taking halfPeriod
// seconds for each sweep.
func NewBob(base, amplitude, halfPeriod float64) *Bob {
	b := &Bob{
		base:      base,
		amplitude: amplitude,
		duration:  float32(halfPeriod),
		rising:    true,
		offset:    -amplitude,
	}
	b.tween = gween.New(float32(-amplitude), float32(amplitude), b.duration, ease.InOutSine)
	return b
}

func (b *Bob) Update(dt float64) {
	current, finished := b.tween.Update(float32(dt))
	b.offset = float64(current)
	if !finished {
		return
	}
	b.rising = !b.rising
	from, to := float32(b.amplitude), float32(-b.amplitude)
	if b.rising {
		from, to = to, from
	}
	b.tween = gween.New(from, to, b.duration, ease.InOutSine)
}

// Value is the current coordinate.
func (b *Bob) Value() float64 {
	return b.base + b.offset
}
