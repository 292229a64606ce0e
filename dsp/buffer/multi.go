package buffer

import (
	"errors"
	"sync"

	vecmath "github.com/cwbudde/algo-vecmath"
)

// ErrInvalidShape is returned by NewMulti for non-positive frame or
// channel counts.
var ErrInvalidShape = errors.New("buffer: frames and channels must be positive")

// Multi owns one sample array per channel. It is the handoff point between
// a host that dictates block size and channel count and the processing code
// that consumes per-channel slices.
//
// Channel slices obtained before a Resize do not observe data written after
// it; treat Resize as invalidating all previously returned slices. Resize
// must not run concurrently with channel access — in practice it is a
// control-context operation performed while processing is quiesced.
//
// A Multi is not copyable; hand the pointer over to transfer ownership.
type Multi struct {
	mu     sync.Mutex
	frames int
	chans  []Buffer
}

// NewMulti allocates channels independent zero-filled sample arrays of
// frames length each.
func NewMulti(frames, channels int) (*Multi, error) {
	if frames <= 0 || channels <= 0 {
		return nil, ErrInvalidShape
	}

	m := &Multi{
		frames: frames,
		chans:  make([]Buffer, channels),
	}
	for i := range m.chans {
		m.chans[i] = Buffer{samples: make([]float64, frames)}
	}

	return m, nil
}

// Channel returns the sample slice of channel i, or nil when i is out of
// range. The slice stays valid until the next Resize.
func (m *Multi) Channel(i int) []float64 {
	if i < 0 || i >= len(m.chans) {
		return nil
	}
	return m.chans[i].samples
}

// Channels returns the channel count.
func (m *Multi) Channels() int {
	return len(m.chans)
}

// Frames returns the per-channel sample count.
func (m *Multi) Frames() int {
	return m.frames
}

// Resize replaces all channel arrays with fresh zero-filled arrays of the
// new frame count. All previously returned channel slices are invalidated.
// Control context only; concurrent Resize calls are serialized.
func (m *Multi) Resize(frames int) error {
	if frames <= 0 {
		return ErrInvalidShape
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	next := make([]Buffer, len(m.chans))
	for i := range next {
		next[i] = Buffer{samples: make([]float64, frames)}
	}

	m.frames = frames
	m.chans = next

	return nil
}

// Zero clears all channels.
func (m *Multi) Zero() {
	for i := range m.chans {
		m.chans[i].Zero()
	}
}

// ApplyGain scales every channel by gain in place.
func (m *Multi) ApplyGain(gain float64) {
	for i := range m.chans {
		vecmath.ScaleBlockInPlace(m.chans[i].samples, gain)
	}
}

// MixDown sums all channels into dst and returns the number of frames
// written. dst must hold at least Frames() samples; excess is untouched.
func (m *Multi) MixDown(dst []float64) int {
	n := m.frames
	if len(dst) < n {
		n = len(dst)
	}

	for i := range dst[:n] {
		dst[i] = 0
	}
	for c := range m.chans {
		vecmath.AddBlockInPlace(dst[:n], m.chans[c].samples[:n])
	}

	return n
}

// Peak returns the largest absolute sample value across all channels.
func (m *Multi) Peak() float64 {
	peak := 0.0
	for i := range m.chans {
		if p := vecmath.MaxAbs(m.chans[i].samples); p > peak {
			peak = p
		}
	}
	return peak
}
