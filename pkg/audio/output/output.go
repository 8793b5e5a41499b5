// ABOUTME: Audio output interface definition
// ABOUTME: Common interface for fire-and-forget playback backends
package output

import (
	"encoding/binary"
	"math"
	"sync"

	"github.com/visionboard/visionboard-go/pkg/audio"
)

// Output represents an audio output device
type Output interface {
	// Play starts playback and returns without waiting for it to finish.
	// Concurrent plays are mixed by the device; none stops another.
	Play(buf *audio.Playable) (*Playback, error)
}

// Playback tracks one dispatched buffer
type Playback struct {
	done   chan struct{}
	once   sync.Once
	frames int
}

func newPlayback(frames int) *Playback {
	return &Playback{
		done:   make(chan struct{}),
		frames: frames,
	}
}

// Done is closed once the device has drained the buffer
func (p *Playback) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until playback completes
func (p *Playback) Wait() {
	<-p.done
}

// Frames returns the number of frames dispatched
func (p *Playback) Frames() int {
	return p.frames
}

func (p *Playback) finish() {
	p.once.Do(func() { close(p.done) })
}

// Interleave packs per-channel samples into frame-interleaved float32 little-endian bytes
func Interleave(buf *audio.Playable) []byte {
	frames := buf.Frames()
	channels := len(buf.Data)
	out := make([]byte, frames*channels*4)

	off := 0
	for i := 0; i < frames; i++ {
		for c := 0; c < channels; c++ {
			binary.LittleEndian.PutUint32(out[off:], math.Float32bits(buf.Data[c][i]))
			off += 4
		}
	}
	return out
}
