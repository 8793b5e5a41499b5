// ABOUTME: Headless audio output
// ABOUTME: Accepts buffers and completes immediately without a device
package output

import (
	"errors"
	"sync"

	"github.com/visionboard/visionboard-go/pkg/audio"
)

// Discard is an Output that plays nothing. It records what it was given.
type Discard struct {
	mu    sync.Mutex
	plays int
	last  *audio.Playable
}

// NewDiscard creates a headless output
func NewDiscard() *Discard {
	return &Discard{}
}

// Play records buf and returns an already-completed playback
func (d *Discard) Play(buf *audio.Playable) (*Playback, error) {
	if buf == nil {
		return nil, errors.New("nil audio buffer")
	}

	d.mu.Lock()
	d.plays++
	d.last = buf
	d.mu.Unlock()

	pb := newPlayback(buf.Frames())
	pb.finish()
	return pb, nil
}

// Plays returns how many buffers were dispatched
func (d *Discard) Plays() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.plays
}

// Last returns the most recent buffer, or nil
func (d *Discard) Last() *audio.Playable {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.last
}
