// ABOUTME: Oto-based audio output implementation
// ABOUTME: Lazily opens the process-wide oto context and plays buffers without blocking
package output

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/visionboard/visionboard-go/pkg/audio"
)

// ErrFormatMismatch is returned when a buffer's format differs from the open context
var ErrFormatMismatch = errors.New("format differs from open audio context")

const drainPollInterval = 20 * time.Millisecond

// deviceContext is the part of *oto.Context used for playback
type deviceContext interface {
	NewPlayer(r io.Reader) devicePlayer
}

// devicePlayer is the part of *oto.Player used for playback
type devicePlayer interface {
	SetVolume(volume float64)
	Play()
	IsPlaying() bool
	Close() error
}

type otoDevice struct {
	ctx *oto.Context
}

func (d otoDevice) NewPlayer(r io.Reader) devicePlayer {
	return d.ctx.NewPlayer(r)
}

// newContext opens the platform device and waits until it is ready
var newContext = func(op *oto.NewContextOptions) (deviceContext, error) {
	ctx, readyChan, err := oto.NewContext(op)
	if err != nil {
		return nil, err
	}
	<-readyChan
	return otoDevice{ctx: ctx}, nil
}

// Oto output implementation using oto library.
// oto allows a single context per process, so construct one Oto in main and
// share it. The context is opened on the first Play and stays open for the
// life of the process.
type Oto struct {
	once    sync.Once
	otoCtx  deviceContext
	format  audio.Format
	openErr error

	mu     sync.Mutex
	volume int
	muted  bool
}

// NewOto creates a new Oto output; no device is touched until the first Play
func NewOto() *Oto {
	return &Oto{
		volume: 100,
		muted:  false,
	}
}

// open creates the oto context exactly once, configured with the first format seen
func (o *Oto) open(format audio.Format) (deviceContext, error) {
	o.once.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   format.SampleRate,
			ChannelCount: format.Channels,
			Format:       oto.FormatFloat32LE,
		}

		ctx, err := newContext(op)
		if err != nil {
			o.openErr = fmt.Errorf("failed to create oto context: %w", err)
			return
		}

		o.otoCtx = ctx
		o.format = format
		log.Printf("Audio output initialized: %dHz, %d channels", format.SampleRate, format.Channels)
	})

	if o.openErr != nil {
		return nil, o.openErr
	}

	if format.SampleRate != o.format.SampleRate || format.Channels != o.format.Channels {
		return nil, fmt.Errorf("%w: context %dHz %dch, buffer %dHz %dch", ErrFormatMismatch,
			o.format.SampleRate, o.format.Channels, format.SampleRate, format.Channels)
	}

	return o.otoCtx, nil
}

// Play dispatches buf to the device and returns immediately
func (o *Oto) Play(buf *audio.Playable) (*Playback, error) {
	if buf == nil {
		return nil, errors.New("nil audio buffer")
	}

	ctx, err := o.open(buf.Format)
	if err != nil {
		return nil, err
	}

	pb := newPlayback(buf.Frames())
	if pb.frames == 0 {
		pb.finish()
		return pb, nil
	}

	player := ctx.NewPlayer(bytes.NewReader(Interleave(buf)))
	player.SetVolume(o.gain())
	player.Play()

	log.Printf("Playback started: %d frames (%.2fs)", buf.Frames(), buf.Duration())

	go func() {
		for player.IsPlaying() {
			time.Sleep(drainPollInterval)
		}
		if err := player.Close(); err != nil {
			log.Printf("Warning: player close error: %v", err)
		}
		pb.finish()
	}()

	return pb, nil
}

// SetVolume sets the volume (0-100) applied to subsequent plays
func (o *Oto) SetVolume(volume int) {
	if volume < 0 {
		volume = 0
	}
	if volume > 100 {
		volume = 100
	}
	o.mu.Lock()
	o.volume = volume
	o.mu.Unlock()
	log.Printf("Volume set to %d", volume)
}

// SetMuted sets mute state for subsequent plays
func (o *Oto) SetMuted(muted bool) {
	o.mu.Lock()
	o.muted = muted
	o.mu.Unlock()
	log.Printf("Muted: %v", muted)
}

// GetVolume returns current volume
func (o *Oto) GetVolume() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.volume
}

// IsMuted returns mute state
func (o *Oto) IsMuted() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.muted
}

func (o *Oto) gain() float64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	return getVolumeMultiplier(o.volume, o.muted)
}

// getVolumeMultiplier calculates volume multiplier
func getVolumeMultiplier(volume int, muted bool) float64 {
	if muted {
		return 0.0
	}
	return float64(volume) / 100.0
}
