// ABOUTME: Audio type definitions
// ABOUTME: Defines the PCM format and the normalized playback buffer
package audio

import (
	"errors"
	"fmt"
	"math"
)

const (
	// SpeechSampleRate is the rate of the speech API's raw PCM output
	SpeechSampleRate = 24000
	// SpeechChannels is the channel count of the speech API's raw PCM output
	SpeechChannels = 1
	// BitDepth is the only supported sample width
	BitDepth = 16
	// BytesPerSample for 16-bit PCM
	BytesPerSample = BitDepth / 8

	// int16 normalization divisor: -32768 maps to exactly -1.0
	sampleScale = 32768.0
)

// ErrInvalidFormat is returned when a sample rate or channel count cannot describe audio
var ErrInvalidFormat = errors.New("invalid audio format")

// Format describes a raw PCM stream
type Format struct {
	SampleRate int
	Channels   int
	BitDepth   int
}

// SpeechFormat is the fixed format produced by the speech API
var SpeechFormat = Format{
	SampleRate: SpeechSampleRate,
	Channels:   SpeechChannels,
	BitDepth:   BitDepth,
}

// NewFormat builds a 16-bit format after validating rate and channel count
func NewFormat(sampleRate, channels int) (Format, error) {
	f := Format{SampleRate: sampleRate, Channels: channels, BitDepth: BitDepth}
	if err := f.Validate(); err != nil {
		return Format{}, err
	}
	return f, nil
}

// Validate checks the format can be written into a WAV header
func (f Format) Validate() error {
	if f.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive, got %d", ErrInvalidFormat, f.SampleRate)
	}
	if f.Channels <= 0 {
		return fmt.Errorf("%w: channel count must be positive, got %d", ErrInvalidFormat, f.Channels)
	}
	if f.Channels > math.MaxUint16 {
		return fmt.Errorf("%w: channel count %d exceeds %d", ErrInvalidFormat, f.Channels, math.MaxUint16)
	}
	if f.BitDepth != BitDepth {
		return fmt.Errorf("%w: unsupported bit depth %d (supported: %d)", ErrInvalidFormat, f.BitDepth, BitDepth)
	}
	if uint64(f.SampleRate)*uint64(f.BlockAlign()) > math.MaxUint32 {
		return fmt.Errorf("%w: byte rate overflows uint32", ErrInvalidFormat)
	}
	return nil
}

// BlockAlign is the size in bytes of one frame
func (f Format) BlockAlign() int {
	return f.Channels * BytesPerSample
}

// ByteRate is the number of bytes per second of audio
func (f Format) ByteRate() int {
	return f.SampleRate * f.BlockAlign()
}

// FrameCount returns the number of whole frames in n bytes; a trailing partial frame is not counted
func (f Format) FrameCount(n int) int {
	if f.Channels <= 0 {
		return 0
	}
	return n / BytesPerSample / f.Channels
}

// Playable is decoded audio ready for an output device.
// Data holds one slice per channel, every value in [-1.0, 1.0].
type Playable struct {
	Format Format
	Data   [][]float32
}

// Frames returns the number of frames per channel
func (p *Playable) Frames() int {
	if p == nil || len(p.Data) == 0 {
		return 0
	}
	return len(p.Data[0])
}

// Duration returns the playback length in seconds
func (p *Playable) Duration() float64 {
	if p == nil || p.Format.SampleRate <= 0 {
		return 0
	}
	return float64(p.Frames()) / float64(p.Format.SampleRate)
}

// SampleToFloat normalizes a 16-bit sample by 32768
func SampleToFloat(sample int16) float32 {
	return float32(float64(sample) / sampleScale)
}
