// ABOUTME: WAV container encoder
// ABOUTME: Wraps raw 16-bit PCM bytes in a 44-byte RIFF/WAVE header
package encode

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/visionboard/visionboard-go/pkg/audio"
)

// MIMEType of the encoded container
const MIMEType = "audio/wav"

// ErrTooLarge is returned when the PCM payload does not fit a RIFF size field
var ErrTooLarge = errors.New("pcm payload too large for WAV")

// WAV builds a WAV file from raw PCM bytes. The payload is copied unchanged
// after the header and the declared data size is exactly len(pcm), even when odd.
func WAV(pcm []byte, sampleRate, channels int) ([]byte, error) {
	format, err := audio.NewFormat(sampleRate, channels)
	if err != nil {
		return nil, err
	}

	if uint64(len(pcm)) > math.MaxUint32-36 {
		return nil, fmt.Errorf("%w: %d bytes", ErrTooLarge, len(pcm))
	}

	header := audio.NewWAVHeader(format, uint32(len(pcm)))

	buf := bytes.NewBuffer(make([]byte, 0, audio.WAVHeaderSize+len(pcm)))
	if err := binary.Write(buf, binary.LittleEndian, header); err != nil {
		return nil, fmt.Errorf("failed to write WAV header: %w", err)
	}
	buf.Write(pcm)

	return buf.Bytes(), nil
}

// WAVEncoder encodes int16 samples into a complete WAV file per call
type WAVEncoder struct {
	format audio.Format
}

// NewWAV creates a new WAV encoder
func NewWAV(format audio.Format) (Encoder, error) {
	if err := format.Validate(); err != nil {
		return nil, err
	}

	return &WAVEncoder{
		format: format,
	}, nil
}

// Encode converts interleaved samples to a WAV file
func (e *WAVEncoder) Encode(samples []int16) ([]byte, error) {
	return WAV(PCM(samples), e.format.SampleRate, e.format.Channels)
}

// Close releases resources
func (e *WAVEncoder) Close() error {
	return nil
}
