// ABOUTME: WAV header parser
// ABOUTME: Reads back the canonical 44-byte PCM header and its data chunk
package decode

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/visionboard/visionboard-go/pkg/audio"
)

// ErrInvalidWAV is returned for data that is not a canonical PCM WAV file
var ErrInvalidWAV = errors.New("invalid WAV data")

// WAVHeader parses and validates the first 44 bytes of data
func WAVHeader(data []byte) (audio.WAVHeader, error) {
	var h audio.WAVHeader
	if len(data) < audio.WAVHeaderSize {
		return h, fmt.Errorf("%w: need at least %d bytes, got %d", ErrInvalidWAV, audio.WAVHeaderSize, len(data))
	}

	if err := binary.Read(bytes.NewReader(data[:audio.WAVHeaderSize]), binary.LittleEndian, &h); err != nil {
		return h, fmt.Errorf("%w: %v", ErrInvalidWAV, err)
	}

	switch {
	case string(h.ChunkID[:]) != "RIFF":
		return h, fmt.Errorf("%w: missing RIFF header", ErrInvalidWAV)
	case string(h.Format[:]) != "WAVE":
		return h, fmt.Errorf("%w: missing WAVE format", ErrInvalidWAV)
	case string(h.Subchunk1ID[:]) != "fmt ":
		return h, fmt.Errorf("%w: missing fmt chunk", ErrInvalidWAV)
	case string(h.Subchunk2ID[:]) != "data":
		return h, fmt.Errorf("%w: missing data chunk", ErrInvalidWAV)
	case h.AudioFormat != 1:
		return h, fmt.Errorf("%w: unsupported audio format %d (only PCM)", ErrInvalidWAV, h.AudioFormat)
	case h.BitsPerSample != audio.BitDepth:
		return h, fmt.Errorf("%w: unsupported bit depth %d (only %d)", ErrInvalidWAV, h.BitsPerSample, audio.BitDepth)
	case h.NumChannels == 0 || h.SampleRate == 0:
		return h, fmt.Errorf("%w: zero channels or sample rate", ErrInvalidWAV)
	}

	return h, nil
}

// WAVData returns the PCM payload of a WAV file, bounded by the declared data size
func WAVData(data []byte) ([]byte, audio.Format, error) {
	h, err := WAVHeader(data)
	if err != nil {
		return nil, audio.Format{}, err
	}

	payload := data[audio.WAVHeaderSize:]
	if int(h.Subchunk2Size) > len(payload) {
		return nil, audio.Format{}, fmt.Errorf("%w: data chunk declares %d bytes, %d present",
			ErrInvalidWAV, h.Subchunk2Size, len(payload))
	}

	return payload[:h.Subchunk2Size], h.StreamFormat(), nil
}
