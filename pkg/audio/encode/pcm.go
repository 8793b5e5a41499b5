// ABOUTME: PCM audio encoder
// ABOUTME: Encodes int16 samples to 16-bit little-endian PCM bytes
package encode

import (
	"encoding/binary"

	"github.com/visionboard/visionboard-go/pkg/audio"
)

// PCMEncoder encodes PCM audio
type PCMEncoder struct{}

// NewPCM creates a new PCM encoder
func NewPCM(format audio.Format) (Encoder, error) {
	if err := format.Validate(); err != nil {
		return nil, err
	}

	return &PCMEncoder{}, nil
}

// Encode converts int16 samples to PCM bytes
func (e *PCMEncoder) Encode(samples []int16) ([]byte, error) {
	return PCM(samples), nil
}

// Close releases resources
func (e *PCMEncoder) Close() error {
	return nil
}

// PCM packs samples as 16-bit little-endian bytes
func PCM(samples []int16) []byte {
	output := make([]byte, len(samples)*audio.BytesPerSample)
	for i, sample := range samples {
		binary.LittleEndian.PutUint16(output[i*2:], uint16(sample))
	}
	return output
}
