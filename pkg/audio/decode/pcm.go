// ABOUTME: PCM audio decoder
// ABOUTME: Decodes 16-bit little-endian PCM into samples and playable buffers
package decode

import (
	"encoding/binary"

	"github.com/visionboard/visionboard-go/pkg/audio"
)

// PCMDecoder decodes interleaved 16-bit PCM
type PCMDecoder struct {
	format audio.Format
}

// NewPCM creates a new PCM decoder
func NewPCM(format audio.Format) (Decoder, error) {
	if err := format.Validate(); err != nil {
		return nil, err
	}

	return &PCMDecoder{
		format: format,
	}, nil
}

// Decode converts PCM bytes to int16 samples.
// Only whole frames are decoded; a trailing partial frame is dropped.
func (d *PCMDecoder) Decode(data []byte) ([]int16, error) {
	frames := d.format.FrameCount(len(data))
	samples := make([]int16, frames*d.format.Channels)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(data[i*audio.BytesPerSample:]))
	}
	return samples, nil
}

// Close releases resources
func (d *PCMDecoder) Close() error {
	return nil
}

// Playable de-interleaves PCM bytes into per-channel normalized float buffers.
// frameCount is floor(len(pcm)/2/channels); any trailing partial frame is dropped.
func Playable(pcm []byte, sampleRate, channels int) (*audio.Playable, error) {
	format, err := audio.NewFormat(sampleRate, channels)
	if err != nil {
		return nil, err
	}

	frames := format.FrameCount(len(pcm))
	data := make([][]float32, channels)
	for c := range data {
		data[c] = make([]float32, frames)
	}

	for i := 0; i < frames; i++ {
		for c := 0; c < channels; c++ {
			off := (i*channels + c) * audio.BytesPerSample
			sample := int16(binary.LittleEndian.Uint16(pcm[off:]))
			data[c][i] = audio.SampleToFloat(sample)
		}
	}

	return &audio.Playable{
		Format: format,
		Data:   data,
	}, nil
}

// PlayableBase64 decodes a base64 speech payload straight into a playable buffer
func PlayableBase64(payload string, sampleRate, channels int) (*audio.Playable, error) {
	pcm, err := Base64(payload)
	if err != nil {
		return nil, err
	}
	return Playable(pcm, sampleRate, channels)
}
