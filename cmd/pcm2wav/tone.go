// ABOUTME: Test tone generator for pcm2wav
// ABOUTME: Produces a sine wave as a WAV file or a base64 PCM payload
package main

import (
	"encoding/base64"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"time"

	"github.com/visionboard/visionboard-go/pkg/audio"
	"github.com/visionboard/visionboard-go/pkg/audio/encode"
)

// toneSamples generates an interleaved sine wave at 50% volume
func toneSamples(frequency float64, duration time.Duration, format audio.Format) []int16 {
	frames := int(duration.Seconds() * float64(format.SampleRate))
	samples := make([]int16, frames*format.Channels)

	for i := 0; i < frames; i++ {
		t := float64(i) / float64(format.SampleRate)
		value := int16(math.Sin(2*math.Pi*frequency*t) * 32767.0 * 0.5)
		for c := 0; c < format.Channels; c++ {
			samples[i*format.Channels+c] = value
		}
	}
	return samples
}

// writeTone encodes a tone as WAV into path, or as base64 PCM to stdout when asBase64 is set
func writeTone(frequency float64, duration time.Duration, format audio.Format, path string, asBase64 bool, stdout io.Writer) error {
	var enc encode.Encoder
	var err error
	if asBase64 {
		enc, err = encode.NewPCM(format)
	} else {
		enc, err = encode.NewWAV(format)
	}
	if err != nil {
		return err
	}
	defer enc.Close()

	data, err := enc.Encode(toneSamples(frequency, duration, format))
	if err != nil {
		return err
	}

	if asBase64 {
		_, err := fmt.Fprintln(stdout, base64.StdEncoding.EncodeToString(data))
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	log.Printf("Wrote %.0f Hz tone to %s (%v)", frequency, path, duration)
	return nil
}
