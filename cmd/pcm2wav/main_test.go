// ABOUTME: Tests for the pcm2wav command
// ABOUTME: Tests conversion from stdin and files, header inspection and bad input
package main

import (
	"bytes"
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/visionboard/visionboard-go/pkg/audio"
	"github.com/visionboard/visionboard-go/pkg/audio/decode"
)

func TestConvertStdin(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.wav")

	err := run([]string{"-out", out}, strings.NewReader("AAD/fw==\n"), &bytes.Buffer{})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if len(data) != 48 {
		t.Fatalf("expected 48 bytes, got %d", len(data))
	}
	if !bytes.Equal(data[44:], []byte{0x00, 0x00, 0xFF, 0x7F}) {
		t.Errorf("unexpected payload % x", data[44:])
	}
}

func TestConvertFileWithFormat(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "speech.b64")
	out := filepath.Join(dir, "speech.wav")
	if err := os.WriteFile(in, []byte("AAD/fw=="), 0644); err != nil {
		t.Fatal(err)
	}

	if err := run([]string{"-in", in, "-out", out, "-rate", "48000", "-channels", "2"}, nil, &bytes.Buffer{}); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	data, _ := os.ReadFile(out)
	_, format, err := decode.WAVData(data)
	if err != nil {
		t.Fatalf("output is not a valid WAV: %v", err)
	}
	if format.SampleRate != 48000 || format.Channels != 2 {
		t.Errorf("unexpected format %+v", format)
	}
}

func TestInfo(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.wav")
	if err := run([]string{"-out", out}, strings.NewReader("AAD/fw=="), &bytes.Buffer{}); err != nil {
		t.Fatal(err)
	}

	var stdout bytes.Buffer
	if err := run([]string{"-info", out}, nil, &stdout); err != nil {
		t.Fatalf("info failed: %v", err)
	}
	if !strings.Contains(stdout.String(), "24000 Hz, 1 ch, 16 bit, 4 data bytes, 2 frames, peak 100.0%") {
		t.Errorf("unexpected info %q", stdout.String())
	}
}

func TestInvalidInput(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.wav")

	err := run([]string{"-out", out}, strings.NewReader("!!!"), &bytes.Buffer{})
	if !errors.Is(err, decode.ErrInvalidEncoding) {
		t.Errorf("expected ErrInvalidEncoding, got %v", err)
	}
	if _, statErr := os.Stat(out); statErr == nil {
		t.Error("no file should be written on bad input")
	}
}

func TestVersion(t *testing.T) {
	var stdout bytes.Buffer
	if err := run([]string{"-version"}, nil, &stdout); err != nil {
		t.Fatal(err)
	}
	if stdout.Len() == 0 {
		t.Error("expected version output")
	}
}

func TestToneWAV(t *testing.T) {
	out := filepath.Join(t.TempDir(), "tone.wav")

	if err := run([]string{"-tone", "6000", "-duration", "100ms", "-out", out}, nil, &bytes.Buffer{}); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	data, _ := os.ReadFile(out)
	pcm, format, err := decode.WAVData(data)
	if err != nil {
		t.Fatalf("tone is not a valid WAV: %v", err)
	}
	if format != audio.SpeechFormat {
		t.Errorf("unexpected format %+v", format)
	}
	if frames := format.FrameCount(len(pcm)); frames != 2400 {
		t.Errorf("expected 2400 frames, got %d", frames)
	}

	var info bytes.Buffer
	if err := run([]string{"-info", out}, nil, &info); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(info.String(), "peak 50.0%") {
		t.Errorf("expected half-scale peak, got %q", info.String())
	}
}

func TestToneBase64(t *testing.T) {
	var stdout bytes.Buffer
	args := []string{"-tone", "1000", "-duration", "10ms", "-channels", "2", "-base64"}
	if err := run(args, nil, &stdout); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	pcm, err := base64.StdEncoding.DecodeString(strings.TrimSpace(stdout.String()))
	if err != nil {
		t.Fatalf("output is not base64: %v", err)
	}
	// 240 frames of stereo 16-bit
	if len(pcm) != 240*2*2 {
		t.Errorf("expected %d bytes, got %d", 240*2*2, len(pcm))
	}
}

func TestToneSamples(t *testing.T) {
	samples := toneSamples(6000, time.Millisecond, audio.SpeechFormat)
	if len(samples) != 24 {
		t.Fatalf("expected 24 samples, got %d", len(samples))
	}
	if samples[0] != 0 {
		t.Errorf("sine should start at zero, got %d", samples[0])
	}
	// quarter period at 6 kHz / 24 kHz is the positive peak
	if samples[1] != 16383 {
		t.Errorf("expected half-scale peak 16383, got %d", samples[1])
	}
}
