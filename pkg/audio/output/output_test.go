// ABOUTME: Audio output interface tests
// ABOUTME: Verifies implementations, interleaving and playback completion
package output

import (
	"encoding/binary"
	"math"
	"testing"
	"time"

	"github.com/visionboard/visionboard-go/pkg/audio"
)

func TestOtoImplementsOutput(t *testing.T) {
	var _ Output = (*Oto)(nil)
}

func TestDiscardImplementsOutput(t *testing.T) {
	var _ Output = (*Discard)(nil)
}

func TestNewOtoDefaults(t *testing.T) {
	out := NewOto()
	if out.GetVolume() != 100 {
		t.Errorf("expected default volume 100, got %d", out.GetVolume())
	}
	if out.IsMuted() {
		t.Error("expected unmuted by default")
	}
}

func TestOtoVolumeClamp(t *testing.T) {
	out := NewOto()

	out.SetVolume(150)
	if out.GetVolume() != 100 {
		t.Errorf("expected 100, got %d", out.GetVolume())
	}
	out.SetVolume(-5)
	if out.GetVolume() != 0 {
		t.Errorf("expected 0, got %d", out.GetVolume())
	}
}

func TestGetVolumeMultiplier(t *testing.T) {
	tests := []struct {
		volume   int
		muted    bool
		expected float64
	}{
		{100, false, 1.0},
		{50, false, 0.5},
		{0, false, 0.0},
		{100, true, 0.0},
	}

	for _, tt := range tests {
		if got := getVolumeMultiplier(tt.volume, tt.muted); got != tt.expected {
			t.Errorf("getVolumeMultiplier(%d, %v) = %v, want %v", tt.volume, tt.muted, got, tt.expected)
		}
	}
}

func TestInterleave(t *testing.T) {
	buf := &audio.Playable{
		Format: audio.Format{SampleRate: 24000, Channels: 2, BitDepth: 16},
		Data: [][]float32{
			{0.5, -1.0},
			{0.25, 0},
		},
	}

	out := Interleave(buf)
	if len(out) != 16 {
		t.Fatalf("expected 16 bytes, got %d", len(out))
	}

	expected := []float32{0.5, 0.25, -1.0, 0}
	for i, want := range expected {
		got := math.Float32frombits(binary.LittleEndian.Uint32(out[i*4:]))
		if got != want {
			t.Errorf("sample %d: got %v, want %v", i, got, want)
		}
	}
}

func TestInterleaveEmpty(t *testing.T) {
	buf := &audio.Playable{Format: audio.SpeechFormat, Data: [][]float32{{}}}
	if out := Interleave(buf); len(out) != 0 {
		t.Errorf("expected empty output, got %d bytes", len(out))
	}
}

func TestDiscardPlay(t *testing.T) {
	out := NewDiscard()
	buf := &audio.Playable{Format: audio.SpeechFormat, Data: [][]float32{{0, 0.5, 1}}}

	pb, err := out.Play(buf)
	if err != nil {
		t.Fatalf("Play failed: %v", err)
	}

	select {
	case <-pb.Done():
	case <-time.After(time.Second):
		t.Fatal("discard playback did not complete")
	}

	if pb.Frames() != 3 {
		t.Errorf("expected 3 frames, got %d", pb.Frames())
	}
	if out.Plays() != 1 {
		t.Errorf("expected 1 play, got %d", out.Plays())
	}
	if out.Last() != buf {
		t.Error("expected last buffer to be recorded")
	}
}

func TestDiscardNilBuffer(t *testing.T) {
	if _, err := NewDiscard().Play(nil); err == nil {
		t.Error("expected error for nil buffer")
	}
}

func TestPlaybackFinishIdempotent(t *testing.T) {
	pb := newPlayback(10)
	pb.finish()
	pb.finish()
	pb.Wait()
}
