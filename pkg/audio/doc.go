// ABOUTME: Audio fundamentals package providing core types and utilities
// ABOUTME: Defines Format, Playable types and sample normalization
// Package audio provides the fundamental types shared by the codec and playback packages.
//
// This package defines:
//   - Format: Describes a raw PCM stream (sample rate, channels, bit depth)
//   - Playable: Per-channel normalized float samples ready for an output device
//
// Only signed 16-bit little-endian PCM is supported. The speech API always
// produces mono 24kHz audio, described by SpeechFormat.
//
// Example:
//
//	format, err := audio.NewFormat(24000, 1)
//	frames := format.FrameCount(len(pcm))
package audio
