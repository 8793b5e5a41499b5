// ABOUTME: Audio encoder package for PCM and WAV output
// ABOUTME: Provides Encoder interface and the WAV container writer
// Package encode provides audio encoders for the download path.
//
// Supports: raw 16-bit PCM and the canonical 44-byte-header WAV container.
//
// WAV output is a pure function of its input: identical PCM, rate and
// channel count always yield byte-identical files.
//
// Example:
//
//	wav, err := encode.WAV(pcm, audio.SpeechSampleRate, audio.SpeechChannels)
package encode
