// ABOUTME: Audio decoder package for the speech payload
// ABOUTME: Provides base64, PCM, playable-buffer and WAV header decoding
// Package decode turns the speech API's base64 payload into audio.
//
// The payload is raw signed 16-bit little-endian PCM with no in-band
// metadata; sample rate and channel count are supplied by the caller.
//
// Decoding never fails on short data: a trailing partial frame is dropped
// and the whole frames before it are returned. Only malformed base64 or an
// invalid format is an error.
//
// Example:
//
//	pcm, err := decode.Base64(payload)
//	buf, err := decode.Playable(pcm, audio.SpeechSampleRate, audio.SpeechChannels)
package decode
