// ABOUTME: Audio output package for playing audio
// ABOUTME: Provides Output interface, oto implementation and a headless sink
// Package output provides audio playback.
//
// Oto plays through the platform device using a single process-wide context
// that is opened on first use and never closed. Play is fire-and-forget; the
// returned Playback exposes completion for callers that care.
//
// Example:
//
//	out := output.NewOto()
//	pb, err := out.Play(buf)
//	<-pb.Done()
package output
