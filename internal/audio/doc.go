// Package audio reads basic format information from WAV files, enough to
// derive a track's playback duration from its PCM data size.
package audio
