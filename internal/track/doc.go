// Package track models an audio track with artist, title, meta tags and a
// playback time period, optionally populated from a local audio file.
package track
