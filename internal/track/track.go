package track

import (
	"fmt"
	"os"

	"github.com/dhowden/tag"
	"github.com/google/uuid"

	"github.com/radiorabe/nowplaypadgen/internal/audio"
	"github.com/radiorabe/nowplaypadgen/internal/timeperiod"
)

// Track represents an audio track. A track has at least an artist, a title
// and a unique identifier; it can have a start time, an end time and a
// length through the embedded period, as well as additional meta tags.
type Track struct {
	*timeperiod.Period

	// Artist is the track's artist.
	Artist string

	// Title is the track's title.
	Title string

	// ID is the track's unique identifier, generated per track.
	ID uuid.UUID

	// Tags holds optional meta tags of the track.
	Tags map[string]string
}

// New creates a track with the given artist and title and a fresh
// identifier.
func New(artist, title string) *Track {
	return &Track{
		Period: timeperiod.New(),
		Artist: artist,
		Title:  title,
		ID:     uuid.New(),
		Tags:   make(map[string]string),
	}
}

// FromFile creates a track from a local audio file. The artist, title and
// meta tags are read from the file's tag data (ID3, MP4 atoms, Vorbis
// comments); for WAV files the playback length is derived from the PCM
// data size. Files providing neither tag data nor a readable WAV header
// are rejected.
func FromFile(path string) (*Track, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio file %s: %w", path, err)
	}
	defer f.Close()

	t := New("", "")

	meta, metaErr := tag.ReadFrom(f)
	if metaErr == nil {
		t.Artist = meta.Artist()
		t.Title = meta.Title()

		// Raw tag values can be of any type; only their first textual
		// representation is kept.
		for name, value := range meta.Raw() {
			t.Tags[name] = fmt.Sprint(value)
		}
	}

	if _, err := f.Seek(0, 0); err != nil {
		return nil, fmt.Errorf("failed to rewind audio file %s: %w", path, err)
	}

	info, infoErr := audio.ReadInfo(f)
	if infoErr == nil {
		if err := t.SetDuration(info.Duration()); err != nil {
			return nil, fmt.Errorf("failed to set track length: %w", err)
		}
	}

	if metaErr != nil && infoErr != nil {
		return nil, fmt.Errorf("unsupported audio file %s: %w", path, metaErr)
	}

	return t, nil
}

// String returns the track in the form "<ARTIST> - <TITLE> (<ID>)", useful
// for logging.
func (t *Track) String() string {
	return fmt.Sprintf("Track: %s - %s (%s)", t.Artist, t.Title, t.ID)
}
