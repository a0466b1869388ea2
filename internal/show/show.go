package show

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/radiorabe/nowplaypadgen/internal/timeperiod"
)

// Show represents a specific broadcast show. A show has a name, a unique
// identifier, an optional description and URL, as well as an absolute start
// and end time inherited from the embedded period. A show can be active,
// started or ended.
type Show struct {
	*timeperiod.Period

	// Name is the show's name.
	Name string

	// ID is the show's unique identifier, generated per show.
	ID uuid.UUID

	// Description is an optional description of the show.
	Description string

	// URL is an optional link to the show's homepage.
	URL string
}

// New creates a show with the given name and a fresh identifier.
func New(name string) *Show {
	return &Show{
		Period: timeperiod.New(),
		Name:   name,
		ID:     uuid.New(),
	}
}

// String returns a representation of the show useful for logging.
func (s *Show) String() string {
	return fmt.Sprintf("Show %q (%s), start: %s, end: %s, url: %s",
		s.Name, s.ID, s.Start(), s.End(), s.URL)
}
