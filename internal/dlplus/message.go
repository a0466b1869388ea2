package dlplus

import (
	"fmt"
	"strings"
)

// MaximumObjects is the maximum number of DL Plus objects and tags per
// message according to ETSI TS 102 980, 5.1.
const MaximumObjects = 4

// Message supports parsing or building a DL Plus message string.
//
// For building, attach up to four objects via AddObject and call Build with
// a format template; the rendered message and the derived tags can then be
// read back. For parsing, attach up to four tags via AddTag (on the decode
// side the markers are received from the protocol) and call Parse with the
// incoming message string.
type Message struct {
	formatString string
	message      string
	objects      map[string]*Object
	tags         map[string]*Tag
	parsed       bool
	built        bool
}

// NewMessage creates an empty message which can be used to parse or build a
// DL Plus message string.
func NewMessage() *Message {
	return &Message{
		objects: make(map[string]*Object),
		tags:    make(map[string]*Tag),
	}
}

// AddObject attaches an object to the message for building. Up to four
// objects can be attached; the object's content type is the key, so adding
// a second object of the same content type replaces the first.
func (m *Message) AddObject(obj *Object) error {
	if obj == nil {
		return fmt.Errorf("%w: object must not be nil", ErrWrongType)
	}

	if _, ok := m.objects[obj.ContentType]; !ok && len(m.objects) >= MaximumObjects {
		return fmt.Errorf("%w: only %d objects can be added", ErrTooManyEntries, MaximumObjects)
	}

	m.objects[obj.ContentType] = obj
	return nil
}

// AddTag attaches a tag to the message for parsing. Up to four tags can be
// attached; the tag's content type is the key, so adding a second tag of
// the same content type replaces the first.
func (m *Message) AddTag(tag *Tag) error {
	if tag == nil {
		return fmt.Errorf("%w: tag must not be nil", ErrWrongType)
	}

	if _, ok := m.tags[tag.ContentType]; !ok && len(m.tags) >= MaximumObjects {
		return fmt.Errorf("%w: only %d tags can be added", ErrTooManyEntries, MaximumObjects)
	}

	m.tags[tag.ContentType] = tag
	return nil
}

// Objects returns the attached objects keyed by content type.
func (m *Message) Objects() map[string]*Object {
	return m.objects
}

// Tags returns the attached tags keyed by content type.
func (m *Message) Tags() map[string]*Tag {
	return m.tags
}

// Build renders the DL Plus message from the given format string and the
// attached objects. Each {CONTENT.TYPE} placeholder is replaced with the
// text of the correspondingly keyed object, and a tag with the correct
// start and length markers is derived per attached object.
//
// For example, the format string
// "Now playing: {ITEM.ARTIST} - {ITEM.TITLE}" builds into
// "Now playing: My Artist - My Title", given two objects with the
// corresponding content types.
//
// The rendered message must not exceed MaximumTextLimit bytes. On any
// failure nothing is committed: a previously built message and its tags
// stay intact.
func (m *Message) Build(formatString string) error {
	placeholders, err := scanPlaceholders(formatString)
	if err != nil {
		return err
	}

	if len(placeholders) > MaximumObjects {
		return fmt.Errorf("%w: format references %d content types", ErrTooManyEntries, len(placeholders))
	}

	message := formatString
	for _, name := range placeholders {
		obj, ok := m.objects[name]
		if !ok {
			return fmt.Errorf("%w %q", ErrMissingObject, name)
		}
		message = strings.ReplaceAll(message, "{"+name+"}", obj.Text)
	}

	if len(message) > MaximumTextLimit {
		return fmt.Errorf("%w: message is longer than %d bytes", ErrMessageTooLong, MaximumTextLimit)
	}

	// Derive the tags from the rendered message, so the markers are
	// always consistent with the final string. Nothing is committed
	// until every tag could be derived.
	tags := make(map[string]*Tag, len(m.objects))
	for contentType, obj := range m.objects {
		start := strings.Index(message, obj.Text)
		length := len(obj.Text)
		if obj.IsDelete {
			length = 0
		}
		tag, err := NewTag(contentType, start, length)
		if err != nil {
			return err
		}
		tags[contentType] = tag
	}

	m.formatString = formatString
	m.message = message
	m.tags = tags
	m.built = true
	return nil
}

// Parse splits a DL Plus message string into objects according to the
// attached tags. The previously parsed objects are discarded. Tags whose
// markers run past the actual message simply yield a shorter or empty
// text; parsing is lenient where building is strict.
func (m *Message) Parse(message string) error {
	objects := make(map[string]*Object, len(m.tags))

	for contentType, tag := range m.tags {
		end := tag.Start + tag.Length

		// Delete objects have their length marker set to 0 and point
		// at a single blank character (ETSI TS 102 980, 6.2). The
		// check deliberately reads one byte past the zero-length
		// window, matching the marker layout on the wire.
		isDelete := tag.Length == 0 && slice(message, tag.Start, end+1) == " "

		obj, err := NewObject(contentType, slice(message, tag.Start, end), isDelete)
		if err != nil {
			return err
		}
		objects[contentType] = obj
	}

	m.objects = objects
	m.message = message
	m.parsed = true
	return nil
}

// FormatString returns the format string the message was built from.
func (m *Message) FormatString() string {
	return m.formatString
}

// Built reports whether the message was successfully built.
func (m *Message) Built() bool {
	return m.built
}

// Parsed reports whether the message was successfully parsed.
func (m *Message) Parsed() bool {
	return m.parsed
}

// String returns the rendered DL Plus message.
func (m *Message) String() string {
	return m.message
}

// slice returns the bytes of s in [start, end), clamped to the string
// boundaries. Out-of-range markers yield a shorter or empty string instead
// of failing.
func slice(s string, start, end int) string {
	if start > len(s) {
		start = len(s)
	}
	if end > len(s) {
		end = len(s)
	}
	if start >= end {
		return ""
	}
	return s[start:end]
}

// scanPlaceholders returns the distinct {CONTENT.TYPE} placeholder names in
// the format string, in order of first appearance. Placeholder names must
// be part of the content type table; a stray "{" without a matching "}" is
// left alone as literal text.
func scanPlaceholders(formatString string) ([]string, error) {
	var names []string
	seen := make(map[string]bool)

	for i := 0; i < len(formatString); i++ {
		if formatString[i] != '{' {
			continue
		}
		j := strings.IndexByte(formatString[i+1:], '}')
		if j < 0 {
			break
		}
		name := formatString[i+1 : i+1+j]
		if !ValidContentType(name) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownContentType, name)
		}
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
		i += j + 1
	}

	return names, nil
}
