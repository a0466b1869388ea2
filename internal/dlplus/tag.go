package dlplus

import (
	"fmt"
	"strings"
)

// Tag is a DL Plus tag: a start and length marker locating a content type's
// text within a message. Both markers are byte based, not character based,
// matching how DLS encoders count.
type Tag struct {
	// ContentType is the tag's content type name from the
	// ETSI TS 102 980 Annex A table.
	ContentType string

	// Start is the byte offset of the tagged text within the message.
	Start int

	// Length is the byte length of the tagged text. A length of zero
	// over a single space marks a delete object.
	Length int
}

// NewTag creates a DL Plus tag with the given content type and start and
// length markers. Both markers must be non-negative. Dummy tags get both
// markers forced to zero.
func NewTag(contentType string, start, length int) (*Tag, error) {
	if _, err := LookupContentType(contentType); err != nil {
		return nil, err
	}

	if start < 0 {
		return nil, fmt.Errorf("%w: start %d", ErrInvalidMarker, start)
	}
	if length < 0 {
		return nil, fmt.Errorf("%w: length %d", ErrInvalidMarker, length)
	}

	// Dummy tags always have their start and length marker set to 0.
	if contentType == ContentTypeDummy {
		start = 0
		length = 0
	}

	return &Tag{ContentType: contentType, Start: start, Length: length}, nil
}

// DummyTag creates a dummy tag: content type DUMMY with zero markers.
func DummyTag() *Tag {
	t, err := NewTag(ContentTypeDummy, 0, 0)
	if err != nil {
		panic(err)
	}
	return t
}

// TagFromMessage creates a tag for the given content type from a populated
// message, so the caller does not have to calculate the start and length
// markers. The start marker is the byte offset of the first occurrence of
// the object's text within the message; the length marker is the UTF-8 byte
// length of the text, forced to 0 for delete objects (ETSI TS 102 980, 6.2).
//
// The message must carry an object for the requested content type,
// otherwise ErrMissingObject is returned.
func TagFromMessage(msg *Message, contentType string) (*Tag, error) {
	if msg == nil {
		return nil, fmt.Errorf("%w: message must not be nil", ErrWrongType)
	}

	if _, err := LookupContentType(contentType); err != nil {
		return nil, err
	}

	obj, ok := msg.objects[contentType]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrMissingObject, contentType)
	}

	// First occurrence wins when the same text appears more than once.
	start := strings.Index(msg.message, obj.Text)

	length := len(obj.Text)
	if obj.IsDelete {
		length = 0
	}

	return NewTag(contentType, start, length)
}

// IsDummy reports whether the tag has the DUMMY content type.
func (t *Tag) IsDummy() bool {
	return t.ContentType == ContentTypeDummy
}

// Code returns the tag's content type code, the low-level DLS code point.
func (t *Tag) Code() uint8 {
	ct := contentTypes[t.ContentType]
	return ct.Code
}

// Category returns the tag's content type category.
func (t *Tag) Category() Category {
	ct := contentTypes[t.ContentType]
	return ct.Category
}

// String returns the tag's content type name.
func (t *Tag) String() string {
	return t.ContentType
}
