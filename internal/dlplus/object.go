package dlplus

import (
	"fmt"
	"time"
)

// nowUTC is the clock used for object timestamps. Tests swap it out to get
// deterministic creation and expiration stamps.
var nowUTC = func() time.Time { return time.Now().UTC() }

// Object is a DL Plus object: a text string with a defined content type.
type Object struct {
	// ContentType is the object's content type name from the
	// ETSI TS 102 980 Annex A table.
	ContentType string

	// Text is the object's text. Dummy objects always carry an empty
	// string, delete objects a single space.
	Text string

	// IsDelete marks the object as a DL Plus delete object
	// (ETSI TS 102 980, 6.2).
	IsDelete bool

	// Created is the UTC creation timestamp of the object.
	Created time.Time

	// Expired is the UTC expiration timestamp, zero until Expire is
	// called.
	Expired time.Time
}

// NewObject creates a DL Plus object with the given content type and text.
// The UTF-8 encoded text must not exceed MaximumTextLimit bytes. Dummy
// objects get their text forced to an empty string, delete objects to a
// single space; the delete override wins when both apply.
func NewObject(contentType, text string, isDelete bool) (*Object, error) {
	if _, err := LookupContentType(contentType); err != nil {
		return nil, err
	}

	if len(text) > MaximumTextLimit {
		return nil, fmt.Errorf("%w: text is longer than %d bytes", ErrTextTooLong, MaximumTextLimit)
	}

	// Dummy objects always have their text set to an empty string,
	// delete objects to a single whitespace (ETSI TS 102 980, 6.2).
	if contentType == ContentTypeDummy {
		text = ""
	}
	if isDelete {
		text = " "
	}

	return &Object{
		ContentType: contentType,
		Text:        text,
		IsDelete:    isDelete,
		Created:     nowUTC(),
	}, nil
}

// DummyObject creates a dummy object: content type DUMMY with empty text.
func DummyObject() *Object {
	o, err := NewObject(ContentTypeDummy, "", false)
	if err != nil {
		// The dummy content type is part of the static table.
		panic(err)
	}
	return o
}

// Expire sets the expiration timestamp to the current time in UTC. It
// should be called when the object gets superseded by a new one or an
// explicit delete object has been received; the object stays attached to
// its message, expiry is purely an annotation for the caller.
func (o *Object) Expire() {
	o.Expired = nowUTC()
}

// IsDummy reports whether the object has the DUMMY content type.
func (o *Object) IsDummy() bool {
	return o.ContentType == ContentTypeDummy
}

// Code returns the object's content type code.
func (o *Object) Code() uint8 {
	ct := contentTypes[o.ContentType]
	return ct.Code
}

// Category returns the object's content type category.
func (o *Object) Category() Category {
	ct := contentTypes[o.ContentType]
	return ct.Category
}

// String returns the object's text.
func (o *Object) String() string {
	return o.Text
}
