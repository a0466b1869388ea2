package dlplus

import (
	"errors"
	"strings"
	"testing"
)

func TestMessageBuild(t *testing.T) {
	msg := NewMessage()
	mustAddObject(t, msg, "ITEM.TITLE", "My Titleö", false)
	mustAddObject(t, msg, "ITEM.ARTIST", "My Artistä", false)

	if err := msg.Build("Now playing: {ITEM.TITLE} - {ITEM.ARTIST}"); err != nil {
		t.Fatalf("Expected no error but got: %v", err)
	}

	want := "Now playing: My Titleö - My Artistä"
	if msg.String() != want {
		t.Fatalf("Expected message %q, got %q", want, msg.String())
	}
	if !msg.Built() {
		t.Error("Expected message to be marked as built")
	}

	// Markers are byte based: "Now playing: " is 13 bytes, "My Titleö" is
	// 10 bytes (the umlaut takes two), " - " is 3 bytes, "My Artistä" is
	// 11 bytes.
	tests := []struct {
		contentType string
		start       int
		length      int
	}{
		{"ITEM.TITLE", 13, 10},
		{"ITEM.ARTIST", 26, 11},
	}

	tags := msg.Tags()
	if len(tags) != 2 {
		t.Fatalf("Expected 2 tags, got %d", len(tags))
	}

	for _, tt := range tests {
		tag, ok := tags[tt.contentType]
		if !ok {
			t.Fatalf("Expected tag for %s", tt.contentType)
		}
		if tag.Start != tt.start || tag.Length != tt.length {
			t.Errorf("Expected %s markers %d/%d, got %d/%d",
				tt.contentType, tt.start, tt.length, tag.Start, tag.Length)
		}
	}
}

func TestMessageBuildParseRoundTrip(t *testing.T) {
	built := NewMessage()
	mustAddObject(t, built, "ITEM.TITLE", "My Titleö", false)
	mustAddObject(t, built, "ITEM.ARTIST", "My Artistä", false)

	if err := built.Build("Now playing: {ITEM.TITLE} - {ITEM.ARTIST}"); err != nil {
		t.Fatalf("Expected no error but got: %v", err)
	}

	// Feed the derived tags into a fresh message, as a decoder that
	// received them from the protocol would.
	parsed := NewMessage()
	for _, tag := range built.Tags() {
		if err := parsed.AddTag(tag); err != nil {
			t.Fatalf("Expected no error but got: %v", err)
		}
	}

	if err := parsed.Parse(built.String()); err != nil {
		t.Fatalf("Expected no error but got: %v", err)
	}
	if !parsed.Parsed() {
		t.Error("Expected message to be marked as parsed")
	}

	objects := parsed.Objects()
	if len(objects) != 2 {
		t.Fatalf("Expected 2 objects, got %d", len(objects))
	}

	tests := []struct {
		contentType string
		text        string
	}{
		{"ITEM.TITLE", "My Titleö"},
		{"ITEM.ARTIST", "My Artistä"},
	}

	for _, tt := range tests {
		obj, ok := objects[tt.contentType]
		if !ok {
			t.Fatalf("Expected object for %s", tt.contentType)
		}
		if obj.Text != tt.text {
			t.Errorf("Expected %s text %q, got %q", tt.contentType, tt.text, obj.Text)
		}
		if obj.IsDelete {
			t.Errorf("Expected %s not to be a delete object", tt.contentType)
		}
	}
}

func TestMessageParse(t *testing.T) {
	msg := NewMessage()
	mustAddTag(t, msg, "STATIONNAME.LONG", 0, 10)
	mustAddTag(t, msg, "STATIONNAME.SHORT", 6, 4)

	if err := msg.Parse("Radio RaBe"); err != nil {
		t.Fatalf("Expected no error but got: %v", err)
	}

	objects := msg.Objects()
	if objects["STATIONNAME.LONG"].Text != "Radio RaBe" {
		t.Errorf("Expected long name 'Radio RaBe', got %q", objects["STATIONNAME.LONG"].Text)
	}
	if objects["STATIONNAME.SHORT"].Text != "RaBe" {
		t.Errorf("Expected short name 'RaBe', got %q", objects["STATIONNAME.SHORT"].Text)
	}
}

func TestMessageParseLenient(t *testing.T) {
	// Tags running past the message yield shorter or empty strings rather
	// than failing.
	msg := NewMessage()
	mustAddTag(t, msg, "STATIONNAME.LONG", 0, 10)
	mustAddTag(t, msg, "STATIONNAME.SHORT", 25, 4)

	if err := msg.Parse("RaBe"); err != nil {
		t.Fatalf("Expected no error but got: %v", err)
	}

	objects := msg.Objects()
	if objects["STATIONNAME.LONG"].Text != "RaBe" {
		t.Errorf("Expected truncated text 'RaBe', got %q", objects["STATIONNAME.LONG"].Text)
	}
	if objects["STATIONNAME.SHORT"].Text != "" {
		t.Errorf("Expected empty text, got %q", objects["STATIONNAME.SHORT"].Text)
	}
}

func TestMessageParseDeleteDetection(t *testing.T) {
	tests := []struct {
		name       string
		message    string
		start      int
		wantDelete bool
	}{
		{
			name:       "space at marker",
			message:    " after",
			start:      0,
			wantDelete: true,
		},
		{
			name:       "space mid message",
			message:    "a b",
			start:      1,
			wantDelete: true,
		},
		{
			name:       "non space at marker",
			message:    "abc",
			start:      1,
			wantDelete: false,
		},
		{
			// The detection window reads one byte past the zero-length
			// marker; at the end of the message there is nothing to
			// read, so no delete is detected.
			name:       "marker at end of message",
			message:    "abc",
			start:      3,
			wantDelete: false,
		},
		{
			name:       "marker past end of message",
			message:    "abc",
			start:      7,
			wantDelete: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := NewMessage()
			mustAddTag(t, msg, "ITEM.TITLE", tt.start, 0)

			if err := msg.Parse(tt.message); err != nil {
				t.Fatalf("Expected no error but got: %v", err)
			}

			obj := msg.Objects()["ITEM.TITLE"]
			if obj.IsDelete != tt.wantDelete {
				t.Errorf("Expected IsDelete %v, got %v", tt.wantDelete, obj.IsDelete)
			}
			if tt.wantDelete && obj.Text != " " {
				t.Errorf("Expected delete placeholder text, got %q", obj.Text)
			}
		})
	}
}

func TestMessageParseResetsObjects(t *testing.T) {
	msg := NewMessage()
	mustAddTag(t, msg, "STATIONNAME.LONG", 0, 10)

	if err := msg.Parse("Radio RaBe"); err != nil {
		t.Fatalf("Expected no error but got: %v", err)
	}
	if err := msg.Parse("Radio Bern"); err != nil {
		t.Fatalf("Expected no error but got: %v", err)
	}

	objects := msg.Objects()
	if len(objects) != 1 {
		t.Fatalf("Expected 1 object after re-parse, got %d", len(objects))
	}
	if objects["STATIONNAME.LONG"].Text != "Radio Bern" {
		t.Errorf("Expected re-parsed text 'Radio Bern', got %q", objects["STATIONNAME.LONG"].Text)
	}
}

func TestMessageBuildErrors(t *testing.T) {
	tests := []struct {
		name         string
		objects      map[string]string
		formatString string
		wantErr      error
	}{
		{
			name:         "unknown placeholder",
			objects:      map[string]string{"ITEM.TITLE": "My Title"},
			formatString: "{ITEM.NOPE}",
			wantErr:      ErrUnknownContentType,
		},
		{
			name:         "placeholder without object",
			objects:      map[string]string{"ITEM.TITLE": "My Title"},
			formatString: "{ITEM.TITLE} - {ITEM.ARTIST}",
			wantErr:      ErrMissingObject,
		},
		{
			name:    "more than four placeholders",
			objects: map[string]string{},
			formatString: "{ITEM.TITLE}{ITEM.ARTIST}{ITEM.ALBUM}" +
				"{INFO.URL}{INFO.OTHER}",
			wantErr: ErrTooManyEntries,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := NewMessage()
			for contentType, text := range tt.objects {
				mustAddObject(t, msg, contentType, text, false)
			}

			err := msg.Build(tt.formatString)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected error %v, got %v", tt.wantErr, err)
			}
			if msg.Built() {
				t.Error("Expected message not to be marked as built")
			}
		})
	}
}

func TestMessageBuildTooLongKeepsPreviousState(t *testing.T) {
	msg := NewMessage()
	mustAddObject(t, msg, "ITEM.TITLE", "My Title", false)

	if err := msg.Build("{ITEM.TITLE}"); err != nil {
		t.Fatalf("Expected no error but got: %v", err)
	}

	// Replacing the object is allowed (last write wins), but building a
	// 129 byte message must fail and leave the previous build untouched.
	mustAddObject(t, msg, "ITEM.TITLE", strings.Repeat("a", 125), false)

	err := msg.Build("{ITEM.TITLE}1234")
	if !errors.Is(err, ErrMessageTooLong) {
		t.Fatalf("Expected ErrMessageTooLong, got %v", err)
	}

	if msg.String() != "My Title" {
		t.Errorf("Expected previous message to be retained, got %q", msg.String())
	}
	tag := msg.Tags()["ITEM.TITLE"]
	if tag == nil || tag.Start != 0 || tag.Length != 8 {
		t.Errorf("Expected previous tag to be retained, got %+v", tag)
	}
}

func TestMessageBuildAtTheByteLimit(t *testing.T) {
	msg := NewMessage()
	mustAddObject(t, msg, "ITEM.TITLE", strings.Repeat("a", 128), false)

	if err := msg.Build("{ITEM.TITLE}"); err != nil {
		t.Fatalf("Expected no error but got: %v", err)
	}
	if len(msg.String()) != 128 {
		t.Errorf("Expected 128 byte message, got %d", len(msg.String()))
	}
}

func TestMessageBuildWithoutPlaceholders(t *testing.T) {
	msg := NewMessage()

	if err := msg.Build("I am a message!"); err != nil {
		t.Fatalf("Expected no error but got: %v", err)
	}
	if msg.String() != "I am a message!" {
		t.Errorf("Expected literal message, got %q", msg.String())
	}
	if len(msg.Tags()) != 0 {
		t.Errorf("Expected no tags, got %d", len(msg.Tags()))
	}
}

func TestMessageBuildIdenticalTexts(t *testing.T) {
	// Objects sharing the same text both resolve to the first occurrence,
	// a known limitation of the substring search.
	msg := NewMessage()
	mustAddObject(t, msg, "ITEM.TITLE", "Echo", false)
	mustAddObject(t, msg, "ITEM.ARTIST", "Echo", false)

	if err := msg.Build("{ITEM.ARTIST} - {ITEM.TITLE}"); err != nil {
		t.Fatalf("Expected no error but got: %v", err)
	}

	tags := msg.Tags()
	if tags["ITEM.TITLE"].Start != 0 || tags["ITEM.ARTIST"].Start != 0 {
		t.Errorf("Expected both tags at offset 0, got %d and %d",
			tags["ITEM.TITLE"].Start, tags["ITEM.ARTIST"].Start)
	}
}

func TestMessageAddObjectLimit(t *testing.T) {
	msg := NewMessage()
	for _, contentType := range []string{"ITEM.TITLE", "ITEM.ARTIST", "ITEM.ALBUM", "INFO.URL"} {
		mustAddObject(t, msg, contentType, "text", false)
	}

	obj, err := NewObject("INFO.OTHER", "text", false)
	if err != nil {
		t.Fatalf("Expected no error but got: %v", err)
	}
	if err := msg.AddObject(obj); !errors.Is(err, ErrTooManyEntries) {
		t.Errorf("Expected ErrTooManyEntries, got %v", err)
	}

	// Replacing an existing content type is not a fifth entry.
	replacement, err := NewObject("ITEM.TITLE", "other text", false)
	if err != nil {
		t.Fatalf("Expected no error but got: %v", err)
	}
	if err := msg.AddObject(replacement); err != nil {
		t.Errorf("Expected replacement to succeed, got %v", err)
	}
	if msg.Objects()["ITEM.TITLE"].Text != "other text" {
		t.Error("Expected last write to win for same content type")
	}
}

func TestMessageAddTagLimit(t *testing.T) {
	msg := NewMessage()
	for _, contentType := range []string{"ITEM.TITLE", "ITEM.ARTIST", "ITEM.ALBUM", "INFO.URL"} {
		mustAddTag(t, msg, contentType, 0, 10)
	}

	tag, err := NewTag("INFO.OTHER", 0, 10)
	if err != nil {
		t.Fatalf("Expected no error but got: %v", err)
	}
	if err := msg.AddTag(tag); !errors.Is(err, ErrTooManyEntries) {
		t.Errorf("Expected ErrTooManyEntries, got %v", err)
	}
}

func TestMessageAddNil(t *testing.T) {
	msg := NewMessage()

	if err := msg.AddObject(nil); !errors.Is(err, ErrWrongType) {
		t.Errorf("Expected ErrWrongType for nil object, got %v", err)
	}
	if err := msg.AddTag(nil); !errors.Is(err, ErrWrongType) {
		t.Errorf("Expected ErrWrongType for nil tag, got %v", err)
	}
}

// mustAddTag creates a tag and attaches it to the message, failing the test
// on any error.
func mustAddTag(t *testing.T, msg *Message, contentType string, start, length int) {
	t.Helper()

	tag, err := NewTag(contentType, start, length)
	if err != nil {
		t.Fatalf("Failed to create tag %s: %v", contentType, err)
	}
	if err := msg.AddTag(tag); err != nil {
		t.Fatalf("Failed to add tag %s: %v", contentType, err)
	}
}
