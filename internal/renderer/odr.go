package renderer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/radiorabe/nowplaypadgen/internal/dlplus"
)

// ODR-PadEnc parameter block markers.
const (
	parametersStart = "##### parameters { #####"
	parametersEnd   = "##### parameters } #####"
)

// ODRPadEnc renders a DL Plus message as an ODR-PadEnc style DLS string.
// ODR-PadEnc expects either a plain DLS string or a string prefixed with a
// parameter block that declares the DL Plus tags to be encoded into the mux.
type ODRPadEnc struct {
	message *dlplus.Message
}

// NewODRPadEnc creates a renderer for the given message.
func NewODRPadEnc(message *dlplus.Message) *ODRPadEnc {
	return &ODRPadEnc{message: message}
}

// Message returns the wrapped DL Plus message.
func (r *ODRPadEnc) Message() *dlplus.Message {
	return r.message
}

// String renders the message in ODR-PadEnc format. Messages without tags
// are output as-is; tagged messages get a parameter block prepended with
// one DL_PLUS_TAG declaration per tag:
//
//	##### parameters { #####
//	DL_PLUS=1
//	DL_PLUS_TAG=32 0 10
//	##### parameters } #####
//	Radio RaBe
//
// Each declaration line is self-describing, so the tag order carries no
// meaning; tags are written sorted by content type to keep the output
// stable.
func (r *ODRPadEnc) String() string {
	tags := r.message.Tags()
	if len(tags) == 0 {
		return r.message.String()
	}

	contentTypes := make([]string, 0, len(tags))
	for contentType := range tags {
		contentTypes = append(contentTypes, contentType)
	}
	sort.Strings(contentTypes)

	var b strings.Builder
	b.WriteString(parametersStart + "\n")
	b.WriteString("DL_PLUS=1\n")
	for _, contentType := range contentTypes {
		tag := tags[contentType]
		fmt.Fprintf(&b, "DL_PLUS_TAG=%d %d %d\n", tag.Code(), tag.Start, tag.Length)
	}
	b.WriteString(parametersEnd + "\n")
	b.WriteString(r.message.String())

	return b.String()
}

// WriteTo writes the rendered block to w.
func (r *ODRPadEnc) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, r.String())
	return int64(n), err
}

// WriteFile atomically replaces the DLS file at path with the rendered
// block. ODR-PadEnc re-reads the file on every DLS update, so it must never
// observe a partially written one.
func (r *ODRPadEnc) WriteFile(path string) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, ".dls-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary DLS file in %s: %w", dir, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := r.WriteTo(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write DLS file %s: %w", tmp.Name(), err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close DLS file %s: %w", tmp.Name(), err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace DLS file %s: %w", path, err)
	}

	return nil
}
