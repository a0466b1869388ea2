// Package generator drives the now-playing pipeline: it keeps the current
// track and show, builds the DL Plus message from the configured template
// and writes the rendered DLS block for ODR-PadEnc.
package generator
