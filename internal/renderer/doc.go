// Package renderer converts DL Plus messages into the plain-text block
// format consumed by downstream DLS encoders such as ODR-PadEnc.
package renderer
