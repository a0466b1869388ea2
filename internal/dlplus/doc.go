// Package dlplus implements the DAB+ Dynamic Label Plus (DL Plus) text
// feature defined in ETSI TS 102 980. A message string can be built from a
// format template and up to four typed objects, or parsed back into objects
// with the help of up to four start/length tags.
package dlplus
