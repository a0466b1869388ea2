// Package timeperiod tracks absolute time periods with a start, an end and
// a duration, normalized to UTC. It backs the show and track bookkeeping.
package timeperiod
