// Package server implements the HTTP API of the PAD generator: now-playing
// updates, status and health monitoring and the Prometheus metrics endpoint.
package server
