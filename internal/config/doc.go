// Package config provides configuration loading and validation for the
// now-playing PAD generator. It handles YAML-based configuration with
// struct validation for the DLS output, HTTP API, show and logging settings.
package config
