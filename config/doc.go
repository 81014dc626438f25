// Package config holds run parameters for the dataset builder with
// compiled-in defaults and an optional YAML override file.
package config
