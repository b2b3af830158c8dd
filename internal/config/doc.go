// Package config loads, normalizes, and validates recetario configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// RECETARIO_SERVICE_KEY. The Config type centralizes every knob the importer
// CLI needs: input paths, store backends, throttle and retry settings, and
// log output.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical backend names, and clear validation errors.
package config
