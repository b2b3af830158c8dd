// Package logging constructs the slog loggers used across recetario.
//
// Two formats are supported: a human-oriented console handler that renders
// "timestamp LEVEL component: message key=value" lines for the operator
// watching an import run, and a JSON handler for log files. Loggers carry a
// "component" attribute identifying the subsystem emitting the record.
package logging
