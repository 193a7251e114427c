// Package config loads and merges the application configuration from
// environment variables, command-line flags, and an optional JSON file.
//
// Sources are combined through a small builder; earlier sources take
// precedence and built-in defaults fill whatever remains unset. The main
// entry point is [GetStructuredConfig].
package config
