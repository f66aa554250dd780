// Package config holds the application configuration: which site to
// survey, which topics, which vocabulary, and where results live.
// Configuration is populated from CLI flags and an optional YAML file and
// passed through the application by dependency injection rather than
// global state.
package config
