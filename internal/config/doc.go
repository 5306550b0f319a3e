// Package config loads runtime configuration for the envsetup CLI from
// multiple sources (YAML files, environment variables, CLI flags) with
// precedence: CLI flags > YAML config > Environment variables > Defaults.
// It exposes the validated command list and execution settings to the runner.
package config
