// Package config defines the intake tool configuration and its loading
// pipeline.
//
// Configuration is loaded from a YAML file, defaults are applied for any
// unset field, INTAKE_* environment variables override file values, and the
// final configuration is validated before use. Validation collects all field
// errors into a single ValidationError rather than stopping at the first.
package config
