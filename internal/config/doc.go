// Package config defines the application configuration structure and loads
// it from environment variables (TASKBOARD_ prefix) and an optional config
// file. Loaded configuration is validated before use; components receive the
// relevant sub-struct at construction time and never read ambient state.
package config
