// Package config defines the application configuration structure and
// loads it from the environment.
package config
