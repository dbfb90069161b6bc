package testdb

import (
	"fmt"
	"net/url"
	"os"
)

// Environment variables holding the test database connection parameters.
const (
	EnvHost     = "QUIZ_TEST_DB_HOST"
	EnvPort     = "QUIZ_TEST_DB_PORT"
	EnvName     = "QUIZ_TEST_DB_NAME"
	EnvUser     = "QUIZ_TEST_DB_USER"
	EnvPassword = "QUIZ_TEST_DB_PASSWORD"
)

// maintenanceDatabase is the database used for catalog queries and
// CREATE DATABASE statements; a database cannot be created from a
// connection to itself.
const maintenanceDatabase = "postgres"

// Config holds the connection parameters of the test database as an
// explicit structure. Only these five values are consumed; nothing else
// leaks in from the application configuration.
type Config struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// ConfigFromEnv reads the test database configuration from the
// environment, falling back to local development defaults.
func ConfigFromEnv() Config {
	return Config{
		Host:     envOr(EnvHost, "localhost"),
		Port:     envOr(EnvPort, "5432"),
		Name:     envOr(EnvName, "quizbuster_test"),
		User:     envOr(EnvUser, "postgres"),
		Password: envOr(EnvPassword, "postgres"),
	}
}

// Enabled reports whether a test database is configured for this run.
// Integration tests skip themselves when it returns false.
func Enabled() bool {
	return os.Getenv(EnvHost) != ""
}

// URL returns the connection string for the test database itself.
func (c Config) URL() string {
	return c.databaseURL(c.Name)
}

// MaintenanceURL returns the connection string for the server's
// maintenance database, used for existence checks and database creation.
func (c Config) MaintenanceURL() string {
	return c.databaseURL(maintenanceDatabase)
}

func (c Config) databaseURL(dbName string) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%s", c.Host, c.Port),
		Path:     "/" + dbName,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
