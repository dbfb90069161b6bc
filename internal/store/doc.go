// Package store defines the persistence interfaces for the quiz
// application. Concrete implementations live in
// internal/platform/postgres; services and handlers depend only on
// these interfaces.
package store
