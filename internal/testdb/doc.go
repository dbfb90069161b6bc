// Package testdb manages the lifecycle of the dedicated test database.
//
// It provides two hooks for the test runner: a session-level setup that
// makes sure the test database itself exists (creating it if absent, and
// aborting the whole run if that is impossible), and a per-test reset
// that makes sure the "User" table exists and is empty before each test.
// Failures during the per-test reset are propagated so only the
// triggering test fails; later tests re-attempt their own reset.
package testdb
