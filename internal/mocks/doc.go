// Package mocks provides hand-written fakes of the store and auth
// interfaces for handler and middleware tests. Each mock exposes
// function fields to override behavior per test, with map-backed
// defaults for the common cases.
package mocks
