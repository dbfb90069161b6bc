// Package api contains the HTTP handlers of the quiz application.
// Handlers depend on the store interfaces and auth services, decode and
// validate JSON requests, and translate store errors into HTTP status
// codes.
package api
