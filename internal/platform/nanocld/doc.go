// Package nanocld is the client for the nanocl daemon API.
//
// The daemon listens on a unix socket by default
// (unix:///run/nanocl/nanocl.sock) or on TCP. Every namespaced call takes a
// namespace argument; an empty string targets the daemon's global namespace.
//
// # Errors
//
// Calls fail with one of two error types:
//   - [*APIError] when the daemon answered with a non-2xx status
//   - [*TransportError] when the request never produced a response
//
// [IsNotFound], [IsConflict] and [IgnoreConflict] classify them. Conflict
// (HTTP 409) is the status returned when an entity or an association
// already exists.
//
// # Testing
//
// Consumers depend on the [Client] interface (or one of its parts), so tests
// can substitute an in-memory daemon. The HTTP implementation is covered
// against an httptest server.
package nanocld
