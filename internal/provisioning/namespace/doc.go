// Package namespace ensures the namespace of a document exists on the daemon.
// An existing namespace is not compared with the document.
package namespace
