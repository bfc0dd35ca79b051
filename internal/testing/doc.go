// Package testing provides test utilities, builders, and fixtures for unit and integration tests.
//
// This package centralizes common testing patterns to avoid duplication across test files:
//   - FakeDaemon: In-memory nanocl daemon that records every call
//   - MockClient: testify mock of the daemon client for call-level expectations
//   - NamespaceBuilder: Fluent builder for creating namespace documents
//   - RecordingObserver: Observer that keeps every event for assertions
//
// Usage:
//
//	cfg := testing.NewNamespaceBuilder("n1").
//	    WithCluster(testing.Cluster("c1").WithTemplates("t1")).
//	    WithCargo("w1", "nginx").
//	    Build()
//
//	daemon := testing.NewFakeDaemon().WithNamespace("n1")
package testing
