// Package provisioning provides shared types and helpers for reconciling a
// namespace document against the nanocl daemon.
//
// # Subpackages
//
//   - namespace/: Namespace existence
//   - cluster/: Clusters, proxy templates, variables and networks
//   - cargo/: Cargoes
//   - join/: Cluster cargo joins and cluster start
//
// # Core Types
//
// Context carries the document, the daemon client, the observer and the
// fan-out settings. Phase defines a reconciliation step with Name() and
// Provision() methods. State records the action taken for every resource.
// EnsureOperation and Probe implement the get-or-create rule shared by every
// resource kind.
package provisioning
