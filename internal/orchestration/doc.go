// Package orchestration provides high-level workflow coordination for nanocl.
//
// Reconciler applies a namespace document by running the namespace, clusters,
// cargoes and joins phases in that order. It defines the order and
// coordination but delegates the actual work to the provisioners.
//
// Runner implements the run command: one cargo on one cluster network,
// created step by step with conflict tolerant creates.
package orchestration
