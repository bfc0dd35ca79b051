// Package join attaches cargoes to cluster networks and starts the clusters
// that declare auto_start.
//
// A join answered with a conflict status means the cargo is already attached
// and counts as success. This is the only place where a daemon error is
// turned into a successful outcome.
package join
