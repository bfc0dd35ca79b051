// Package cluster reconciles the clusters of a namespace document.
//
// A missing cluster is created with its declared proxy templates. An existing
// cluster only gets the declared templates it lacks; templates linked on the
// daemon but absent from the document are kept. Variables and networks are
// created when missing and never overwritten.
package cluster
