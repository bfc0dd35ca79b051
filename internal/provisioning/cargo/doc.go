// Package cargo creates the cargoes of a namespace document that the daemon
// does not know yet. Existing cargoes are not compared with the document.
package cargo
