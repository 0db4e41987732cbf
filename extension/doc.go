// Package extension provides the run-time registries flow definitions are
// resolved against: node constructors keyed by kind and name, named
// predicates and the Go types behind custom node kinds.
//
// The registries are normally populated through the public APIs under the
// root nodly package, therefore most applications do not need to import this
// package directly.
package extension
