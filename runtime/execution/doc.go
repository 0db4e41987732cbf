// Package execution holds the per-run carriers: the typed context threading
// subject, options, state and cancellation through a node tree, and the
// result tree capturing every node outcome and exception.
package execution
