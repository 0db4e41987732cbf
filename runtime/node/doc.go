// Package node provides the executable building blocks: leaf actions,
// sequential pipelines, concurrent groups and type-changing transitions, all
// sharing one predicate-and-hook state machine. Execute never panics and
// never returns an error; every failure is captured on the result tree.
package node
