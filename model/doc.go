// Package model defines the declarative flow representation: a named tree of
// components referencing registered node kinds, predicates and other flows.
// Definitions are plain data; the flow service turns them into executable
// node trees.
package model
