// Package idgen centralises unique identifier generation so that tests can
// substitute deterministic values.
package idgen
