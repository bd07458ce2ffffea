// Package internalcheck contains repository policy tests.
//
// The tests here enforce structural constraints on the module rather than
// runtime behavior. They are not intended for external use and the package
// exports nothing.
package internalcheck
