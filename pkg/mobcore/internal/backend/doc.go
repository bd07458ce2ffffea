// Package backend hosts the dynamic-loading layer that links the Go API to
// the native mobcore library. The real implementation lives behind build tags
// so that the rest of the repository compiles on platforms without a native
// loader we support.
package backend
