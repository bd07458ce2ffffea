// Package mobcore exposes the Go API for the native mobcore library. The
// library is loaded at most once per process: the host calls Activate during
// startup, and every later component reads the outcome through ActiveSession.
// A failed load is a permanent, non-fatal condition; callers see absence and
// degrade the features that depend on the native core.
package mobcore
