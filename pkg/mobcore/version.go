package mobcore

// Version is populated at build time via ldflags. In development it defaults
// to v0.0.0-dev.
var Version = "v0.0.0-dev"

// WrapperVersion returns the semantic version of the Go wrapper.
func WrapperVersion() string {
	return Version
}

// NativeVersion returns the version string of the loaded native library, or
// empty when no session is available.
func NativeVersion() string {
	s, ok := ActiveSession()
	if !ok {
		return ""
	}
	return s.NativeVersion()
}
