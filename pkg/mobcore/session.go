package mobcore

import "github.com/mjm/mobcore-go/pkg/mobcore/internal/backend"

// nativeCore is the slice of the backend a session depends on. The indirection
// keeps the lifecycle testable without a real shared library on disk.
type nativeCore interface {
	Path() string
	Version() string
	NewSession() (uintptr, error)
	Close() error
}

var _ nativeCore = (*backend.Core)(nil)

// Session is the live handle to the initialized native mobcore core. A
// process holds at most one Session; once constructed it is never replaced
// or torn down for the remainder of the process lifetime. What the native
// side does beyond that is opaque to this package.
type Session struct {
	core   nativeCore
	handle uintptr
}

// newSession constructs the native session object. Construction can fail
// independently of the library load; the caller treats that the same way as
// a load failure.
func newSession(core nativeCore) (*Session, error) {
	h, err := core.NewSession()
	if err != nil {
		return nil, err
	}
	return &Session{core: core, handle: h}, nil
}

// NativeVersion returns the version string reported by the loaded library.
func (s *Session) NativeVersion() string {
	return s.core.Version()
}

// Library returns the library reference the session's core was loaded from.
func (s *Session) Library() string {
	return s.core.Path()
}
