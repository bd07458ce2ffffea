package backend

import (
	"errors"
	"runtime"
)

// Config captures the parameters required to open the native mobcore library.
type Config struct {
	// Path is the library reference handed to the platform loader. It may be
	// a bare file name (resolved through the loader's search path) or an
	// absolute path.
	Path string
}

var (
	// ErrNotBuilt reports that the native loading layer is not available on
	// this platform. Callers can use this to fall back to degraded behavior.
	ErrNotBuilt = errors.New("mobcore/internal/backend: native loader not built")

	// ErrInitFailed reports that the library loaded but its initialization
	// entry point returned a failure status.
	ErrInitFailed = errors.New("mobcore/internal/backend: native initialization failed")

	// ErrNilSession reports that the native session constructor returned a
	// null handle.
	ErrNilSession = errors.New("mobcore/internal/backend: native session constructor returned nil")
)

// LibraryFile maps a base library name to the platform's shared-object file
// name, e.g. "mobcore" -> "libmobcore.so" on Linux.
func LibraryFile(name string) string {
	switch runtime.GOOS {
	case "darwin":
		return "lib" + name + ".dylib"
	case "windows":
		return name + ".dll"
	default:
		return "lib" + name + ".so"
	}
}
