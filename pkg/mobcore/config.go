package mobcore

import (
	"os"

	"github.com/mjm/mobcore-go/pkg/mobcore/internal/backend"
	"github.com/mjm/mobcore-go/pkg/mobcore/logging"
)

// DefaultLibraryName is the base name of the native library the wrapper
// binds to. The platform loader turns it into libmobcore.so, libmobcore.dylib
// and so on.
const DefaultLibraryName = "mobcore"

// EnvLibrary names the environment variable that overrides library
// resolution with an explicit path.
const EnvLibrary = "MOBCORE_LIBRARY"

// Config expresses the knobs for activating the native mobcore library. The
// zero value activates the default library through the platform loader's
// search path. Only the first activator's Config takes effect; configs passed
// to later calls are ignored.
type Config struct {
	// LibraryName overrides the base library name. Ignored when LibraryPath
	// or the MOBCORE_LIBRARY environment variable is set.
	LibraryName string

	// LibraryPath points the loader at an explicit shared-object path,
	// bypassing name resolution.
	LibraryPath string

	// Logger receives activation diagnostics. Nil binds to slog.Default().
	Logger logging.Logger
}

// resolveLibrary produces the library reference handed to the platform
// loader: explicit path, then environment override, then the platform file
// name of the configured base name.
func (c Config) resolveLibrary() string {
	if c.LibraryPath != "" {
		return c.LibraryPath
	}
	if p := os.Getenv(EnvLibrary); p != "" {
		return p
	}
	name := c.LibraryName
	if name == "" {
		name = DefaultLibraryName
	}
	return backend.LibraryFile(name)
}

func (c Config) logger() logging.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return logging.New(nil)
}
