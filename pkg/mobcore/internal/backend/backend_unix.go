//go:build darwin || freebsd || linux || netbsd

package backend

import (
	"fmt"

	"github.com/ebitengine/purego"
)

// Core is an open handle to the native mobcore library with its entry points
// resolved. A Core is created by Open and stays valid until Close.
type Core struct {
	handle uintptr
	path   string

	version    func() string
	sessionNew func() uintptr
}

// requiredSymbols lists every entry point a compatible library must export.
// The session destructor is checked for ABI completeness even though the
// wrapper never tears a session down; the process session lives until exit.
var requiredSymbols = []string{
	"mobcore_init",
	"mobcore_version",
	"mobcore_session_new",
	"mobcore_session_free",
}

// Open loads the library named by cfg.Path and resolves the mobcore entry
// points. The init entry point runs before Open returns; a nonzero status
// closes the half-open handle and fails the open.
func Open(cfg Config) (*Core, error) {
	h, err := purego.Dlopen(cfg.Path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, fmt.Errorf("dlopen %s: %w", cfg.Path, err)
	}
	if h == 0 {
		return nil, fmt.Errorf("dlopen %s: nil handle", cfg.Path)
	}

	for _, sym := range requiredSymbols {
		if _, err := purego.Dlsym(h, sym); err != nil {
			_ = purego.Dlclose(h)
			return nil, fmt.Errorf("resolve %s in %s: %w", sym, cfg.Path, err)
		}
	}

	c := &Core{handle: h, path: cfg.Path}

	var initCore func() int32
	purego.RegisterLibFunc(&initCore, h, "mobcore_init")
	purego.RegisterLibFunc(&c.version, h, "mobcore_version")
	purego.RegisterLibFunc(&c.sessionNew, h, "mobcore_session_new")

	if status := initCore(); status != 0 {
		_ = purego.Dlclose(h)
		return nil, fmt.Errorf("%w: status %d", ErrInitFailed, status)
	}

	return c, nil
}

// Path returns the library reference the core was opened from.
func (c *Core) Path() string { return c.path }

// Version returns the version string reported by the native library.
func (c *Core) Version() string { return c.version() }

// NewSession constructs a native session and returns its handle.
func (c *Core) NewSession() (uintptr, error) {
	h := c.sessionNew()
	if h == 0 {
		return 0, ErrNilSession
	}
	return h, nil
}

// Close releases the dynamically loaded library from the process.
func (c *Core) Close() error {
	if c.handle == 0 {
		return nil
	}
	if err := purego.Dlclose(c.handle); err != nil {
		return fmt.Errorf("dlclose %s: %w", c.path, err)
	}
	c.handle = 0
	return nil
}
