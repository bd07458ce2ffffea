//go:build !(darwin || freebsd || linux || netbsd)

package backend

// Stub implementation for platforms without a supported native loader. The
// package compiles everywhere; Open reports ErrNotBuilt when called.

type Core struct{}

func Open(Config) (*Core, error) { return nil, ErrNotBuilt }

func (c *Core) Path() string { return "" }

func (c *Core) Version() string { return "" }

func (c *Core) NewSession() (uintptr, error) { return 0, ErrNotBuilt }

func (c *Core) Close() error { return nil }
