package mobcore

import (
	"context"
	"sync/atomic"

	"github.com/mjm/mobcore-go/pkg/mobcore/internal/backend"
)

// State describes where a Process sits in its lifecycle. Ready and Degraded
// are both terminal: there are no further transitions for the rest of the
// process lifetime.
type State int

const (
	// Uninitialized means Activate has not completed yet.
	Uninitialized State = iota
	// Ready means the native library loaded and a session is available.
	Ready
	// Degraded means the load or session construction failed; no session
	// will ever become available in this process.
	Degraded
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Ready:
		return "ready"
	case Degraded:
		return "degraded"
	default:
		return "unknown"
	}
}

// Process owns the per-process native state: whether a load has been
// attempted, its outcome, and the write-once session handle. The activation
// path is the sole writer; every other caller is a reader. A Process must be
// created by NewProcess.
type Process struct {
	attempted atomic.Bool
	done      chan struct{}
	open      func(Config) (nativeCore, error)

	// Written only by the activation winner before done closes; the channel
	// close publishes them to every reader.
	session *Session
	loadErr error
}

// NewProcess returns a fresh, uninitialized state container. Most callers
// want the package-level Activate and ActiveSession, which operate on a
// shared default instance; independent Process values exist for tests and
// for hosts that manage the lifecycle themselves.
func NewProcess() *Process {
	return &Process{
		done: make(chan struct{}),
		open: openNative,
	}
}

func openNative(cfg Config) (nativeCore, error) {
	return backend.Open(backend.Config{Path: cfg.resolveLibrary()})
}

// Activate performs the one-time attempt to load the native library and
// construct the session. Exactly one caller performs the load; concurrent
// and later callers block until the attempt finishes and observe the same
// recorded outcome without mutating state or re-attempting.
//
// A failed load is not fatal: Activate returns a *LoadError matching
// ErrLoadFailed and the process continues in the degraded state.
func (p *Process) Activate(cfg Config) error {
	if p.attempted.CompareAndSwap(false, true) {
		p.runLoad(cfg)
		return p.loadErr
	}
	<-p.done
	return p.loadErr
}

func (p *Process) runLoad(cfg Config) {
	defer close(p.done)

	ctx := context.Background()
	log := cfg.logger()
	lib := cfg.resolveLibrary()

	log.Debug(ctx, "loading native library", "library", lib)

	core, err := p.open(cfg)
	if err != nil {
		p.loadErr = &LoadError{Library: lib, Err: err}
		log.Error(ctx, "native library load failed", "library", lib, "error", err)
		return
	}

	session, err := newSession(core)
	if err != nil {
		_ = core.Close()
		p.loadErr = &LoadError{Library: lib, Err: err}
		log.Error(ctx, "native session construction failed", "library", lib, "error", err)
		return
	}

	p.session = session
	log.Info(ctx, "native core ready", "library", lib, "version", session.NativeVersion())
}

// Session returns the process session, or absence. It never blocks, never
// allocates, and never retries the load; before activation completes it
// reports absence. Once Activate has run the result is stable for the rest
// of the process lifetime.
func (p *Process) Session() (*Session, bool) {
	select {
	case <-p.done:
		return p.session, p.session != nil
	default:
		return nil, false
	}
}

// State reports the lifecycle state of the process.
func (p *Process) State() State {
	select {
	case <-p.done:
		if p.session != nil {
			return Ready
		}
		return Degraded
	default:
		return Uninitialized
	}
}

// Err returns the recorded load failure, or nil when the process is ready
// or activation has not completed.
func (p *Process) Err() error {
	select {
	case <-p.done:
		return p.loadErr
	default:
		return nil
	}
}

// defaultProcess is the process-wide singleton behind the package-level API.
var defaultProcess = NewProcess()

// Activate runs the one-time bootstrap on the default process. The host is
// expected to call it once at startup, before anything that depends on the
// session; extra calls are harmless no-ops that observe the same outcome.
func Activate(cfg Config) error {
	return defaultProcess.Activate(cfg)
}

// ActiveSession returns the default process session, or absence when the
// library failed to load or Activate has not run. Callers must treat absence
// as an expected outcome and disable the features that depend on the native
// core.
func ActiveSession() (*Session, bool) {
	return defaultProcess.Session()
}

// Default exposes the process-wide state container.
func Default() *Process {
	return defaultProcess
}
