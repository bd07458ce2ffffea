package mobcore

import (
	"errors"
	"fmt"
)

// ErrLoadFailed indicates the native mobcore library could not be loaded or
// initialized. The process stays up; the session accessor reports absence
// for the remainder of the process lifetime.
var ErrLoadFailed = errors.New("mobcore: native library load failed")

// LoadError records a failed activation attempt. It wraps the underlying
// loader or initialization error and matches ErrLoadFailed under errors.Is.
type LoadError struct {
	Library string // the library reference handed to the platform loader
	Err     error  // underlying cause
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("mobcore: load %s: %v", e.Library, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func (e *LoadError) Is(target error) bool {
	return target == ErrLoadFailed
}
