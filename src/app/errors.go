package app

import (
	"errors"
	"fmt"

	"renderdoc/src/ffi"
)

// Load failures surface the ffi sentinels directly so callers only need one
// import to classify them.
var (
	// ErrLibraryNotFound: the RenderDoc library is not present in this process.
	ErrLibraryNotFound = ffi.ErrLibraryNotFound
	// ErrAlreadyLoaded: an API instance is still live; Close it first.
	ErrAlreadyLoaded = ffi.ErrAlreadyLoaded
	// ErrIncompatibleVersion: the library cannot satisfy the requested minimum
	// version, or an Upgrade asked for more than was negotiated.
	ErrIncompatibleVersion = ffi.ErrIncompatibleVersion

	// ErrWrongState: the operation is not legal in the current capture state.
	// The call was not forwarded to the native layer.
	ErrWrongState = errors.New("renderdoc: operation not valid in current capture state")
	// ErrCaptureFailed: the native layer reported that the frame capture was
	// not completed or saved.
	ErrCaptureFailed = errors.New("renderdoc: frame capture failed")
	// ErrLaunchReplayUI: the replay UI could not be launched or raised.
	ErrLaunchReplayUI = errors.New("renderdoc: failed to launch replay ui")
	// ErrInvalidOption: the native layer rejected a capture option or value.
	ErrInvalidOption = errors.New("renderdoc: invalid capture option or value")
)

func wrongState(s captureState) error {
	return fmt.Errorf("%w: %s", ErrWrongState, s)
}
