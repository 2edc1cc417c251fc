// Package ffi talks to the RenderDoc shared library over its versioned C ABI:
// it resolves the library already injected into the process, calls the single
// RENDERDOC_GetAPI entry point, and exposes the returned function table as
// Go-callable methods. Nothing here checks versions or capture state; that is
// the app package's job.
package ffi

import (
	"errors"
	"fmt"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
)

var (
	// ErrLibraryNotFound means the RenderDoc library is not present in this
	// process. The usual cause is the application not running under RenderDoc.
	ErrLibraryNotFound = errors.New("renderdoc: shared library not loaded in this process")
	// ErrAlreadyLoaded means a function table is still live; the caller must
	// reuse it (or Close it) instead of loading a second one.
	ErrAlreadyLoaded = errors.New("renderdoc: api instance already active")
	// ErrIncompatibleVersion means the library cannot satisfy the requested
	// minimum version.
	ErrIncompatibleVersion = errors.New("renderdoc: no compatible api version")
)

var (
	loaderMu sync.Mutex
	active   bool
	module   uintptr
)

// Hooks swapped out by tests. The real implementations hit the OS loader and
// the native entry point.
var (
	openLibrary   = openPlatformLibrary
	resolveGetAPI = lookupGetAPI
	callGetAPI    = invokeGetAPI
	bindTable     = bindAPI
)

// Load resolves the RenderDoc library and requests a function table for at
// least the given version code (for example 10102 for 1.1.2). The library may
// hand back a newer table than requested; the table reports its own version
// through APIVersion.
//
// RENDERDOC_GetAPI is documented as unsafe to call while a previous table is
// live, so Load serializes all attempts and fails with ErrAlreadyLoaded until
// the active API is closed. Failed attempts leave no trace: a retry behaves
// exactly like a fresh Load.
func Load(requested uint32) (*API, error) {
	loaderMu.Lock()
	defer loaderMu.Unlock()

	if active {
		return nil, ErrAlreadyLoaded
	}

	// The OS module handle is cached across Load/Close cycles. The library is
	// injected into the process by RenderDoc itself and must stay resident;
	// only the "one live table" flag is reset on Close.
	if module == 0 {
		h, err := openLibrary()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLibraryNotFound, err)
		}
		module = h
	}

	getAPI, err := resolveGetAPI(module)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLibraryNotFound, err)
	}

	table, ok := callGetAPI(getAPI, requested)
	if !ok {
		return nil, fmt.Errorf("%w: requested %d", ErrIncompatibleVersion, requested)
	}

	api := bindTable(table)
	active = true
	return api, nil
}

// Close releases the process-wide instance slot so a later Load can succeed.
// The native table itself has no teardown call; the library stays resident.
// Close is idempotent.
func (a *API) Close() {
	loaderMu.Lock()
	active = false
	loaderMu.Unlock()
}

// invokeGetAPI calls the native RENDERDOC_GetAPI entry point. It returns the
// table pointer and whether negotiation succeeded.
func invokeGetAPI(fn uintptr, requested uint32) (unsafe.Pointer, bool) {
	var out unsafe.Pointer
	ret, _, _ := purego.SyscallN(fn, uintptr(requested), uintptr(unsafe.Pointer(&out)))
	if ret != 1 || out == nil {
		return nil, false
	}
	return out, true
}
