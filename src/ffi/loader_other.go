//go:build !linux && !windows

package ffi

import "errors"

// RenderDoc has no runtime on this platform.
const libraryName = ""

func openPlatformLibrary() (uintptr, error) {
	return 0, errors.New("renderdoc is not supported on this platform")
}

func lookupGetAPI(uintptr) (uintptr, error) {
	return 0, errors.New("renderdoc is not supported on this platform")
}
