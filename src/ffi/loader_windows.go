//go:build windows

package ffi

import "golang.org/x/sys/windows"

const libraryName = "renderdoc.dll"

// openPlatformLibrary resolves the module only if RenderDoc has already
// injected it; GetModuleHandle never maps a new copy.
func openPlatformLibrary() (uintptr, error) {
	name, err := windows.UTF16PtrFromString(libraryName)
	if err != nil {
		return 0, err
	}
	h, err := windows.GetModuleHandle(name)
	if err != nil {
		return 0, err
	}
	return uintptr(h), nil
}

func lookupGetAPI(lib uintptr) (uintptr, error) {
	proc, err := windows.GetProcAddress(windows.Handle(lib), "RENDERDOC_GetAPI")
	if err != nil {
		return 0, err
	}
	return proc, nil
}
