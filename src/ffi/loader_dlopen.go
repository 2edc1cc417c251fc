//go:build linux || android

package ffi

import "github.com/ebitengine/purego"

// Not exported by purego yet. Restricts dlopen to libraries that are already
// mapped into the process, which is exactly the injected-by-RenderDoc case.
const rtldNoLoad = 0x4

func openPlatformLibrary() (uintptr, error) {
	return purego.Dlopen(libraryName, purego.RTLD_NOW|rtldNoLoad)
}

func lookupGetAPI(lib uintptr) (uintptr, error) {
	return purego.Dlsym(lib, "RENDERDOC_GetAPI")
}
