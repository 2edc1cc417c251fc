//go:build linux && !android

package ffi

const libraryName = "librenderdoc.so"
