//go:build android

package ffi

// RenderDoc ships as a Vulkan/GLES layer on Android.
const libraryName = "libVkLayer_GLES_RenderDoc.so"
