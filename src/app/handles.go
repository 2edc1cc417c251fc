package app

import "unsafe"

// DevicePointer identifies the graphics API root object a capture is keyed
// on: a VkInstance dispatch-table pointer, an ID3D11Device/ID3D12Device, an
// HGLRC/GLXContext, and so on. The src/vk package derives one from a Vulkan
// instance; other APIs pass their root handle directly.
//
// The wrapper cannot verify that the object behind the pointer is still
// alive. Passing a dead device or window is undefined behavior at the native
// layer; keeping them valid for the duration of the call is the caller's
// precondition.
type DevicePointer unsafe.Pointer

// WindowHandle is the OS-native window handle (HWND, xcb_window_t, Wayland
// surface, ...). A nil handle means "all windows on the device" where the
// native API accepts that.
type WindowHandle unsafe.Pointer
