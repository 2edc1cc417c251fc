// Package vk derives RenderDoc device pointers from vulkan-go handles.
package vk

import (
	"unsafe"

	vulkan "github.com/vulkan-go/vulkan"

	"renderdoc/src/app"
)

// DevicePointer returns the RenderDoc device pointer for a Vulkan instance.
// RenderDoc keys Vulkan captures on the instance's dispatch table, which sits
// at the start of the dispatchable VkInstance handle (the
// RENDERDOC_DEVICEPOINTER_FROM_VKINSTANCE macro upstream).
//
// The instance must stay valid for as long as captures reference it.
func DevicePointer(instance vulkan.Instance) app.DevicePointer {
	return app.DevicePointer(*(*unsafe.Pointer)(unsafe.Pointer(instance)))
}
