package app

import (
	"unsafe"

	"renderdoc/src/ffi"
)

// rawAPI is the seam between the versioned surface and the native table. The
// real implementation is *ffi.API; tests substitute a fake. Methods map 1:1
// onto table slots and perform no state or version checking.
type rawAPI interface {
	APIVersion() (major, minor, patch int)

	SetCaptureOptionU32(opt, val uint32) bool
	SetCaptureOptionF32(opt uint32, val float32) bool
	CaptureOptionU32(opt uint32) uint32
	CaptureOptionF32(opt uint32) float32

	SetFocusToggleKeys(keys []uint32)
	SetCaptureKeys(keys []uint32)

	OverlayBits() uint32
	MaskOverlayBits(and, or uint32)

	RemoveHooks()
	UnloadCrashHandler()

	SetCaptureFilePathTemplate(pathTemplate string)
	CaptureFilePathTemplate() string

	NumCaptures() uint32
	Capture(idx uint32, filename []byte, pathLength *uint32, timestamp *uint64) bool

	TriggerCapture()

	IsTargetControlConnected() bool
	LaunchReplayUI(connectTargetControl bool, cmdLine string) uint32

	SetActiveWindow(device, wndHandle unsafe.Pointer)

	StartFrameCapture(device, wndHandle unsafe.Pointer)
	IsFrameCapturing() bool
	EndFrameCapture(device, wndHandle unsafe.Pointer) bool

	TriggerMultiFrameCapture(numFrames uint32)
	SetCaptureFileComments(filePath, comments string)
	DiscardFrameCapture(device, wndHandle unsafe.Pointer) bool
	ShowReplayUI() bool
	SetCaptureTitle(title string)

	Close()
}

var _ rawAPI = (*ffi.API)(nil)
