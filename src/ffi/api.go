package ffi

import (
	"unsafe"

	"github.com/ebitengine/purego"
)

// API is the Go-callable view of one negotiated function table. Every method
// forwards straight into the native library with no state checking of its own;
// the safe, version-gated surface lives in the app package. Holding on to an
// API and calling it from multiple goroutines without external locking is
// undefined behavior at the native layer.
type API struct {
	getAPIVersion func(major, minor, patch *int32)

	setCaptureOptionU32 func(opt, val uint32) int32
	setCaptureOptionF32 func(opt uint32, val float32) int32
	getCaptureOptionU32 func(opt uint32) uint32
	getCaptureOptionF32 func(opt uint32) float32

	setFocusToggleKeys func(keys *uint32, num int32)
	setCaptureKeys     func(keys *uint32, num int32)

	getOverlayBits  func() uint32
	maskOverlayBits func(and, or uint32)

	removeHooks        func()
	unloadCrashHandler func()

	setCaptureFilePathTemplate func(pathTemplate string)
	getCaptureFilePathTemplate func() string

	getNumCaptures func() uint32
	getCapture     func(idx uint32, filename *byte, pathLength *uint32, timestamp *uint64) uint32

	triggerCapture func()

	isTargetControlConnected func() uint32
	launchReplayUI           func(connectTargetControl uint32, cmdLine *byte) uint32

	setActiveWindow func(device, wndHandle unsafe.Pointer)

	startFrameCapture func(device, wndHandle unsafe.Pointer)
	isFrameCapturing  func() uint32
	endFrameCapture   func(device, wndHandle unsafe.Pointer) uint32

	triggerMultiFrameCapture func(numFrames uint32)
	setCaptureFileComments   func(filePath *byte, comments string)
	discardFrameCapture      func(device, wndHandle unsafe.Pointer) uint32
	showReplayUI             func() uint32
	setCaptureTitle          func(title string)
}

// bindAPI attaches Go-callable trampolines to the table slots that are valid
// for the negotiated version. GetAPIVersion occupies slot zero in every
// revision, so it is bound first and used to size the rest of the table.
func bindAPI(table unsafe.Pointer) *API {
	vt := (*vtable)(table)
	a := &API{}

	purego.RegisterFunc(&a.getAPIVersion, vt.GetAPIVersion)
	major, minor, patch := a.APIVersion()
	n := slotCount(versionCode(major, minor, patch))

	purego.RegisterFunc(&a.setCaptureOptionU32, vt.SetCaptureOptionU32)
	purego.RegisterFunc(&a.setCaptureOptionF32, vt.SetCaptureOptionF32)
	purego.RegisterFunc(&a.getCaptureOptionU32, vt.GetCaptureOptionU32)
	purego.RegisterFunc(&a.getCaptureOptionF32, vt.GetCaptureOptionF32)
	purego.RegisterFunc(&a.setFocusToggleKeys, vt.SetFocusToggleKeys)
	purego.RegisterFunc(&a.setCaptureKeys, vt.SetCaptureKeys)
	purego.RegisterFunc(&a.getOverlayBits, vt.GetOverlayBits)
	purego.RegisterFunc(&a.maskOverlayBits, vt.MaskOverlayBits)
	purego.RegisterFunc(&a.removeHooks, vt.RemoveHooks)
	purego.RegisterFunc(&a.unloadCrashHandler, vt.UnloadCrashHandler)
	purego.RegisterFunc(&a.setCaptureFilePathTemplate, vt.SetCaptureFilePathTemplate)
	purego.RegisterFunc(&a.getCaptureFilePathTemplate, vt.GetCaptureFilePathTemplate)
	purego.RegisterFunc(&a.getNumCaptures, vt.GetNumCaptures)
	purego.RegisterFunc(&a.getCapture, vt.GetCapture)
	purego.RegisterFunc(&a.triggerCapture, vt.TriggerCapture)
	purego.RegisterFunc(&a.isTargetControlConnected, vt.IsTargetControlConnected)
	purego.RegisterFunc(&a.launchReplayUI, vt.LaunchReplayUI)
	purego.RegisterFunc(&a.setActiveWindow, vt.SetActiveWindow)
	purego.RegisterFunc(&a.startFrameCapture, vt.StartFrameCapture)
	purego.RegisterFunc(&a.isFrameCapturing, vt.IsFrameCapturing)
	purego.RegisterFunc(&a.endFrameCapture, vt.EndFrameCapture)

	if n >= slots110 {
		purego.RegisterFunc(&a.triggerMultiFrameCapture, vt.TriggerMultiFrameCapture)
	}
	if n >= slots120 {
		purego.RegisterFunc(&a.setCaptureFileComments, vt.SetCaptureFileComments)
	}
	if n >= slots140 {
		purego.RegisterFunc(&a.discardFrameCapture, vt.DiscardFrameCapture)
	}
	if n >= slots150 {
		purego.RegisterFunc(&a.showReplayUI, vt.ShowReplayUI)
	}
	if n >= slots160 {
		purego.RegisterFunc(&a.setCaptureTitle, vt.SetCaptureTitle)
	}

	return a
}

func versionCode(major, minor, patch int) uint32 {
	return uint32(major)*10000 + uint32(minor)*100 + uint32(patch)
}

// APIVersion reports the negotiated version triple straight from the table.
func (a *API) APIVersion() (major, minor, patch int) {
	var mj, mn, pt int32
	a.getAPIVersion(&mj, &mn, &pt)
	return int(mj), int(mn), int(pt)
}

func (a *API) SetCaptureOptionU32(opt, val uint32) bool {
	return a.setCaptureOptionU32(opt, val) == 1
}

func (a *API) SetCaptureOptionF32(opt uint32, val float32) bool {
	return a.setCaptureOptionF32(opt, val) == 1
}

func (a *API) CaptureOptionU32(opt uint32) uint32 {
	return a.getCaptureOptionU32(opt)
}

func (a *API) CaptureOptionF32(opt uint32) float32 {
	return a.getCaptureOptionF32(opt)
}

func (a *API) SetFocusToggleKeys(keys []uint32) {
	a.setFocusToggleKeys(keyPtr(keys), int32(len(keys)))
}

func (a *API) SetCaptureKeys(keys []uint32) {
	a.setCaptureKeys(keyPtr(keys), int32(len(keys)))
}

func keyPtr(keys []uint32) *uint32 {
	if len(keys) == 0 {
		return nil
	}
	return &keys[0]
}

func (a *API) OverlayBits() uint32 {
	return a.getOverlayBits()
}

func (a *API) MaskOverlayBits(and, or uint32) {
	a.maskOverlayBits(and, or)
}

func (a *API) RemoveHooks() {
	a.removeHooks()
}

func (a *API) UnloadCrashHandler() {
	a.unloadCrashHandler()
}

func (a *API) SetCaptureFilePathTemplate(pathTemplate string) {
	a.setCaptureFilePathTemplate(pathTemplate)
}

func (a *API) CaptureFilePathTemplate() string {
	return a.getCaptureFilePathTemplate()
}

func (a *API) NumCaptures() uint32 {
	return a.getNumCaptures()
}

// Capture fills filename (may be nil for a length probe), pathLength, and
// timestamp for the capture at idx. Reports whether the capture exists.
func (a *API) Capture(idx uint32, filename []byte, pathLength *uint32, timestamp *uint64) bool {
	var buf *byte
	if len(filename) > 0 {
		buf = &filename[0]
	}
	return a.getCapture(idx, buf, pathLength, timestamp) == 1
}

func (a *API) TriggerCapture() {
	a.triggerCapture()
}

func (a *API) IsTargetControlConnected() bool {
	return a.isTargetControlConnected() == 1
}

// LaunchReplayUI returns the PID of the launched process, or zero on failure.
// An empty cmdLine is passed through as NULL.
func (a *API) LaunchReplayUI(connectTargetControl bool, cmdLine string) uint32 {
	var connect uint32
	if connectTargetControl {
		connect = 1
	}
	return a.launchReplayUI(connect, cstring(cmdLine))
}

func (a *API) SetActiveWindow(device, wndHandle unsafe.Pointer) {
	a.setActiveWindow(device, wndHandle)
}

func (a *API) StartFrameCapture(device, wndHandle unsafe.Pointer) {
	a.startFrameCapture(device, wndHandle)
}

func (a *API) IsFrameCapturing() bool {
	return a.isFrameCapturing() == 1
}

func (a *API) EndFrameCapture(device, wndHandle unsafe.Pointer) bool {
	return a.endFrameCapture(device, wndHandle) == 1
}

func (a *API) TriggerMultiFrameCapture(numFrames uint32) {
	a.triggerMultiFrameCapture(numFrames)
}

// SetCaptureFileComments attaches comments to the capture file at filePath.
// An empty filePath targets the most recent capture.
func (a *API) SetCaptureFileComments(filePath, comments string) {
	a.setCaptureFileComments(cstring(filePath), comments)
}

func (a *API) DiscardFrameCapture(device, wndHandle unsafe.Pointer) bool {
	return a.discardFrameCapture(device, wndHandle) == 1
}

func (a *API) ShowReplayUI() bool {
	return a.showReplayUI() == 1
}

func (a *API) SetCaptureTitle(title string) {
	a.setCaptureTitle(title)
}

// cstring returns a NUL-terminated copy of s, or nil for the empty string so
// optional parameters map to NULL.
func cstring(s string) *byte {
	if s == "" {
		return nil
	}
	b := make([]byte, len(s)+1)
	copy(b, s)
	return &b[0]
}
