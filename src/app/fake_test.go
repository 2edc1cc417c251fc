package app

import "unsafe"

// fakeRaw stands in for the native table. It records forwarded calls so tests
// can assert that gated operations never reach the native layer.
type fakeRaw struct {
	major, minor, patch int

	calls []string

	u32opts map[uint32]uint32
	f32opts map[uint32]float32

	captureKeys []uint32
	focusKeys   []uint32

	overlay uint32

	template string

	captures []fakeCapture

	targetControl bool
	replayPID     uint32
	showReplayOK  bool

	endOK     bool
	discardOK bool
	capturing bool

	titles   []string
	comments map[string]string

	closed int
}

type fakeCapture struct {
	path string
	ts   uint64
}

func newFakeRaw(major, minor, patch int) *fakeRaw {
	return &fakeRaw{
		major: major, minor: minor, patch: patch,
		u32opts:      map[uint32]uint32{},
		f32opts:      map[uint32]float32{},
		comments:     map[string]string{},
		overlay:      uint32(OverlayDefault),
		template:     "/tmp/fake",
		replayPID:    1234,
		showReplayOK: true,
		endOK:        true,
		discardOK:    true,
	}
}

func (f *fakeRaw) record(name string) { f.calls = append(f.calls, name) }

func (f *fakeRaw) count(name string) int {
	n := 0
	for _, c := range f.calls {
		if c == name {
			n++
		}
	}
	return n
}

func (f *fakeRaw) APIVersion() (int, int, int) {
	return f.major, f.minor, f.patch
}

func (f *fakeRaw) SetCaptureOptionU32(opt, val uint32) bool {
	f.record("SetCaptureOptionU32")
	if opt > uint32(OptionAllowUnsupportedVendorExtensions) {
		return false
	}
	f.u32opts[opt] = val
	return true
}

func (f *fakeRaw) SetCaptureOptionF32(opt uint32, val float32) bool {
	f.record("SetCaptureOptionF32")
	if opt > uint32(OptionAllowUnsupportedVendorExtensions) {
		return false
	}
	f.f32opts[opt] = val
	return true
}

func (f *fakeRaw) CaptureOptionU32(opt uint32) uint32 {
	f.record("CaptureOptionU32")
	if opt > uint32(OptionAllowUnsupportedVendorExtensions) {
		return ^uint32(0)
	}
	return f.u32opts[opt]
}

func (f *fakeRaw) CaptureOptionF32(opt uint32) float32 {
	f.record("CaptureOptionF32")
	return f.f32opts[opt]
}

func (f *fakeRaw) SetFocusToggleKeys(keys []uint32) {
	f.record("SetFocusToggleKeys")
	f.focusKeys = keys
}

func (f *fakeRaw) SetCaptureKeys(keys []uint32) {
	f.record("SetCaptureKeys")
	f.captureKeys = keys
}

func (f *fakeRaw) OverlayBits() uint32 {
	f.record("OverlayBits")
	return f.overlay
}

func (f *fakeRaw) MaskOverlayBits(and, or uint32) {
	f.record("MaskOverlayBits")
	f.overlay = f.overlay&and | or
}

func (f *fakeRaw) RemoveHooks() { f.record("RemoveHooks") }

func (f *fakeRaw) UnloadCrashHandler() { f.record("UnloadCrashHandler") }

func (f *fakeRaw) SetCaptureFilePathTemplate(pathTemplate string) {
	f.record("SetCaptureFilePathTemplate")
	f.template = pathTemplate
}

func (f *fakeRaw) CaptureFilePathTemplate() string {
	f.record("CaptureFilePathTemplate")
	return f.template
}

func (f *fakeRaw) NumCaptures() uint32 {
	f.record("NumCaptures")
	return uint32(len(f.captures))
}

func (f *fakeRaw) Capture(idx uint32, filename []byte, pathLength *uint32, timestamp *uint64) bool {
	f.record("Capture")
	if int(idx) >= len(f.captures) {
		return false
	}
	c := f.captures[idx]
	if pathLength != nil {
		*pathLength = uint32(len(c.path) + 1)
	}
	if filename != nil {
		copy(filename, c.path)
		if len(filename) > len(c.path) {
			filename[len(c.path)] = 0
		}
	}
	if timestamp != nil {
		*timestamp = c.ts
	}
	return true
}

func (f *fakeRaw) TriggerCapture() { f.record("TriggerCapture") }

func (f *fakeRaw) IsTargetControlConnected() bool {
	f.record("IsTargetControlConnected")
	return f.targetControl
}

func (f *fakeRaw) LaunchReplayUI(connect bool, cmdLine string) uint32 {
	f.record("LaunchReplayUI")
	return f.replayPID
}

func (f *fakeRaw) SetActiveWindow(device, wndHandle unsafe.Pointer) {
	f.record("SetActiveWindow")
}

func (f *fakeRaw) StartFrameCapture(device, wndHandle unsafe.Pointer) {
	f.record("StartFrameCapture")
	f.capturing = true
}

func (f *fakeRaw) IsFrameCapturing() bool {
	f.record("IsFrameCapturing")
	return f.capturing
}

func (f *fakeRaw) EndFrameCapture(device, wndHandle unsafe.Pointer) bool {
	f.record("EndFrameCapture")
	f.capturing = false
	return f.endOK
}

func (f *fakeRaw) TriggerMultiFrameCapture(numFrames uint32) {
	f.record("TriggerMultiFrameCapture")
}

func (f *fakeRaw) SetCaptureFileComments(filePath, comments string) {
	f.record("SetCaptureFileComments")
	f.comments[filePath] = comments
}

func (f *fakeRaw) DiscardFrameCapture(device, wndHandle unsafe.Pointer) bool {
	f.record("DiscardFrameCapture")
	f.capturing = false
	return f.discardOK
}

func (f *fakeRaw) ShowReplayUI() bool {
	f.record("ShowReplayUI")
	return f.showReplayOK
}

func (f *fakeRaw) SetCaptureTitle(title string) {
	f.record("SetCaptureTitle")
	f.titles = append(f.titles, title)
}

func (f *fakeRaw) Close() { f.closed++ }
