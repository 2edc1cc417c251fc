package ffi

// vtable mirrors the RENDERDOC_API_1_6_0 struct from renderdoc_app.h: a flat
// table of function pointers handed out by RENDERDOC_GetAPI. Field order is
// the wire contract and must never change. Slots added after 1.0.0 are only
// present when the negotiated version says so; reading past the end of an
// older table is an out-of-bounds access, so slots are bound per version in
// bind() below.
//
// A few slots were renamed upstream without changing position:
//
//	RemoveHooks                  was Shutdown                  before 1.4.1
//	SetCaptureFilePathTemplate   was SetLogFilePathTemplate    before 1.1.2
//	GetCaptureFilePathTemplate   was GetLogFilePathTemplate    before 1.1.2
//	IsTargetControlConnected     was IsRemoteAccessConnected   before 1.1.1
type vtable struct {
	GetAPIVersion uintptr

	SetCaptureOptionU32 uintptr
	SetCaptureOptionF32 uintptr
	GetCaptureOptionU32 uintptr
	GetCaptureOptionF32 uintptr

	SetFocusToggleKeys uintptr
	SetCaptureKeys     uintptr

	GetOverlayBits  uintptr
	MaskOverlayBits uintptr

	RemoveHooks        uintptr
	UnloadCrashHandler uintptr

	SetCaptureFilePathTemplate uintptr
	GetCaptureFilePathTemplate uintptr

	GetNumCaptures uintptr
	GetCapture     uintptr

	TriggerCapture uintptr

	IsTargetControlConnected uintptr
	LaunchReplayUI           uintptr

	SetActiveWindow uintptr

	StartFrameCapture uintptr
	IsFrameCapturing  uintptr
	EndFrameCapture   uintptr

	// 1.1.0
	TriggerMultiFrameCapture uintptr
	// 1.2.0
	SetCaptureFileComments uintptr
	// 1.4.0
	DiscardFrameCapture uintptr
	// 1.5.0
	ShowReplayUI uintptr
	// 1.6.0
	SetCaptureTitle uintptr
}

// Slot counts per ABI revision. Versions between the listed ones are renames
// only and keep the previous layout.
const (
	slots100 = 22
	slots110 = 23
	slots120 = 24
	slots140 = 25
	slots150 = 26
	slots160 = 27
)

// slotCount reports how many table slots are safe to read for a negotiated
// version code.
func slotCount(code uint32) int {
	switch {
	case code >= 10600:
		return slots160
	case code >= 10500:
		return slots150
	case code >= 10400:
		return slots140
	case code >= 10200:
		return slots120
	case code >= 10100:
		return slots110
	default:
		return slots100
	}
}
