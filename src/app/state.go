package app

// captureState is the process-wide capture state machine attached to one
// loaded function table:
//
//	Unloaded -> Loaded <-> Capturing
//	            Loaded -> HooksRemoved (terminal)
//
// Operations consult the state before forwarding and refuse calls that are
// illegal where they stand, rather than letting the native layer misbehave.
type captureState int32

const (
	stateUnloaded captureState = iota
	stateLoaded
	stateCapturing
	stateHooksRemoved
)

func (s captureState) String() string {
	switch s {
	case stateUnloaded:
		return "unloaded"
	case stateLoaded:
		return "loaded"
	case stateCapturing:
		return "capturing"
	case stateHooksRemoved:
		return "hooks removed"
	default:
		return "unknown"
	}
}
