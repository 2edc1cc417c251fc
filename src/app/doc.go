// Package app wraps RenderDoc's in-application API (renderdoc_app.h) behind
// version-checked handles.
//
// The native API is one function table whose shape depends on the version
// negotiated at load time. Each API version is a distinct handle type here,
// and a method introduced in version X exists only on the types for X and
// newer, so version mismatches fail at compile time instead of reading a
// table slot that is not there:
//
//	rd, err := app.New[app.API140]()
//	if err != nil {
//	    // not running under RenderDoc, version too old, or already loaded
//	}
//	defer rd.Close()
//
//	rd.StartFrameCapture(dev, win)
//	// ... render one frame ...
//	rd.EndFrameCapture(dev, win)
//
// Downgrading a handle is embedded-field access (rd.API130.API120 and so on)
// and never touches the library; app.Upgrade goes the other way after a
// runtime check against the negotiated version.
//
// Only one instance may be live per process, because RENDERDOC_GetAPI is not
// safe to call again while a table is in use. The wrapper also tracks the
// frame-capture state machine and refuses calls that are illegal in the
// current state (double StartFrameCapture, EndFrameCapture with no capture
// running) with ErrWrongState.
//
// The wrapper does not serialize concurrent calls; the native library must
// be driven from one goroutine at a time, and only the caller knows the right
// lock scope. It also cannot verify that device and window handles passed to
// capture calls are alive; that remains the caller's precondition.
package app
