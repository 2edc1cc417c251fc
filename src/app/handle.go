package app

import (
	"fmt"
	"sync/atomic"

	"renderdoc/src/ffi"
)

// core is the shared backing of every handle derived from one load: the raw
// table, the negotiated version, and the capture state machine. Handles are
// cheap views over a core; copying or downgrading a handle never copies the
// table.
//
// The core is not internally synchronized beyond the state flag. The native
// library is only safe to call from one thread at a time, and only the caller
// knows the right locking granularity (often a whole Start/End pair), so
// serialization is the caller's job.
type core struct {
	raw   rawAPI
	ver   Version
	state atomic.Int32
}

func (c *core) require(allowed ...captureState) error {
	s := captureState(c.state.Load())
	for _, a := range allowed {
		if s == a {
			return nil
		}
	}
	return wrongState(s)
}

func (c *core) transition(from, to captureState) error {
	if !c.state.CompareAndSwap(int32(from), int32(to)) {
		return wrongState(captureState(c.state.Load()))
	}
	return nil
}

func (c *core) close() {
	if captureState(c.state.Swap(int32(stateUnloaded))) != stateUnloaded {
		c.raw.Close()
		logger().Debug("renderdoc api closed", "version", c.ver.String())
	}
}

// The version ladder. Each type embeds its predecessor, so a handle declared
// at some version carries every capability introduced at or below it and
// nothing newer; calling a method from a later version does not compile.
// Versions that only renamed table slots still get a rung so callers can
// request them as exact minimums.
//
// Downgrading is embedded-field access: given h of type API110, h.API102 (or
// any deeper field) is a handle over the same table with a smaller surface.
type (
	// API100 is the base surface, API version 1.0.0.
	API100 struct{ c *core }
	// API101 is API version 1.0.1 (no new capabilities).
	API101 struct{ API100 }
	// API102 is API version 1.0.2 (no new capabilities).
	API102 struct{ API101 }
	// API110 adds TriggerMultiFrameCapture.
	API110 struct{ API102 }
	// API111 renames IsRemoteAccessConnected to IsTargetControlConnected.
	API111 struct{ API110 }
	// API112 renames the log file path template to capture file path template.
	API112 struct{ API111 }
	// API120 adds SetCaptureFileComments.
	API120 struct{ API112 }
	// API130 is API version 1.3.0 (no new capabilities).
	API130 struct{ API120 }
	// API140 adds DiscardFrameCapture.
	API140 struct{ API130 }
	// API141 renames Shutdown to RemoveHooks.
	API141 struct{ API140 }
	// API142 is API version 1.4.2 (no new capabilities).
	API142 struct{ API141 }
	// API150 adds ShowReplayUI.
	API150 struct{ API142 }
	// API160 adds SetCaptureTitle.
	API160 struct{ API150 }
)

// Handle enumerates the version ladder for generic constructors.
type Handle interface {
	API100 | API101 | API102 | API110 | API111 | API112 |
		API120 | API130 | API140 | API141 | API142 | API150 | API160
}

type versioned interface {
	minVersion() Version
	core() *core
}

type binder interface{ bind(*core) }

func (a *API100) bind(c *core) { a.c = c }

func (a API100) core() *core { return a.c }

func (API100) minVersion() Version { return V1_0_0 }
func (API101) minVersion() Version { return V1_0_1 }
func (API102) minVersion() Version { return V1_0_2 }
func (API110) minVersion() Version { return V1_1_0 }
func (API111) minVersion() Version { return V1_1_1 }
func (API112) minVersion() Version { return V1_1_2 }
func (API120) minVersion() Version { return V1_2_0 }
func (API130) minVersion() Version { return V1_3_0 }
func (API140) minVersion() Version { return V1_4_0 }
func (API141) minVersion() Version { return V1_4_1 }
func (API142) minVersion() Version { return V1_4_2 }
func (API150) minVersion() Version { return V1_5_0 }
func (API160) minVersion() Version { return V1_6_0 }

// New loads the RenderDoc API requesting the minimum version declared by V
// and wraps the negotiated table. The library usually hands back a newer
// version than requested; the handle still only exposes V's surface (use
// Upgrade to widen it after checking).
//
// Only one instance may be live per process; New fails with ErrAlreadyLoaded
// until the previous one is closed.
func New[V Handle]() (*V, error) {
	var v V
	min := any(v).(versioned).minVersion()

	raw, err := ffi.Load(uint32(min))
	if err != nil {
		return nil, err
	}

	h, err := wrap[V](raw)
	if err != nil {
		raw.Close()
		return nil, err
	}

	c := any(*h).(versioned).core()
	logger().Info("renderdoc api loaded",
		"requested", min.String(), "negotiated", c.ver.String())
	return h, nil
}

// wrap builds a handle of type V over an already negotiated table. Split out
// of New so tests can drive the surface with a fake raw table.
func wrap[V Handle](raw rawAPI) (*V, error) {
	var v V
	min := any(v).(versioned).minVersion()

	c := &core{raw: raw, ver: versionOf(raw.APIVersion())}
	c.state.Store(int32(stateLoaded))

	if !c.ver.Satisfies(min) {
		return nil, fmt.Errorf("%w: negotiated %s, need %s",
			ErrIncompatibleVersion, c.ver, min)
	}

	any(&v).(binder).bind(c)
	return &v, nil
}

// Upgrade converts a handle into one declaring a newer minimum version, if
// the negotiated version is high enough. It is the runtime-checked inverse of
// downgrading and shares the same underlying table. Fails with
// ErrIncompatibleVersion when the negotiated version is below To's minimum.
func Upgrade[To Handle, From Handle](h From) (*To, error) {
	c := any(h).(versioned).core()
	if c == nil {
		return nil, fmt.Errorf("renderdoc: upgrade of an unbound handle")
	}

	var to To
	min := any(to).(versioned).minVersion()
	if !c.ver.Satisfies(min) {
		return nil, fmt.Errorf("%w: negotiated %s, need %s",
			ErrIncompatibleVersion, c.ver, min)
	}

	any(&to).(binder).bind(c)
	return &to, nil
}

// APIVersion reports the negotiated version triple, which may exceed the
// handle's declared minimum. It is captured at load time, never changes, and
// stays available in every capture state and on every downgraded view.
func (a API100) APIVersion() (major, minor, patch int) {
	return a.c.ver.Major(), a.c.ver.Minor(), a.c.ver.Patch()
}

// Close releases the process-wide instance slot so a later New can succeed.
// Every view sharing this handle's table becomes unusable. Close is
// idempotent.
func (a API100) Close() {
	a.c.close()
}
