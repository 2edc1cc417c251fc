package app

import (
	"fmt"
	"math"
	"time"
)

// CaptureOption selects one of RenderDoc's capture-time behaviors. Values
// match the upstream RENDERDOC_CaptureOption enum.
type CaptureOption uint32

const (
	// OptionAllowVSync lets the application enable vertical synchronization.
	OptionAllowVSync CaptureOption = iota
	// OptionAllowFullscreen lets the application enter fullscreen mode.
	OptionAllowFullscreen
	// OptionAPIValidation records API debugging events and messages.
	OptionAPIValidation
	// OptionCaptureCallstacks captures CPU callstacks for API events.
	OptionCaptureCallstacks
	// OptionCaptureCallstacksOnlyActions restricts callstack capture to action
	// calls (draws, dispatches, clears, copies). Named "only draws" before
	// 1.4.2; same value, broader meaning since.
	OptionCaptureCallstacksOnlyActions
	// OptionDelayForDebugger waits this many seconds for a debugger to attach
	// to injected child processes.
	OptionDelayForDebugger
	// OptionVerifyBufferAccess verifies writes to mapped buffers by checking
	// memory beyond the returned bounds.
	OptionVerifyBufferAccess
	// OptionHookIntoChildren injects RenderDoc into child processes with the
	// same options.
	OptionHookIntoChildren
	// OptionRefAllResources references all live resources in the capture, not
	// just the ones used by the frame.
	OptionRefAllResources
	// OptionSaveAllInitials saves initial state for all resources regardless
	// of apparent usage.
	OptionSaveAllInitials
	// OptionCaptureAllCmdLists captures command lists recorded from the start
	// of the application (older APIs only; Vulkan and D3D12 always do).
	OptionCaptureAllCmdLists
	// OptionDebugOutputMute mutes API debug output while OptionAPIValidation
	// is enabled.
	OptionDebugOutputMute
	// OptionAllowUnsupportedVendorExtensions opts in to vendor extensions
	// RenderDoc does not support. Replays may be corrupted; upstream offers no
	// support when this is set.
	OptionAllowUnsupportedVendorExtensions
)

// SetCaptureOptionU32 sets an integer-valued capture option. Options may only
// change outside a capture.
func (a API100) SetCaptureOptionU32(opt CaptureOption, val uint32) error {
	if err := a.c.require(stateLoaded); err != nil {
		return err
	}
	return setU32(a.c.raw, opt, val)
}

// SetCaptureOptionF32 sets a float-valued capture option. Options may only
// change outside a capture.
func (a API100) SetCaptureOptionF32(opt CaptureOption, val float32) error {
	if err := a.c.require(stateLoaded); err != nil {
		return err
	}
	if !a.c.raw.SetCaptureOptionF32(uint32(opt), val) {
		return fmt.Errorf("%w: option %d = %v", ErrInvalidOption, opt, val)
	}
	return nil
}

// CaptureOptionU32 reads an integer-valued capture option.
func (a API100) CaptureOptionU32(opt CaptureOption) (uint32, error) {
	if err := a.c.require(stateLoaded, stateCapturing); err != nil {
		return 0, err
	}
	val := a.c.raw.CaptureOptionU32(uint32(opt))
	// The native layer signals an unknown option with all bits set.
	if val == ^uint32(0) {
		return 0, fmt.Errorf("%w: option %d", ErrInvalidOption, opt)
	}
	return val, nil
}

// CaptureOptionF32 reads a float-valued capture option.
func (a API100) CaptureOptionF32(opt CaptureOption) (float32, error) {
	if err := a.c.require(stateLoaded, stateCapturing); err != nil {
		return 0, err
	}
	val := a.c.raw.CaptureOptionF32(uint32(opt))
	if val == -math.MaxFloat32 {
		return 0, fmt.Errorf("%w: option %d", ErrInvalidOption, opt)
	}
	return val, nil
}

// CaptureSetting applies one typed capture option. Build values with the
// constructors below and apply them through Configure.
type CaptureSetting func(raw rawAPI) error

// Configure applies capture settings in order, stopping at the first
// rejection. Settings may only change outside a capture.
//
//	rd.Configure(
//	    app.AllowVSync(false),
//	    app.CaptureCallstacks(app.CallstacksOnlyActions),
//	    app.DelayForDebugger(3*time.Second),
//	)
func (a API100) Configure(settings ...CaptureSetting) error {
	if err := a.c.require(stateLoaded); err != nil {
		return err
	}
	for _, s := range settings {
		if err := s(a.c.raw); err != nil {
			return err
		}
	}
	return nil
}

func setU32(raw rawAPI, opt CaptureOption, val uint32) error {
	if !raw.SetCaptureOptionU32(uint32(opt), val) {
		return fmt.Errorf("%w: option %d = %d", ErrInvalidOption, opt, val)
	}
	return nil
}

func setBool(opt CaptureOption, enabled bool) CaptureSetting {
	var val uint32
	if enabled {
		val = 1
	}
	return func(raw rawAPI) error { return setU32(raw, opt, val) }
}

// AllowVSync controls whether the application may enable vertical
// synchronization (default true).
func AllowVSync(allowed bool) CaptureSetting {
	return setBool(OptionAllowVSync, allowed)
}

// AllowFullscreen controls whether the application may enter fullscreen mode
// (default true).
func AllowFullscreen(allowed bool) CaptureSetting {
	return setBool(OptionAllowFullscreen, allowed)
}

// APIValidation records API debugging events and messages (default false).
func APIValidation(enabled bool) CaptureSetting {
	return setBool(OptionAPIValidation, enabled)
}

// CallstackMode selects how CPU callstacks are captured.
type CallstackMode int

const (
	// CallstacksDisabled captures no callstacks.
	CallstacksDisabled CallstackMode = iota
	// CallstacksEnabled captures a callstack on every API call.
	CallstacksEnabled
	// CallstacksOnlyActions captures callstacks only on action calls (draws,
	// dispatches, clears, copies).
	CallstacksOnlyActions
)

// CaptureCallstacks configures CPU callstack capture (default disabled).
func CaptureCallstacks(mode CallstackMode) CaptureSetting {
	return func(raw rawAPI) error {
		switch mode {
		case CallstacksEnabled:
			if err := setU32(raw, OptionCaptureCallstacks, 1); err != nil {
				return err
			}
			return setU32(raw, OptionCaptureCallstacksOnlyActions, 0)
		case CallstacksOnlyActions:
			if err := setU32(raw, OptionCaptureCallstacks, 1); err != nil {
				return err
			}
			return setU32(raw, OptionCaptureCallstacksOnlyActions, 1)
		default:
			return setU32(raw, OptionCaptureCallstacks, 0)
		}
	}
}

// DelayForDebugger pauses injected child processes at startup to let a
// debugger attach (default no delay). The native layer only honors whole
// seconds.
func DelayForDebugger(d time.Duration) CaptureSetting {
	secs := uint32(d / time.Second)
	return func(raw rawAPI) error { return setU32(raw, OptionDelayForDebugger, secs) }
}

// VerifyBufferAccess verifies writes to mapped buffers (default false).
func VerifyBufferAccess(enabled bool) CaptureSetting {
	return setBool(OptionVerifyBufferAccess, enabled)
}

// HookIntoChildren injects RenderDoc into child processes with the same
// options (default false).
func HookIntoChildren(enabled bool) CaptureSetting {
	return setBool(OptionHookIntoChildren, enabled)
}

// RefAllResources includes all live resources in the capture (default false).
func RefAllResources(enabled bool) CaptureSetting {
	return setBool(OptionRefAllResources, enabled)
}

// SaveAllInitials saves initial contents for all resources (default true
// since 1.2.0).
func SaveAllInitials(enabled bool) CaptureSetting {
	return setBool(OptionSaveAllInitials, enabled)
}

// CaptureAllCmdLists captures command lists recorded before the capture
// started, for APIs where that is optional (default false).
func CaptureAllCmdLists(enabled bool) CaptureSetting {
	return setBool(OptionCaptureAllCmdLists, enabled)
}

// DebugOutputMute mutes API debug output while validation is enabled
// (default true).
func DebugOutputMute(enabled bool) CaptureSetting {
	return setBool(OptionDebugOutputMute, enabled)
}
