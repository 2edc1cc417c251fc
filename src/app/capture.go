package app

import (
	"fmt"
	"unsafe"
)

// TriggerCapture requests a capture of the next frame presented by the
// currently active window and device, as if the capture hotkey was pressed.
// Legal only outside an explicit capture.
func (a API100) TriggerCapture() error {
	if err := a.c.require(stateLoaded); err != nil {
		return err
	}
	a.c.raw.TriggerCapture()
	return nil
}

// IsFrameCapturing reports whether a frame capture is ongoing anywhere in the
// process, including captures triggered by hotkey or TriggerCapture.
func (a API100) IsFrameCapturing() (bool, error) {
	if err := a.c.require(stateLoaded, stateCapturing); err != nil {
		return false, err
	}
	return a.c.raw.IsFrameCapturing(), nil
}

// SetActiveWindow tells RenderDoc which device/window pair hotkey-triggered
// captures apply to.
func (a API100) SetActiveWindow(dev DevicePointer, win WindowHandle) error {
	if err := a.c.require(stateLoaded); err != nil {
		return err
	}
	a.c.raw.SetActiveWindow(unsafe.Pointer(dev), unsafe.Pointer(win))
	return nil
}

// StartFrameCapture begins capturing immediately on the given device/window
// pair. Starting while a capture is already in progress fails with
// ErrWrongState before anything is forwarded; the native layer has no
// defense against a double start.
//
// The device and window must outlive the capture; see DevicePointer.
func (a API100) StartFrameCapture(dev DevicePointer, win WindowHandle) error {
	if err := a.c.transition(stateLoaded, stateCapturing); err != nil {
		return err
	}
	a.c.raw.StartFrameCapture(unsafe.Pointer(dev), unsafe.Pointer(win))
	return nil
}

// EndFrameCapture ends the in-progress capture and saves it to disk at the
// capture file path template. Returns ErrCaptureFailed when the native layer
// could not save the capture; the state machine returns to loaded either way.
func (a API100) EndFrameCapture(dev DevicePointer, win WindowHandle) error {
	if err := a.c.transition(stateCapturing, stateLoaded); err != nil {
		return err
	}
	if !a.c.raw.EndFrameCapture(unsafe.Pointer(dev), unsafe.Pointer(win)) {
		return fmt.Errorf("%w: capture was not saved", ErrCaptureFailed)
	}
	return nil
}

// TriggerMultiFrameCapture requests a capture of the next numFrames frames
// from the active window and device, saved as separate capture files.
func (a API110) TriggerMultiFrameCapture(numFrames uint32) error {
	if err := a.c.require(stateLoaded); err != nil {
		return err
	}
	a.c.raw.TriggerMultiFrameCapture(numFrames)
	return nil
}

// SetCaptureFileComments attaches comments to the capture file at filePath,
// shown in the UI when the capture is opened. An empty filePath targets the
// most recent capture.
func (a API120) SetCaptureFileComments(filePath, comments string) error {
	if err := a.c.require(stateLoaded, stateCapturing); err != nil {
		return err
	}
	a.c.raw.SetCaptureFileComments(filePath, comments)
	return nil
}

// DiscardFrameCapture ends the in-progress capture and throws the data away
// without saving. Returns ErrCaptureFailed when the native layer reported no
// capture to discard; the state machine returns to loaded either way.
func (a API140) DiscardFrameCapture(dev DevicePointer, win WindowHandle) error {
	if err := a.c.transition(stateCapturing, stateLoaded); err != nil {
		return err
	}
	if !a.c.raw.DiscardFrameCapture(unsafe.Pointer(dev), unsafe.Pointer(win)) {
		return fmt.Errorf("%w: nothing was discarded", ErrCaptureFailed)
	}
	return nil
}

// SetCaptureTitle names the capture currently being taken. It has no effect
// outside a capture, so it is legal only while capturing.
func (a API160) SetCaptureTitle(title string) error {
	if err := a.c.require(stateCapturing); err != nil {
		return err
	}
	a.c.raw.SetCaptureTitle(title)
	return nil
}
