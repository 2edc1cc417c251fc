package app

// OverlayBits configures the in-application overlay. Values match the
// upstream RENDERDOC_OverlayBits flags.
type OverlayBits uint32

const (
	// OverlayEnabled toggles the overlay globally.
	OverlayEnabled OverlayBits = 1 << iota
	// OverlayFrameRate shows average, minimum, and maximum frame rate.
	OverlayFrameRate
	// OverlayFrameNumber shows the current frame number.
	OverlayFrameNumber
	// OverlayCaptureList shows recent captures out of the total made.
	OverlayCaptureList
)

const (
	// OverlayDefault is the configuration the overlay starts with.
	OverlayDefault = OverlayEnabled | OverlayFrameRate | OverlayFrameNumber | OverlayCaptureList
	// OverlayAll sets every overlay bit.
	OverlayAll = ^OverlayBits(0)
	// OverlayNone clears every overlay bit.
	OverlayNone = OverlayBits(0)
)

// OverlayBits returns the current overlay configuration.
func (a API100) OverlayBits() (OverlayBits, error) {
	if err := a.c.require(stateLoaded, stateCapturing); err != nil {
		return 0, err
	}
	return OverlayBits(a.c.raw.OverlayBits()), nil
}

// MaskOverlayBits applies and then or to the overlay configuration.
func (a API100) MaskOverlayBits(and, or OverlayBits) error {
	if err := a.c.require(stateLoaded, stateCapturing); err != nil {
		return err
	}
	a.c.raw.MaskOverlayBits(uint32(and), uint32(or))
	return nil
}
