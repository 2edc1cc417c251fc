package app

// InputButton is a key code understood by RenderDoc's hotkey handling.
// Values match the upstream RENDERDOC_InputButton enum; printable keys use
// their ASCII values.
type InputButton uint32

const (
	Key0 InputButton = 0x30 + iota
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
)

const (
	KeyA InputButton = 0x41 + iota
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
)

const (
	// KeyNonPrintable starts the non-ASCII block; the rest of the ASCII range
	// is reserved upstream.
	KeyNonPrintable InputButton = 0x100 + iota

	KeyDivide
	KeyMultiply
	KeySubtract
	KeyPlus

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	KeyHome
	KeyEnd
	KeyInsert
	KeyDelete
	KeyPageUp
	KeyPageDn

	KeyBackspace
	KeyTab
	KeyPrtScrn
	KeyPause

	KeyMax
)

// SetCaptureKeys replaces the hotkeys that trigger a capture. Passing no keys
// disables the capture hotkey.
func (a API100) SetCaptureKeys(keys ...InputButton) error {
	if err := a.c.require(stateLoaded, stateCapturing); err != nil {
		return err
	}
	a.c.raw.SetCaptureKeys(buttonCodes(keys))
	return nil
}

// SetFocusToggleKeys replaces the hotkeys that switch the focused window.
// Passing no keys disables the toggle.
func (a API100) SetFocusToggleKeys(keys ...InputButton) error {
	if err := a.c.require(stateLoaded, stateCapturing); err != nil {
		return err
	}
	a.c.raw.SetFocusToggleKeys(buttonCodes(keys))
	return nil
}

func buttonCodes(keys []InputButton) []uint32 {
	if len(keys) == 0 {
		return nil
	}
	codes := make([]uint32, len(keys))
	for i, k := range keys {
		codes[i] = uint32(k)
	}
	return codes
}
