package app

// UnloadCrashHandler asks RenderDoc to unload its crash handler so the
// application's own handler (if any) takes over.
func (a API100) UnloadCrashHandler() error {
	if err := a.c.require(stateLoaded, stateCapturing); err != nil {
		return err
	}
	a.c.raw.UnloadCrashHandler()
	return nil
}

// Shutdown removes RenderDoc's injected API hooks and shuts capture support
// down for the rest of the process lifetime. Only implemented by the native
// layer on Windows, and only reliable when called before any graphics API
// work has happened. The handle enters a terminal state; no operation other
// than APIVersion and Close is valid afterwards.
//
// This is the 1.0.0 name for the slot; 1.4.1 renamed it to RemoveHooks.
func (a API100) Shutdown() error {
	if err := a.c.transition(stateLoaded, stateHooksRemoved); err != nil {
		return err
	}
	a.c.raw.RemoveHooks()
	return nil
}

// RemoveHooks removes RenderDoc's injected API hooks. See Shutdown; 1.4.1
// renamed the slot.
func (a API141) RemoveHooks() error {
	if err := a.c.transition(stateLoaded, stateHooksRemoved); err != nil {
		return err
	}
	a.c.raw.RemoveHooks()
	return nil
}
