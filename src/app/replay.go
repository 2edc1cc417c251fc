package app

import "fmt"

// IsRemoteAccessConnected reports whether the replay UI (or another remote
// access client) is connected to this process.
//
// This is the 1.0.0 name for the slot; 1.1.1 renamed it to
// IsTargetControlConnected without changing behavior.
func (a API100) IsRemoteAccessConnected() (bool, error) {
	if err := a.c.require(stateLoaded, stateCapturing); err != nil {
		return false, err
	}
	return a.c.raw.IsTargetControlConnected(), nil
}

// LaunchReplayUI starts the RenderDoc replay UI and returns its PID. When
// connectTargetControl is set, the UI connects back to this process
// immediately. cmdLine is appended to the UI's command line; pass "" for
// none.
func (a API100) LaunchReplayUI(connectTargetControl bool, cmdLine string) (uint32, error) {
	if err := a.c.require(stateLoaded); err != nil {
		return 0, err
	}
	pid := a.c.raw.LaunchReplayUI(connectTargetControl, cmdLine)
	if pid == 0 {
		return 0, ErrLaunchReplayUI
	}
	return pid, nil
}

// IsTargetControlConnected reports whether a target control client (such as
// the replay UI) is connected to this process.
func (a API111) IsTargetControlConnected() (bool, error) {
	if err := a.c.require(stateLoaded, stateCapturing); err != nil {
		return false, err
	}
	return a.c.raw.IsTargetControlConnected(), nil
}

// ShowReplayUI requests that a connected replay UI raise its window. Fails if
// no UI is connected or the request could not be delivered.
func (a API150) ShowReplayUI() error {
	if err := a.c.require(stateLoaded); err != nil {
		return err
	}
	if !a.c.raw.ShowReplayUI() {
		return fmt.Errorf("%w: no connected replay ui", ErrLaunchReplayUI)
	}
	return nil
}
