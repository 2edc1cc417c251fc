package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSetCaptureKeysForwardsCodes(t *testing.T) {
	fake := newFakeRaw(1, 6, 0)
	h := mustWrap[API160](t, fake)

	require.NoError(t, h.SetCaptureKeys(KeyF12, KeyC))
	require.Equal(t, []uint32{uint32(KeyF12), uint32(KeyC)}, fake.captureKeys)

	require.NoError(t, h.SetFocusToggleKeys(KeyF11))
	require.Equal(t, []uint32{uint32(KeyF11)}, fake.focusKeys)

	// No keys disables the hotkey: the native call still happens, with an
	// empty list.
	require.NoError(t, h.SetCaptureKeys())
	require.Nil(t, fake.captureKeys)
	require.Equal(t, 2, fake.count("SetCaptureKeys"))
}

func TestOverlayMask(t *testing.T) {
	fake := newFakeRaw(1, 6, 0)
	h := mustWrap[API160](t, fake)

	bits, err := h.OverlayBits()
	require.NoError(t, err)
	require.Equal(t, OverlayDefault, bits)

	require.NoError(t, h.MaskOverlayBits(OverlayNone, OverlayEnabled))
	bits, err = h.OverlayBits()
	require.NoError(t, err)
	require.Equal(t, OverlayEnabled, bits)

	require.NoError(t, h.MaskOverlayBits(OverlayAll, OverlayFrameRate))
	bits, err = h.OverlayBits()
	require.NoError(t, err)
	require.Equal(t, OverlayEnabled|OverlayFrameRate, bits)
}

func TestCaptureEnumeration(t *testing.T) {
	fake := newFakeRaw(1, 6, 0)
	fake.captures = []fakeCapture{
		{path: "/caps/app_frame0.rdc", ts: 1700000000},
		{path: "/caps/app_frame1.rdc", ts: 1700000060},
	}
	h := mustWrap[API160](t, fake)

	n, err := h.NumCaptures()
	require.NoError(t, err)
	require.Equal(t, 2, n)

	c, ok, err := h.CaptureAt(1)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "/caps/app_frame1.rdc", c.Path)
	require.Equal(t, time.Unix(1700000060, 0), c.Timestamp)

	// Out of range is not an error, just absent.
	_, ok, err = h.CaptureAt(5)
	require.NoError(t, err)
	require.False(t, ok)

	list, err := h.Captures()
	require.NoError(t, err)
	require.Equal(t, []Capture{
		{Path: "/caps/app_frame0.rdc", Timestamp: time.Unix(1700000000, 0)},
		{Path: "/caps/app_frame1.rdc", Timestamp: time.Unix(1700000060, 0)},
	}, list)
}

func TestCapturesEmpty(t *testing.T) {
	h := mustWrap[API160](t, newFakeRaw(1, 6, 0))

	n, err := h.NumCaptures()
	require.NoError(t, err)
	require.Zero(t, n)

	list, err := h.Captures()
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestPathTemplateBothNames(t *testing.T) {
	fake := newFakeRaw(1, 6, 0)
	h := mustWrap[API160](t, fake)

	// The 1.0.0 name and the 1.1.2 name drive the same slot.
	require.NoError(t, h.SetLogFilePathTemplate("/tmp/old_name"))
	got, err := h.CaptureFilePathTemplate()
	require.NoError(t, err)
	require.Equal(t, "/tmp/old_name", got)

	require.NoError(t, h.SetCaptureFilePathTemplate("/tmp/new_name"))
	got, err = h.LogFilePathTemplate()
	require.NoError(t, err)
	require.Equal(t, "/tmp/new_name", got)
}

func TestReplayUIConnection(t *testing.T) {
	fake := newFakeRaw(1, 6, 0)
	h := mustWrap[API160](t, fake)

	connected, err := h.IsTargetControlConnected()
	require.NoError(t, err)
	require.False(t, connected)

	// The pre-1.1.1 name reads the same slot.
	connected, err = h.IsRemoteAccessConnected()
	require.NoError(t, err)
	require.False(t, connected)

	fake.targetControl = true
	connected, err = h.IsTargetControlConnected()
	require.NoError(t, err)
	require.True(t, connected)
}

func TestLaunchReplayUI(t *testing.T) {
	fake := newFakeRaw(1, 6, 0)
	h := mustWrap[API160](t, fake)

	pid, err := h.LaunchReplayUI(true, "--opened-from-app")
	require.NoError(t, err)
	require.Equal(t, uint32(1234), pid)

	// PID zero from the native layer means the UI never started.
	fake.replayPID = 0
	_, err = h.LaunchReplayUI(false, "")
	require.ErrorIs(t, err, ErrLaunchReplayUI)
}

func TestShowReplayUIFailure(t *testing.T) {
	fake := newFakeRaw(1, 6, 0)
	fake.showReplayOK = false
	h := mustWrap[API160](t, fake)

	require.ErrorIs(t, h.ShowReplayUI(), ErrLaunchReplayUI)
}

func TestSetCaptureFileComments(t *testing.T) {
	fake := newFakeRaw(1, 6, 0)
	h := mustWrap[API160](t, fake)

	require.NoError(t, h.SetCaptureFileComments("/caps/app_frame0.rdc", "first boss fight"))
	require.Equal(t, "first boss fight", fake.comments["/caps/app_frame0.rdc"])

	// Empty path targets the most recent capture.
	require.NoError(t, h.SetCaptureFileComments("", "latest"))
	require.Equal(t, "latest", fake.comments[""])
}
