package app

import (
	"bytes"
	"time"
)

// Capture describes one frame capture saved by RenderDoc. The file is not
// guaranteed to still exist: captures deleted in the UI stay in the list.
type Capture struct {
	// Path is the absolute path of the capture file on disk.
	Path string
	// Timestamp is the local time the capture was taken.
	Timestamp time.Time
}

// NumCaptures returns how many captures have been made since the process
// started.
func (a API100) NumCaptures() (int, error) {
	if err := a.c.require(stateLoaded, stateCapturing); err != nil {
		return 0, err
	}
	return int(a.c.raw.NumCaptures()), nil
}

// CaptureAt returns the capture at index, counting from zero. ok is false
// when no capture exists at that index.
func (a API100) CaptureAt(index int) (c Capture, ok bool, err error) {
	if err := a.c.require(stateLoaded, stateCapturing); err != nil {
		return Capture{}, false, err
	}
	c, ok = captureAt(a.c.raw, uint32(index))
	return c, ok, nil
}

// Captures returns every capture made so far, oldest first.
func (a API100) Captures() ([]Capture, error) {
	if err := a.c.require(stateLoaded, stateCapturing); err != nil {
		return nil, err
	}
	n := int(a.c.raw.NumCaptures())
	list := make([]Capture, 0, n)
	for i := 0; i < n; i++ {
		c, ok := captureAt(a.c.raw, uint32(i))
		if !ok {
			break
		}
		list = append(list, c)
	}
	return list, nil
}

// captureAt probes the path length first, then fetches the path and
// timestamp into a buffer of exactly that size.
func captureAt(raw rawAPI, index uint32) (Capture, bool) {
	var pathLen uint32
	if !raw.Capture(index, nil, &pathLen, nil) || pathLen == 0 {
		return Capture{}, false
	}

	buf := make([]byte, pathLen)
	var ts uint64
	if !raw.Capture(index, buf, &pathLen, &ts) {
		return Capture{}, false
	}

	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}
	return Capture{
		Path:      string(buf),
		Timestamp: time.Unix(int64(ts), 0),
	}, true
}
