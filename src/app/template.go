package app

// SetLogFilePathTemplate sets the path template capture files are saved
// under: "foo/bar/example" produces "foo/bar/example_frame123.rdc". The
// default is a file in the system temporary directory named after the
// process.
//
// This is the 1.0.0 name for the slot; 1.1.2 renamed it to
// SetCaptureFilePathTemplate without changing behavior.
func (a API100) SetLogFilePathTemplate(pathTemplate string) error {
	if err := a.c.require(stateLoaded); err != nil {
		return err
	}
	a.c.raw.SetCaptureFilePathTemplate(pathTemplate)
	return nil
}

// LogFilePathTemplate returns the current capture path template under its
// 1.0.0 name.
func (a API100) LogFilePathTemplate() (string, error) {
	if err := a.c.require(stateLoaded, stateCapturing); err != nil {
		return "", err
	}
	return a.c.raw.CaptureFilePathTemplate(), nil
}

// SetCaptureFilePathTemplate sets the path template capture files are saved
// under. See SetLogFilePathTemplate; 1.1.2 renamed the slot.
func (a API112) SetCaptureFilePathTemplate(pathTemplate string) error {
	if err := a.c.require(stateLoaded); err != nil {
		return err
	}
	a.c.raw.SetCaptureFilePathTemplate(pathTemplate)
	return nil
}

// CaptureFilePathTemplate returns the current capture path template.
func (a API112) CaptureFilePathTemplate() (string, error) {
	if err := a.c.require(stateLoaded, stateCapturing); err != nil {
		return "", err
	}
	return a.c.raw.CaptureFilePathTemplate(), nil
}
