package platform

import "os/exec"

const macGlassSound = "/System/Library/Sounds/Glass.aiff"

func newAlarm() Alarm {
	path, err := exec.LookPath("afplay")
	if err != nil {
		return unsupportedAlarm{}
	}
	return &commandAlarm{path: path, args: []string{macGlassSound}}
}
