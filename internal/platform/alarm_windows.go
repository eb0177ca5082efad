package platform

import "os/exec"

func newAlarm() Alarm {
	path, err := exec.LookPath("powershell")
	if err != nil {
		return unsupportedAlarm{}
	}
	return &commandAlarm{path: path, args: []string{"-NoProfile", "-NonInteractive", "-Command", "[console]::beep(880,400)"}}
}
