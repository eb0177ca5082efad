package platform

import (
	"os"
	"os/exec"
)

const freedesktopCompleteSound = "/usr/share/sounds/freedesktop/stereo/complete.oga"

func newAlarm() Alarm {
	var alarms FallbackAlarm
	if path, err := exec.LookPath("paplay"); err == nil {
		if _, statErr := os.Stat(freedesktopCompleteSound); statErr == nil {
			alarms = append(alarms, &commandAlarm{path: path, args: []string{freedesktopCompleteSound}})
		}
	}
	if path, err := exec.LookPath("canberra-gtk-play"); err == nil {
		alarms = append(alarms, &commandAlarm{path: path, args: []string{"--id=complete"}})
	}
	if len(alarms) == 0 {
		return unsupportedAlarm{}
	}
	return alarms
}
