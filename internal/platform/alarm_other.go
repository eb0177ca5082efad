//go:build !linux && !darwin && !windows

package platform

func newAlarm() Alarm {
	return unsupportedAlarm{}
}
