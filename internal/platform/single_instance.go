package platform

import (
	"errors"
	"fmt"
	"hash/fnv"
	"net"
	"sync"
	"time"
)

// ErrAlreadyRunning indicates another instance already holds the lock.
var ErrAlreadyRunning = errors.New("instance already running")

const (
	minInstancePort = 20000
	maxInstancePort = 39999
	activateTimeout = time.Second
)

// InstanceGuard owns the loopback port that marks the running window.
// Connections to the port are activation requests from later launches.
type InstanceGuard struct {
	mu       sync.Mutex
	listener net.Listener
}

// AcquireSingleInstance binds a loopback port derived from appName.
// A second process with the same appName gets ErrAlreadyRunning.
func AcquireSingleInstance(appName string) (*InstanceGuard, error) {
	address := instanceAddress(appName)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyRunning, address)
	}
	return &InstanceGuard{listener: listener}, nil
}

// ServeActivations calls onActivate for every activation request until the
// guard is released. It blocks; run it on its own goroutine.
func (guard *InstanceGuard) ServeActivations(onActivate func()) {
	guard.mu.Lock()
	listener := guard.listener
	guard.mu.Unlock()
	if listener == nil {
		return
	}

	for {
		conn, err := listener.Accept()
		if err != nil {
			return
		}
		_ = conn.Close()
		if onActivate != nil {
			onActivate()
		}
	}
}

// Release frees the lock. It is safe on a nil guard and when called twice.
func (guard *InstanceGuard) Release() error {
	if guard == nil {
		return nil
	}
	guard.mu.Lock()
	defer guard.mu.Unlock()
	if guard.listener == nil {
		return nil
	}
	err := guard.listener.Close()
	guard.listener = nil
	return err
}

// ActivateRunning asks the instance holding appName's lock to show itself.
func ActivateRunning(appName string) error {
	conn, err := net.DialTimeout("tcp", instanceAddress(appName), activateTimeout)
	if err != nil {
		return fmt.Errorf("activate running instance: %w", err)
	}
	return conn.Close()
}

func instanceAddress(appName string) string {
	return fmt.Sprintf("127.0.0.1:%d", instancePort(appName))
}

func instancePort(appName string) int {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(appName))
	return minInstancePort + int(hash.Sum32()%uint32(maxInstancePort-minInstancePort+1))
}
