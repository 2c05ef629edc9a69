package platform

import (
	"bufio"
	"errors"
	"fmt"
	"hash/fnv"
	"net"
	"strings"
	"sync"
	"time"
)

// ErrAlreadyRunning indicates another timer already holds the lock.
var ErrAlreadyRunning = errors.New("timer already running")

const probeTimeout = 500 * time.Millisecond

// InstanceGuard holds the single-instance lock. While held it answers
// probes on its port with the app name so a second process can tell a
// running timer apart from an unrelated program on the same port.
type InstanceGuard struct {
	mu       sync.Mutex
	listener net.Listener
	address  string
	done     chan struct{}
}

// AcquireSingleInstance binds a localhost port derived from appName so that
// only one timer runs per machine.
func AcquireSingleInstance(appName string) (*InstanceGuard, error) {
	address := fmt.Sprintf("127.0.0.1:%d", portFromName(appName))
	listener, err := net.Listen("tcp", address)
	if err != nil {
		if probe(address, appName) {
			return nil, fmt.Errorf("%w: %s", ErrAlreadyRunning, address)
		}
		return nil, fmt.Errorf("bind %s: %w", address, err)
	}
	guard := &InstanceGuard{listener: listener, address: address, done: make(chan struct{})}
	go guard.serve(listener, appName)
	return guard, nil
}

// Release frees the lock.
func (guard *InstanceGuard) Release() error {
	if guard == nil {
		return nil
	}
	guard.mu.Lock()
	listener := guard.listener
	guard.listener = nil
	guard.mu.Unlock()
	if listener == nil {
		return nil
	}
	err := listener.Close()
	<-guard.done
	return err
}

// Address returns the bound address.
func (guard *InstanceGuard) Address() string {
	if guard == nil {
		return ""
	}
	return guard.address
}

func (guard *InstanceGuard) serve(listener net.Listener, appName string) {
	defer close(guard.done)
	for {
		conn, err := listener.Accept()
		if err != nil {
			return
		}
		_ = conn.SetWriteDeadline(time.Now().Add(probeTimeout))
		_, _ = fmt.Fprintln(conn, appName)
		_ = conn.Close()
	}
}

// probe reports whether the process listening on address greets with appName.
func probe(address, appName string) bool {
	conn, err := net.DialTimeout("tcp", address, probeTimeout)
	if err != nil {
		return false
	}
	defer conn.Close()
	_ = conn.SetReadDeadline(time.Now().Add(probeTimeout))
	line, err := bufio.NewReader(conn).ReadString('\n')
	if err != nil {
		return false
	}
	return strings.TrimSpace(line) == appName
}

func portFromName(appName string) int {
	const (
		minPort = 20000
		maxPort = 39999
	)
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(appName))
	rangeSize := maxPort - minPort + 1
	return minPort + int(hash.Sum32()%uint32(rangeSize))
}
