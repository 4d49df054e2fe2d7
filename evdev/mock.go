package evdev

// Public API to easily fake keyboard streams in tests of capture consumers.

import (
	"os"
	"sync"
	"syscall"

	inputevent "github.com/temoto/inputevent-go"
	"golang.org/x/sys/unix"

	"github.com/keytap/keytap/log2"
)

// MockRead is one scripted device read: either a batch of raw records or an
// error. Err=unix.EAGAIN simulates a spurious readiness wakeup.
type MockRead struct {
	Records []inputevent.InputEvent
	Err     error
}

// MockSource replays scripted reads in order and blocks like a real device
// when the script is exhausted. Wake fails a parked WaitReady the way the
// real device's wake pipe does.
type MockSource struct {
	name      string
	path      string
	queue     chan MockRead
	wake      chan struct{}
	pending   *MockRead
	wakeOnce  sync.Once
	closeOnce sync.Once
}

// compile-time interface compliance test
var _ source = new(MockSource)

func NewMockSource(name, path string, capacity int) *MockSource {
	return &MockSource{
		name:  name,
		path:  path,
		queue: make(chan MockRead, capacity),
		wake:  make(chan struct{}),
	}
}

// NewMockStream wraps a MockSource in a Stream.
func NewMockStream(src *MockSource, log *log2.Log) *Stream {
	return newStream(src, log)
}

func (m *MockSource) Name() string { return m.name }
func (m *MockSource) Path() string { return m.path }

func (m *MockSource) Push(r MockRead) { m.queue <- r }

func (m *MockSource) PushRecords(recs ...inputevent.InputEvent) {
	m.Push(MockRead{Records: recs})
}

func (m *MockSource) PushErr(err error) { m.Push(MockRead{Err: err}) }

func (m *MockSource) Wake() {
	m.wakeOnce.Do(func() { close(m.wake) })
}

func (m *MockSource) Close() error {
	m.closeOnce.Do(func() { close(m.queue) })
	return nil
}

func (m *MockSource) WaitReady() error {
	select {
	case <-m.wake:
		return os.ErrClosed
	case r, ok := <-m.queue:
		if !ok {
			return unix.EBADF
		}
		m.pending = &r
		return nil
	}
}

func (m *MockSource) ReadEvents() ([]inputevent.InputEvent, error) {
	r := m.pending
	if r == nil {
		return nil, unix.EAGAIN
	}
	m.pending = nil
	if r.Err != nil {
		return nil, r.Err
	}
	return r.Records, nil
}

// NewRecord builds a raw kernel record with a fixed plausible timestamp.
func NewRecord(typ, code uint16, value int32) inputevent.InputEvent {
	return inputevent.InputEvent{
		Time:  syscall.Timeval{Sec: 1700000000, Usec: 250000},
		Type:  typ,
		Code:  code,
		Value: value,
	}
}

// NewKeyRecord builds a raw EV_KEY record.
func NewKeyRecord(code uint16, value int32) inputevent.InputEvent {
	return NewRecord(uint16(inputevent.EV_KEY), code, value)
}
