// Package keytap captures raw keystrokes from Linux input devices
// (/dev/input/event*) and fans decoded key events out to a caller-supplied
// handler, one capture task per keyboard.
package keytap

import (
	"github.com/juju/errors"
	alive "github.com/temoto/alive/v2"

	"github.com/keytap/keytap/evdev"
	"github.com/keytap/keytap/helpers"
	"github.com/keytap/keytap/log2"
)

// ErrCaptureTasksExited is the only natural result of Capture: every
// per-device task has ended. A healthy capture session blocks forever.
var ErrCaptureTasksExited = errors.New("all capture tasks exited")

// Handler consumes per-device capture results.
//
// HandleEvents receives non-empty batches in kernel emission order. It runs
// on the device's own capture task: a slow handler blocks that device only,
// never the others. The capture core calls the handler read-only; guarding
// any state inside it is the handler's concern.
//
// HandleErr decides the failure policy for one device: return nil to keep
// polling it, return an error to end that device's task.
type Handler interface {
	HandleEvents(devicePath string, deviceName string, events []evdev.KeyEvent)
	HandleErr(devicePath string, deviceName string, err error) error
}

// Keytap owns a set of keyboard streams and runs the capture loop over them.
type Keytap struct {
	Log     *log2.Log
	handler Handler
	streams []*evdev.Stream
	alive   *alive.Alive
}

// New builds a capture session over all auto-discovered keyboards.
func New(handler Handler, log *log2.Log) (*Keytap, error) {
	streams, err := evdev.FindKeyboards(log)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return NewWithStreams(handler, log, streams...)
}

// NewWithDevices builds a capture session over an explicit device list.
// Every path is pushed through the same keyboard filter as discovery;
// non-qualifying paths are skipped and their errors folded into the result
// when nothing qualifies.
func NewWithDevices(handler Handler, log *log2.Log, paths ...string) (*Keytap, error) {
	var streams []*evdev.Stream
	var errs []error
	for _, path := range paths {
		s, err := evdev.OpenKeyboard(path, log)
		if err != nil {
			log.Debugf("keytap: skip device=%s err=%v", path, err)
			errs = append(errs, errors.Annotatef(err, "device=%s", path))
			continue
		}
		streams = append(streams, s)
	}
	if len(streams) == 0 {
		if err := helpers.FoldErrors(errs); err != nil {
			return nil, errors.Annotate(err, evdev.ErrNoDevices.Error())
		}
		return nil, evdev.ErrNoDevices
	}
	return NewWithStreams(handler, log, streams...)
}

// NewWithStreams builds a capture session over ready streams. Zero streams
// is rejected, an empty dispatcher is never started.
func NewWithStreams(handler Handler, log *log2.Log, streams ...*evdev.Stream) (*Keytap, error) {
	if handler == nil {
		panic("code error keytap handler=nil")
	}
	if len(streams) == 0 {
		return nil, evdev.ErrNoDevices
	}
	return &Keytap{
		Log:     log,
		handler: handler,
		streams: streams,
		alive:   alive.NewAlive(),
	}, nil
}

// DeviceInfo identifies one monitored keyboard.
type DeviceInfo struct {
	Path string
	Name string
}

// Devices reports the monitored device identities in discovery order.
func (k *Keytap) Devices() []DeviceInfo {
	ds := make([]DeviceInfo, len(k.streams))
	for i, s := range k.streams {
		ds[i] = DeviceInfo{Path: s.Path(), Name: s.Name()}
	}
	return ds
}

// Capture runs one task per keyboard and blocks until every task has ended,
// then reports ErrCaptureTasksExited. Call it once.
func (k *Keytap) Capture() error {
	for _, s := range k.streams {
		if !k.alive.Add(1) {
			break
		}
		go k.captureDevice(s)
	}
	k.alive.WaitTasks()
	return ErrCaptureTasksExited
}

// Stop ends all capture tasks. Waking the streams unparks tasks waiting on
// descriptor readiness; each task closes its own stream on the way out.
func (k *Keytap) Stop() {
	k.alive.Stop()
	for _, s := range k.streams {
		s.Wake()
	}
}

func (k *Keytap) captureDevice(s *evdev.Stream) {
	defer k.alive.Done()
	path, name := s.Path(), s.Name()
	k.Log.Debugf("keytap: capture start device=%s name=%q", path, name)
	defer s.Close()

	for k.alive.IsRunning() {
		batch, err := s.NextBatch()
		if !k.alive.IsRunning() {
			break
		}
		if err != nil {
			if herr := k.handler.HandleErr(path, name, err); herr != nil {
				k.Log.Errorf("keytap: capture abort device=%s err=%v", path, herr)
				break
			}
			continue
		}
		if len(batch) == 0 {
			continue
		}
		k.handler.HandleEvents(path, name, batch)
	}
	k.Log.Debugf("keytap: capture end device=%s", path)
}
