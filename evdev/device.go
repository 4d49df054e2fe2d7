package evdev

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"unsafe"

	"github.com/juju/errors"
	inputevent "github.com/temoto/inputevent-go"
	"golang.org/x/sys/unix"

	"github.com/keytap/keytap/log2"
)

// InputDir is where the kernel exposes input devices as character files.
const InputDir = "/dev/input"

// A keyboard reports at least these event classes in EVIOCGBIT(0).
const requiredEventBits uint64 = 1<<evSyn | 1<<evKey | 1<<evMsc | 1<<evRep

// EVIOCGNAME result is bounded to this many bytes.
const deviceNameMaxLen = 512

// One underlying read returns at most this many whole records.
const maxEventsPerRead = 128

var ErrNoDevices = errors.New("no keyboard devices found")

type NotKeyboardError struct{ Path string }

func (e NotKeyboardError) Error() string { return "not a keyboard device: " + e.Path }

// Device is one opened input device file. It is owned by the Stream wrapping
// it and must not be shared; Wake is the one exception, see below.
type Device struct {
	name      string
	path      string
	f         *os.File
	fd        int
	wakeR     int
	wakeW     int
	closeOnce sync.Once
	closeErr  error
	readBuf   [maxEventsPerRead * inputevent.EventSizeof]byte
}

// openDevice opens path, rejects it unless the kernel reports the keyboard
// event classes, then switches the descriptor to nonblocking mode and reads
// the device name.
func openDevice(path string) (*Device, error) {
	f, err := os.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return nil, errors.Trace(err)
	}
	d := &Device{path: path, f: f, fd: int(f.Fd())}

	bits, err := d.eventTypeBits()
	if err != nil {
		f.Close()
		return nil, errors.Annotatef(err, "device=%s", path)
	}
	if !isKeyboardBits(bits) {
		f.Close()
		return nil, NotKeyboardError{Path: path}
	}

	if err = unix.SetNonblock(d.fd, true); err != nil {
		f.Close()
		return nil, errors.Annotatef(err, "device=%s set nonblock", path)
	}

	if d.name, err = d.readName(); err != nil {
		f.Close()
		return nil, errors.Annotatef(err, "device=%s", path)
	}

	if err = d.initWake(); err != nil {
		f.Close()
		return nil, errors.Annotatef(err, "device=%s", path)
	}
	return d, nil
}

// initWake creates the self-pipe that lets Wake unpark a poll on the device
// descriptor.
func (d *Device) initWake() error {
	var p [2]int
	if err := unix.Pipe2(p[:], unix.O_CLOEXEC|unix.O_NONBLOCK); err != nil {
		return errors.Annotate(err, "wake pipe")
	}
	d.wakeR, d.wakeW = p[0], p[1]
	return nil
}

// isKeyboardBits decides keyboard-ness from the supported event type mask.
// Extra bits are fine, missing required bits are not.
func isKeyboardBits(bits uint64) bool {
	return bits&requiredEventBits == requiredEventBits
}

func (d *Device) Name() string { return d.name }
func (d *Device) Path() string { return d.path }

// Close releases the descriptors. Call it from the goroutine that owns the
// device, after any parked WaitReady has returned; closing an fd another
// thread is still polling does not wake it. Wake is how other goroutines
// interrupt a parked wait.
func (d *Device) Close() error {
	d.closeOnce.Do(func() {
		d.closeErr = d.f.Close()
		unix.Close(d.wakeW)
		unix.Close(d.wakeR)
	})
	return d.closeErr
}

// Wake unblocks a parked WaitReady, which then fails with os.ErrClosed.
// Safe to call from any goroutine, any number of times.
func (d *Device) Wake() {
	// a single pending byte is enough, EAGAIN means one is already there
	_, _ = unix.Write(d.wakeW, []byte{0})
}

// readName queries EVIOCGNAME. The kernel hands back a NUL-terminated
// string; invalid bytes are replaced rather than rejected.
func (d *Device) readName() (string, error) {
	var buf [deviceNameMaxLen]byte
	if err := ioctl(uintptr(d.fd), eviocgname(uintptr(len(buf))), unsafe.Pointer(&buf[0])); err != nil {
		return "", errors.Trace(err)
	}
	name := buf[:]
	if i := bytes.IndexByte(name, 0); i >= 0 {
		name = name[:i]
	}
	return strings.ToValidUTF8(string(name), "�"), nil
}

// eventTypeBits queries EVIOCGBIT(0): the bitmask of event classes the
// device supports.
func (d *Device) eventTypeBits() (uint64, error) {
	var bits uint64
	if err := ioctl(uintptr(d.fd), eviocgbit(unsafe.Sizeof(bits)), unsafe.Pointer(&bits)); err != nil {
		return 0, errors.Trace(err)
	}
	return bits, nil
}

// WaitReady blocks until the descriptor is readable or Wake is called.
func (d *Device) WaitReady() error {
	fds := []unix.PollFd{
		{Fd: int32(d.fd), Events: unix.POLLIN},
		{Fd: int32(d.wakeR), Events: unix.POLLIN},
	}
	for {
		fds[0].Revents = 0
		fds[1].Revents = 0
		n, err := unix.Poll(fds, -1)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return errors.Trace(err)
		}
		if n == 0 {
			continue
		}
		if fds[1].Revents != 0 {
			return errors.Annotatef(os.ErrClosed, "device=%s", d.path)
		}
		if fds[0].Revents&(unix.POLLERR|unix.POLLHUP|unix.POLLNVAL) != 0 {
			return errors.Errorf("poll device=%s revents=%#x", d.path, fds[0].Revents)
		}
		return nil
	}
}

// ReadEvents performs one bounded nonblocking read and returns the whole
// records it yielded; partial trailing bytes are discarded. EAGAIN comes
// back raw so the caller can tell "would block" from real I/O failures.
func (d *Device) ReadEvents() ([]inputevent.InputEvent, error) {
	n, err := unix.Read(d.fd, d.readBuf[:])
	if err != nil {
		if isWouldBlock(err) {
			return nil, err
		}
		return nil, errors.Annotatef(err, "read device=%s", d.path)
	}
	whole := n / inputevent.EventSizeof
	recs := make([]inputevent.InputEvent, whole)
	for i := 0; i < whole; i++ {
		recs[i] = *(*inputevent.InputEvent)(unsafe.Pointer(&d.readBuf[i*inputevent.EventSizeof]))
	}
	return recs, nil
}

func isWouldBlock(err error) bool {
	return err == unix.EAGAIN || err == unix.EWOULDBLOCK
}

// FindKeyboards scans InputDir for keyboard devices. Devices that fail to
// open or fail the capability filter are skipped; an unreadable directory is
// a hard failure; zero keyboards is ErrNoDevices.
func FindKeyboards(log *log2.Log) ([]*Stream, error) {
	return findKeyboardsIn(InputDir, log)
}

func findKeyboardsIn(dir string, log *log2.Log) ([]*Stream, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Annotatef(err, "scan %s", dir)
	}

	var streams []*Stream
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		info, err := os.Stat(path)
		if err != nil || info.Mode()&os.ModeCharDevice == 0 {
			continue
		}
		s, err := OpenKeyboard(path, log)
		if err != nil {
			log.Debugf("evdev: skip device=%s err=%v", path, err)
			continue
		}
		log.Debugf("evdev: keyboard device=%s name=%q", path, s.Name())
		streams = append(streams, s)
	}
	if len(streams) == 0 {
		return nil, ErrNoDevices
	}
	return streams, nil
}

// OpenKeyboard opens one named device, applying the same keyboard filter as
// discovery. Callers own the returned stream and must Close it.
func OpenKeyboard(path string, log *log2.Log) (*Stream, error) {
	d, err := openDevice(path)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return newStream(d, log), nil
}
