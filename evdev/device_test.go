package evdev

import (
	"os"
	"testing"
	"time"
	"unsafe"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	inputevent "github.com/temoto/inputevent-go"
)

func TestIsKeyboardBits(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		bits   uint64
		expect bool
	}{
		{"zero", 0, false},
		{"exact", requiredEventBits, true},
		{"extra-bits", requiredEventBits | 1<<0x02 | 1<<0x03 | 1<<0x11, true},
		{"all-ones", ^uint64(0), true},
		{"missing-sync", requiredEventBits &^ (1 << evSyn), false},
		{"missing-key", requiredEventBits &^ (1 << evKey), false},
		{"missing-misc", requiredEventBits &^ (1 << evMsc), false},
		{"missing-autorepeat", requiredEventBits &^ (1 << evRep), false},
		{"mouse-like", 1<<evSyn | 1<<evKey | 1<<0x02, false},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expect, isKeyboardBits(c.bits))
		})
	}
}

// pipeDevice builds a Device over a plain pipe so the poll/read/wake paths
// run against a real descriptor.
func pipeDevice(t *testing.T) (*Device, *os.File) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	t.Cleanup(func() { w.Close() })

	d := &Device{name: "pipe", path: "pipe", f: r, fd: int(r.Fd())}
	require.NoError(t, d.initWake())
	t.Cleanup(func() { d.Close() })
	return d, w
}

func TestDeviceWaitReadyReadable(t *testing.T) {
	t.Parallel()

	d, w := pipeDevice(t)
	rec := NewKeyRecord(uint16(KeyA), 1)
	buf := (*[inputevent.EventSizeof]byte)(unsafe.Pointer(&rec))[:]
	_, err := w.Write(buf)
	require.NoError(t, err)

	require.NoError(t, d.WaitReady())
	recs, err := d.ReadEvents()
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, uint16(KeyA), recs[0].Code)
	assert.Equal(t, int32(1), recs[0].Value)
}

func TestDeviceWakeUnparksWaitReady(t *testing.T) {
	t.Parallel()

	d, _ := pipeDevice(t)
	done := make(chan error, 1)
	go func() { done <- d.WaitReady() }()

	// let the waiter park in poll before waking it
	time.Sleep(50 * time.Millisecond)
	d.Wake()

	select {
	case err := <-done:
		require.Error(t, err)
		assert.Equal(t, os.ErrClosed, errors.Cause(err))
	case <-time.After(5 * time.Second):
		t.Fatal("WaitReady still parked after Wake")
	}
}

func TestDeviceWakeBeforeWaitReady(t *testing.T) {
	t.Parallel()

	d, _ := pipeDevice(t)
	d.Wake()
	d.Wake() // second wake byte may be dropped, one is enough

	err := d.WaitReady()
	require.Error(t, err)
	assert.Equal(t, os.ErrClosed, errors.Cause(err))
}

func TestFindKeyboardsBadDir(t *testing.T) {
	t.Parallel()

	_, err := findKeyboardsIn("/nonexistent-input-dir", nil)
	assert.Error(t, err)
	assert.NotEqual(t, ErrNoDevices, err)
}

func TestFindKeyboardsEmptyDir(t *testing.T) {
	t.Parallel()

	// no character devices in a fresh tempdir
	_, err := findKeyboardsIn(t.TempDir(), nil)
	assert.Equal(t, ErrNoDevices, err)
}
