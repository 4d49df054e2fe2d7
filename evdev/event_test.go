package evdev

import (
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	inputevent "github.com/temoto/inputevent-go"
)

func TestDecodeEventPress(t *testing.T) {
	t.Parallel()

	rec := inputevent.InputEvent{
		Time:  syscall.Timeval{Sec: 1700000000, Usec: 250000},
		Type:  uint16(inputevent.EV_KEY),
		Code:  uint16(KeyA),
		Value: 1,
	}
	e, err := DecodeEvent(rec)
	require.NoError(t, err)
	assert.Equal(t, Press, e.Cause)
	assert.Equal(t, KeyA, e.Code)
	assert.Equal(t, time.Unix(1700000000, 250000*1000), e.Time)
}

func TestDecodeEventRelease(t *testing.T) {
	t.Parallel()

	e, err := DecodeEvent(NewKeyRecord(uint16(KeyEnter), 0))
	require.NoError(t, err)
	assert.Equal(t, Release, e.Cause)
	assert.Equal(t, KeyEnter, e.Code)
}

func TestDecodeEventRejects(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		rec    inputevent.InputEvent
		expect error
	}{
		{"syn", NewRecord(evSyn, 0, 0), UnsupportedEventTypeError{Type: evSyn}},
		{"misc", NewRecord(evMsc, 4, 458756), UnsupportedEventTypeError{Type: evMsc}},
		{"autorepeat-value", NewKeyRecord(uint16(KeyA), 2), InvalidKeyEventError{Value: 2}},
		{"negative-value", NewKeyRecord(uint16(KeyA), -1), InvalidKeyEventError{Value: -1}},
		{"unknown-code", NewKeyRecord(0x2ff, 1), InvalidKeyCodeError{Code: 0x2ff}},
		{"unused-code-84", NewKeyRecord(84, 1), InvalidKeyCodeError{Code: 84}},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			_, err := DecodeEvent(c.rec)
			assert.Equal(t, c.expect, err)
		})
	}
}

func TestDecodeEventBadTimestamp(t *testing.T) {
	t.Parallel()

	rec := NewKeyRecord(uint16(KeyA), 1)
	rec.Time.Usec = -1
	_, err := DecodeEvent(rec)
	assert.Equal(t, InvalidTimestampError{Sec: 1700000000, Usec: -1}, err)

	// usec*1000 would not fit 32 bits of nanoseconds
	rec = NewKeyRecord(uint16(KeyA), 1)
	rec.Time.Usec = 5000000
	_, err = DecodeEvent(rec)
	assert.Equal(t, InvalidTimestampError{Sec: 1700000000, Usec: 5000000}, err)
}

func TestDecodeBatchPermissive(t *testing.T) {
	t.Parallel()

	recs := []inputevent.InputEvent{
		NewRecord(evMsc, 4, 458756),
		NewKeyRecord(uint16(KeyH), 1),
		NewKeyRecord(0x2ff, 1), // malformed: unknown code
		NewKeyRecord(uint16(KeyH), 0),
		NewRecord(evSyn, 0, 0),
	}
	events := decodeBatch(recs, nil)
	require.Len(t, events, 2)
	assert.Equal(t, Press, events[0].Cause)
	assert.Equal(t, KeyH, events[0].Code)
	assert.Equal(t, Release, events[1].Cause)
	assert.Equal(t, KeyH, events[1].Code)
}

func TestKeyCodeFrom(t *testing.T) {
	t.Parallel()

	kc, err := KeyCodeFrom(30)
	require.NoError(t, err)
	assert.Equal(t, KeyA, kc)
	assert.Equal(t, "KEY_A", kc.String())
	assert.True(t, KeyMicMute.IsValid())

	_, err = KeyCodeFrom(249)
	assert.Equal(t, InvalidKeyCodeError{Code: 249}, err)
	assert.False(t, KeyCode(249).IsValid())
	assert.Equal(t, "KeyCode(249)", KeyCode(249).String())
}
