package evdev

import (
	"fmt"
	"math"
	"time"

	inputevent "github.com/temoto/inputevent-go"

	"github.com/keytap/keytap/log2"
)

// Event type bit positions from input-event-codes.h.
const (
	evSyn = 0x00
	evKey = 0x01
	evMsc = 0x04
	evRep = 0x14
)

// KeyEventCause is the action that fired a key event.
type KeyEventCause uint8

const (
	Release KeyEventCause = 0
	Press   KeyEventCause = 1
)

func (c KeyEventCause) String() string {
	switch c {
	case Release:
		return "release"
	case Press:
		return "press"
	}
	return fmt.Sprintf("KeyEventCause(%d)", uint8(c))
}

// KeyEvent is one decoded press or release.
type KeyEvent struct {
	Time  time.Time
	Cause KeyEventCause
	Code  KeyCode
}

func (e KeyEvent) String() string {
	return fmt.Sprintf("%s %s", e.Cause.String(), e.Code.String())
}

type UnsupportedEventTypeError struct{ Type uint16 }

func (e UnsupportedEventTypeError) Error() string {
	return fmt.Sprintf("unsupported event type: %#04x", e.Type)
}

type InvalidKeyEventError struct{ Value int32 }

func (e InvalidKeyEventError) Error() string {
	return fmt.Sprintf("invalid EV_KEY event: value=%d", e.Value)
}

type InvalidTimestampError struct{ Sec, Usec int64 }

func (e InvalidTimestampError) Error() string {
	return fmt.Sprintf("invalid timestamp: sec=%d usec=%d", e.Sec, e.Usec)
}

type InvalidKeyCodeError struct{ Code uint16 }

func (e InvalidKeyCodeError) Error() string {
	return fmt.Sprintf("invalid key code: %d", e.Code)
}

// DecodeEvent converts one kernel input record into a KeyEvent.
// Non-key records, values other than 0/1, out-of-range timestamps and
// unknown key codes are rejected with a typed error.
func DecodeEvent(rec inputevent.InputEvent) (KeyEvent, error) {
	if rec.Type != uint16(inputevent.EV_KEY) {
		return KeyEvent{}, UnsupportedEventTypeError{Type: rec.Type}
	}

	var cause KeyEventCause
	switch inputevent.KeyEventState(rec.Value) {
	case inputevent.KeyStateUp:
		cause = Release
	case inputevent.KeyStateDown:
		cause = Press
	default:
		return KeyEvent{}, InvalidKeyEventError{Value: rec.Value}
	}

	sec := int64(rec.Time.Sec)
	usec := int64(rec.Time.Usec)
	// usec*1000 must fit an unsigned 32-bit nanosecond offset
	if usec < 0 || usec > math.MaxUint32/1000 {
		return KeyEvent{}, InvalidTimestampError{Sec: sec, Usec: usec}
	}

	code, err := KeyCodeFrom(rec.Code)
	if err != nil {
		return KeyEvent{}, err
	}

	return KeyEvent{
		Time:  time.Unix(sec, usec*1000),
		Cause: cause,
		Code:  code,
	}, nil
}

// decodeBatch decodes records independently, in order. Records that fail to
// decode are dropped; keyboards emit EV_SYN/EV_MSC records around every key
// so rejects here are the normal case, not a stream failure.
func decodeBatch(recs []inputevent.InputEvent, log *log2.Log) []KeyEvent {
	events := make([]KeyEvent, 0, len(recs))
	for _, rec := range recs {
		e, err := DecodeEvent(rec)
		if err != nil {
			if _, ok := err.(UnsupportedEventTypeError); !ok {
				log.Debugf("evdev: drop record type=%#04x code=%d value=%d err=%v", rec.Type, rec.Code, rec.Value, err)
			}
			continue
		}
		events = append(events, e)
	}
	return events
}
