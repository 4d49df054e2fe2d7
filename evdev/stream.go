package evdev

import (
	"github.com/juju/errors"
	inputevent "github.com/temoto/inputevent-go"

	"github.com/keytap/keytap/log2"
)

// source is the device side of a Stream: readiness wait plus one bounded
// nonblocking read. *Device is the real thing, mocks stand in for tests.
type source interface {
	Name() string
	Path() string
	WaitReady() error
	ReadEvents() ([]inputevent.InputEvent, error)
	Wake()
	Close() error
}

// compile-time interface compliance test
var _ source = new(Device)

// Stream adapts a nonblocking device into a sequence of decoded key events.
// Kernel reads yield 0..N records at a time; Stream buffers one such batch
// and replays it, reading again only when the buffer is drained.
//
// Stream has no natural end. It is not safe for concurrent use; each stream
// belongs to exactly one capture task.
type Stream struct {
	src   source
	log   *log2.Log
	batch []KeyEvent
	pos   int
}

func newStream(src source, log *log2.Log) *Stream {
	return &Stream{src: src, log: log}
}

func (s *Stream) Name() string { return s.src.Name() }
func (s *Stream) Path() string { return s.src.Path() }

// Close releases the descriptor. Call it from the goroutine that owns the
// stream; to interrupt a wait in progress from elsewhere, Wake first.
func (s *Stream) Close() error { return s.src.Close() }

// Wake unblocks a wait in progress, failing the owner's pending Next or
// NextBatch with os.ErrClosed. Safe to call from any goroutine.
func (s *Stream) Wake() { s.src.Wake() }

// Next returns one key event, reading from the device only when the
// buffered batch is exhausted. An I/O error is one failed step: the stream
// stays usable and the following call reads again.
func (s *Stream) Next() (KeyEvent, error) {
	if s.pos < len(s.batch) {
		e := s.batch[s.pos]
		s.pos++
		return e, nil
	}
	if err := s.fill(); err != nil {
		return KeyEvent{}, errors.Trace(err)
	}
	s.pos = 1
	return s.batch[0], nil
}

// NextBatch returns the undelivered remainder of the buffered batch, or
// performs a new read and returns the whole fresh batch. The result is
// never empty on success and preserves kernel emission order.
func (s *Stream) NextBatch() ([]KeyEvent, error) {
	if s.pos < len(s.batch) {
		b := s.batch[s.pos:]
		s.pos = len(s.batch)
		return b, nil
	}
	if err := s.fill(); err != nil {
		return nil, errors.Trace(err)
	}
	s.pos = len(s.batch)
	return s.batch, nil
}

// fill blocks until a read produces at least one decodable event.
// A read that would block is a spurious readiness wakeup, and a read that
// decodes to nothing (sync/misc records only) is treated the same: keep
// waiting, neither is end-of-stream.
func (s *Stream) fill() error {
	for {
		if err := s.src.WaitReady(); err != nil {
			return errors.Trace(err)
		}
		recs, err := s.src.ReadEvents()
		if err != nil {
			if isWouldBlock(err) {
				continue
			}
			return errors.Trace(err)
		}
		events := decodeBatch(recs, s.log)
		if len(events) == 0 {
			continue
		}
		s.batch = events
		s.pos = 0
		return nil
	}
}
