// Package log2 is a small leveled logger on top of stdlib log.
// All methods are safe on a nil receiver, so library code logs
// unconditionally and callers pass a real logger only when they want output.
// NewTest routes output into t.Logf for parallel-test-safe logging.
package log2

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"sync/atomic"
	"testing"
)

type Level int32

const (
	LError Level = iota
	LInfo
	LDebug
	LAll Level = 1 << 30
)

const (
	LStdFlags     = log.Ltime | log.Lshortfile
	LServiceFlags = log.Lshortfile
	LTestFlags    = log.Lshortfile | log.Lmicroseconds
)

type FmtFunc func(format string, args ...interface{})

type Log struct {
	l       *log.Logger
	w       io.Writer
	level   int32
	onError func(error)
	fatalf  FmtFunc
}

func NewWriter(w io.Writer, level Level) *Log {
	if w == nil {
		return nil
	}
	return &Log{
		l:     log.New(w, "", LStdFlags),
		w:     w,
		level: int32(level),
	}
}

func NewStderr(level Level) *Log { return NewWriter(os.Stderr, level) }

type fmtWriter struct{ f FmtFunc }

func (fw fmtWriter) Write(b []byte) (int, error) {
	fw.f("%s", bytes.TrimRight(b, "\n"))
	return len(b), nil
}

func NewFunc(f FmtFunc, level Level) *Log { return NewWriter(fmtWriter{f}, level) }

func NewTest(t testing.TB, level Level) *Log {
	l := NewFunc(t.Logf, level)
	l.SetFlags(LTestFlags)
	l.fatalf = t.Fatalf
	return l
}

// Clone returns a logger with the same destination and flags but its own
// level.
func (lg *Log) Clone(level Level) *Log {
	if lg == nil {
		return nil
	}
	c := NewWriter(lg.w, level)
	c.l.SetFlags(lg.l.Flags())
	c.onError = lg.onError
	c.fatalf = lg.fatalf
	return c
}

func (lg *Log) SetLevel(l Level) {
	if lg == nil {
		return
	}
	atomic.StoreInt32(&lg.level, int32(l))
}

func (lg *Log) SetFlags(f int) {
	if lg == nil {
		return
	}
	lg.l.SetFlags(f)
}

// SetErrorFunc registers a hook called with every message logged at error
// level.
func (lg *Log) SetErrorFunc(f func(error)) {
	if lg == nil {
		return
	}
	lg.onError = f
}

func (lg *Log) Enabled(level Level) bool {
	if lg == nil {
		return false
	}
	return atomic.LoadInt32(&lg.level) >= int32(level)
}

func (lg *Log) output(level Level, s string) {
	if lg.Enabled(level) {
		lg.l.Output(3, s)
	}
}

func (lg *Log) Debugf(format string, args ...interface{}) {
	lg.output(LDebug, fmt.Sprintf("debug: "+format, args...))
}
func (lg *Log) Debug(args ...interface{}) {
	lg.output(LDebug, "debug: "+fmt.Sprint(args...))
}

func (lg *Log) Infof(format string, args ...interface{}) {
	lg.output(LInfo, fmt.Sprintf(format, args...))
}
func (lg *Log) Info(args ...interface{}) {
	lg.output(LInfo, fmt.Sprint(args...))
}

func (lg *Log) Errorf(format string, args ...interface{}) {
	if lg == nil {
		return
	}
	if lg.onError != nil {
		lg.onError(fmt.Errorf(format, args...))
	}
	lg.output(LError, "error: "+fmt.Sprintf(format, args...))
}

func (lg *Log) Error(args ...interface{}) {
	if lg == nil {
		return
	}
	if lg.onError != nil {
		lg.onError(argsError(args))
	}
	lg.output(LError, "error: "+fmt.Sprint(args...))
}

func (lg *Log) Fatalf(format string, args ...interface{}) {
	if lg != nil && lg.fatalf != nil {
		lg.fatalf(format, args...)
		return
	}
	lg.output(LError, "fatal: "+fmt.Sprintf(format, args...))
	os.Exit(1)
}

func (lg *Log) Fatal(args ...interface{}) {
	lg.Fatalf("%s", fmt.Sprint(args...))
}

// argsError preserves a sole error argument as-is for the error hook.
func argsError(args []interface{}) error {
	if len(args) == 1 {
		if e, ok := args[0].(error); ok {
			return e
		}
	}
	return fmt.Errorf("%s", fmt.Sprint(args...))
}
