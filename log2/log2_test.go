package log2

import (
	"bytes"
	"fmt"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevels(t *testing.T) {
	t.Parallel()

	buf := bytes.NewBuffer(nil)
	l := NewWriter(buf, LInfo)
	l.SetFlags(0)

	l.Debugf("hidden var=%d", 42)
	l.Infof("state=%s", "ok")
	l.Errorf("problem code=%d", 7)
	assert.Equal(t, "state=ok\nerror: problem code=7\n", buf.String())

	buf.Reset()
	l.SetLevel(LDebug)
	l.Debugf("now visible")
	assert.Equal(t, "debug: now visible\n", buf.String())
}

func TestNilSafe(t *testing.T) {
	t.Parallel()

	var l *Log
	l.SetLevel(LAll)
	l.SetFlags(log.Lshortfile)
	l.SetErrorFunc(func(error) { t.Fatal("must not be called") })
	assert.False(t, l.Enabled(LError))
	l.Debugf("nothing")
	l.Infof("nothing")
	l.Errorf("nothing")
	assert.Nil(t, l.Clone(LDebug))
}

func TestErrorFunc(t *testing.T) {
	t.Parallel()

	ech := make(chan error, 2)
	l := NewWriter(bytes.NewBuffer(nil), LAll)
	l.SetFlags(0)
	l.SetErrorFunc(func(e error) { ech <- e })

	exact := fmt.Errorf("one particular issue")
	l.Error(exact)
	l.Errorf("trouble var=%.1f", 3.4)
	close(ech)

	assert.Equal(t, exact, <-ech)
	assert.Equal(t, "trouble var=3.4", (<-ech).Error())
}

func TestClone(t *testing.T) {
	t.Parallel()

	buf := bytes.NewBuffer(nil)
	l := NewWriter(buf, LError)
	l.SetFlags(0)

	c := l.Clone(LDebug)
	c.Debugf("deep detail")
	l.Debugf("still hidden")
	assert.Equal(t, "debug: deep detail\n", buf.String())
}
