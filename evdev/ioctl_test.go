package evdev

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Request values cross-checked against linux/input.h with a C compiler.
func TestRequestEncoding(t *testing.T) {
	t.Parallel()

	// EVIOCGNAME(512)
	assert.Equal(t, uintptr(0x82004506), eviocgname(512))
	// EVIOCGBIT(0, 8)
	assert.Equal(t, uintptr(0x80084520), eviocgbit(8))
}

func TestRequiredEventBits(t *testing.T) {
	t.Parallel()

	// sync=0x00 key=0x01 misc=0x04 autorepeat=0x14 as bit positions
	assert.Equal(t, uint64(0x100013), requiredEventBits)
}
