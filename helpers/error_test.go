package helpers

import (
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
)

func TestFoldErrors(t *testing.T) {
	t.Parallel()

	assert.NoError(t, FoldErrors(nil))
	assert.NoError(t, FoldErrors([]error{nil, nil}))

	err := FoldErrors([]error{
		errors.New("first"),
		nil,
		errors.New("second"),
	})
	assert.Error(t, err)
	assert.Equal(t, "first\nsecond", err.Error())
}
