package ptr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTo(t *testing.T) {
	p := To(3)
	require.NotNil(t, p)
	assert.Equal(t, 3, *p)

	// Each call returns a distinct pointer.
	assert.NotSame(t, To(3), To(3))
}

func TestTypedHelpers(t *testing.T) {
	assert.True(t, *Bool(true))
	assert.Equal(t, 0, *Int(0))
	assert.Equal(t, "w1.internal", *String("w1.internal"))
}

func TestDeref(t *testing.T) {
	assert.Equal(t, 1, Deref(nil, 1))
	assert.Equal(t, 0, Deref(Int(0), 1))
	assert.False(t, Deref(Bool(false), true))
}
