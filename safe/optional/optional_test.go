//go:build unit

package optional

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSome(t *testing.T) {
	t.Parallel()

	o := Some(42)

	assert.True(t, o.IsPresent())
	assert.False(t, o.IsAbsent())

	value, ok := o.Get()
	require.True(t, ok)
	assert.Equal(t, 42, value)
}

func TestNone(t *testing.T) {
	t.Parallel()

	o := None[string]()

	assert.False(t, o.IsPresent())
	assert.True(t, o.IsAbsent())

	value, ok := o.Get()
	assert.False(t, ok)
	assert.Empty(t, value)
}

func TestZeroValueIsAbsent(t *testing.T) {
	t.Parallel()

	var o Optional[int]

	assert.True(t, o.IsAbsent())
	assert.Equal(t, None[int](), o)
}

func TestSomeZeroValueIsPresent(t *testing.T) {
	t.Parallel()

	// A present zero is distinct from absence.
	o := Some(0)

	assert.True(t, o.IsPresent())
	assert.NotEqual(t, None[int](), o)
}

func TestOrZero(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 42, Some(42).OrZero())
	assert.Equal(t, 0, None[int]().OrZero())
	assert.Empty(t, None[string]().OrZero())
}

func TestOrElse(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 42, Some(42).OrElse(7))
	assert.Equal(t, 7, None[int]().OrElse(7))
}

func TestStructPayload(t *testing.T) {
	t.Parallel()

	type pair struct {
		a, b int
	}

	value, ok := Some(pair{a: 1, b: 2}).Get()
	require.True(t, ok)
	assert.Equal(t, pair{a: 1, b: 2}, value)

	fallback := pair{a: -1, b: -1}
	assert.Equal(t, fallback, None[pair]().OrElse(fallback))
}
