package set

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBits(t *testing.T) {
	s := MakeBits(0)

	assert.Equal(t, 0, s.Size())
	assert.False(t, s.IsSet(3))

	s.Set(3)
	s.Set(64)
	s.Set(200)

	assert.True(t, s.IsSet(3))
	assert.True(t, s.IsSet(200))
	assert.False(t, s.IsSet(4))
	assert.Equal(t, 3, s.Size())

	var keys []int
	s.Range(func(k int) bool {
		keys = append(keys, k)
		return true
	})

	assert.Equal(t, []int{3, 64, 200}, keys)

	s.Clear(64)
	s.Clear(1000)
	assert.Equal(t, 2, s.Size())

	x := MakeBits(0)
	x.Set(5)
	s.Merge(x)

	assert.True(t, s.IsSet(5))
	assert.Equal(t, 3, s.Size())
}
