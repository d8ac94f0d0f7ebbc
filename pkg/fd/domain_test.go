package fd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomain(t *testing.T) {
	t.Run("starts full", func(t *testing.T) {
		domain := NewDomain(70)

		assert.Equal(t, 70, domain.Count())
		assert.True(t, domain.Has(0))
		assert.True(t, domain.Has(69))
		assert.False(t, domain.Has(70))
	})

	t.Run("removes values", func(t *testing.T) {
		domain := NewDomain(3)

		assert.True(t, domain.Remove(1))
		assert.False(t, domain.Remove(1)) // already gone
		assert.Equal(t, []int{0, 2}, domain.Values())
	})

	t.Run("fixes a value", func(t *testing.T) {
		domain := NewDomain(5)

		assert.True(t, domain.Fix(3))
		assert.True(t, domain.Fixed())
		assert.Equal(t, 3, domain.Value())

		assert.False(t, domain.Fix(4)) // no longer available
	})

	t.Run("intersects", func(t *testing.T) {
		first, second := NewDomain(4), NewDomain(4)
		first.Remove(0)
		second.Remove(3)

		assert.True(t, first.Intersect(&second))
		assert.Equal(t, []int{1, 2}, first.Values())
		assert.False(t, first.Intersect(&second)) // already narrower
	})

	t.Run("clones independently", func(t *testing.T) {
		domain := NewDomain(3)
		cloned := domain.Clone()

		cloned.Remove(0)

		assert.True(t, domain.Has(0))
		assert.False(t, cloned.Has(0))
	})

	t.Run("reports emptiness", func(t *testing.T) {
		domain := NewDomain(1)
		domain.Remove(0)

		assert.True(t, domain.Empty())
		assert.Equal(t, -1, domain.Value())
	})
}
