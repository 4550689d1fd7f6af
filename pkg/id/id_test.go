package id

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewIsSortable(t *testing.T) {
	t.Parallel()

	ids := make([]string, 50)
	for i := range ids {
		ids[i] = New()
	}

	assert.True(t, sort.StringsAreSorted(ids))
	for _, v := range ids {
		assert.Len(t, v, 26)
		assert.True(t, Is(v))
	}
}

func TestIs(t *testing.T) {
	t.Parallel()

	assert.False(t, Is(""))
	assert.False(t, Is("EURUSD"))
	assert.False(t, Is("1"))
}

func TestCreated(t *testing.T) {
	t.Parallel()

	before := time.Now().Add(-time.Second)
	got := Created(New())

	assert.True(t, got.After(before))
	assert.True(t, Created("nope").IsZero())
}
