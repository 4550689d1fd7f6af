package desk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOwnerGetReturnsCopy(t *testing.T) {
	t.Parallel()

	o := NewOwner([]int{1, 2, 3})
	got := o.Get()
	got[0] = 99

	assert.Equal(t, []int{1, 2, 3}, o.Get())
}

func TestOwnerApplyNotifiesOnChange(t *testing.T) {
	t.Parallel()

	o := NewOwner([]int{1})
	var seen [][]int
	o.Subscribe(func(items []int) { seen = append(seen, items) })

	out := o.Apply(func(items []int) ([]int, bool) {
		return append(items, 2), true
	})
	assert.Equal(t, []int{1, 2}, out)

	o.Apply(func(items []int) ([]int, bool) {
		items[0] = 42 // discarded because no change is reported
		return items, false
	})

	assert.Equal(t, [][]int{{1, 2}}, seen)
	assert.Equal(t, []int{1, 2}, o.Get())
}

func TestOwnerListenersRunInOrder(t *testing.T) {
	t.Parallel()

	o := NewOwner[string](nil)
	var order []string
	o.Subscribe(func([]string) { order = append(order, "first") })
	o.Subscribe(func([]string) { order = append(order, "second") })

	o.Apply(func(items []string) ([]string, bool) { return append(items, "x"), true })

	assert.Equal(t, []string{"first", "second"}, order)
}
