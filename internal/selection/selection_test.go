package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func visibleSet(ids ...string) *Set {
	s := NewSet()
	s.Reconcile(ids)
	return s
}

func TestToggleSelectsAndDeselects(t *testing.T) {
	s := visibleSet("a", "b", "c")

	s.Toggle("b")
	assert.True(t, s.IsSelected("b"))
	assert.Equal(t, 1, s.Count())

	s.Toggle("b")
	assert.False(t, s.IsSelected("b"))
	assert.Equal(t, 0, s.Count())
}

func TestToggleIgnoresNonVisibleID(t *testing.T) {
	s := visibleSet("a", "b")

	s.Toggle("ghost")

	assert.Equal(t, 0, s.Count())
	assert.False(t, s.IsSelected("ghost"))
}

func TestSelectAllTogglesBetweenAllAndNone(t *testing.T) {
	s := visibleSet("a", "b", "c")

	s.SelectAll()
	assert.Equal(t, 3, s.Count())

	// All already selected: the same action clears.
	s.SelectAll()
	assert.Equal(t, 0, s.Count())
}

func TestSelectAllCompletesPartialSelection(t *testing.T) {
	s := visibleSet("a", "b", "c")

	s.Toggle("a")
	s.SelectAll()

	assert.Equal(t, 3, s.Count())
}

func TestSelectAllOnEmptyPopulation(t *testing.T) {
	s := NewSet()
	s.SelectAll()
	assert.Equal(t, 0, s.Count())
}

func TestReconcileDropsHiddenIDs(t *testing.T) {
	s := visibleSet("a", "b", "c", "d")
	s.SelectAll()

	// Filter narrows the view; selection must follow.
	s.Reconcile([]string{"b", "d"})

	assert.Equal(t, 2, s.Count())
	assert.True(t, s.IsSelected("b"))
	assert.True(t, s.IsSelected("d"))
	assert.False(t, s.IsSelected("a"))
}

func TestReconcileKeepsSelectionWhenStillVisible(t *testing.T) {
	s := visibleSet("a", "b")
	s.Toggle("a")

	s.Reconcile([]string{"b", "a", "c"})

	assert.True(t, s.IsSelected("a"))
	assert.Equal(t, 1, s.Count())
}

func TestIDsFollowVisibleOrder(t *testing.T) {
	s := visibleSet("c", "a", "b")
	s.Toggle("b")
	s.Toggle("c")

	assert.Equal(t, []string{"c", "b"}, s.IDs())
}

func TestDispatchBulkClearsSelection(t *testing.T) {
	s := visibleSet("a", "b", "c")
	s.Toggle("a")
	s.Toggle("c")

	var gotAction string
	var gotIDs []string
	s.DispatchBulk("approve", BulkActionFunc(func(action string, ids []string) {
		gotAction = action
		gotIDs = ids
	}))

	assert.Equal(t, "approve", gotAction)
	assert.Equal(t, []string{"a", "c"}, gotIDs)
	assert.Equal(t, 0, s.Count())
}

func TestDispatchBulkEmptySelectionIsNoOp(t *testing.T) {
	s := visibleSet("a")

	called := false
	s.DispatchBulk("reject", BulkActionFunc(func(string, []string) {
		called = true
	}))

	assert.False(t, called)
}

func TestDispatchBulkClearsEvenWhenHandlerPanicsAreAbsent(t *testing.T) {
	// Clearing is unconditional: a handler that records failures for
	// some ids still leaves an empty selection behind.
	s := visibleSet("a", "b")
	s.SelectAll()

	s.DispatchBulk("reject", BulkActionFunc(func(_ string, ids []string) {
		require.Len(t, ids, 2)
	}))

	assert.Equal(t, 0, s.Count())
}

func TestFilterThenBulkScenario(t *testing.T) {
	// Select everything, narrow the view, dispatch: only the still
	// visible ids are acted on and the selection ends empty.
	s := visibleSet("p1", "p2", "p3", "p4")
	s.SelectAll()

	s.Reconcile([]string{"p2", "p4"})

	var gotIDs []string
	s.DispatchBulk("pause", BulkActionFunc(func(_ string, ids []string) {
		gotIDs = ids
	}))

	assert.Equal(t, []string{"p2", "p4"}, gotIDs)
	assert.Equal(t, 0, s.Count())
}
