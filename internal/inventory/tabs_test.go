package inventory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddTabSelectsNewTab(t *testing.T) {
	stubIDs(t)
	st := barState()

	id, err := st.AddTab("  Rooftop ")
	require.NoError(t, err)
	assert.Equal(t, "tab-1", id)

	tab := st.Tab(id)
	require.NotNil(t, tab)
	assert.Equal(t, "Rooftop", tab.Name)
	assert.NotNil(t, tab.Wells)
	assert.Empty(t, tab.Wells)
	assert.Equal(t, id, st.CurrentTabID)
	assert.Equal(t, "", st.CurrentWellName)
}

func TestAddTabDuplicateLeavesStateUnchanged(t *testing.T) {
	stubIDs(t)
	st := barState()
	before := st.Clone()

	id, err := st.AddTab("Main Bar")

	assert.Empty(t, id)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateName))
	var dup *DuplicateNameError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, KindTab, dup.Kind)
	assert.Equal(t, "Main Bar", dup.Name)
	assert.Equal(t, `there is already a tab named "Main Bar"`, err.Error())
	assert.Equal(t, before, st)
}

func TestAddTabIsCaseSensitive(t *testing.T) {
	stubIDs(t)
	st := barState()

	_, err := st.AddTab("main bar")
	require.NoError(t, err)
	assert.Len(t, st.Tabs, 3)
}

func TestAddTabBlankIsIgnored(t *testing.T) {
	st := barState()
	before := st.Clone()

	id, err := st.AddTab("   ")
	require.NoError(t, err)
	assert.Empty(t, id)
	assert.Equal(t, before, st)
}

func TestRemoveTabCurrentMovesToFirst(t *testing.T) {
	st := barState()
	st.CurrentTabID = "b"
	st.CurrentWellName = ""

	require.True(t, st.RemoveTab("b"))
	assert.Equal(t, "a", st.CurrentTabID)
	assert.Equal(t, "Well 1", st.CurrentWellName)

	require.True(t, st.RemoveTab("a"))
	assert.Empty(t, st.Tabs)
	assert.Equal(t, "", st.CurrentTabID)
	assert.Equal(t, "", st.CurrentWellName)
}

func TestRemoveTabOtherKeepsSelection(t *testing.T) {
	st := barState()

	require.True(t, st.RemoveTab("b"))
	assert.Equal(t, "a", st.CurrentTabID)
	assert.Equal(t, "Well 1", st.CurrentWellName)
	assert.False(t, st.RemoveTab("missing"))
}

func TestRenameTab(t *testing.T) {
	st := barState()

	changed, err := st.RenameTab("a", " Front Bar ")
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "Front Bar", st.Tab("a").Name)
	assert.Equal(t, "a", st.CurrentTabID)
	assert.Equal(t, "Well 1", st.CurrentWellName)
	assert.Len(t, st.Tab("a").Wells, 2)
}

func TestRenameTabCollision(t *testing.T) {
	st := barState()
	before := st.Clone()

	changed, err := st.RenameTab("a", "Patio")
	assert.False(t, changed)
	assert.ErrorIs(t, err, ErrDuplicateName)
	assert.Equal(t, before, st)
}

func TestRenameTabToOwnNameIsNoOp(t *testing.T) {
	st := barState()

	changed, err := st.RenameTab("a", "Main Bar")
	require.NoError(t, err)
	assert.False(t, changed)

	changed, err = st.RenameTab("missing", "Anything")
	require.NoError(t, err)
	assert.False(t, changed)

	changed, err = st.RenameTab("a", "  ")
	require.NoError(t, err)
	assert.False(t, changed)
}
