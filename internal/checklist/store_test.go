package checklist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creodex/creo-checklist/internal/model"
)

var testIDs = []string{"001", "002", "003", "004"}

func TestNewStore_StartsClear(t *testing.T) {
	s := NewStore(testIDs)

	for _, id := range testIDs {
		f, ok := s.Flags(id)
		require.True(t, ok)
		assert.Equal(t, model.Flags{}, f, "entry %s", id)
		assert.True(t, s.SeenEditable(id))
	}
	assert.NotEmpty(t, s.ChecklistID())
	assert.Equal(t, testIDs, s.IDs())
}

func TestSet_CaughtImpliesSeen(t *testing.T) {
	s := NewStore(testIDs)

	require.NoError(t, s.Set("001", model.FlagCaught, true))
	assert.True(t, s.Get("001", model.FlagSeen))
	assert.True(t, s.Get("001", model.FlagCaught))
	assert.False(t, s.SeenEditable("001"))

	require.NoError(t, s.Set("001", model.FlagCaught, false))
	assert.True(t, s.Get("001", model.FlagSeen), "clearing caught leaves seen untouched")
	assert.False(t, s.Get("001", model.FlagCaught))
	assert.True(t, s.SeenEditable("001"))
}

func TestSet_ClearCaughtKeepsUnseen(t *testing.T) {
	s := NewStore(testIDs)

	// Seen may be cleared only after caught is cleared
	require.NoError(t, s.Set("002", model.FlagCaught, true))
	require.NoError(t, s.Set("002", model.FlagCaught, false))
	require.NoError(t, s.Set("002", model.FlagSeen, false))

	f, _ := s.Flags("002")
	assert.Equal(t, model.Flags{}, f)
}

func TestSet_SeenLockedWhileCaught(t *testing.T) {
	s := NewStore(testIDs)
	require.NoError(t, s.Set("001", model.FlagCaught, true))

	err := s.Set("001", model.FlagSeen, false)
	assert.ErrorIs(t, err, ErrSeenLocked)
	assert.True(t, s.Get("001", model.FlagSeen))

	// Re-asserting the current value is not an edit
	assert.NoError(t, s.Set("001", model.FlagSeen, true))
}

func TestSet_Errors(t *testing.T) {
	s := NewStore(testIDs)

	assert.ErrorIs(t, s.Set("999", model.FlagSeen, true), ErrUnknownEntry)
	assert.ErrorIs(t, s.Set("001", model.Flag("checked"), true), ErrInvalidFlag)
}

func TestToggle(t *testing.T) {
	s := NewStore(testIDs)

	require.NoError(t, s.Toggle("003", model.FlagSeen))
	assert.True(t, s.Get("003", model.FlagSeen))
	require.NoError(t, s.Toggle("003", model.FlagSeen))
	assert.False(t, s.Get("003", model.FlagSeen))
}

func TestBulkSet(t *testing.T) {
	s := NewStore(testIDs)

	n, err := s.BulkSet(model.FlagSeen, true)
	require.NoError(t, err)
	assert.Equal(t, len(testIDs), n)
	assert.True(t, s.AllSet(model.FlagSeen))

	require.NoError(t, s.Set("002", model.FlagCaught, true))

	n, err = s.BulkSet(model.FlagSeen, false)
	require.NoError(t, err)
	assert.Equal(t, len(testIDs)-1, n, "locked entry is skipped")
	assert.True(t, s.Get("002", model.FlagSeen))
	assert.False(t, s.Get("001", model.FlagSeen))
}

func TestBulkSet_CaughtSetsSeen(t *testing.T) {
	s := NewStore(testIDs)

	_, err := s.BulkSet(model.FlagCaught, true)
	require.NoError(t, err)
	assert.True(t, s.AllSet(model.FlagSeen))

	_, err = s.BulkSet(model.FlagCaught, false)
	require.NoError(t, err)
	assert.True(t, s.AllSet(model.FlagSeen), "clearing caught leaves seen untouched")
	assert.False(t, s.Get("001", model.FlagCaught))
}

func TestBulkSet_InvalidFlag(t *testing.T) {
	s := NewStore(testIDs)
	_, err := s.BulkSet(model.Flag("x"), true)
	assert.ErrorIs(t, err, ErrInvalidFlag)
}

func TestToggleAll_ReflectsState(t *testing.T) {
	s := NewStore(testIDs)

	// Partially set: toggling sets everything
	require.NoError(t, s.Set("001", model.FlagSeen, true))
	value, err := s.ToggleAll(model.FlagSeen)
	require.NoError(t, err)
	assert.True(t, value)
	assert.True(t, s.AllSet(model.FlagSeen))

	// Fully set: toggling clears
	value, err = s.ToggleAll(model.FlagSeen)
	require.NoError(t, err)
	assert.False(t, value)
	assert.Equal(t, len(testIDs), s.Summary().Missing)
}

func TestAllSet_EmptyStore(t *testing.T) {
	s := NewStore(nil)
	assert.False(t, s.AllSet(model.FlagSeen))
}

func TestReset(t *testing.T) {
	s := NewStore(testIDs)
	_, err := s.BulkSet(model.FlagCaught, true)
	require.NoError(t, err)

	s.Reset()
	assert.Equal(t, model.Summary{Total: 4, Missing: 4}, s.Summary())
}

func TestSummary(t *testing.T) {
	s := NewStore(testIDs)
	require.NoError(t, s.Set("001", model.FlagSeen, true))
	require.NoError(t, s.Set("002", model.FlagCaught, true))

	assert.Equal(t, model.Summary{Total: 4, Seen: 2, Caught: 1, Missing: 2}, s.Summary())
}

func TestSubscribe(t *testing.T) {
	s := NewStore(testIDs)

	var changes []Change
	unsubscribe := s.Subscribe(func(c Change) { changes = append(changes, c) })

	require.NoError(t, s.Set("001", model.FlagCaught, true))
	require.NoError(t, s.Set("001", model.FlagCaught, true)) // no-op, no notification
	_, err := s.BulkSet(model.FlagSeen, true)
	require.NoError(t, err)

	require.Len(t, changes, 2)
	assert.Equal(t, Change{ID: "001", Flags: model.Flags{Seen: true, Caught: true}}, changes[0])
	assert.True(t, changes[1].IsBulk())

	unsubscribe()
	require.NoError(t, s.Set("002", model.FlagSeen, true))
	assert.Len(t, changes, 2)
}

func TestSnapshot_IsCopy(t *testing.T) {
	s := NewStore(testIDs)
	snap := s.snapshot()
	snap["001"] = model.Flags{Seen: true}

	assert.False(t, s.Get("001", model.FlagSeen))
}
