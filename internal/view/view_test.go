package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creodex/creo-checklist/internal/checklist"
	"github.com/creodex/creo-checklist/internal/model"
)

var entries = []model.Entry{
	{ID: "001", Name: "Sparkitt"},
	{ID: "002", Name: "Fleye"},
	{ID: "010", Name: "Deor"},
	{ID: "011", Name: "Deor Mata 010"},
	{ID: "012", Name: "ÉCLAIR"},
}

func ids(rows []Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Entry.ID
	}
	return out
}

func newStore(t *testing.T) *checklist.Store {
	t.Helper()
	s := checklist.NewStore([]string{"001", "002", "010", "011", "012"})
	require.NoError(t, s.Set("001", model.FlagSeen, true))
	require.NoError(t, s.Set("002", model.FlagCaught, true))
	return s
}

func TestApply_EmptyCriteriaReturnsAllInOrder(t *testing.T) {
	rows := Apply(Criteria{}, entries, newStore(t))
	assert.Equal(t, []string{"001", "002", "010", "011", "012"}, ids(rows))
}

func TestApply_Query(t *testing.T) {
	s := newStore(t)

	tests := []struct {
		query    string
		expected []string
	}{
		{"spark", []string{"001"}},
		{"SPARK", []string{"001"}},
		{"deor", []string{"010", "011"}},
		{"010", []string{"010", "011"}}, // id match plus name containing the id
		{"00", []string{}},               // ids only match exactly
		{"éclair", []string{"012"}},
		{"nothing", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			rows := Apply(Criteria{Query: tt.query}, entries, s)
			assert.Equal(t, tt.expected, ids(rows))
		})
	}
}

func TestApply_SeenOnlyExcludesCaught(t *testing.T) {
	rows := Apply(Criteria{SeenOnly: true}, entries, newStore(t))
	assert.Equal(t, []string{"001"}, ids(rows))
	for _, r := range rows {
		assert.False(t, r.Flags.Caught)
	}
}

func TestApply_CaughtOnly(t *testing.T) {
	rows := Apply(Criteria{CaughtOnly: true}, entries, newStore(t))
	require.Equal(t, []string{"002"}, ids(rows))
	assert.False(t, rows[0].SeenEditable)
}

func TestApply_MissingOnly(t *testing.T) {
	rows := Apply(Criteria{MissingOnly: true}, entries, newStore(t))
	assert.Equal(t, []string{"010", "011", "012"}, ids(rows))
}

func TestApply_CombinedFlagsAreConjunctive(t *testing.T) {
	rows := Apply(Criteria{SeenOnly: true, CaughtOnly: true}, entries, newStore(t))
	assert.Empty(t, rows)

	rows = Apply(Criteria{Query: "fle", CaughtOnly: true}, entries, newStore(t))
	assert.Equal(t, []string{"002"}, ids(rows))
}

func TestMatcher_Visible(t *testing.T) {
	e := model.Entry{ID: "001", Name: "Sparkitt"}
	assert.True(t, newMatcher(Criteria{Query: "001"}).visible(e, model.Flags{}))
	assert.False(t, newMatcher(Criteria{CaughtOnly: true}).visible(e, model.Flags{Seen: true}))
}

func TestCriteria_IsZero(t *testing.T) {
	assert.True(t, Criteria{}.IsZero())
	assert.False(t, Criteria{Query: "a"}.IsZero())
}
