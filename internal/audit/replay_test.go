package audit

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "esgledger/pkg/domain-errors"
)

func strPtr(s string) *string { return &s }

func historyFixture() []Entry {
	return []Entry{
		{
			ID:     uuid.New(),
			Action: ActionCreate,
			Changes: []FieldChange{
				{Field: "Title", NewValue: "Water Usage"},
				{Field: "Narrative", NewValue: "Consumption fell."},
			},
		},
		{
			ID:     uuid.New(),
			Action: ActionUpdate,
			Changes: []FieldChange{
				{Field: "Narrative", OldValue: strPtr("Consumption fell."), NewValue: "Consumption fell 8%."},
			},
		},
		{
			ID:     uuid.New(),
			Action: ActionUpdate,
			Changes: []FieldChange{
				{Field: "Title", OldValue: strPtr("Water Usage"), NewValue: "Water Stewardship"},
				{Field: "OwnerID", NewValue: "user-7"},
			},
		},
	}
}

func TestReplayStateAt(t *testing.T) {
	history := historyFixture()

	t.Run("at creation", func(t *testing.T) {
		state, err := ReplayStateAt(history, history[0].ID)
		require.NoError(t, err)
		assert.Equal(t, map[string]string{
			"Title":     "Water Usage",
			"Narrative": "Consumption fell.",
		}, state)
	})

	t.Run("at last entry folds every change", func(t *testing.T) {
		state, err := ReplayStateAt(history, history[2].ID)
		require.NoError(t, err)
		assert.Equal(t, map[string]string{
			"Title":     "Water Stewardship",
			"Narrative": "Consumption fell 8%.",
			"OwnerID":   "user-7",
		}, state)
	})

	t.Run("unknown entry id", func(t *testing.T) {
		_, err := ReplayStateAt(history, uuid.New())
		assert.True(t, dErrors.Is(err, dErrors.CodeNotFound))
	})
}

func TestReplayCompare(t *testing.T) {
	history := historyFixture()

	t.Run("reports only touched fields", func(t *testing.T) {
		comparison, err := ReplayCompare(history, history[0].ID, history[1].ID)
		require.NoError(t, err)

		require.Len(t, comparison.Fields, 1)
		field := comparison.Fields[0]
		assert.Equal(t, "Narrative", field.Field)
		require.NotNil(t, field.Before)
		assert.Equal(t, "Consumption fell.", *field.Before)
		require.NotNil(t, field.After)
		assert.Equal(t, "Consumption fell 8%.", *field.After)
	})

	t.Run("field absent before", func(t *testing.T) {
		comparison, err := ReplayCompare(history, history[1].ID, history[2].ID)
		require.NoError(t, err)

		require.Len(t, comparison.Fields, 2)
		assert.Equal(t, "Title", comparison.Fields[0].Field)
		assert.Equal(t, "OwnerID", comparison.Fields[1].Field)
		assert.Nil(t, comparison.Fields[1].Before, "OwnerID did not exist at the from entry")
	})

	t.Run("from must precede to", func(t *testing.T) {
		_, err := ReplayCompare(history, history[2].ID, history[0].ID)
		assert.True(t, dErrors.Is(err, dErrors.CodeValidation))
	})

	t.Run("unknown boundary entry", func(t *testing.T) {
		_, err := ReplayCompare(history, uuid.New(), history[1].ID)
		assert.True(t, dErrors.Is(err, dErrors.CodeNotFound))
	})
}
