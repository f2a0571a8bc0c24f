package scoring

import (
	"testing"
	"time"

	"github.com/dkaratas/vrlearn-backend/internal/activity"
	"github.com/dkaratas/vrlearn-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

var now = time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)

func existingRecord(t *testing.T, current map[string]int) *models.ScoreRecord {
	t.Helper()
	return &models.ScoreRecord{
		Email:   "alice@example.com",
		Current: datatypes.NewJSONType(current),
	}
}

func TestMergeCreatesRecordOnFirstSubmission(t *testing.T) {
	record, snapshot, err := Merge(nil, activity.RoadCrossing, 7, "alice@example.com", now)
	require.NoError(t, err)

	assert.Equal(t, "alice@example.com", record.Email)
	assert.Equal(t, map[string]int{"road-crossing": 7}, record.Current.Data())
	assert.Equal(t, map[string]int{"road-crossing": 7}, snapshot.Scores.Data())
	assert.Equal(t, now, snapshot.Timestamp)
}

func TestMergeKeepsMaximum(t *testing.T) {
	cases := []struct {
		name     string
		existing int
		incoming int
		want     int
	}{
		{"higher score wins", 4, 7, 7},
		{"lower score does not regress", 7, 4, 7},
		{"equal score is a no-op", 7, 7, 7},
		{"zero never beats a real score", 7, 0, 7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			existing := existingRecord(t, map[string]int{"road-crossing": tc.existing})
			record, _, err := Merge(existing, activity.RoadCrossing, tc.incoming, "alice@example.com", now)
			require.NoError(t, err)
			assert.Equal(t, tc.want, record.Current.Data()["road-crossing"])
		})
	}
}

func TestMergeDoesNotTouchOtherActivities(t *testing.T) {
	existing := existingRecord(t, map[string]int{
		"communication-quiz": 3,
		"solar-system":       5,
	})

	record, _, err := Merge(existing, activity.ObjectQuiz, 8, "alice@example.com", now)
	require.NoError(t, err)

	assert.Equal(t, map[string]int{
		"communication-quiz": 3,
		"solar-system":       5,
		"object-quiz":        8,
	}, record.Current.Data())
}

func TestMergeSnapshotIsFullCopyOfCurrent(t *testing.T) {
	existing := existingRecord(t, map[string]int{"communication-quiz": 3})

	record, snapshot, err := Merge(existing, activity.ObjectQuiz, 8, "alice@example.com", now)
	require.NoError(t, err)

	// The snapshot holds the whole updated map, not a delta, and is an
	// independent copy of the record's map.
	assert.Equal(t, record.Current.Data(), snapshot.Scores.Data())
	snap := snapshot.Scores.Data()
	snap["object-quiz"] = 0
	assert.Equal(t, 8, record.Current.Data()["object-quiz"])
}

func TestMergeAppendsSnapshotForNoOpResubmission(t *testing.T) {
	existing := existingRecord(t, map[string]int{"road-crossing": 7})

	_, snapshot, err := Merge(existing, activity.RoadCrossing, 4, "alice@example.com", now)
	require.NoError(t, err)

	require.NotNil(t, snapshot)
	assert.Equal(t, map[string]int{"road-crossing": 7}, snapshot.Scores.Data())
}

func TestMergeDoesNotMutateExisting(t *testing.T) {
	existing := existingRecord(t, map[string]int{"road-crossing": 4})

	_, _, err := Merge(existing, activity.RoadCrossing, 9, "alice@example.com", now)
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"road-crossing": 4}, existing.Current.Data())
}

func TestMergeRejectsInvalidSubmissions(t *testing.T) {
	cases := []struct {
		name    string
		id      activity.ID
		score   int
		wantErr error
	}{
		{"unknown activity", activity.ID("laser-tag"), 3, ErrUnknownActivity},
		{"empty activity", activity.ID(""), 0, ErrUnknownActivity},
		{"above activity maximum", activity.ObjectQuiz, 11, ErrScoreOutOfRange},
		{"above small maximum", activity.GroceryShopping, 2, ErrScoreOutOfRange},
		{"negative score", activity.ObjectQuiz, -1, ErrScoreOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			record, snapshot, err := Merge(nil, tc.id, tc.score, "alice@example.com", now)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Nil(t, record)
			assert.Nil(t, snapshot)
		})
	}
}

func TestMergeAcceptsBoundaryScores(t *testing.T) {
	for _, id := range activity.All() {
		max, ok := activity.MaxScore(id)
		require.True(t, ok)

		record, _, err := Merge(nil, id, max, "alice@example.com", now)
		require.NoError(t, err)
		assert.Equal(t, max, record.Current.Data()[string(id)])

		record, _, err = Merge(nil, id, 0, "alice@example.com", now)
		require.NoError(t, err)
		assert.Equal(t, 0, record.Current.Data()[string(id)])
	}
}

func TestMergePreservesRecordIdentity(t *testing.T) {
	existing := existingRecord(t, map[string]int{"road-crossing": 4})
	existing.CreatedAt = now.Add(-48 * time.Hour)

	record, _, err := Merge(existing, activity.RoadCrossing, 9, "alice@example.com", now)
	require.NoError(t, err)

	assert.Equal(t, existing.ID, record.ID)
	assert.Equal(t, existing.CreatedAt, record.CreatedAt)
}
