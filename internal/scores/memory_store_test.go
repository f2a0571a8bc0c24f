package scores

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/dkaratas/vrlearn-backend/internal/activity"
	"github.com/dkaratas/vrlearn-backend/internal/models"
	"github.com/dkaratas/vrlearn-backend/internal/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func submit(t *testing.T, store Store, email string, id activity.ID, score int) error {
	t.Helper()
	return store.Update(context.Background(), email, func(existing *models.ScoreRecord) (*models.ScoreRecord, *models.ScoreSnapshot, error) {
		return scoring.Merge(existing, id, score, email, time.Now().UTC())
	})
}

func TestMemoryStoreGetNotFound(t *testing.T) {
	store := NewMemoryStore()
	_, err := store.Get(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)

	history, err := store.History(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestMemoryStoreUpdateRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, submit(t, store, "alice@example.com", activity.RoadCrossing, 7))

	record, err := store.Get(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"road-crossing": 7}, record.Current.Data())

	history, err := store.History(context.Background(), "alice@example.com")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, map[string]int{"road-crossing": 7}, history[0].Scores.Data())
}

func TestMemoryStoreFailedMergeLeavesNothing(t *testing.T) {
	store := NewMemoryStore()
	err := submit(t, store, "alice@example.com", activity.ObjectQuiz, 11)
	assert.ErrorIs(t, err, scoring.ErrScoreOutOfRange)

	_, err = store.Get(context.Background(), "alice@example.com")
	assert.ErrorIs(t, err, ErrNotFound)

	history, err := store.History(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Empty(t, history)
}

// Two concurrent submissions for different activities must both land in
// Current: neither read-merge-write cycle may clobber the other.
func TestMemoryStoreConcurrentSubmissionsNoLostUpdate(t *testing.T) {
	store := NewMemoryStore()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		assert.NoError(t, submit(t, store, "alice@example.com", activity.CommunicationQuiz, 5))
	}()
	go func() {
		defer wg.Done()
		assert.NoError(t, submit(t, store, "alice@example.com", activity.ObjectQuiz, 8))
	}()
	wg.Wait()

	record, err := store.Get(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{
		"communication-quiz": 5,
		"object-quiz":        8,
	}, record.Current.Data())

	history, err := store.History(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Len(t, history, 2)
}

func TestMemoryStoreConcurrentSameActivityKeepsMax(t *testing.T) {
	store := NewMemoryStore()

	var wg sync.WaitGroup
	for _, score := range []int{2, 9, 5, 7, 1} {
		wg.Add(1)
		go func(score int) {
			defer wg.Done()
			assert.NoError(t, submit(t, store, "alice@example.com", activity.ObjectQuiz, score))
		}(score)
	}
	wg.Wait()

	record, err := store.Get(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, 9, record.Current.Data()["object-quiz"])

	history, err := store.History(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Len(t, history, 5)
}

func TestMemoryStoreUsersAreIndependent(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, submit(t, store, "alice@example.com", activity.SolarSystem, 5))
	require.NoError(t, submit(t, store, "bob@example.com", activity.SolarSystem, 2))

	alice, err := store.Get(context.Background(), "alice@example.com")
	require.NoError(t, err)
	bob, err := store.Get(context.Background(), "bob@example.com")
	require.NoError(t, err)

	assert.Equal(t, 5, alice.Current.Data()["solar-system"])
	assert.Equal(t, 2, bob.Current.Data()["solar-system"])
}
