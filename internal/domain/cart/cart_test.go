package cart

import (
	"context"
	"testing"

	"github.com/example/floraison/internal/domain/catalog"
	"github.com/example/floraison/internal/infrastructure/journal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const session = "session-1"

func newTestStore() (*Store, *mocks.MockJournal) {
	j := mocks.NewMockJournal()
	return NewStore(j), j
}

func sunflower() catalog.Product {
	return catalog.Product{
		ID:     "sunflower-bouquet",
		Name:   "Sunflower Bouquet",
		Price:  1699,
		Recipe: catalog.Recipe{"sunflower": 2},
	}
}

func rose() catalog.Product {
	return catalog.Product{
		ID:     "rose-bouquet",
		Name:   "Rose Bouquet",
		Price:  1899,
		Recipe: catalog.Recipe{"rose": 2},
	}
}

func TestStore_Add_RepeatedEntriesAreRepeatedUnits(t *testing.T) {
	store, j := newTestStore()
	ctx := context.Background()

	store.Add(ctx, session, sunflower())
	store.Add(ctx, session, sunflower())
	store.Add(ctx, session, rose())

	items := store.Items(session)
	require.Len(t, items, 3)
	assert.Equal(t, "sunflower-bouquet", items[0].ID)
	assert.Equal(t, "sunflower-bouquet", items[1].ID)
	assert.Equal(t, "rose-bouquet", items[2].ID)

	assert.Len(t, j.AppendCalls, 3)
	assert.Equal(t, EventItemAdded, j.AppendCalls[0].EventType)
}

func TestStore_Total_ExactSum(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()

	store.Add(ctx, session, sunflower())
	store.Add(ctx, session, sunflower())
	store.Add(ctx, session, rose())

	assert.Equal(t, 1699+1699+1899, store.Total(session))
}

func TestStore_RemoveOne_RemovesSingleUnit(t *testing.T) {
	store, j := newTestStore()
	ctx := context.Background()

	store.Add(ctx, session, sunflower())
	store.Add(ctx, session, sunflower())

	removed := store.RemoveOne(ctx, session, "sunflower-bouquet")

	assert.True(t, removed)
	assert.Len(t, store.Items(session), 1)
	assert.Equal(t, EventItemRemoved, j.AppendCalls[len(j.AppendCalls)-1].EventType)
}

func TestStore_RemoveOne_MissingProduct(t *testing.T) {
	store, j := newTestStore()
	ctx := context.Background()

	store.Add(ctx, session, sunflower())

	removed := store.RemoveOne(ctx, session, "rose-bouquet")

	assert.False(t, removed)
	assert.Len(t, store.Items(session), 1)
	assert.Len(t, j.AppendCalls, 1) // only the add was journaled
}

func TestStore_Clear_EmptiesCart(t *testing.T) {
	store, j := newTestStore()
	ctx := context.Background()

	store.Add(ctx, session, sunflower())
	store.Clear(ctx, session)

	assert.Empty(t, store.Items(session))
	assert.Equal(t, 0, store.Total(session))
	assert.Equal(t, EventCartCleared, j.AppendCalls[len(j.AppendCalls)-1].EventType)
}

func TestStore_SessionsAreIsolated(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()

	store.Add(ctx, "session-a", sunflower())
	store.Add(ctx, "session-b", rose())

	require.Len(t, store.Items("session-a"), 1)
	require.Len(t, store.Items("session-b"), 1)
	assert.Equal(t, "sunflower-bouquet", store.Items("session-a")[0].ID)
	assert.Equal(t, "rose-bouquet", store.Items("session-b")[0].ID)
}

func TestStore_Items_ReturnsCopies(t *testing.T) {
	store, _ := newTestStore()
	ctx := context.Background()

	store.Add(ctx, session, sunflower())

	items := store.Items(session)
	items[0].Recipe["sunflower"] = 999

	fresh := store.Items(session)
	assert.Equal(t, 2, fresh[0].Recipe["sunflower"])
}
