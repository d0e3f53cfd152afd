package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEntity struct {
	ID    string
	Title string
}

func newFakeCollection() *Collection[fakeEntity] {
	return NewCollection(
		func(e fakeEntity) string { return e.ID },
		func(e *fakeEntity, id string) { e.ID = id },
	)
}

func TestTempIDUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		id := TempID()
		assert.True(t, IsTempID(id))
		_, dup := seen[id]
		assert.False(t, dup, "temp id repeated: %s", id)
		seen[id] = struct{}{}
	}
}

func TestInsertConfirmKeepsIdentity(t *testing.T) {
	c := newFakeCollection()
	tempID := TempID()
	c.Insert(fakeEntity{ID: tempID, Title: "deploy"})

	status, ok := c.Status(tempID)
	require.True(t, ok)
	assert.Equal(t, StatusPending, status)

	// Local edit while the create is in flight.
	c.Update(tempID, func(e *fakeEntity) { e.Title = "deploy to prod" })

	require.True(t, c.Confirm(tempID, "rec123"))

	// Same entity, durable id, no duplicate, local fields trusted.
	assert.Equal(t, 1, c.Len())
	_, found := c.Get(tempID)
	assert.False(t, found)
	got, found := c.Get("rec123")
	require.True(t, found)
	assert.Equal(t, "deploy to prod", got.Title)

	status, ok = c.Status("rec123")
	require.True(t, ok)
	assert.Equal(t, StatusConfirmed, status)
}

func TestMarkUnconfirmedKeepsEntity(t *testing.T) {
	c := newFakeCollection()
	tempID := TempID()
	c.Insert(fakeEntity{ID: tempID, Title: "offline note"})

	c.MarkUnconfirmed(tempID)

	got, found := c.Get(tempID)
	require.True(t, found)
	assert.Equal(t, "offline note", got.Title)
	status, _ := c.Status(tempID)
	assert.Equal(t, StatusUnconfirmed, status)
}

func TestCreateThenDeleteBeforeConfirm(t *testing.T) {
	c := newFakeCollection()
	tempID := TempID()
	c.Insert(fakeEntity{ID: tempID, Title: "short lived"})

	require.True(t, c.Delete(tempID))
	assert.Equal(t, 0, c.Len())

	// Stale create response arrives after the delete: the entity must
	// not reappear, and the caller is told to clean up the remote row.
	assert.False(t, c.Confirm(tempID, "rec999"))
	assert.Equal(t, 0, c.Len())
	_, found := c.Get("rec999")
	assert.False(t, found)
}

func TestReplaceOverwritesEverything(t *testing.T) {
	c := newFakeCollection()
	c.Insert(fakeEntity{ID: TempID(), Title: "stale"})
	c.Insert(fakeEntity{ID: TempID(), Title: "also stale"})

	c.Replace([]fakeEntity{
		{ID: "rec1", Title: "fresh"},
		{ID: "rec2", Title: "fresher"},
	})

	assert.Equal(t, 2, c.Len())
	got, found := c.Get("rec1")
	require.True(t, found)
	assert.Equal(t, "fresh", got.Title)
	status, _ := c.Status("rec1")
	assert.Equal(t, StatusConfirmed, status)
}

func TestUpdateAndDeleteUnknownID(t *testing.T) {
	c := newFakeCollection()
	assert.False(t, c.Update("missing", func(e *fakeEntity) { e.Title = "x" }))
	assert.False(t, c.Delete("missing"))
}

func TestFilterPreservesOrder(t *testing.T) {
	c := newFakeCollection()
	c.Replace([]fakeEntity{
		{ID: "a", Title: "keep"},
		{ID: "b", Title: "drop"},
		{ID: "c", Title: "keep"},
	})
	kept := c.Filter(func(e fakeEntity) bool { return e.Title == "keep" })
	require.Len(t, kept, 2)
	assert.Equal(t, "a", kept[0].ID)
	assert.Equal(t, "c", kept[1].ID)
}
