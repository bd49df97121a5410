package store

import (
	"testing"

	"github.com/neo-rakk/smala/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreReadAbsentKey(t *testing.T) {
	s := NewMemoryStore()

	doc, err := s.Read("live-dz")
	require.NoError(t, err)
	assert.Nil(t, doc)
}

func TestMemoryStoreUpsertReplaces(t *testing.T) {
	s := NewMemoryStore()

	require.NoError(t, s.Upsert(&models.RoomDocument{ID: "live-dz", Payload: []byte(`{"v":1}`)}))
	require.NoError(t, s.Upsert(&models.RoomDocument{ID: "live-dz", Payload: []byte(`{"v":2}`)}))

	doc, err := s.Read("live-dz")
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Equal(t, `{"v":2}`, string(doc.Payload))
	assert.False(t, doc.UpdatedAt.IsZero())
}

func TestMemoryStoreReadReturnsCopy(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.Upsert(&models.RoomDocument{ID: "live-dz", Payload: []byte(`{"v":1}`)}))

	doc, err := s.Read("live-dz")
	require.NoError(t, err)
	doc.Payload[1] = 'x'

	again, err := s.Read("live-dz")
	require.NoError(t, err)
	assert.Equal(t, `{"v":1}`, string(again.Payload))
}

func TestMemoryStoreSubscribe(t *testing.T) {
	s := NewMemoryStore()

	var got []*models.RoomDocument
	unsubscribe := s.Subscribe("live-dz", func(doc *models.RoomDocument) {
		got = append(got, doc)
	})

	require.NoError(t, s.Upsert(&models.RoomDocument{ID: "live-dz", Payload: []byte(`{}`)}))
	require.NoError(t, s.Upsert(&models.RoomDocument{ID: "other", Payload: []byte(`{}`)}))
	require.NoError(t, s.Delete("live-dz"))

	require.Len(t, got, 2)
	assert.NotNil(t, got[0])
	assert.Nil(t, got[1])

	unsubscribe()
	require.NoError(t, s.Upsert(&models.RoomDocument{ID: "live-dz", Payload: []byte(`{}`)}))
	assert.Len(t, got, 2)
}
