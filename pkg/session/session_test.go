package session_test

import (
	"testing"

	"github.com/peydey/sdk-go/pkg/domain/user"
	"github.com/peydey/sdk-go/pkg/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate(t *testing.T) {
	store := session.NewStore()
	record := &user.Record{ID: "user_001", Name: "Muhammad Abdul Majid"}

	id := store.Create(record)
	require.NotEmpty(t, id)

	sess := store.Get()
	assert.True(t, sess.Authenticated)
	assert.Equal(t, id, sess.ID)
	assert.Same(t, record, sess.User)
}

func TestCreate_OverwritesPriorSession(t *testing.T) {
	store := session.NewStore()
	first := store.Create(&user.Record{ID: "user_001"})
	second := store.Create(&user.Record{ID: "user_002"})

	assert.NotEqual(t, first, second)

	sess := store.Get()
	assert.Equal(t, second, sess.ID)
	assert.Equal(t, "user_002", sess.User.ID)
}

func TestCreate_UniqueIDs(t *testing.T) {
	store := session.NewStore()
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		id := store.Create(&user.Record{ID: "user_001"})
		assert.False(t, seen[id], "duplicate session id %s", id)
		seen[id] = true
	}
}

func TestGet_EmptyStore(t *testing.T) {
	sess := session.NewStore().Get()
	assert.False(t, sess.Authenticated)
	assert.Empty(t, sess.ID)
	assert.Nil(t, sess.User)
}

func TestClear_Idempotent(t *testing.T) {
	store := session.NewStore()
	store.Create(&user.Record{ID: "user_001"})

	store.Clear()
	once := store.Get()
	store.Clear()
	twice := store.Get()

	assert.Equal(t, once, twice)
	assert.False(t, twice.Authenticated)
	assert.Empty(t, twice.ID)
	assert.Nil(t, twice.User)
}
