package session

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStore_FreshSession(t *testing.T) {
	store := NewMemoryStore()

	sess := store.Get(42)
	assert.Equal(t, StateIdle, sess.State)
	assert.Empty(t, sess.Data)
}

func TestMemoryStore_SetStateKeepsData(t *testing.T) {
	store := NewMemoryStore()

	store.SetState(42, StateAddingBirthdayName, nil)

	sess := store.Get(42)
	assert.Equal(t, StateAddingBirthdayName, sess.State)
	assert.Empty(t, sess.Data)
}

func TestMemoryStore_SetStateMergesData(t *testing.T) {
	store := NewMemoryStore()

	store.SetData(42, KeyName, "Alice")
	store.SetState(42, StateAddingBirthdayDate, map[string]interface{}{"extra": 1})

	sess := store.Get(42)
	assert.Equal(t, StateAddingBirthdayDate, sess.State)
	assert.Equal(t, "Alice", sess.Data[KeyName])
	assert.Equal(t, 1, sess.Data["extra"])
}

func TestMemoryStore_ClearState(t *testing.T) {
	store := NewMemoryStore()

	store.SetState(42, StateAddingBirthdayNotes, map[string]interface{}{KeyName: "Alice"})
	store.ClearState(42)

	sess := store.Get(42)
	assert.Equal(t, StateIdle, sess.State)
	assert.Empty(t, sess.Data)
}

func TestMemoryStore_PerUserIsolation(t *testing.T) {
	store := NewMemoryStore()

	store.SetState(1, StateEditingName, map[string]interface{}{KeyBirthdayID: int64(7)})
	store.SetState(2, StateSettingCustomTime, nil)

	first := store.Get(1)
	second := store.Get(2)

	assert.Equal(t, StateEditingName, first.State)
	assert.Equal(t, int64(7), first.Data[KeyBirthdayID])
	assert.Equal(t, StateSettingCustomTime, second.State)
	assert.Empty(t, second.Data)
}

func TestMemoryStore_GetValue(t *testing.T) {
	store := NewMemoryStore()

	_, ok := store.GetValue(42, KeyName)
	assert.False(t, ok)

	store.SetData(42, KeyName, "Alice")

	value, ok := store.GetValue(42, KeyName)
	assert.True(t, ok)
	assert.Equal(t, "Alice", value)
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	store := NewMemoryStore()
	store.SetData(42, KeyName, "Alice")

	sess := store.Get(42)
	sess.Data[KeyName] = "Bob"

	value, _ := store.GetValue(42, KeyName)
	assert.Equal(t, "Alice", value)
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	store := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			store.SetState(id, StateAddingBirthdayName, nil)
			store.SetData(id, KeyName, "Alice")
			store.Get(id)
			store.ClearState(id)
		}(int64(i % 5))
	}
	wg.Wait()
}
