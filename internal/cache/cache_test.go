package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thrivecms/internal/snapshot"
)

type fakeSnapshotStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newFakeSnapshotStore() *fakeSnapshotStore {
	return &fakeSnapshotStore{data: make(map[string][]byte)}
}

func (f *fakeSnapshotStore) Save(_ context.Context, key string, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = data
	return nil
}

func (f *fakeSnapshotStore) Load(_ context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.data[key]
	if !ok {
		return nil, snapshot.ErrNotFound
	}
	return data, nil
}

func (f *fakeSnapshotStore) Close() error { return nil }

func TestStore_EmptyNotFresh(t *testing.T) {
	s := NewStore[string]("services", nil)

	_, _, ok := s.Get()
	assert.False(t, ok)
	assert.False(t, s.IsFresh(time.Now(), DefaultTTL))
}

func TestStore_SetGet(t *testing.T) {
	s := NewStore[string]("services", nil)

	s.Set(context.Background(), []string{"a", "b"})

	items, fetchedAt, ok := s.Get()
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, items)
	assert.WithinDuration(t, time.Now(), fetchedAt, time.Second)
}

func TestStore_Freshness(t *testing.T) {
	s := NewStore[string]("services", nil)
	s.Set(context.Background(), []string{"a"})

	now := time.Now()
	assert.True(t, s.IsFresh(now.Add(60*time.Second), 300*time.Second))
	assert.False(t, s.IsFresh(now.Add(301*time.Second), 300*time.Second))
}

func TestStore_GetReturnsCopy(t *testing.T) {
	s := NewStore[string]("services", nil)
	s.Set(context.Background(), []string{"a", "b"})

	items, _, _ := s.Get()
	items[0] = "mutated"

	again, _, _ := s.Get()
	assert.Equal(t, "a", again[0], "кэш не должен меняться через выданный срез")
}

func TestStore_WriteThrough(t *testing.T) {
	through := newFakeSnapshotStore()
	s := NewStore[string]("services", through)

	s.Set(context.Background(), []string{"a"})

	data, err := through.Load(context.Background(), "services")
	require.NoError(t, err)
	assert.JSONEq(t, `["a"]`, string(data))
}

func TestStore_WarmStart(t *testing.T) {
	through := newFakeSnapshotStore()
	first := NewStore[string]("services", through)
	first.Set(context.Background(), []string{"a", "b"})

	// новый процесс: кэш пуст, поднимаем снимок
	second := NewStore[string]("services", through)
	require.True(t, second.WarmStart(context.Background()))

	items, _, ok := second.Get()
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, items)

	// снимок видим, но протухший: фетч обязан уйти в сеть
	assert.False(t, second.IsFresh(time.Now(), DefaultTTL))
}

func TestStore_WarmStartDoesNotClobberNetworkData(t *testing.T) {
	through := newFakeSnapshotStore()
	_ = through.Save(context.Background(), "services", []byte(`["old"]`))

	s := NewStore[string]("services", through)
	s.Set(context.Background(), []string{"fresh"})

	assert.False(t, s.WarmStart(context.Background()))

	items, _, _ := s.Get()
	assert.Equal(t, []string{"fresh"}, items)
}
