package snapshot

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_NoneBackendDisablesSnapshots(t *testing.T) {
	store, err := New(context.Background(), Config{Backend: "none"})
	require.NoError(t, err)
	assert.Nil(t, store)

	store, err = New(context.Background(), Config{Backend: ""})
	require.NoError(t, err)
	assert.Nil(t, store)
}

func TestNew_UnknownBackend(t *testing.T) {
	_, err := New(context.Background(), Config{Backend: "etcd"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "etcd")
}
