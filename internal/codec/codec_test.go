package codec

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeMC777/foodcart/internal/kv"
)

type record struct {
	ID    string `json:"id"`
	Price int64  `json:"price"`
}

func TestLoad_Absent(t *testing.T) {
	v, ok, err := Load[[]record](context.Background(), kv.NewMemory(), KeyCart)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, v)
}

func TestSaveLoad(t *testing.T) {
	ctx := context.Background()
	s := kv.NewMemory()

	require.NoError(t, Save(ctx, s, KeyCart, []record{{ID: "1", Price: 15000}}))

	raw, _, _ := s.Get(ctx, KeyCart)
	assert.JSONEq(t, `[{"id":"1","price":15000}]`, raw)

	v, ok, err := Load[[]record](ctx, s, KeyCart)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []record{{ID: "1", Price: 15000}}, v)
}

func TestLoad_CorruptRecordIsStorageFailure(t *testing.T) {
	ctx := context.Background()
	s := kv.NewMemory()
	require.NoError(t, s.Set(ctx, KeyOrders, "{not json"))

	_, ok, err := Load[[]record](ctx, s, KeyOrders)
	assert.False(t, ok)
	assert.ErrorIs(t, err, kv.ErrStorage)
}
