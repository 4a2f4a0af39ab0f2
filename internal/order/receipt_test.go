package order

import (
	"bytes"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeMC777/foodcart/internal/cart"
	"github.com/MikeMC777/foodcart/internal/user"
)

func TestWriteReceipt(t *testing.T) {
	o := Order{
		ID:       "0192f3a1-7c00-7000-8000-00000000abcd",
		Customer: user.Profile{Account: "lan", Email: "lan@gmail.com", Phone: "0901234567", Address: "123 Main St"},
		Items: []cart.Item{
			{ID: "1", Name: "Chuối", Price: 15000, Quantity: 2, ImageName: "chuoi.jpeg"},
			{ID: "2", Name: "Xoài", Price: 20000, Quantity: 1, ImageName: "soai.jpeg"},
		},
		Total:    50000,
		PlacedAt: time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC),
	}

	var buf bytes.Buffer
	require.NoError(t, WriteReceipt(&buf, o, time.UTC))

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "receipt", buf.Bytes())
}

func TestVND(t *testing.T) {
	assert.Equal(t, "15.000 đ", VND(15000))
	assert.Equal(t, "1.250.000 đ", VND(1250000))
	assert.Equal(t, "0 đ", VND(0))
}

func TestShortCode(t *testing.T) {
	assert.Equal(t, "00abcd", Order{ID: "0192f3a1-7c00-7000-8000-00000000abcd"}.ShortCode())
	assert.Equal(t, "42", Order{ID: "42"}.ShortCode())
}

func TestToResponse(t *testing.T) {
	o := Order{
		ID:       "x-123456",
		Customer: user.Profile{Account: "lan", Phone: "0901234567", Address: "123 Main St"},
		Items:    []cart.Item{{ID: "1", Name: "Chuối", Price: 15000, Quantity: 2}},
		Total:    30000,
	}
	r := ToResponse(o)
	assert.Equal(t, "123456", r.Code)
	assert.Equal(t, "30000", r.Total)
	require.Len(t, r.Items, 1)
	assert.Equal(t, "15000", r.Items[0].Price)
	assert.Equal(t, "30000", r.Items[0].Subtotal)
}
