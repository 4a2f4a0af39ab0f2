package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToResponse(t *testing.T) {
	r := ToResponse([]Item{
		{ID: "1", Name: "Chuối", Price: 15000, Quantity: 2, ImageName: "chuoi.jpeg"},
		{ID: "2", Name: "Xoài", Price: 20000, Quantity: 1, ImageName: "soai.jpeg"},
	})
	assert.Equal(t, "50000", r.Total)
	assert.Equal(t, "30000", r.Items[0].Subtotal)
	assert.Equal(t, "15000", r.Items[0].Price)

	empty := ToResponse(nil)
	assert.Equal(t, "0", empty.Total)
	assert.NotNil(t, empty.Items)
}
