package cnst

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppConstants(t *testing.T) {
	assert.Equal(t, "estate-api", AppName)
	assert.Equal(t, "apiserver", CommandName)
}

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want InventoryStatus
		ok   bool
	}{
		{"for_sale", StatusForSale, true},
		{"vacant", StatusForSale, true},
		{"sold", StatusSold, true},
		{"rented", StatusRented, true},
		{"occupied", InventoryStatus("occupied"), false},
		{"", InventoryStatus(""), false},
	}
	for _, tt := range tests {
		got, ok := NormalizeStatus(tt.raw)
		assert.Equal(t, tt.ok, ok, tt.raw)
		if ok {
			assert.Equal(t, tt.want, got, tt.raw)
		}
	}
}

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusForSale.Valid())
	assert.True(t, StatusSold.Valid())
	assert.True(t, StatusRented.Valid())
	assert.False(t, InventoryStatus("occupied").Valid())
}
