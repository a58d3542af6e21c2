package trigger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSaturatingAdd(t *testing.T) {
	tests := []struct {
		name      string
		a, b      int
		want      int
		saturated bool
	}{
		{"below limit", 1000, 47, 1047, false},
		{"exactly at limit", 2000, 47, MaxTOBEt, false},
		{"limit plus zero", MaxTOBEt, 0, MaxTOBEt, false},
		{"above limit", 2000, 48, MaxTOBEt, true},
		{"addend above limit", 0, 5000, MaxTOBEt, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, sat := SaturatingAdd(tt.a, tt.b, MaxTOBEt)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.saturated, sat)
		})
	}
}

func TestSaturatingAddSmallWidth(t *testing.T) {
	got, sat := SaturatingAdd[uint8](200, 100, 255)
	assert.Equal(t, uint8(255), got)
	assert.True(t, sat)

	got, sat = SaturatingAdd[uint8](200, 55, 255)
	assert.Equal(t, uint8(255), got)
	assert.False(t, sat)
}

func TestSaturatingSub(t *testing.T) {
	assert.Equal(t, 2, SaturatingSub(5, 3))
	assert.Equal(t, 0, SaturatingSub(3, 3))
	assert.Equal(t, 0, SaturatingSub(3, 5))
}

func TestSaturate(t *testing.T) {
	v, sat := Saturate(3000, MaxTOBEt)
	assert.Equal(t, MaxTOBEt, v)
	assert.True(t, sat)

	v, sat = Saturate(-4, MaxTOBEt)
	assert.Equal(t, 0, v)
	assert.False(t, sat)

	v, sat = Saturate(12, MaxTOBEt)
	assert.Equal(t, 12, v)
	assert.False(t, sat)
}

func TestCheckBit(t *testing.T) {
	assert.True(t, CheckBit(0x5, 0))
	assert.False(t, CheckBit(0x5, 1))
	assert.True(t, CheckBit(0x5, 2))
	assert.True(t, CheckBit(0x80000000, 31))
}
