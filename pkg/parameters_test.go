package trigger

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParameters(t *testing.T) {
	p := NewParameters(
		ParameterEntry{Name: "MinEt1", Index: 1, Value: 20},
		ParameterEntry{Name: "MinEt1", Index: 0, Value: 10},
		ParameterEntry{Name: "InputWidth", Value: 6},
	)

	assert.True(t, p.Has("MinEt1"))
	assert.False(t, p.Has("MinEt2"))
	assert.Equal(t, 6, p.Scalar("InputWidth", 0))
	assert.Equal(t, 3, p.Scalar("MaxTob", 3))

	v, ok := p.Get("MinEt1", 1)
	assert.True(t, ok)
	assert.Equal(t, 20, v)
	_, ok = p.Get("MinEt1", 2)
	assert.False(t, ok)

	values, err := p.Array("MinEt1", 2)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 20}, values)

	_, err = p.Array("MinEt1", 3)
	assert.ErrorContains(t, err, "MinEt1[2]")

	p.Set("MinEt1", 0, 11)
	want := []ParameterEntry{
		{Name: "InputWidth", Index: 0, Value: 6},
		{Name: "MinEt1", Index: 0, Value: 11},
		{Name: "MinEt1", Index: 1, Value: 20},
	}
	if diff := cmp.Diff(want, p.Entries()); diff != "" {
		t.Errorf("Entries() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "InputWidth[0]=6 MinEt1[0]=11 MinEt1[1]=20", p.String())
}
