package afield

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"animal-savior/awsave/abuf"
)

func TestField_SetWritesThrough(t *testing.T) {
	buf := abuf.New(make([]byte, 8))
	f := NewField(buf, 2, abuf.UInt16)

	require.NoError(t, f.Set(0x0201))
	assert.Equal(t, uint64(0x0201), f.Value())
	assert.Equal(t, []byte{0x01, 0x02}, buf.Bytes()[2:4])

	// A fresh handle over the same offset decodes the written value.
	assert.Equal(t, uint64(0x0201), NewField(buf, 2, abuf.UInt16).Value())
}

func TestField_SetOutOfRange(t *testing.T) {
	buf := abuf.New(make([]byte, 8))
	f := NewField(buf, 0, abuf.UInt8)

	err := f.Set(256)
	require.ErrorIs(t, err, ErrRange)
	// Failed writes leave both buffer and cache untouched.
	assert.Equal(t, uint64(0), f.Value())
	assert.Equal(t, byte(0), buf.Bytes()[0])

	assert.ErrorIs(t, f.SetInt(-1), ErrRange)
	require.NoError(t, f.SetInt(255))
	assert.Equal(t, uint64(255), f.Value())
}

func TestFloatField_RoundTrip(t *testing.T) {
	buf := abuf.New(make([]byte, 4))
	f := NewFloatField(buf, 0)

	f.SetFloat(156.0)
	assert.Equal(t, float32(156.0), f.Float())
	assert.Equal(t, float32(156.0), NewFloatField(buf, 0).Float())
}

func TestChoiceField_Choice(t *testing.T) {
	choices := []Choice{
		{Value: 0, Label: "None"},
		{Value: 5, Label: "Disc"},
	}
	buf := abuf.New(make([]byte, 1))
	f := NewChoiceField(buf, 0, abuf.UInt8, choices)

	c, ok := f.Choice()
	require.True(t, ok)
	assert.Equal(t, "None", c.Label)

	require.NoError(t, f.SetChoice(choices[1]))
	assert.Equal(t, "Disc", f.String())

	// Unknown raw values are tolerated, not errors.
	require.NoError(t, f.Set(9))
	_, ok = f.Choice()
	assert.False(t, ok)
	assert.Equal(t, "9", f.String())
}

func TestFindFlagAndChoice(t *testing.T) {
	flags := []Flag{
		{Mask: 0x1, Label: "UV Light"},
		{Mask: 0x2, Label: "B. Wand"},
	}
	fl, ok := FindFlag(flags, "uv-light")
	require.True(t, ok)
	assert.Equal(t, uint64(0x1), fl.Mask)

	fl, ok = FindFlag(flags, "B_WAND")
	require.True(t, ok)
	assert.Equal(t, uint64(0x2), fl.Mask)

	_, ok = FindFlag(flags, "torch")
	assert.False(t, ok)

	c, ok := FindChoice([]Choice{{Value: 2, Label: "In Space"}}, "in space")
	require.True(t, ok)
	assert.Equal(t, uint64(2), c.Value)
}
