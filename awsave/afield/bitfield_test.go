package afield

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"animal-savior/awsave/abuf"
)

var testFlags = []Flag{
	{Mask: 0x01, Label: "One"},
	{Mask: 0x02, Label: "Two"},
	{Mask: 0x08, Label: "Eight"},
}

func TestBitfield_Partition(t *testing.T) {
	buf := abuf.New([]byte{0x09})
	f := NewBitfield(buf, 0, abuf.UInt8, testFlags)

	assert.Len(t, f.Enabled(), 2)
	assert.Len(t, f.Disabled(), 1)
	assert.True(t, f.IsEnabled(testFlags[0]))
	assert.False(t, f.IsEnabled(testFlags[1]))

	require.NoError(t, f.Enable(testFlags[1]))
	assert.Len(t, f.Enabled(), 3)
	assert.Empty(t, f.Disabled())

	require.NoError(t, f.Disable(testFlags[0]))
	assert.Equal(t, uint64(0x0A), f.Value())
	// Enabled and Disabled always partition the flag table.
	assert.Equal(t, len(testFlags), len(f.Enabled())+len(f.Disabled()))
}

func TestBitfield_UnknownFlag(t *testing.T) {
	buf := abuf.New(make([]byte, 1))
	f := NewBitfield(buf, 0, abuf.UInt8, testFlags)

	stranger := Flag{Mask: 0x80, Label: "Stranger"}
	assert.ErrorIs(t, f.Enable(stranger), ErrRange)
	assert.ErrorIs(t, f.Disable(stranger), ErrRange)
}

func TestBitfield_BulkPreservesUnlistedBits(t *testing.T) {
	// Bit 0x04 is not in the table and must survive bulk operations.
	buf := abuf.New([]byte{0x04})
	f := NewBitfield(buf, 0, abuf.UInt8, testFlags)

	require.NoError(t, f.EnableAll())
	assert.Equal(t, uint64(0x0F), f.Value())

	require.NoError(t, f.DisableAll())
	assert.Equal(t, uint64(0x04), f.Value())
}

func TestBitCount_FillStopsAtMaxBits(t *testing.T) {
	buf := abuf.New(make([]byte, 2))
	c := NewBitCount(buf, 0, abuf.UInt8, 2, 10)

	assert.Equal(t, 0, c.Count())
	assert.Equal(t, 10, c.MaxBits())

	c.Fill()
	assert.Equal(t, 10, c.Count())
	assert.Equal(t, []byte{0xFF, 0x03}, buf.Bytes())

	c.Clear()
	assert.Equal(t, 0, c.Count())
	assert.Equal(t, []byte{0x00, 0x00}, buf.Bytes())
}

func TestBitCount_ClearZeroesPastMaxBits(t *testing.T) {
	// Undocumented trailing bits are never set by Fill but are wiped
	// by Clear.
	buf := abuf.New([]byte{0x00, 0x80})
	c := NewBitCount(buf, 0, abuf.UInt8, 2, 10)
	assert.Equal(t, 1, c.Count())

	c.Fill()
	assert.Equal(t, []byte{0xFF, 0x83}, buf.Bytes())

	c.Clear()
	assert.Equal(t, []byte{0x00, 0x00}, buf.Bytes())
}

func TestBitCount_SetClearBit(t *testing.T) {
	buf := abuf.New(make([]byte, 4))
	c := NewBitCount(buf, 0, abuf.UInt16, 2, 27)

	require.NoError(t, c.SetBit(22))
	assert.Equal(t, 1, c.Count())
	assert.Equal(t, byte(0x40), buf.Bytes()[2])

	require.NoError(t, c.ClearBit(22))
	assert.Equal(t, 0, c.Count())

	assert.ErrorIs(t, c.SetBit(27), ErrRange)
	assert.ErrorIs(t, c.ClearBit(-1), ErrRange)
}

func TestBitCount_Phantom(t *testing.T) {
	buf := abuf.New(make([]byte, 16))
	c := NewBitCountPhantom(buf, 0, abuf.UInt64, 2, 115, 1, 0x0008000000000000)

	assert.False(t, c.HasPhantom())

	require.NoError(t, c.Segments()[1].Set(0x0008000000000000))
	c = NewBitCountPhantom(buf, 0, abuf.UInt64, 2, 115, 1, 0x0008000000000000)
	assert.True(t, c.HasPhantom())
	// The phantom bit does not count toward the tally.
	assert.Equal(t, 0, c.Count())
}
