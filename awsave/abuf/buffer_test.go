package abuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSized(t *testing.T) {
	_, err := NewSized(make([]byte, 4), 8)
	assert.Error(t, err)

	buf, err := NewSized(make([]byte, 8), 8)
	require.NoError(t, err)
	assert.Equal(t, 8, buf.Len())
}

func TestBuffer_ReadWriteAt(t *testing.T) {
	buf := New(make([]byte, 8))

	require.NoError(t, buf.WriteAt(2, []byte{0xAA, 0xBB}))
	got, err := buf.ReadAt(2, 2)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xAA, 0xBB}, got)

	// Writes through one view are visible through another.
	assert.Equal(t, byte(0xAA), buf.Bytes()[2])
}

func TestBuffer_Bounds(t *testing.T) {
	buf := New(make([]byte, 4))

	_, err := buf.ReadAt(2, 3)
	assert.Error(t, err)
	_, err = buf.ReadAt(-1, 1)
	assert.Error(t, err)
	assert.Error(t, buf.WriteAt(3, []byte{1, 2}))
	assert.Error(t, buf.FillAt(0, 5, 0xFF))
}

func TestBuffer_FillAt(t *testing.T) {
	buf := New(make([]byte, 4))
	require.NoError(t, buf.FillAt(1, 2, 0xFF))
	assert.Equal(t, []byte{0x00, 0xFF, 0xFF, 0x00}, buf.Bytes())
}

func TestBuffer_NumRoundTrip(t *testing.T) {
	buf := New(make([]byte, 16))

	require.NoError(t, buf.WriteNum(0, UInt32, 0x01020304))
	assert.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, buf.Bytes()[:4])

	v, err := buf.ReadNum(0, UInt32)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x01020304), v)

	require.NoError(t, buf.WriteNum(8, UInt64, 0x8000000000000001))
	v, err = buf.ReadNum(8, UInt64)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x8000000000000001), v)
}

func TestNumType_Ranges(t *testing.T) {
	assert.True(t, UInt8.InRangeUint(255))
	assert.False(t, UInt8.InRangeUint(256))
	assert.True(t, UInt16.InRangeInt(65535))
	assert.False(t, UInt16.InRangeInt(-1))
	assert.True(t, Int8.InRangeInt(-128))
	assert.False(t, Int8.InRangeInt(128))
	assert.True(t, Float32.InRangeUint(^uint64(0)))
}

func TestNumType_SignExtend(t *testing.T) {
	assert.Equal(t, int64(-1), Int8.SignExtend(0xFF))
	assert.Equal(t, int64(127), Int8.SignExtend(0x7F))
	assert.Equal(t, int64(-32768), Int16.SignExtend(0x8000))
}
