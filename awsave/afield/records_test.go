package afield

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"animal-savior/awsave/abuf"
)

// testRecord is a minimal one-byte record for exercising RecordList.
type testRecord struct {
	val *Field
}

func (r *testRecord) Clear() {
	if err := r.val.Set(0); err != nil {
		panic(err)
	}
}

func (r *testRecord) CopyFrom(other *testRecord) {
	if err := r.val.Set(other.val.Value()); err != nil {
		panic(err)
	}
}

func newTestList(t *testing.T, cap int) (*RecordList[*testRecord], *abuf.Buffer) {
	t.Helper()
	buf := abuf.New(make([]byte, cap+1))
	count := NewField(buf, cap, abuf.UInt8)
	slots := make([]*testRecord, cap)
	for i := range slots {
		slots[i] = &testRecord{val: NewField(buf, i, abuf.UInt8)}
	}
	return NewRecordList(count, slots), buf
}

func TestRecordList_AppendAndCapacity(t *testing.T) {
	l, _ := newTestList(t, 3)
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, 3, l.Cap())

	for want := 0; want < 3; want++ {
		i, err := l.Append(func(r *testRecord) {
			require.NoError(t, r.val.Set(uint64(10+want)))
		})
		require.NoError(t, err)
		assert.Equal(t, want, i)
	}
	assert.Equal(t, 3, l.Len())

	_, err := l.Append(func(r *testRecord) {})
	assert.ErrorIs(t, err, ErrCapacity)
}

func TestRecordList_RemoveSwapCompacts(t *testing.T) {
	l, buf := newTestList(t, 4)
	for _, v := range []uint64{1, 2, 3} {
		v := v
		_, err := l.Append(func(r *testRecord) {
			require.NoError(t, r.val.Set(v))
		})
		require.NoError(t, err)
	}

	// Removing the first record moves the last one into the hole and
	// zeroes the vacated slot.
	require.NoError(t, l.Remove(0))
	assert.Equal(t, 2, l.Len())
	assert.Equal(t, []byte{3, 2, 0, 0}, buf.Bytes()[:4])

	// Removing the last record just shrinks.
	require.NoError(t, l.Remove(1))
	assert.Equal(t, []byte{3, 0, 0, 0}, buf.Bytes()[:4])

	assert.ErrorIs(t, l.Remove(1), ErrRange)
	assert.ErrorIs(t, l.Remove(-1), ErrRange)
}

func TestRecordList_LenClampsOverflowedCount(t *testing.T) {
	// The game can overflow the stored count past the array; Len never
	// follows it out of bounds.
	buf := abuf.New([]byte{1, 2, 7})
	count := NewField(buf, 2, abuf.UInt8)
	l := NewRecordList(count, []*testRecord{
		{val: NewField(buf, 0, abuf.UInt8)},
		{val: NewField(buf, 1, abuf.UInt8)},
	})

	assert.Equal(t, 2, l.Len())
	assert.Len(t, l.Live(), 2)

	_, err := l.At(2)
	assert.ErrorIs(t, err, ErrRange)
}

func TestRecordList_Clear(t *testing.T) {
	l, buf := newTestList(t, 3)
	_, err := l.Append(func(r *testRecord) {
		require.NoError(t, r.val.Set(9))
	})
	require.NoError(t, err)
	// Stale bytes in dead slots are wiped too.
	buf.Bytes()[2] = 0xEE

	l.Clear()
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, []byte{0, 0, 0, 0}, buf.Bytes())
}
