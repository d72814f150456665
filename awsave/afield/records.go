package afield

import (
	"github.com/pkg/errors"
)

type (
	// Record is a fixed-size sub-record slot inside a RecordList. Clear
	// resets the slot to its zero representation; CopyFrom copies every
	// field of another slot into this one.
	Record[R any] interface {
		Clear()
		CopyFrom(other R)
	}

	// RecordList is a fixed-capacity array of records governed by a
	// separate count field. The first count slots are live; removal
	// swap-compacts (moves the last live record into the hole), so order
	// among live records carries no meaning.
	RecordList[R Record[R]] struct {
		slots []R
		count *Field
	}
)

// NewRecordList wires pre-built record slots to their count field. The
// count field is stored far away from the array in the slot layout, so
// it is resolved by the caller.
func NewRecordList[R Record[R]](count *Field, slots []R) *RecordList[R] {
	return &RecordList[R]{
		slots: slots,
		count: count,
	}
}

// Len is the number of live records, clamped to capacity. The game has a
// known overflow bug that can push the stored count past the array; we
// never follow it out of bounds.
func (l *RecordList[R]) Len() int {
	n := int(l.count.Value())
	if n > len(l.slots) {
		return len(l.slots)
	}
	return n
}

func (l *RecordList[R]) Cap() int {
	return len(l.slots)
}

// At returns the i-th live record.
func (l *RecordList[R]) At(i int) (R, error) {
	var zero R
	if i < 0 || i >= l.Len() {
		return zero, errors.Wrapf(ErrRange, "RecordList.At error: index %d outside %d live records", i, l.Len())
	}
	return l.slots[i], nil
}

// Live returns the live records in storage order.
func (l *RecordList[R]) Live() []R {
	return l.slots[:l.Len()]
}

// Append claims the next free slot, hands it to fill to populate, and
// increments the count. Returns the new record's index.
func (l *RecordList[R]) Append(fill func(R)) (int, error) {
	n := l.Len()
	if n >= len(l.slots) {
		return 0, errors.Wrapf(ErrCapacity, "RecordList.Append error: all %d slots in use", len(l.slots))
	}
	fill(l.slots[n])
	l.mustSetCount(n + 1)
	return n, nil
}

// Remove deletes the i-th live record the way the game does: decrement
// the count, move the last live record on top of the hole (unless i was
// the last), then zero the vacated slot.
func (l *RecordList[R]) Remove(i int) error {
	if i < 0 || i >= l.Len() {
		return errors.Wrapf(ErrRange, "RecordList.Remove error: index %d outside %d live records", i, l.Len())
	}
	last := l.Len() - 1
	l.mustSetCount(last)
	if i < last {
		l.slots[i].CopyFrom(l.slots[last])
	}
	l.slots[last].Clear()
	return nil
}

// Clear resets the count and zeroes every slot, live or not, so stale
// records never linger at the storage level.
func (l *RecordList[R]) Clear() {
	l.mustSetCount(0)
	for _, s := range l.slots {
		s.Clear()
	}
}

func (l *RecordList[R]) mustSetCount(n int) {
	if err := l.count.Set(uint64(n)); err != nil {
		panic(err)
	}
}
