package afield

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"animal-savior/awsave/abuf"
)

type (
	// Flag is one labeled bit (or bit group) of a bitfield.
	Flag struct {
		Mask  uint64
		Label string
	}

	// Bitfield is a Field whose bits are individually labeled flags.
	// Enabled and Disabled always partition the flag table and are
	// recomputed after every write to the raw value. Bits outside the
	// table are never touched by the bulk operations, so undocumented
	// game state survives an EnableAll/DisableAll.
	Bitfield struct {
		Field
		flags    []Flag
		enabled  []Flag
		disabled []Flag
	}
)

func NewBitfield(buf *abuf.Buffer, offset int, typ abuf.NumType, flags []Flag) *Bitfield {
	f := &Bitfield{
		Field: *NewField(buf, offset, typ),
		flags: flags,
	}
	f.refresh()
	return f
}

func (f *Bitfield) refresh() {
	raw := f.Value()
	f.enabled = lo.Filter(f.flags, func(fl Flag, _ int) bool {
		return raw&fl.Mask == fl.Mask
	})
	f.disabled = lo.Filter(f.flags, func(fl Flag, _ int) bool {
		return raw&fl.Mask != fl.Mask
	})
}

// Set writes a raw value and recomputes the derived flag sets.
func (f *Bitfield) Set(v uint64) error {
	if err := f.Field.Set(v); err != nil {
		return err
	}
	f.refresh()
	return nil
}

func (f *Bitfield) member(fl Flag) bool {
	return lo.Contains(f.flags, fl)
}

// Enable turns the flag's bits on; it is a no-op when already enabled.
// Flags outside the field's table are rejected.
func (f *Bitfield) Enable(fl Flag) error {
	if !f.member(fl) {
		return errors.Wrapf(ErrRange, `Bitfield.Enable error: unknown flag "%s"`, fl.Label)
	}
	return f.Set(f.Value() | fl.Mask)
}

// Disable turns the flag's bits off; it is a no-op when already disabled.
func (f *Bitfield) Disable(fl Flag) error {
	if !f.member(fl) {
		return errors.Wrapf(ErrRange, `Bitfield.Disable error: unknown flag "%s"`, fl.Label)
	}
	return f.Set(f.Value() &^ fl.Mask)
}

// EnableAll turns on every flag in the table, and only those.
func (f *Bitfield) EnableAll() error {
	v := f.Value()
	for _, fl := range f.flags {
		v |= fl.Mask
	}
	return f.Set(v)
}

// DisableAll turns off every flag in the table, and only those.
func (f *Bitfield) DisableAll() error {
	v := f.Value()
	for _, fl := range f.flags {
		v &^= fl.Mask
	}
	return f.Set(v)
}

func (f *Bitfield) IsEnabled(fl Flag) bool {
	return f.Value()&fl.Mask == fl.Mask
}

func (f *Bitfield) Enabled() []Flag {
	return f.enabled
}

func (f *Bitfield) Disabled() []Flag {
	return f.disabled
}

func (f *Bitfield) Flags() []Flag {
	return f.flags
}
