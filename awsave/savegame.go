// Package awsave reads and edits Animal Well savegames. The file is a
// fixed-size binary image: a short header carrying a version word, the
// last-used slot, a checksum and the global unlockables, then three
// identical save slots. Parsing resolves every field's offset once
// into handles that write straight through to the in-memory image;
// Save recomputes the checksum and flushes the image back to disk.
package awsave

import (
	"os"

	"github.com/pkg/errors"

	"animal-savior/awsave/abuf"
	"animal-savior/awsave/afield"
)

const (
	// FileSize is the exact savegame length; the game never varies it.
	FileSize = 479_360

	// SaveVersion is the only format version this editor understands.
	SaveVersion = 9

	// NumSlots is the number of save slots per file.
	NumSlots = 3
)

var slotOffsets = [NumSlots]int{0x18, 0x27028, 0x4E038}

// ErrFormat rejects input that is not a compatible savegame: wrong
// file size or an unknown version word.
var ErrFormat = errors.New("unrecognized savegame format")

// Savegame is a whole save file held in memory. Field handles all
// write through to the backing buffer, so the buffer is always ready
// to be checksummed and flushed.
type Savegame struct {
	path  string
	buf   *abuf.Buffer
	trace Tracer

	Version      *afield.Field
	FrameSeed    *afield.Field
	LastUsedSlot *afield.Field
	Checksum     *afield.Field
	Unlockables  *afield.Bitfield
	Slots        [NumSlots]*Slot
}

type Option func(*Savegame)

// WithTracer dumps every resolved field's label, offset and size
// through t during parsing.
func WithTracer(t Tracer) Option {
	return func(s *Savegame) {
		s.trace = t
	}
}

// Open loads the savegame at path. The checksum is deliberately not
// verified: saves with bad checksums load fine in-game (with a side
// effect) and must stay editable.
func Open(path string, opts ...Option) (*Savegame, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "Open error")
	}
	sg, err := FromBytes(data, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, `Open error: reading "%s"`, path)
	}
	sg.path = path
	return sg, nil
}

// FromBytes parses a savegame image. The data is copied, so the caller
// keeps ownership of its slice.
func FromBytes(data []byte, opts ...Option) (*Savegame, error) {
	if len(data) != FileSize {
		return nil, errors.Wrapf(ErrFormat,
			"FromBytes error: savegames are exactly %d bytes, got %d", FileSize, len(data))
	}
	buf := abuf.New(append([]byte(nil), data...))

	sg := &Savegame{buf: buf}
	for _, opt := range opts {
		opt(sg)
	}

	c := newCursor(buf, 0, sg.trace)
	sg.Version = c.num("Save Version", 0x0, abuf.UInt32)
	if sg.Version.Value() != SaveVersion {
		return nil, errors.Wrapf(ErrFormat, "FromBytes error: unknown savefile version %d", sg.Version.Value())
	}

	sg.FrameSeed = c.num("Frame Seed", 0x8, abuf.UInt32)
	sg.LastUsedSlot = c.num("Last Used Slot", inline, abuf.UInt8)
	sg.Checksum = c.num("Checksum", inline, abuf.UInt8)
	sg.Unlockables = c.bitfield("Globals", 0x10, abuf.UInt32, UnlockableFlags)

	for i, off := range slotOffsets {
		sg.Slots[i] = parseSlot(buf, i, off, sg.trace)
	}
	return sg, nil
}

// Path is where the savegame was opened from; empty for FromBytes.
func (s *Savegame) Path() string {
	return s.path
}

// Bytes exposes the live file image. Mutating it bypasses the field
// caches; treat it as read-only.
func (s *Savegame) Bytes() []byte {
	return s.buf.Bytes()
}

// ComputeChecksum derives the whole-file XOR checksum. The stored
// checksum byte is zeroed first, which keeps the byte from feeding
// back into its own accumulation.
func (s *Savegame) ComputeChecksum() uint8 {
	mustSet(s.Checksum, 0)
	var total uint8
	for _, b := range s.buf.Bytes() {
		total ^= b
	}
	return total
}

// FixChecksum recomputes and stores a valid checksum.
func (s *Savegame) FixChecksum() {
	mustSet(s.Checksum, uint64(s.ComputeChecksum()))
}

// InvalidateChecksum stores a deliberately wrong checksum. The game
// loads such a file anyway but spawns a Manticore friend to tail the
// player, so this is a feature.
func (s *Savegame) InvalidateChecksum() {
	mustSet(s.Checksum, uint64(s.ComputeChecksum()^0xFF))
}

// ForceChecksum stores an arbitrary checksum byte verbatim.
func (s *Savegame) ForceChecksum(v uint8) {
	mustSet(s.Checksum, uint64(v))
}

// Write flushes the image to path as-is, leaving the checksum alone.
func (s *Savegame) Write(path string) error {
	return errors.Wrap(os.WriteFile(path, s.buf.Bytes(), 0o644), "Savegame.Write error")
}

// Save recomputes the checksum and writes back to the opened path.
func (s *Savegame) Save() error {
	if s.path == "" {
		return errors.New("Savegame.Save error: no backing file, use SaveAs")
	}
	return s.SaveAs(s.path)
}

// SaveAs recomputes the checksum and writes the image to path.
func (s *Savegame) SaveAs(path string) error {
	s.FixChecksum()
	return errors.Wrap(s.Write(path), "Savegame.SaveAs error")
}

// ImportSlot overwrites slot i with an exported slot blob and
// re-resolves its fields.
func (s *Savegame) ImportSlot(i int, data []byte) error {
	if i < 0 || i >= NumSlots {
		return errors.Wrapf(afield.ErrRange, "Savegame.ImportSlot error: no slot %d", i)
	}
	if len(data) != SlotSize {
		return errors.Wrapf(afield.ErrRange,
			"Savegame.ImportSlot error: slot data is exactly %d bytes, got %d", SlotSize, len(data))
	}
	if err := s.buf.WriteAt(slotOffsets[i], data); err != nil {
		return errors.Wrap(err, "Savegame.ImportSlot error")
	}
	// The old handles now cache stale values; re-walk the slot.
	s.Slots[i] = parseSlot(s.buf, i, slotOffsets[i], s.trace)
	return nil
}
