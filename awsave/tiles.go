package awsave

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"animal-savior/awsave/afield"
)

type (
	// TileKey identifies a map tile by room coordinates plus in-room
	// tile coordinates. Keys sort and compare in this field order.
	TileKey struct {
		RoomX uint8
		RoomY uint8
		TileX uint8
		TileY uint8
	}

	// Tile is one stored tile reference. The file stores the four bytes
	// in Y-before-X order; TileKey deliberately does not. The top two
	// bits of TileX are technically a map layer selector, but every
	// known entry lives in layer 0 so we leave them untouched.
	Tile struct {
		RoomY *afield.Field
		RoomX *afield.Field
		TileY *afield.Field
		TileX *afield.Field
	}

	// TileList tracks which of a known set of tiles have been triggered:
	// unlocked locked doors and moved movable walls. The game has an
	// unchecked-bounds bug that can run the stored count past the array;
	// all operations here clamp to the real capacity instead.
	TileList struct {
		*afield.RecordList[*Tile]
		known   []TileKey
		invalid map[TileKey]struct{}
	}
)

func (t *Tile) Key() TileKey {
	return TileKey{
		RoomX: uint8(t.RoomX.Value()),
		RoomY: uint8(t.RoomY.Value()),
		TileX: uint8(t.TileX.Value()),
		TileY: uint8(t.TileY.Value()),
	}
}

func (t *Tile) setKey(k TileKey) {
	mustSet(t.RoomX, uint64(k.RoomX))
	mustSet(t.RoomY, uint64(k.RoomY))
	mustSet(t.TileX, uint64(k.TileX))
	mustSet(t.TileY, uint64(k.TileY))
}

func (t *Tile) Clear() {
	t.setKey(TileKey{})
}

func (t *Tile) CopyFrom(other *Tile) {
	t.setKey(other.Key())
}

func (t *Tile) String() string {
	k := t.Key()
	return fmt.Sprintf("(%d, %d): %d, %d", k.RoomX, k.RoomY, k.TileX, k.TileY)
}

func (k TileKey) less(other TileKey) bool {
	if k.RoomX != other.RoomX {
		return k.RoomX < other.RoomX
	}
	if k.RoomY != other.RoomY {
		return k.RoomY < other.RoomY
	}
	if k.TileX != other.TileX {
		return k.TileX < other.TileX
	}
	return k.TileY < other.TileY
}

// newTileList wires tile slots to their count field. The count lives
// far away from the array in the slot layout, so the caller resolves
// it separately and passes it in.
func newTileList(count *afield.Field, tiles []*Tile, known, invalid []TileKey) *TileList {
	invalidSet := make(map[TileKey]struct{}, len(invalid))
	for _, k := range invalid {
		invalidSet[k] = struct{}{}
	}
	return &TileList{
		RecordList: afield.NewRecordList(count, tiles),
		known:      known,
		invalid:    invalidSet,
	}
}

// Known returns the full set of legitimately-triggerable tiles.
func (l *TileList) Known() []TileKey {
	return l.known
}

// Keys returns the keys of the live entries in storage order.
func (l *TileList) Keys() []TileKey {
	return lo.Map(l.Live(), func(t *Tile, _ int) TileKey {
		return t.Key()
	})
}

// FillKnown appends every known tile not already present, in sorted
// key order. The capacity check happens up front so a list that cannot
// take the whole set is left untouched.
func (l *TileList) FillKnown() error {
	current := make(map[TileKey]struct{}, l.Len())
	for _, k := range l.Keys() {
		current[k] = struct{}{}
	}
	missing := lo.Filter(l.known, func(k TileKey, _ int) bool {
		_, seen := current[k]
		return !seen
	})
	if l.Len()+len(missing) > l.Cap() {
		return errors.Wrapf(afield.ErrCapacity,
			"TileList.FillKnown error: %d existing plus %d new entries exceed %d slots",
			l.Len(), len(missing), l.Cap())
	}

	sort.Slice(missing, func(i, j int) bool {
		return missing[i].less(missing[j])
	})
	for _, k := range missing {
		_, err := l.Append(func(t *Tile) {
			t.setKey(k)
		})
		if err != nil {
			return errors.Wrap(err, "TileList.FillKnown error")
		}
	}
	return nil
}

// RemoveInvalid deletes every live entry flagged as cheat-acquired,
// returning how many were removed. Walking the indexes in reverse
// keeps them valid across the swap-compacting removals.
func (l *TileList) RemoveInvalid() int {
	var hits []int
	for i, t := range l.Live() {
		if _, bad := l.invalid[t.Key()]; bad {
			hits = append(hits, i)
		}
	}
	for i := len(hits) - 1; i >= 0; i-- {
		if err := l.Remove(hits[i]); err != nil {
			panic(err)
		}
	}
	return len(hits)
}

// Tile sets confirmed from the game's map data.
var (
	knownLockedDoors = []TileKey{
		{RoomX: 7, RoomY: 4, TileX: 9, TileY: 5},
		{RoomX: 15, RoomY: 8, TileX: 38, TileY: 6},
		{RoomX: 16, RoomY: 10, TileX: 4, TileY: 5},
		{RoomX: 14, RoomY: 13, TileX: 6, TileY: 16},
		{RoomX: 14, RoomY: 15, TileX: 27, TileY: 6},
		{RoomX: 14, RoomY: 15, TileX: 32, TileY: 6},
	}

	knownMovedWalls = []TileKey{
		{RoomX: 2, RoomY: 5, TileX: 2, TileY: 1},
		{RoomX: 15, RoomY: 5, TileX: 6, TileY: 3},
		{RoomX: 6, RoomY: 6, TileX: 16, TileY: 14},
		{RoomX: 7, RoomY: 6, TileX: 16, TileY: 1},
		{RoomX: 7, RoomY: 6, TileX: 5, TileY: 14},
		{RoomX: 13, RoomY: 7, TileX: 29, TileY: 1},
		{RoomX: 10, RoomY: 8, TileX: 16, TileY: 17},
		{RoomX: 2, RoomY: 9, TileX: 1, TileY: 6},
		{RoomX: 9, RoomY: 10, TileX: 39, TileY: 6},
		{RoomX: 8, RoomY: 11, TileX: 33, TileY: 19},
		{RoomX: 13, RoomY: 11, TileX: 39, TileY: 17},
		{RoomX: 6, RoomY: 13, TileX: 36, TileY: 7},
		{RoomX: 2, RoomY: 19, TileX: 9, TileY: 7},
		{RoomX: 2, RoomY: 19, TileX: 31, TileY: 7},
	}

	// Wall moves only reachable by cheating; a save carrying one of
	// these can trip the runaway-count bug, so the editor offers to
	// strip them.
	invalidMovedWalls = []TileKey{
		{RoomX: 12, RoomY: 4, TileX: 29, TileY: 4},
		{RoomX: 3, RoomY: 7, TileX: 5, TileY: 3},
		{RoomX: 13, RoomY: 13, TileX: 11, TileY: 8},
	}
)
