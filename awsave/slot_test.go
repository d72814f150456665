package awsave

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"animal-savior/awsave/afield"
)

func TestTileList_FillKnown(t *testing.T) {
	sg := newBlankSave(t)
	doors := sg.Slots[0].LockedDoors

	require.NoError(t, doors.FillKnown())
	assert.Equal(t, len(knownLockedDoors), doors.Len())

	keys := doors.Keys()
	assert.True(t, sort.SliceIsSorted(keys, func(i, j int) bool {
		return keys[i].less(keys[j])
	}))

	// Filling again is a no-op, not a duplicate append.
	require.NoError(t, doors.FillKnown())
	assert.Equal(t, len(knownLockedDoors), doors.Len())
}

func TestTileList_RemoveInvalid(t *testing.T) {
	sg := newBlankSave(t)
	walls := sg.Slots[0].MovedWalls

	require.NoError(t, walls.FillKnown())
	for _, bad := range invalidMovedWalls[:2] {
		bad := bad
		_, err := walls.Append(func(tile *Tile) {
			tile.setKey(bad)
		})
		require.NoError(t, err)
	}
	assert.Equal(t, len(knownMovedWalls)+2, walls.Len())

	assert.Equal(t, 2, walls.RemoveInvalid())
	assert.Equal(t, len(knownMovedWalls), walls.Len())
	assert.Equal(t, 0, walls.RemoveInvalid())

	// The legitimate moves all survived.
	left := make(map[TileKey]struct{})
	for _, k := range walls.Keys() {
		left[k] = struct{}{}
	}
	for _, k := range knownMovedWalls {
		_, ok := left[k]
		assert.True(t, ok, "missing %v", k)
	}
}

func TestStamps(t *testing.T) {
	sg := newBlankSave(t)
	stamps := sg.Slots[0].Stamps
	assert.Equal(t, 0, stamps.Len())
	assert.Equal(t, MaxStamps, stamps.Cap())

	idx, err := stamps.Add(100, 200, StampIconChoices[2])
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
	assert.Equal(t, 1, stamps.Len())

	st, err := stamps.At(0)
	require.NoError(t, err)
	assert.Equal(t, uint64(100), st.X.Value())
	assert.Equal(t, uint64(200), st.Y.Value())
	assert.Equal(t, StampIconChoices[2].Value, st.Icon.Value())

	_, err = stamps.Add(1<<17, 0, StampIconChoices[0])
	assert.ErrorIs(t, err, afield.ErrRange)

	for stamps.Len() < MaxStamps {
		_, err := stamps.Add(1, 1, StampIconChoices[0])
		require.NoError(t, err)
	}
	_, err = stamps.Add(1, 1, StampIconChoices[0])
	assert.ErrorIs(t, err, afield.ErrCapacity)

	stamps.Clear()
	assert.Equal(t, 0, stamps.Len())
}

func TestKangaroo_SetShardState(t *testing.T) {
	sg := newBlankSave(t)
	k := sg.Slots[0].Kangaroo

	require.NoError(t, k.SetShardState(2, ShardCollected))
	assert.Equal(t, 2, k.NumCollected())
	assert.Equal(t, 0, k.NumInserted())
	// Fresh encounters get plausible drop data, not zeroes.
	assert.NotZero(t, k.Encounters[0].ShardX.Float())

	require.NoError(t, k.SetShardState(3, ShardInserted))
	assert.Equal(t, 0, k.NumCollected())
	assert.Equal(t, 3, k.NumInserted())

	assert.ErrorIs(t, k.SetShardState(0, ShardCollected), afield.ErrRange)
	assert.ErrorIs(t, k.SetShardState(4, ShardCollected), afield.ErrRange)
}

func TestKangaroo_ForceRoom(t *testing.T) {
	sg := newBlankSave(t)
	k := sg.Slots[0].Kangaroo

	require.NoError(t, k.ForceRoom(1))
	assert.Equal(t, uint64(1), k.NextEncounterID.Value())
	assert.Equal(t, KangarooLurking.Value, k.Activity.Value())
	assert.Equal(t, "(9, 11)", k.RoomString())

	assert.ErrorIs(t, k.ForceRoom(9), afield.ErrRange)
}

func TestFlames(t *testing.T) {
	sg := newBlankSave(t)
	flames := sg.Slots[0].Flames

	fl, ok := flames.ByLetter("v")
	require.True(t, ok)
	assert.Equal(t, "V. Flame", fl.Name)
	_, ok = flames.ByLetter("x")
	assert.False(t, ok)

	require.NoError(t, flames.SetAll(FlameCollected))
	for _, fl := range flames.All() {
		assert.Equal(t, FlameCollected.Value, fl.Value())
	}
}

func TestMural(t *testing.T) {
	sg := newBlankSave(t)
	m := sg.Slots[0].Mural

	require.NoError(t, m.ToDefault())
	assert.Equal(t, muralDefault, m.Raw())

	require.NoError(t, m.ToSolved())
	assert.Equal(t, muralSolved, m.Raw())

	require.NoError(t, m.Wipe())
	assert.Equal(t, make([]byte, MuralBytes), m.Raw())
}

func TestBigStalactites(t *testing.T) {
	sg := newBlankSave(t)
	stal := sg.Slots[0].BigStalactites
	assert.Len(t, stal.Stalactites, 14)

	require.NoError(t, stal.SetAll(StalactiteBroken))
	for _, s := range stal.Stalactites {
		c, ok := s.Choice()
		require.True(t, ok)
		assert.Equal(t, "Broken", c.Label)
	}
}

func TestElevators(t *testing.T) {
	sg := newBlankSave(t)
	elev := sg.Slots[0].Elevators

	require.NoError(t, elev.Disabled.Enable(ElevatorOstrich))
	assert.True(t, elev.Disabled.IsEnabled(ElevatorOstrich))
	require.NoError(t, elev.Disabled.Disable(ElevatorOstrich))
	assert.False(t, elev.Disabled.IsEnabled(ElevatorOstrich))
}

func TestMapLayers_SharePlayableInset(t *testing.T) {
	sg := newBlankSave(t)
	s := sg.Slots[0]

	require.NoError(t, s.Minimap.Fill(true))
	geo := s.Minimap.Geometry()
	px := s.Minimap.Pixels()

	// A pixel inside the playable inset is revealed, a padding-room
	// pixel is not.
	inside := (geo.PlayableY*geo.RoomHeight)*geo.PixelWidth() + geo.PlayableX*geo.RoomWidth
	assert.Equal(t, uint8(1), px[inside])
	assert.Equal(t, uint8(0), px[0])

	// The pencil and destruction layers are independent storage.
	assert.Equal(t, uint8(0), s.PencilMap.Pixels()[inside])
	assert.Equal(t, uint8(0), s.DestructionMap.Pixels()[inside])
}
