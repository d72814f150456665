package awsave

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blankImage is a minimal well-formed save: all zeroes except the
// version word.
func blankImage() []byte {
	data := make([]byte, FileSize)
	binary.LittleEndian.PutUint32(data[0:], SaveVersion)
	return data
}

func newBlankSave(t *testing.T) *Savegame {
	t.Helper()
	sg, err := FromBytes(blankImage())
	require.NoError(t, err)
	return sg
}

func TestFromBytes_RejectsBadInput(t *testing.T) {
	_, err := FromBytes(make([]byte, 100))
	assert.ErrorIs(t, err, ErrFormat)

	data := blankImage()
	binary.LittleEndian.PutUint32(data[0:], 8)
	_, err = FromBytes(data)
	assert.ErrorIs(t, err, ErrFormat)
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open("/nonexistent/save.sav")
	assert.Error(t, err)
}

func TestFieldOffsets(t *testing.T) {
	sg := newBlankSave(t)
	s := sg.Slots[0]
	base := 0x18

	assert.Equal(t, 0x0, sg.Version.Offset())
	assert.Equal(t, 0x8, sg.FrameSeed.Offset())
	assert.Equal(t, 0xC, sg.LastUsedSlot.Offset())
	assert.Equal(t, 0xD, sg.Checksum.Offset())
	assert.Equal(t, 0x10, sg.Unlockables.Offset())

	cases := []struct {
		label string
		rel   int
		got   int
	}{
		{"timestamp year", 0x0, s.Timestamp.Year.Offset()},
		{"first crank", 0x8, s.Cranks[0].Offset()},
		{"last crank", 0x8 + 22*2, s.Cranks[22].Offset()},
		{"num steps", 0x108, s.NumSteps.Offset()},
		{"first reservoir", 0x10C, s.FillLevels.Levels[0].Offset()},
		{"chests opened", 0x120, s.ChestsOpened.Segments()[0].Offset()},
		{"button doors opened", 0x130, s.ButtonDoorsOpened.Segments()[0].Offset()},
		{"yellow buttons", 0x140, s.YellowButtons.Segments()[0].Offset()},
		{"purple buttons", 0x160, s.PurpleButtons.Segments()[0].Offset()},
		{"green buttons", 0x168, s.GreenButtons.Segments()[0].Offset()},
		{"picked fruit", 0x170, s.PickedFruit.Segments()[0].Offset()},
		{"picked firecrackers", 0x180, s.PickedFirecrackers.Segments()[0].Offset()},
		{"eggs", 0x188, s.Eggs.Offset()},
		{"walls blasted", 0x190, s.WallsBlasted.Segments()[0].Offset()},
		{"detonators triggered", 0x194, s.DetonatorsTriggered.Segments()[0].Offset()},
		{"bunnies", 0x198, s.Bunnies.Offset()},
		{"illegal bunnies share the word", 0x198, s.IllegalBunnies.Offset()},
		{"squirrels scared", 0x19C, s.SquirrelsScared.Segments()[0].Offset()},
		{"cat status", 0x19E, s.CatStatus.Offset()},
		{"firecrackers collected", 0x1A2, s.FirecrackersCollected.Offset()},
		{"bubbles popped", 0x1A4, s.BubblesPopped.Offset()},
		{"num saves", 0x1A8, s.NumSaves.Offset()},
		{"pink buttons", 0x1AC, s.PinkButtons.Offset()},
		{"invalid pink buttons share the word", 0x1AC, s.PinkButtonsInvalid.Offset()},
		{"nuts", 0x1AE, s.Nuts.Offset()},
		{"ce temple chests", 0x1AF, s.CETempleChests.Segments()[0].Offset()},
		{"space buttons", 0x1B0, s.SpaceButtons.Segments()[0].Offset()},
		{"keys", 0x1B1, s.Keys.Offset()},
		{"matches", 0x1B2, s.Matches.Offset()},
		{"firecrackers", 0x1B3, s.Firecrackers.Offset()},
		{"health", 0x1B4, s.Health.Offset()},
		{"gold hearts", 0x1B5, s.GoldHearts.Offset()},
		{"last groundhog year", 0x1B6, s.LastGroundhogYear.Offset()},
		{"egg doors", 0x1B9, s.EggDoors.Offset()},
		{"ingame ticks", 0x1BC, s.IngameTicks.Offset()},
		{"total ticks", 0x1C0, s.TotalTicks.Offset()},
		{"spawn x", 0x1D4, s.SpawnRoom.X.Offset()},
		{"equipment", 0x1DC, s.Equipment.Offset()},
		{"inventory", 0x1DE, s.Inventory.Offset()},
		{"candles", 0x1E0, s.Candles.Offset()},
		{"num hits", 0x1E2, s.NumHits.Offset()},
		{"num deaths", 0x1E4, s.NumDeaths.Offset()},
		{"ghosts scared", 0x1E6, s.GhostsScared.Segments()[0].Offset()},
		{"selected equipment", 0x1EA, s.SelectedEquipment.Offset()},
		{"quest state", 0x1EC, s.QuestState.Offset()},
		{"blue manticore", 0x1F0, s.BlueManticore.Offset()},
		{"red manticore", 0x1F1, s.RedManticore.Offset()},
		{"first kangaroo encounter", 0x1F4, s.Kangaroo.Encounters[0].ShardX.Offset()},
		{"progress", 0x21C, s.Progress.Offset()},
		{"b flame", 0x21E, s.Flames.B.Offset()},
		{"teleports seen", 0x223, s.TeleportsSeen.Offset()},
		{"teleports active", 0x224, s.TeleportsActive.Offset()},
		{"selected stamp icon", 0x226, s.Stamps.SelectedIcon.Offset()},
		{"first elevator", 0x3A8, s.Elevators.States[0].Position.Offset()},
		{"elevator directions", 0x3E8, s.Elevators.Directions.Offset()},
		{"elevators disabled", 0x3E9, s.Elevators.Disabled.Offset()},
		{"mural cursor", 0x3EA, s.MuralCoord.X.Offset()},
		{"small deposits broken", 0x26F98, s.SmallDepositsBroken.Segments()[0].Offset()},
		{"icicles broken", 0x26FD8, s.IciclesBroken.Segments()[0].Offset()},
		{"berries eaten while full", 0x26FFA, s.BerriesEatenWhileFull.Offset()},
	}
	for _, c := range cases {
		assert.Equal(t, base+c.rel, c.got, c.label)
	}

	// The other two slots are the same layout at their own bases.
	assert.Equal(t, 0x27028, sg.Slots[1].Timestamp.Year.Offset())
	assert.Equal(t, 0x4E038, sg.Slots[2].Timestamp.Year.Offset())
}

func TestTracer_SeesEveryAnchor(t *testing.T) {
	offsets := make(map[string]int)
	_, err := FromBytes(blankImage(), WithTracer(func(label string, offset, size int) {
		if _, seen := offsets[label]; !seen {
			offsets[label] = offset
		}
	}))
	require.NoError(t, err)

	assert.Equal(t, 0x8, offsets["Frame Seed"])
	assert.Equal(t, 0x18, offsets["Year"])
	assert.Equal(t, 0x18+0x26EAF, offsets["Bunny Mural"])
	assert.Equal(t, 0x18+0xD22D, offsets["Minimap Pencil Layer"])
	assert.Equal(t, 0x18+0x1A06E, offsets["Destroyed Blocks"])
}

func TestChecksum(t *testing.T) {
	xorAll := func(sg *Savegame) uint8 {
		var total uint8
		for _, b := range sg.Bytes() {
			total ^= b
		}
		return total
	}

	sg := newBlankSave(t)
	require.NoError(t, sg.Slots[0].Health.Set(12))
	require.NoError(t, sg.Slots[0].Keys.Set(3))

	// A fixed checksum XORs the whole file to zero.
	sg.FixChecksum()
	assert.Equal(t, uint8(0), xorAll(sg))

	// An invalidated one XORs to 0xFF.
	sg.InvalidateChecksum()
	assert.Equal(t, uint8(0xFF), xorAll(sg))

	sg.ForceChecksum(0xAB)
	assert.Equal(t, uint64(0xAB), sg.Checksum.Value())

	// ComputeChecksum is stable regardless of the stored byte.
	first := sg.ComputeChecksum()
	sg.ForceChecksum(0x11)
	assert.Equal(t, first, sg.ComputeChecksum())
}

func TestSlot_HasData(t *testing.T) {
	sg := newBlankSave(t)
	assert.False(t, sg.Slots[0].HasData())

	require.NoError(t, sg.Slots[0].Timestamp.Year.Set(2024))
	assert.True(t, sg.Slots[0].HasData())
}

func TestSlot_ExportImport(t *testing.T) {
	sg := newBlankSave(t)
	src := sg.Slots[0]
	require.NoError(t, src.Timestamp.Year.Set(2024))
	require.NoError(t, src.Health.Set(8))
	require.NoError(t, src.Eggs.EnableAll())

	blob := src.Export()
	require.Len(t, blob, SlotSize)

	require.NoError(t, sg.ImportSlot(2, blob))
	dst := sg.Slots[2]
	assert.Equal(t, uint64(8), dst.Health.Value())
	assert.Len(t, dst.Eggs.Enabled(), 64)
	assert.True(t, dst.HasData())

	assert.Error(t, sg.ImportSlot(3, blob))
	assert.Error(t, sg.ImportSlot(0, blob[:100]))
}

func TestTicks_String(t *testing.T) {
	sg := newBlankSave(t)
	ticks := sg.Slots[0].IngameTicks
	require.NoError(t, ticks.Set(((1*60+1)*60+1)*60+5))
	assert.Equal(t, "1:01:01:05", ticks.String())
}

func TestFillLevels(t *testing.T) {
	f := newBlankSave(t).Slots[0].FillLevels
	assert.Equal(t, 0, f.NumFilled())

	f.Fill()
	assert.Equal(t, NumReservoirs, f.NumFilled())
	for _, level := range f.Levels {
		assert.Equal(t, uint64(MaxFillLevel), level.Value())
	}

	f.Empty()
	assert.Equal(t, 0, f.NumFilled())
}

func TestPickedFruit_StolenNut(t *testing.T) {
	data := blankImage()
	// The stolen-nut bit sits in the second fruit word of slot 0.
	data[0x18+0x170+8+6] = 0x08
	sg, err := FromBytes(data)
	require.NoError(t, err)

	fruit := sg.Slots[0].PickedFruit
	assert.True(t, fruit.HasPhantom())
	assert.Equal(t, 0, fruit.Count())
}
