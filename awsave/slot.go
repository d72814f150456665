package awsave

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"animal-savior/awsave/abuf"
	"animal-savior/awsave/afield"
	"animal-savior/awsave/araster"
)

// SlotSize is the byte length of one save slot.
const SlotSize = 159_760

// minimapGeometry describes the three 1-bit map layers: 40x22 pixel
// rooms on a 20x24 room grid, with the playable 16x16 area inset at
// room (2, 4).
var minimapGeometry = araster.Geometry{
	RoomWidth:      40,
	RoomHeight:     22,
	RoomsX:         20,
	RoomsY:         24,
	PlayableX:      2,
	PlayableY:      4,
	PlayableRoomsX: 16,
	PlayableRoomsY: 16,
	BitsPerPixel:   1,
}

type (
	// Timestamp is the last-saved wall-clock time shown on the load
	// screen. An all-zero timestamp marks the slot as empty.
	Timestamp struct {
		Year   *afield.Field
		Month  *afield.Field
		Day    *afield.Field
		Hour   *afield.Field
		Minute *afield.Field
		Second *afield.Field
	}

	// Ticks is an elapsed-time counter in 60ths of a second.
	Ticks struct {
		*afield.Field
	}

	// MapCoord is a room coordinate pair, u32 each.
	MapCoord struct {
		X *afield.Field
		Y *afield.Field
	}

	// MuralCoord is the cursor position remembered by the in-game mural
	// editor.
	MuralCoord struct {
		X *afield.Field
		Y *afield.Field
	}

	// Flame is one collectible flame with its display name.
	Flame struct {
		*afield.ChoiceField
		Name string
	}

	// Flames holds the four collectible flames.
	Flames struct {
		B *Flame
		P *Flame
		V *Flame
		G *Flame
	}

	// FillLevels tracks the five water-reservoir puzzles. Each level
	// runs 0 (empty) to 80 (full); the structure reserves room for
	// sixteen but only five exist.
	FillLevels struct {
		Levels []*afield.Field
	}

	// KangarooEncounter is one of the three shard encounters.
	KangarooEncounter struct {
		ShardX      *afield.FloatField
		ShardY      *afield.FloatField
		RoomX       *afield.Field
		RoomY       *afield.Field
		State       *afield.ChoiceField
		EncounterID *afield.Field
	}

	// Kangaroo bundles the three encounters with the roaming state.
	Kangaroo struct {
		Encounters      [3]*KangarooEncounter
		NextEncounterID *afield.Field
		Activity        *afield.ChoiceField
	}

	// ElevatorState is one elevator's position and speed.
	ElevatorState struct {
		Position *afield.FloatField
		Speed    *afield.FloatField
	}

	// Elevators holds the eight wheel-driven platforms plus their
	// direction and disabled words.
	Elevators struct {
		States     [8]*ElevatorState
		Directions *afield.Bitfield
		Disabled   *afield.Bitfield
	}

	// Stalactite is one breakable big stalactite with its map label.
	Stalactite struct {
		*afield.ChoiceField
		Label string
	}

	// BigStalactites holds the fourteen big stalactites; the structure
	// reserves room for sixteen.
	BigStalactites struct {
		Stalactites []*Stalactite
	}
)

func (t *Timestamp) HasData() bool {
	for _, f := range []*afield.Field{t.Year, t.Month, t.Day, t.Hour, t.Minute, t.Second} {
		if f.Value() != 0 {
			return true
		}
	}
	return false
}

func (t *Timestamp) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d",
		t.Year.Value(), t.Month.Value(), t.Day.Value(),
		t.Hour.Value(), t.Minute.Value(), t.Second.Value())
}

// String renders the counter the way the game does: h:mm:ss:ff at
// sixty frames per second.
func (t Ticks) String() string {
	seconds, frames := t.Value()/60, t.Value()%60
	minutes, seconds := seconds/60, seconds%60
	hours, minutes := minutes/60, minutes%60
	return fmt.Sprintf("%d:%02d:%02d:%02d", hours, minutes, seconds, frames)
}

func (c *MapCoord) String() string {
	return fmt.Sprintf("(%d, %d)", c.X.Value(), c.Y.Value())
}

// Set moves the coordinate; room coordinates are small, so any u32
// pair is accepted as-is.
func (c *MapCoord) Set(x, y uint64) error {
	if err := c.X.Set(x); err != nil {
		return errors.Wrap(err, "MapCoord.Set error")
	}
	return errors.Wrap(c.Y.Set(y), "MapCoord.Set error")
}

func (c *MuralCoord) String() string {
	return fmt.Sprintf("(%d, %d)", c.X.Value(), c.Y.Value())
}

// All returns the flames in their stored order.
func (f *Flames) All() []*Flame {
	return []*Flame{f.B, f.P, f.V, f.G}
}

// ByLetter resolves a flame from its lowercase initial.
func (f *Flames) ByLetter(letter string) (*Flame, bool) {
	switch letter {
	case "b":
		return f.B, true
	case "p":
		return f.P, true
	case "v":
		return f.V, true
	case "g":
		return f.G, true
	}
	return nil, false
}

// SetAll forces every flame to the given state.
func (f *Flames) SetAll(state afield.Choice) error {
	for _, fl := range f.All() {
		if err := fl.SetChoice(state); err != nil {
			return errors.Wrap(err, "Flames.SetAll error")
		}
	}
	return nil
}

const (
	NumReservoirs = 5
	MaxFillLevel  = 80
)

func (f *FillLevels) setAll(v uint64) {
	if v > MaxFillLevel {
		v = MaxFillLevel
	}
	for _, level := range f.Levels {
		mustSet(level, v)
	}
}

// Fill tops off every reservoir.
func (f *FillLevels) Fill() {
	f.setAll(MaxFillLevel)
}

// Empty drains every reservoir.
func (f *FillLevels) Empty() {
	f.setAll(0)
}

// NumFilled counts completely full reservoirs.
func (f *FillLevels) NumFilled() int {
	return lo.CountBy(f.Levels, func(level *afield.Field) bool {
		return level.Value() >= MaxFillLevel
	})
}

// clear zeroes the encounter, including the shard state.
func (e *KangarooEncounter) clear() {
	e.ShardX.SetFloat(0)
	e.ShardY.SetFloat(0)
	mustSet(e.RoomX, 0)
	mustSet(e.RoomY, 0)
	mustSet(&e.State.Field, 0)
	mustSet(e.EncounterID, 0)
}

// kangarooPreset is plausible drop data per encounter ID, captured
// from real saves. The game ignores it once a shard is collected or
// inserted, but writing it keeps injected data honest.
type kangarooPreset struct {
	shardX float32
	shardY float32
	roomX  uint64
	roomY  uint64
}

var kangarooPresets = map[uint64]kangarooPreset{
	0: {shardX: 38, shardY: 104, roomX: 6, roomY: 6},
	1: {shardX: 156, shardY: 136, roomX: 9, roomY: 11},
	2: {shardX: 16, shardY: 144, roomX: 12, roomY: 11},
	3: {shardX: 147, shardY: 144, roomX: 9, roomY: 13},
	4: {shardX: 154, shardY: 128, roomX: 16, roomY: 16},
}

func (k *Kangaroo) countState(state afield.Choice) int {
	return lo.CountBy(k.Encounters[:], func(e *KangarooEncounter) bool {
		return e.State.Value() == state.Value
	})
}

// NumCollected counts shards carried but not yet inserted.
func (k *Kangaroo) NumCollected() int {
	return k.countState(ShardCollected)
}

// NumInserted counts shards placed in the K. Medal recess.
func (k *Kangaroo) NumInserted() int {
	return k.countState(ShardInserted)
}

// RoomString reports the kangaroo's next room, when the encounter ID
// maps to one.
func (k *Kangaroo) RoomString() string {
	if p, ok := kangarooPresets[k.NextEncounterID.Value()]; ok {
		return fmt.Sprintf("(%d, %d)", p.roomX, p.roomY)
	}
	return "unknown"
}

// ForceRoom pins the kangaroo to the room mapped to the given
// encounter ID, in the lurking state.
func (k *Kangaroo) ForceRoom(id uint64) error {
	if _, ok := kangarooPresets[id]; !ok {
		return errors.Wrapf(afield.ErrRange, "Kangaroo.ForceRoom error: no room mapped to encounter ID %d", id)
	}
	mustSet(k.NextEncounterID, id)
	mustSet(&k.Activity.Field, KangarooLurking.Value)
	return nil
}

// availableIDs lists encounter IDs not claimed by a live encounter,
// sorted.
func (k *Kangaroo) availableIDs() []uint64 {
	taken := make(map[uint64]struct{})
	for _, e := range k.Encounters {
		if e.State.Value() != ShardNone.Value {
			taken[e.EncounterID.Value()] = struct{}{}
		}
	}
	var free []uint64
	for id := range kangarooPresets {
		if _, t := taken[id]; !t {
			free = append(free, id)
		}
	}
	sort.Slice(free, func(i, j int) bool { return free[i] < free[j] })
	return free
}

// SetShardState puts the first count shards into the given state and
// clears the rest. Encounters entering play from the cleared state get
// preset drop data so the records look like the game wrote them.
func (k *Kangaroo) SetShardState(count int, state afield.Choice) error {
	if count < 1 || count > len(k.Encounters) {
		return errors.Wrapf(afield.ErrRange,
			"Kangaroo.SetShardState error: count must be between 1 and %d", len(k.Encounters))
	}
	free := k.availableIDs()
	for i, enc := range k.Encounters {
		if i >= count || state.Value == ShardNone.Value {
			enc.clear()
			continue
		}
		if enc.State.Value() == ShardNone.Value {
			id := free[0]
			free = free[1:]
			p := kangarooPresets[id]
			mustSet(enc.EncounterID, id)
			enc.ShardX.SetFloat(p.shardX)
			enc.ShardY.SetFloat(p.shardY)
			mustSet(enc.RoomX, p.roomX)
			mustSet(enc.RoomY, p.roomY)
		}
		mustSet(&enc.State.Field, state.Value)
	}
	return nil
}

// SetAll forces every stalactite to the given state.
func (b *BigStalactites) SetAll(state afield.Choice) error {
	for _, s := range b.Stalactites {
		if err := s.SetChoice(state); err != nil {
			return errors.Wrap(err, "BigStalactites.SetAll error")
		}
	}
	return nil
}

var bigStalactiteLabels = []string{
	"Stalactite #1 at (7,4)",
	"Stalactite #1 at (4,6)",
	"Stalactite #2 at (4,6)",
	"Stalactite #3 at (4,6)",
	"Stalactite #4 at (4,6)",
	"Stalactite #5 at (4,6)",
	"Stalactite #6 at (4,6)",
	"Stalactite #7 at (4,6)",
	"Stalactite #1 at (5,7)",
	"Stalactite #2 at (5,7)",
	"Stalactite #3 at (5,7)",
	"Stalactite #4 at (5,7)",
	"Stalactite #5 at (5,7)",
	"Stalactite #6 at (5,7)",
}

// Slot is one of the three save slots. All fields resolve into the
// shared savegame buffer; mutating them mutates the file image
// directly.
type Slot struct {
	Index  int
	offset int
	buf    *abuf.Buffer

	Timestamp *Timestamp
	Cranks    []*afield.Field

	LockedDoors *TileList
	MovedWalls  *TileList

	NumSteps   *afield.Field
	FillLevels *FillLevels

	ChestsOpened       *afield.BitCount
	ButtonDoorsOpened  *afield.BitCount
	YellowButtons      *afield.BitCount
	PurpleButtons      *afield.BitCount
	GreenButtons       *afield.BitCount
	PickedFruit        *afield.BitCount
	PickedFirecrackers *afield.BitCount

	Eggs                *afield.Bitfield
	WallsBlasted        *afield.BitCount
	DetonatorsTriggered *afield.BitCount
	Bunnies             *afield.Bitfield
	IllegalBunnies      *afield.Bitfield
	SquirrelsScared     *afield.BitCount
	CatStatus           *afield.Bitfield

	FirecrackersCollected *afield.Field
	BubblesPopped         *afield.Field
	NumSaves              *afield.Field

	PinkButtons        *afield.Bitfield
	PinkButtonsInvalid *afield.Bitfield
	Nuts               *afield.Field
	CETempleChests     *afield.BitCount
	SpaceButtons       *afield.BitCount
	Keys               *afield.Field
	Matches            *afield.Field
	Firecrackers       *afield.Field
	Health             *afield.Field
	GoldHearts         *afield.Field
	LastGroundhogYear  *afield.Field
	EggDoors           *afield.Bitfield

	IngameTicks Ticks
	TotalTicks  Ticks

	SpawnRoom *MapCoord

	Equipment *afield.Bitfield
	Inventory *afield.Bitfield

	Candles      *afield.Bitfield
	NumHits      *afield.Field
	NumDeaths    *afield.Field
	GhostsScared *afield.BitCount

	SelectedEquipment *afield.ChoiceField

	QuestState    *afield.Bitfield
	BlueManticore *afield.ChoiceField
	RedManticore  *afield.ChoiceField

	Kangaroo *Kangaroo

	Progress *afield.Bitfield
	Flames   *Flames

	TeleportsSeen   *afield.Bitfield
	TeleportsActive *afield.Bitfield
	Stamps          *Stamps
	Elevators       *Elevators
	MuralCoord      *MuralCoord

	Minimap        *araster.Layer
	PencilMap      *araster.Layer
	DestructionMap *araster.Layer

	Mural          *Mural
	BigStalactites *BigStalactites

	SmallDepositsBroken   *afield.BitCount
	IciclesBroken         *afield.BitCount
	BerriesEatenWhileFull *afield.Field
}

// HasData reports whether the slot holds a save; the game zeroes the
// timestamp of unused slots.
func (s *Slot) HasData() bool {
	return s.Timestamp.HasData()
}

// Export copies the slot's full byte range out.
func (s *Slot) Export() []byte {
	data, err := s.buf.ReadAt(s.offset, SlotSize)
	if err != nil {
		panic(err)
	}
	return data
}

// stolen-nut bit inside the picked-fruit vector: stealing a squirrel's
// nut registers as a picked fruit.
const (
	stolenNutSegment = 1
	stolenNutMask    = 0x0008000000000000
)

// parseSlot resolves every field of one slot. Offsets that match the
// file layout exactly are anchored; everything else chains inline.
func parseSlot(buf *abuf.Buffer, index, offset int, trace Tracer) *Slot {
	c := newCursor(buf, offset, trace)
	s := &Slot{
		Index:  index,
		offset: offset,
		buf:    buf,
	}

	s.Timestamp = &Timestamp{
		Year:   c.num("Year", 0x0, abuf.UInt16),
		Month:  c.num("Month", inline, abuf.UInt8),
		Day:    c.num("Day", inline, abuf.UInt8),
		Hour:   c.num("Hour", inline, abuf.UInt8),
		Minute: c.num("Minute", inline, abuf.UInt8),
		Second: c.num("Second", inline, abuf.UInt8),
	}

	c.at("Cranks", 0x8, 0)
	for i := 0; i < 23; i++ {
		s.Cranks = append(s.Cranks, c.num(fmt.Sprintf("Crank %d", i), inline, abuf.UInt16))
	}

	doorTiles := parseTiles(c, "Locked Door", 0x88)
	wallTiles := parseTiles(c, "Moved Wall", inline)

	s.NumSteps = c.num("Num Steps", 0x108, abuf.UInt32)
	fill := &FillLevels{}
	for i := 0; i < NumReservoirs; i++ {
		fill.Levels = append(fill.Levels, c.num(fmt.Sprintf("Reservoir %d", i), inline, abuf.UInt8))
	}
	c.skip(16 - NumReservoirs)
	s.FillLevels = fill

	s.ChestsOpened = c.bits("Chests Opened", 0x120, abuf.UInt64, 2, 102)
	s.ButtonDoorsOpened = c.bits("Button Doors Opened", inline, abuf.UInt64, 2, 94)
	s.YellowButtons = c.bits("Yellow Buttons Pressed", inline, abuf.UInt64, 3, 134)

	s.PurpleButtons = c.bits("Purple Buttons Pressed", 0x160, abuf.UInt64, 1, 27)
	s.GreenButtons = c.bits("Green Buttons Pressed", inline, abuf.UInt64, 1, 7)

	s.PickedFruit = c.bitsPhantom("Picked Fruit", 0x170, abuf.UInt64, 2, 115, stolenNutSegment, stolenNutMask)
	s.PickedFirecrackers = c.bits("Picked Firecrackers", inline, abuf.UInt64, 1, 64)
	s.Eggs = c.bitfield("Eggs", inline, abuf.UInt64, EggFlags)
	s.WallsBlasted = c.bits("Walls Blasted", inline, abuf.UInt32, 1, 10)
	s.DetonatorsTriggered = c.bits("Detonators Triggered", inline, abuf.UInt32, 1, 9)
	s.Bunnies = c.bitfield("Bunnies", inline, abuf.UInt32, BunnyFlags)
	// Same word as Bunnies, seen through the invalid-bunny catalog.
	s.IllegalBunnies = c.bitfield("Illegal Bunnies", 0x198, abuf.UInt32, IllegalBunnyFlags)
	s.SquirrelsScared = c.bits("Squirrels Scared", 0x19C, abuf.UInt16, 1, 13)
	s.CatStatus = c.bitfield("Cat Status", inline, abuf.UInt16, CatStatusFlags)

	s.FirecrackersCollected = c.num("Firecrackers Collected", 0x1A2, abuf.UInt16)
	s.BubblesPopped = c.num("Bubbles Popped", inline, abuf.UInt16)

	s.NumSaves = c.num("Num Saves", 0x1A8, abuf.UInt16)
	lockedDoorCount := c.num("Locked Doors Index", inline, abuf.UInt8)

	// One u16, two catalog views: buttons safe to set, and cheat
	// buttons we only ever clear.
	s.PinkButtons = c.bitfield("Pink Buttons Pressed", 0x1AC, abuf.UInt16, PinkButtonFlags)
	s.PinkButtonsInvalid = c.bitfield("Invalid Pink Buttons", 0x1AC, abuf.UInt16, PinkButtonInvalidFlags)
	s.Nuts = c.num("Num Nuts", inline, abuf.UInt8)
	s.CETempleChests = c.bits("CE Temple Chests", inline, abuf.UInt8, 1, 1)
	s.SpaceButtons = c.bits("Space Buttons", inline, abuf.UInt8, 1, 4)
	s.Keys = c.num("Num Keys", inline, abuf.UInt8)
	s.Matches = c.num("Num Matches", inline, abuf.UInt8)
	s.Firecrackers = c.num("Num Firecrackers", inline, abuf.UInt8)
	s.Health = c.num("Health", inline, abuf.UInt8)
	s.GoldHearts = c.num("Gold Hearts", inline, abuf.UInt8)
	s.LastGroundhogYear = c.num("Last Groundhog Year", inline, abuf.UInt16)
	movedWallCount := c.num("Moved Walls Index", inline, abuf.UInt8)
	s.EggDoors = c.bitfield("Egg Doors", inline, abuf.UInt8, EggDoorFlags)

	s.LockedDoors = newTileList(lockedDoorCount, doorTiles, knownLockedDoors, nil)
	s.MovedWalls = newTileList(movedWallCount, wallTiles, knownMovedWalls, invalidMovedWalls)

	s.IngameTicks = Ticks{c.num("Ingame Ticks", 0x1BC, abuf.UInt32)}
	s.TotalTicks = Ticks{c.num("Total Ticks", inline, abuf.UInt32)}

	s.SpawnRoom = &MapCoord{
		X: c.num("Spawn X", 0x1D4, abuf.UInt32),
		Y: c.num("Spawn Y", inline, abuf.UInt32),
	}

	s.Equipment = c.bitfield("Equipment", 0x1DC, abuf.UInt16, EquipmentFlags)
	s.Inventory = c.bitfield("Inventory", inline, abuf.UInt8, InventoryFlags)

	s.Candles = c.bitfield("Candles", 0x1E0, abuf.UInt16, CandleFlags)
	s.NumHits = c.num("Num Hits", inline, abuf.UInt16)
	s.NumDeaths = c.num("Num Deaths", inline, abuf.UInt16)
	s.GhostsScared = c.bits("Ghosts Scared", inline, abuf.UInt16, 1, 11)

	s.SelectedEquipment = c.choice("Selected Equipment", 0x1EA, abuf.UInt8, EquippedChoices)

	s.QuestState = c.bitfield("Quest State", 0x1EC, abuf.UInt32, QuestStateFlags)
	s.BlueManticore = c.choice("Blue Manticore", inline, abuf.UInt8, ManticoreStateChoices)
	s.RedManticore = c.choice("Red Manticore", inline, abuf.UInt8, ManticoreStateChoices)

	kang := &Kangaroo{}
	c.at("Kangaroo State", 0x1F4, 0)
	for i := range kang.Encounters {
		kang.Encounters[i] = &KangarooEncounter{
			ShardX:      c.float(fmt.Sprintf("Encounter %d Shard X", i), inline),
			ShardY:      c.float(fmt.Sprintf("Encounter %d Shard Y", i), inline),
			RoomX:       c.num(fmt.Sprintf("Encounter %d Room X", i), inline, abuf.UInt8),
			RoomY:       c.num(fmt.Sprintf("Encounter %d Room Y", i), inline, abuf.UInt8),
			State:       c.choice(fmt.Sprintf("Encounter %d State", i), inline, abuf.UInt8, KangarooShardChoices),
			EncounterID: c.num(fmt.Sprintf("Encounter %d ID", i), inline, abuf.UInt8),
		}
	}
	kang.NextEncounterID = c.num("Next Encounter ID", inline, abuf.UInt8)
	kang.Activity = c.choice("Kangaroo Activity", inline, abuf.UInt8, KangarooActivityChoices)
	s.Kangaroo = kang

	s.Progress = c.bitfield("Progress", 0x21C, abuf.UInt16, ProgressFlags)
	s.Flames = &Flames{
		B: &Flame{Name: "B. Flame", ChoiceField: c.choice("B. Flame", inline, abuf.UInt8, FlameStateChoices)},
		P: &Flame{Name: "P. Flame", ChoiceField: c.choice("P. Flame", inline, abuf.UInt8, FlameStateChoices)},
		V: &Flame{Name: "V. Flame", ChoiceField: c.choice("V. Flame", inline, abuf.UInt8, FlameStateChoices)},
		G: &Flame{Name: "G. Flame", ChoiceField: c.choice("G. Flame", inline, abuf.UInt8, FlameStateChoices)},
	}

	s.TeleportsSeen = c.bitfield("Teleports Seen", 0x223, abuf.UInt8, TeleportFlags)
	s.TeleportsActive = c.bitfield("Teleports Active", inline, abuf.UInt8, TeleportFlags)

	stampCount := c.num("Num Stamps", inline, abuf.UInt8)
	selectedIcon := c.choice("Selected Stamp Icon", inline, abuf.UInt16, StampIconChoices)
	var stampSlots []*Stamp
	for i := 0; i < MaxStamps; i++ {
		stampSlots = append(stampSlots, &Stamp{
			X:    c.num(fmt.Sprintf("Stamp %d X", i), inline, abuf.UInt16),
			Y:    c.num(fmt.Sprintf("Stamp %d Y", i), inline, abuf.UInt16),
			Icon: c.choice(fmt.Sprintf("Stamp %d Icon", i), inline, abuf.UInt16, StampIconChoices),
		})
	}
	s.Stamps = &Stamps{
		RecordList:   afield.NewRecordList(stampCount, stampSlots),
		SelectedIcon: selectedIcon,
	}

	elev := &Elevators{}
	c.at("Elevators", 0x3A8, 0)
	for i := range elev.States {
		elev.States[i] = &ElevatorState{
			Position: c.float(fmt.Sprintf("Elevator %d Position", i), inline),
			Speed:    c.float(fmt.Sprintf("Elevator %d Speed", i), inline),
		}
	}
	elev.Directions = c.bitfield("Elevator Directions", inline, abuf.UInt8, ElevatorDirectionFlags)
	elev.Disabled = c.bitfield("Elevators Disabled", inline, abuf.UInt8, ElevatorDisabledFlags)
	s.Elevators = elev

	s.MuralCoord = &MuralCoord{
		X: c.num("Mural Cursor X", inline, abuf.UInt8),
		Y: c.num("Mural Cursor Y", inline, abuf.UInt8),
	}

	s.Minimap = c.layer("Minimap Revealed", inline, minimapGeometry)
	s.PencilMap = c.layer("Minimap Pencil Layer", 0xD22D, minimapGeometry)
	s.DestructionMap = c.layer("Destroyed Blocks", 0x1A06E, minimapGeometry)

	s.Mural = &Mural{Layer: c.layer("Bunny Mural", 0x26EAF, muralGeometry)}

	stal := &BigStalactites{}
	for _, label := range bigStalactiteLabels {
		stal.Stalactites = append(stal.Stalactites, &Stalactite{
			Label:       label,
			ChoiceField: c.choice(label, inline, abuf.UInt8, BigStalactiteChoices),
		})
	}
	c.skip(16 - len(bigStalactiteLabels))
	s.BigStalactites = stal

	s.SmallDepositsBroken = c.bits("Small Deposits Broken", 0x26F98, abuf.UInt64, 8, 423)
	s.IciclesBroken = c.bits("Icicles Broken", inline, abuf.UInt64, 4, 159)

	s.BerriesEatenWhileFull = c.num("Berries Eaten While Full", 0x26FFA, abuf.UInt16)

	return s
}

// parseTiles resolves one 16-entry tile array; the count field lives
// elsewhere and gets wired in later.
func parseTiles(c *cursor, label string, rel int) []*Tile {
	c.at(label+"s", rel, 0)
	var tiles []*Tile
	for i := 0; i < 16; i++ {
		tiles = append(tiles, &Tile{
			RoomY: c.num(fmt.Sprintf("%s %d Room Y", label, i), inline, abuf.UInt8),
			RoomX: c.num(fmt.Sprintf("%s %d Room X", label, i), inline, abuf.UInt8),
			TileY: c.num(fmt.Sprintf("%s %d Tile Y", label, i), inline, abuf.UInt8),
			TileX: c.num(fmt.Sprintf("%s %d Tile X", label, i), inline, abuf.UInt8),
		})
	}
	return tiles
}
