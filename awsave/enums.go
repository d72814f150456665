package awsave

import (
	"animal-savior/awsave/afield"
)

// Catalogs of every labeled value and flag the savegame stores. Masks
// and labels follow the game's own data; gaps in the masks are values
// the game uses for state we deliberately leave alone (the global
// switch position, the eaten-by-chameleon marker and similar).

// The currently-equipped item.
var EquippedChoices = []afield.Choice{
	{Value: 0x0, Label: "None"},
	{Value: 0x1, Label: "Firecracker"},
	{Value: 0x2, Label: "Flute"},
	{Value: 0x3, Label: "Lantern"},
	{Value: 0x4, Label: "Top"},
	{Value: 0x5, Label: "Disc"},
	{Value: 0x6, Label: "B. Wand"},
	{Value: 0x7, Label: "Yoyo"},
	{Value: 0x8, Label: "Slink"},
	{Value: 0x9, Label: "Remote"},
	{Value: 0xA, Label: "Ball"},
	{Value: 0xB, Label: "Wheel"},
	{Value: 0xC, Label: "UV Light"},
}

// Base equipment unlocks.
var (
	EquipFirecracker = afield.Flag{Mask: 0x0002, Label: "Firecracker"}
	EquipFlute       = afield.Flag{Mask: 0x0004, Label: "Flute"}
	EquipLantern     = afield.Flag{Mask: 0x0008, Label: "Lantern"}
	EquipTop         = afield.Flag{Mask: 0x0010, Label: "Top"}
	EquipDisc        = afield.Flag{Mask: 0x0020, Label: "Disc"}
	EquipWand        = afield.Flag{Mask: 0x0040, Label: "B. Wand"}
	EquipYoyo        = afield.Flag{Mask: 0x0080, Label: "Yoyo"}
	EquipSlink       = afield.Flag{Mask: 0x0100, Label: "Slink"}
	EquipRemote      = afield.Flag{Mask: 0x0200, Label: "Remote"}
	EquipBall        = afield.Flag{Mask: 0x0400, Label: "Ball"}
	EquipWheel       = afield.Flag{Mask: 0x0800, Label: "Wheel"}
	EquipUVLight     = afield.Flag{Mask: 0x1000, Label: "UV Light"}

	EquipmentFlags = []afield.Flag{
		EquipFirecracker, EquipFlute, EquipLantern, EquipTop,
		EquipDisc, EquipWand, EquipYoyo, EquipSlink,
		EquipRemote, EquipBall, EquipWheel, EquipUVLight,
	}
)

// Inventory unlocks.
var (
	InvMockDisc  = afield.Flag{Mask: 0x01, Label: "Mock Disc"}
	InvSMedal    = afield.Flag{Mask: 0x02, Label: "S. Medal"}
	InvHouseKey  = afield.Flag{Mask: 0x08, Label: "House Key"}
	InvOfficeKey = afield.Flag{Mask: 0x10, Label: "Office Key"}
	InvEMedal    = afield.Flag{Mask: 0x40, Label: "E. Medal"}
	InvPack      = afield.Flag{Mask: 0x80, Label: "F. Pack"}

	InventoryFlags = []afield.Flag{
		InvMockDisc, InvSMedal, InvHouseKey, InvOfficeKey, InvEMedal, InvPack,
	}
)

// Quest-related states. Part inventory, part world state, a bit of a
// grab bag.
var (
	QuestHouseOpen         = afield.Flag{Mask: 0x00000001, Label: "House Open"}
	QuestOfficeOpen        = afield.Flag{Mask: 0x00000002, Label: "Office Open"}
	QuestClosetOpen        = afield.Flag{Mask: 0x00000004, Label: "Closet Open"}
	QuestUnlockMap         = afield.Flag{Mask: 0x00000200, Label: "Map Unlocked"}
	QuestUnlockStamps      = afield.Flag{Mask: 0x00000400, Label: "Stamps Unlocked"}
	QuestUnlockPencil      = afield.Flag{Mask: 0x00000800, Label: "Pencil Unlocked"}
	QuestDefeatedChameleon = afield.Flag{Mask: 0x00001000, Label: "Defeated Chameleon"}
	QuestCRing             = afield.Flag{Mask: 0x00002000, Label: "Cheater's Ring"}
	QuestUsedSMedal        = afield.Flag{Mask: 0x00008000, Label: "Inserted S. Medal"}
	QuestUsedEMedal        = afield.Flag{Mask: 0x00010000, Label: "Inserted E. Medal"}
	QuestWings             = afield.Flag{Mask: 0x00020000, Label: "Wings / Flying Unlocked"}
	QuestBBWand            = afield.Flag{Mask: 0x00080000, Label: "B.B. Wand Upgrade"}
	QuestEgg65             = afield.Flag{Mask: 0x00100000, Label: "Egg 65"}
	QuestTorus             = afield.Flag{Mask: 0x00400000, Label: "Teleport Torus Active"}
	QuestDefeatedBat       = afield.Flag{Mask: 0x01000000, Label: "Defeated Bat"}
	QuestFreedOstrich      = afield.Flag{Mask: 0x02000000, Label: "Freed Wheel Ostrich"}
	QuestDefeatedOstrich   = afield.Flag{Mask: 0x04000000, Label: "Defeated Wheel Ostrich"}
	QuestFightingEel       = afield.Flag{Mask: 0x08000000, Label: "Fighting Eel"}
	QuestDefeatedEel       = afield.Flag{Mask: 0x10000000, Label: "Defeated Eel"}
	QuestShrineNoDisc      = afield.Flag{Mask: 0x20000000, Label: "No Disc in Dog Shrine"}
	QuestStatueNoDisc      = afield.Flag{Mask: 0x40000000, Label: "No Disc in Dog Head Statue"}

	QuestStateFlags = []afield.Flag{
		QuestHouseOpen, QuestOfficeOpen, QuestClosetOpen,
		QuestUnlockMap, QuestUnlockStamps, QuestUnlockPencil,
		QuestDefeatedChameleon, QuestCRing,
		QuestUsedSMedal, QuestUsedEMedal, QuestWings,
		QuestBBWand, QuestEgg65, QuestTorus,
		QuestDefeatedBat, QuestFreedOstrich, QuestDefeatedOstrich,
		QuestFightingEel, QuestDefeatedEel,
		QuestShrineNoDisc, QuestStatueNoDisc,
	}
)

// Eggs. All 64 bits of the egg word are real eggs.
var EggFlags = []afield.Flag{
	{Mask: 0x0000000000000001, Label: "Reference"},
	{Mask: 0x0000000000000002, Label: "Brown"},
	{Mask: 0x0000000000000004, Label: "Raw"},
	{Mask: 0x0000000000000008, Label: "Pickled"},
	{Mask: 0x0000000000000010, Label: "Big"},
	{Mask: 0x0000000000000020, Label: "Swan"},
	{Mask: 0x0000000000000040, Label: "Forbidden"},
	{Mask: 0x0000000000000080, Label: "Shadow"},
	{Mask: 0x0000000000000100, Label: "Vanity"},
	{Mask: 0x0000000000000200, Label: "Egg as a Service"},
	{Mask: 0x0000000000000400, Label: "Depraved"},
	{Mask: 0x0000000000000800, Label: "Chaos"},
	{Mask: 0x0000000000001000, Label: "Upside Down"},
	{Mask: 0x0000000000002000, Label: "Evil"},
	{Mask: 0x0000000000004000, Label: "Sweet"},
	{Mask: 0x0000000000008000, Label: "Chocolate"},
	{Mask: 0x0000000000010000, Label: "Value"},
	{Mask: 0x0000000000020000, Label: "Plant"},
	{Mask: 0x0000000000040000, Label: "Red"},
	{Mask: 0x0000000000080000, Label: "Orange"},
	{Mask: 0x0000000000100000, Label: "Sour"},
	{Mask: 0x0000000000200000, Label: "Post Modern"},
	{Mask: 0x0000000000400000, Label: "Universal Basic"},
	{Mask: 0x0000000000800000, Label: "Laissez-Faire"},
	{Mask: 0x0000000001000000, Label: "Zen"},
	{Mask: 0x0000000002000000, Label: "Future"},
	{Mask: 0x0000000004000000, Label: "Friendship"},
	{Mask: 0x0000000008000000, Label: "Truth"},
	{Mask: 0x0000000010000000, Label: "Transcendental"},
	{Mask: 0x0000000020000000, Label: "Ancient"},
	{Mask: 0x0000000040000000, Label: "Magic"},
	{Mask: 0x0000000080000000, Label: "Mystic"},
	{Mask: 0x0000000100000000, Label: "Holiday"},
	{Mask: 0x0000000200000000, Label: "Rain"},
	{Mask: 0x0000000400000000, Label: "Razzle"},
	{Mask: 0x0000000800000000, Label: "Dazzle"},
	{Mask: 0x0000001000000000, Label: "Virtual"},
	{Mask: 0x0000002000000000, Label: "Normal"},
	{Mask: 0x0000004000000000, Label: "Great"},
	{Mask: 0x0000008000000000, Label: "Gorgeous"},
	{Mask: 0x0000010000000000, Label: "Planet"},
	{Mask: 0x0000020000000000, Label: "Moon"},
	{Mask: 0x0000040000000000, Label: "Galaxy"},
	{Mask: 0x0000080000000000, Label: "Sunset"},
	{Mask: 0x0000100000000000, Label: "Goodnight"},
	{Mask: 0x0000200000000000, Label: "Dream"},
	{Mask: 0x0000400000000000, Label: "Travel"},
	{Mask: 0x0000800000000000, Label: "Promise"},
	{Mask: 0x0001000000000000, Label: "Ice"},
	{Mask: 0x0002000000000000, Label: "Fire"},
	{Mask: 0x0004000000000000, Label: "Bubble"},
	{Mask: 0x0008000000000000, Label: "Desert"},
	{Mask: 0x0010000000000000, Label: "Clover"},
	{Mask: 0x0020000000000000, Label: "Brick"},
	{Mask: 0x0040000000000000, Label: "Neon"},
	{Mask: 0x0080000000000000, Label: "Iridescent"},
	{Mask: 0x0100000000000000, Label: "Rust"},
	{Mask: 0x0200000000000000, Label: "Scarlet"},
	{Mask: 0x0400000000000000, Label: "Sapphire"},
	{Mask: 0x0800000000000000, Label: "Ruby"},
	{Mask: 0x1000000000000000, Label: "Jade"},
	{Mask: 0x2000000000000000, Label: "Obsidian"},
	{Mask: 0x4000000000000000, Label: "Crystal"},
	{Mask: 0x8000000000000000, Label: "Golden"},
}

// Bunnies. The missing masks are the invalid bunnies below; they live
// in the same word but are kept as a separate catalog so the editor
// can clear them without ever setting one.
var BunnyFlags = []afield.Flag{
	{Mask: 0x00000001, Label: "Tutorial"},
	{Mask: 0x00000004, Label: "Origami"},
	{Mask: 0x00000008, Label: "Crow"},
	{Mask: 0x00000010, Label: "Ghost"},
	{Mask: 0x00000040, Label: "Fish Mural"},
	{Mask: 0x00000080, Label: "Map Numbers"},
	{Mask: 0x00000100, Label: "TV"},
	{Mask: 0x00000200, Label: "UV"},
	{Mask: 0x00000400, Label: "Bulb"},
	{Mask: 0x00000800, Label: "Chinchilla"},
	{Mask: 0x00008000, Label: "Bunny Mural"},
	{Mask: 0x00400000, Label: "Duck"},
	{Mask: 0x02000000, Label: "Ghost Dog"},
	{Mask: 0x10000000, Label: "Dream"},
	{Mask: 0x40000000, Label: "Floor Is Lava"},
	{Mask: 0x80000000, Label: "Spike Room"},
}

// Invalid bunnies. A slot carrying one of these cannot finish the
// bunny quest, so clearing them is a recovery operation.
var IllegalBunnyFlags = []afield.Flag{
	{Mask: 0x00000002, Label: "Illegal 1"},
	{Mask: 0x00000020, Label: "Illegal 2"},
	{Mask: 0x00001000, Label: "Illegal 3"},
	{Mask: 0x00002000, Label: "Illegal 4"},
	{Mask: 0x00004000, Label: "Illegal 5"},
	{Mask: 0x00010000, Label: "Illegal 6"},
	{Mask: 0x00020000, Label: "Illegal 7"},
	{Mask: 0x00040000, Label: "Illegal 8"},
	{Mask: 0x00080000, Label: "Illegal 9"},
	{Mask: 0x00100000, Label: "Illegal 10"},
	{Mask: 0x00200000, Label: "Illegal 11"},
	{Mask: 0x00800000, Label: "Illegal 12"},
	{Mask: 0x01000000, Label: "Illegal 13"},
	{Mask: 0x04000000, Label: "Illegal 14"},
	{Mask: 0x08000000, Label: "Illegal 15"},
	{Mask: 0x20000000, Label: "Illegal 16"},
}

// Unlocked doors in the egg chamber.
var EggDoorFlags = []afield.Flag{
	{Mask: 0x1, Label: "First (Flute, Portal)"},
	{Mask: 0x2, Label: "Second (Pencil)"},
	{Mask: 0x4, Label: "Third (Top)"},
	{Mask: 0x8, Label: "Fourth (65th Egg)"},
}

// Teleporters; one catalog serves both the seen and active words.
var TeleportFlags = []afield.Flag{
	{Mask: 0x02, Label: "Frog"},
	{Mask: 0x04, Label: "Fish"},
	{Mask: 0x08, Label: "Bear"},
	{Mask: 0x10, Label: "Dog"},
	{Mask: 0x20, Label: "Bird"},
	{Mask: 0x40, Label: "Squirrel"},
	{Mask: 0x80, Label: "Hippo"},
}

var (
	FlameSealed    = afield.Choice{Value: 0, Label: "Sealed"}
	FlameCracked1  = afield.Choice{Value: 1, Label: "Glass Cracked"}
	FlameCracked2  = afield.Choice{Value: 2, Label: "Glass Cracked More"}
	FlameBroken    = afield.Choice{Value: 3, Label: "Glass Broken"}
	FlameCollected = afield.Choice{Value: 4, Label: "Collected"}
	FlameUsed      = afield.Choice{Value: 5, Label: "Used"}

	FlameStateChoices = []afield.Choice{
		FlameSealed, FlameCracked1, FlameCracked2,
		FlameBroken, FlameCollected, FlameUsed,
	}
)

// Lit candles, named by the room where each is found.
var CandleFlags = []afield.Flag{
	{Mask: 0x001, Label: "Room (4, 6)"},
	{Mask: 0x002, Label: "Room (8, 6)"},
	{Mask: 0x004, Label: "Room (4, 7)"},
	{Mask: 0x008, Label: "Room (6, 7)"},
	{Mask: 0x010, Label: "Room (6, 9)"},
	{Mask: 0x020, Label: "Room (15, 9)"},
	{Mask: 0x040, Label: "Room (5, 13)"},
	{Mask: 0x080, Label: "Room (10, 13)"},
	{Mask: 0x100, Label: "Room (16, 13)"},
}

var StampIconChoices = []afield.Choice{
	{Value: 0, Label: "Chest"},
	{Value: 1, Label: "Heart"},
	{Value: 2, Label: "Skull"},
	{Value: 3, Label: "Diamond"},
	{Value: 4, Label: "Spiral"},
	{Value: 5, Label: "Flame"},
	{Value: 6, Label: "Grid"},
	{Value: 7, Label: "Question"},
}

// Global unlockables, stored in the header outside any slot.
var UnlockableFlags = []afield.Flag{
	{Mask: 0x00001, Label: "Stopwatch"},
	{Mask: 0x00002, Label: "Pedometer"},
	{Mask: 0x00004, Label: "Pink Phone"},
	{Mask: 0x00008, Label: "Souvenir Cup"},
	{Mask: 0x00010, Label: "Origami Figurines"},
	{Mask: 0x00020, Label: "Two Rabbits"},
	{Mask: 0x00040, Label: "Owl Figurine"},
	{Mask: 0x00080, Label: "Cat Figurine"},
	{Mask: 0x00100, Label: "Fish Figurine"},
	{Mask: 0x00200, Label: "Donkey Figurine"},
	{Mask: 0x00400, Label: "Decorative Rabbit"},
	{Mask: 0x00800, Label: "mama cha"},
	{Mask: 0x01000, Label: "Giraffe Figurine"},
	{Mask: 0x02000, Label: "Incense Burner"},
	{Mask: 0x04000, Label: "Peacock Figurine"},
	{Mask: 0x08000, Label: "Otter Figurine"},
	{Mask: 0x10000, Label: "Duck Figurine"},
	{Mask: 0x40000, Label: "Pedometer Unicode Chest"},
}

var (
	ShardNone      = afield.Choice{Value: 0, Label: "None"}
	ShardDropped   = afield.Choice{Value: 1, Label: "Dropped"}
	ShardCollected = afield.Choice{Value: 2, Label: "Collected"}
	ShardInserted  = afield.Choice{Value: 3, Label: "Inserted"}

	KangarooShardChoices = []afield.Choice{
		ShardNone, ShardDropped, ShardCollected, ShardInserted,
	}
)

// Pink buttons safe to set. The ones tied to invalid bunnies are in
// the catalog below; setting those can wreck a save.
var PinkButtonFlags = []afield.Flag{
	{Mask: 0x002, Label: "Spike Bunny"},
	{Mask: 0x004, Label: "Floor Is Lava Bunny"},
	{Mask: 0x010, Label: "Map Number Bunny"},
	{Mask: 0x020, Label: "Elevator Dog Wheel"},
	{Mask: 0x040, Label: "Chinchilla Bunny"},
	{Mask: 0x080, Label: "Bulb Bunny"},
	{Mask: 0x200, Label: "Lower Portal Nexus"},
}

// Pink buttons only ever cleared, never set.
var PinkButtonInvalidFlags = []afield.Flag{
	{Mask: 0x001, Label: "Illegal Bunny 1"},
	{Mask: 0x008, Label: "Illegal Bunny 2"},
	{Mask: 0x100, Label: "Illegal Bunny 3"},
}

// Caged cats, plus the caged wheel reward.
var (
	CatWheel = afield.Flag{Mask: 0x20, Label: "Caged Wheel"}

	CatStatusFlags = []afield.Flag{
		{Mask: 0x01, Label: "Caged Cat 1 at 16,18"},
		{Mask: 0x02, Label: "Caged Cat 2 at 16,18"},
		{Mask: 0x04, Label: "Caged Cat 3 at 16,18"},
		{Mask: 0x08, Label: "Caged Cat 1 at 14,19"},
		{Mask: 0x10, Label: "Caged Cat 2 at 14,19"},
		CatWheel,
	}
)

var (
	ManticoreDefault   = afield.Choice{Value: 0x0, Label: "Default"}
	ManticoreOverworld = afield.Choice{Value: 0x1, Label: "Overworld"}
	ManticoreSpace     = afield.Choice{Value: 0x2, Label: "In Space"}

	ManticoreStateChoices = []afield.Choice{
		ManticoreDefault, ManticoreOverworld, ManticoreSpace,
	}
)

var (
	ProgressHPBar    = afield.Flag{Mask: 0x08, Label: "Show HP Bar"}
	ProgressHouseKey = afield.Flag{Mask: 0x10, Label: "Drop House Key"}

	ProgressFlags = []afield.Flag{ProgressHPBar, ProgressHouseKey}
)

// Travel direction of the reversible elevators.
var ElevatorDirectionFlags = []afield.Flag{
	{Mask: 0x1, Label: "Blue Rat (0: down, 1: up)"},
	{Mask: 0x2, Label: "Red Rat (0: right, 1: left)"},
	{Mask: 0x4, Label: "Ostrich (0: right, 1: left)"},
	{Mask: 0x8, Label: "Dog (0: down, 1: up)"},
}

var (
	ElevatorOstrich = afield.Flag{Mask: 0x04, Label: "Wheel Ostrich Platforms"}

	ElevatorDisabledFlags = []afield.Flag{
		{Mask: 0x01, Label: "Elevator 1"},
		{Mask: 0x02, Label: "Elevator 2"},
		ElevatorOstrich,
		{Mask: 0x08, Label: "Elevator 4"},
		{Mask: 0x10, Label: "Elevator 5"},
		{Mask: 0x20, Label: "Elevator 6"},
		{Mask: 0x40, Label: "Elevator 7"},
		{Mask: 0x80, Label: "Elevator 8"},
	}
)

// Kangaroo activity. State 0 only exists before the first encounter;
// "Lurking" is the safe one to force, the attack trigger is physical
// and room-local.
var (
	KangarooInitial   = afield.Choice{Value: 0, Label: "Initial Encounter"}
	KangarooLurking   = afield.Choice{Value: 1, Label: "Lurking"}
	KangarooAttacking = afield.Choice{Value: 2, Label: "Attacking"}

	KangarooActivityChoices = []afield.Choice{
		KangarooInitial, KangarooLurking, KangarooAttacking,
	}
)

var (
	StalactiteIntact = afield.Choice{Value: 0, Label: "Intact"}
	StalactiteBroken = afield.Choice{Value: 6, Label: "Broken"}

	BigStalactiteChoices = []afield.Choice{
		StalactiteIntact,
		{Value: 1, Label: "Cracked Once"},
		{Value: 2, Label: "Cracked Twice"},
		{Value: 3, Label: "On the Floor"},
		{Value: 4, Label: "On the Floor, Cracked Once"},
		{Value: 5, Label: "On the Floor, Cracked Twice"},
		StalactiteBroken,
	}
)
