package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"animal-savior/awsave"
	"animal-savior/awsave/afield"
	"animal-savior/ds"
)

type InfoCmd struct {
	Slot         int    `arg:"-s,--slot" default:"0" help:"slot to report on (1-3, 0 for all)"`
	Verbose      bool   `arg:"-v,--verbose" help:"also report missing collectibles"`
	SingleColumn bool   `arg:"-1,--single-column" help:"list one item per line"`
	Offsets      bool   `help:"dump every field's offset and size to stderr while parsing"`
	File         string `arg:"positional,required" help:"savegame to open" placeholder:"AnimalWell.sav"`
}

func (c *InfoCmd) Run() error {
	indexes, err := slotIndexes(c.Slot)
	if err != nil {
		return errors.Wrap(err, "InfoCmd.Run error")
	}

	var opts []awsave.Option
	if c.Offsets {
		opts = append(opts, awsave.WithTracer(func(label string, offset, size int) {
			fmt.Fprintf(os.Stderr, "0x%06X %3d  %s\n", offset, size, label)
		}))
	}
	sg, err := awsave.Open(c.File, opts...)
	if err != nil {
		return errors.Wrap(err, "InfoCmd.Run error")
	}

	header := fmt.Sprintf("Animal Well Savegame v%d", sg.Version.Value())
	fmt.Println(header)
	fmt.Println(strings.Repeat("-", len(header)))
	fmt.Println()
	fmt.Printf(" - Last-Used Slot: %d\n", sg.LastUsedSlot.Value()+1)
	fmt.Printf(" - Checksum: 0x%02X\n", sg.Checksum.Value())
	fmt.Printf(" - Frame Seed: %d (bunny mural: %d/50)\n", sg.FrameSeed.Value(), sg.FrameSeed.Value()%50+1)
	if enabled := sg.Unlockables.Enabled(); len(enabled) > 0 {
		fmt.Println(" - Unlockables:")
		c.printFlags(enabled, "   ")
	}
	if c.Verbose {
		if disabled := sg.Unlockables.Disabled(); len(disabled) > 0 {
			fmt.Println(" - Missing Unlockables:")
			c.printFlags(disabled, "   ")
		}
	}

	for _, i := range indexes {
		c.printSlot(sg.Slots[i])
	}
	fmt.Println()
	return nil
}

func (c *InfoCmd) printSlot(slot *awsave.Slot) {
	label := fmt.Sprintf("Slot %d", slot.Index+1)
	fmt.Println()
	if !slot.HasData() {
		header := label + ": No data!"
		fmt.Println(header)
		fmt.Println(strings.Repeat("-", len(header)))
		return
	}
	header := fmt.Sprintf("%s: %s", label, slot.Timestamp)
	fmt.Println(header)
	fmt.Println(strings.Repeat("-", len(header)))
	fmt.Println()

	if slot.IngameTicks.Value() == slot.TotalTicks.Value() {
		fmt.Printf(" - Elapsed Time: %s\n", slot.TotalTicks)
	} else {
		fmt.Printf(" - Elapsed Time: %s (ingame: %s)\n", slot.TotalTicks, slot.IngameTicks)
	}
	if enabled := slot.Progress.Enabled(); len(enabled) > 0 {
		labels := lo.Map(enabled, func(f afield.Flag, _ int) string { return f.Label })
		sort.Strings(labels)
		fmt.Printf(" - Progress flags: %s\n", strings.Join(labels, ", "))
	}
	fmt.Printf(" - Saved in Room: %s\n", slot.SpawnRoom)
	if hearts := slot.GoldHearts.Value(); hearts > 0 {
		plural := "s"
		if hearts == 1 {
			plural = ""
		}
		fmt.Printf(" - Health: %d (%d gold heart%s)\n", slot.Health.Value(), hearts, plural)
	} else {
		fmt.Printf(" - Health: %d\n", slot.Health.Value())
	}

	fmt.Println(" - Counters:")
	fmt.Printf("   - Steps: %d\n", slot.NumSteps.Value())
	fmt.Printf("   - Times Saved: %d\n", slot.NumSaves.Value())
	fmt.Printf("   - Times Died: %d (Times Hit: %d)\n", slot.NumDeaths.Value(), slot.NumHits.Value())
	hasFirecrackers := slot.Equipment.IsEnabled(awsave.EquipFirecracker)
	if hasFirecrackers {
		fmt.Printf("   - Firecrackers Collected: %d\n", slot.FirecrackersCollected.Value())
	}
	if v := slot.BubblesPopped.Value(); v > 0 {
		fmt.Printf("   - Bubbles Popped: %d\n", v)
	}
	if v := slot.BerriesEatenWhileFull.Value(); v > 0 {
		fmt.Printf("   - Berries Eaten While Full: %d\n", v)
	}

	fmt.Println(" - Consumables Inventory:")
	if hasFirecrackers {
		fmt.Printf("   - Firecrackers: %d\n", slot.Firecrackers.Value())
	}
	fmt.Printf("   - Keys: %d\n", slot.Keys.Value())
	fmt.Printf("   - Matches: %d\n", slot.Matches.Value())
	if v := slot.Nuts.Value(); v > 0 {
		fmt.Printf("   - Nuts: %d\n", v)
	}

	if enabled := slot.Equipment.Enabled(); len(enabled) > 0 {
		fmt.Println(" - Equipment Unlocked:")
		c.printFlags(enabled, "   ")
		fmt.Printf(" - Selected Equipment: %s\n", slot.SelectedEquipment)
	}
	if c.Verbose {
		if disabled := slot.Equipment.Disabled(); len(disabled) > 0 {
			fmt.Println(" - Missing Equipment:")
			c.printFlags(disabled, "   ")
		}
	}

	collected := slot.Kangaroo.NumCollected()
	inserted := slot.Kangaroo.NumInserted()
	if enabled := slot.Inventory.Enabled(); len(enabled) > 0 || collected > 0 {
		fmt.Println(" - Inventory Unlocked:")
		report := lo.Map(enabled, func(f afield.Flag, _ int) string { return f.Label })
		if collected > 0 {
			suffix := ""
			if inserted > 0 {
				suffix = fmt.Sprintf(", plus %d inserted", inserted)
			}
			report = append(report, fmt.Sprintf("K. Shards (%d/3%s)", collected, suffix))
		}
		sort.Strings(report)
		c.printColumns(report, "   ")
	}

	fmt.Printf(" - Eggs Collected: %d\n", len(slot.Eggs.Enabled()))
	c.printFlags(slot.Eggs.Enabled(), "   ")
	if c.Verbose {
		if disabled := slot.Eggs.Disabled(); len(disabled) > 0 {
			fmt.Println(" - Missing Eggs:")
			c.printFlags(disabled, "   ")
		}
	}

	if enabled := slot.Bunnies.Enabled(); len(enabled) > 0 {
		fmt.Printf(" - Bunnies Collected: %d\n", len(enabled))
		c.printFlags(enabled, "   ")
	}
	if illegal := slot.IllegalBunnies.Enabled(); len(illegal) > 0 {
		fmt.Printf(" - Illegal Bunnies Collected: %d\n", len(illegal))
		fmt.Println("   ***WARNING***")
		fmt.Println("   Illegal bunnies make the bunny mural puzzle unsolvable.  Use")
		fmt.Println("   'edit --illegal-bunny-clear' on this save to clean it up.")
		fmt.Println("   ***WARNING***")
	}

	if enabled := slot.QuestState.Enabled(); len(enabled) > 0 {
		fmt.Println(" - Quest State Flags:")
		c.printFlags(enabled, "   ")
	}

	if lo.SomeBy(slot.Flames.All(), func(f *awsave.Flame) bool {
		return f.Value() != awsave.FlameSealed.Value
	}) {
		fmt.Println(" - Flame States:")
		for _, flame := range slot.Flames.All() {
			fmt.Printf("   - %s: %s\n", flame.Name, flame)
		}
	}

	fmt.Println(" - Transient Map Data:")
	fmt.Printf("   - Fruit Picked: %d/%d\n", slot.PickedFruit.Count(), slot.PickedFruit.MaxBits())
	if slot.PickedFruit.HasPhantom() {
		fmt.Println("     - Also has stolen a nut from a squirrel (counts as a picked fruit!)")
	}
	if hasFirecrackers {
		fmt.Printf("   - Firecrackers Picked: %d/%d\n", slot.PickedFirecrackers.Count(), slot.PickedFirecrackers.MaxBits())
	}
	fmt.Printf("   - Ghosts Scared: %d/%d\n", slot.GhostsScared.Count(), slot.GhostsScared.MaxBits())
	damaged := lo.Filter(slot.BigStalactites.Stalactites, func(s *awsave.Stalactite, _ int) bool {
		return s.Value() != awsave.StalactiteIntact.Value
	})
	if len(damaged) > 0 {
		fmt.Println("   - Big Stalactite States:")
		c.printColumns(lo.Map(damaged, func(s *awsave.Stalactite, _ int) string {
			return fmt.Sprintf("%s: %s", s.Label, s)
		}), "     ")
	}
	if n := slot.SmallDepositsBroken.Count(); n > 0 {
		fmt.Printf("   - Small Stalactites/Stalagmites Broken: %d/%d\n", n, slot.SmallDepositsBroken.MaxBits())
	}
	if n := slot.IciclesBroken.Count(); n > 0 {
		fmt.Printf("   - Icicles Broken: %d/%d\n", n, slot.IciclesBroken.MaxBits())
	}
	fmt.Printf("   - Next Kangaroo Room: %d %s, in state: %s\n",
		slot.Kangaroo.NextEncounterID.Value(), slot.Kangaroo.RoomString(), slot.Kangaroo.Activity)
	if slot.QuestState.IsEnabled(awsave.QuestUnlockStamps) {
		fmt.Printf("   - Minimap Stamps: %d\n", slot.Stamps.Len())
	}

	fmt.Println(" - Permanent Map Data:")
	fmt.Printf("   - Chests Opened: %d/%d\n", slot.ChestsOpened.Count(), slot.ChestsOpened.MaxBits())
	if n := slot.CETempleChests.Count(); n > 0 {
		fmt.Printf("   - CE Temple Chests Opened: %d\n", n)
	}
	if n := slot.SquirrelsScared.Count(); n > 0 {
		fmt.Printf("   - Squirrels Scared: %d/%d\n", n, slot.SquirrelsScared.MaxBits())
	}
	if n := slot.YellowButtons.Count(); n > 0 {
		fmt.Printf("   - Yellow Buttons Pressed: %d/%d\n", n, slot.YellowButtons.MaxBits())
	}
	if n := slot.PurpleButtons.Count(); n > 0 {
		fmt.Printf("   - Purple Buttons Pressed: %d/%d\n", n, slot.PurpleButtons.MaxBits())
	}
	if n := slot.GreenButtons.Count(); n > 0 {
		fmt.Printf("   - Green Buttons Pressed: %d/%d\n", n, slot.GreenButtons.MaxBits())
	}
	if n := len(slot.PinkButtons.Enabled()); n > 0 {
		fmt.Printf("   - Valid Pink Buttons Pressed: %d\n", n)
	}
	if n := len(slot.PinkButtonsInvalid.Enabled()); n > 0 {
		fmt.Printf("   - Invalid Pink Buttons Pressed: %d\n", n)
		fmt.Println("     ***WARNING***")
		fmt.Println("       Invalid pink buttons can lead to savefile corruption!  Use")
		fmt.Println("       'edit --clear-invalid-walls' on this save to clean it up.")
		fmt.Println("     ***WARNING***")
	}
	if n := slot.SpaceButtons.Count(); n > 0 {
		fmt.Printf("   - Space / Bunny Island Buttons Pressed: %d\n", n)
	}
	if n := slot.ButtonDoorsOpened.Count(); n > 0 {
		fmt.Printf("   - Button-Activated Doors Opened: %d/%d\n", n, slot.ButtonDoorsOpened.MaxBits())
	}
	if n := slot.LockedDoors.Len(); n > 0 {
		fmt.Printf("   - Doors Unlocked: %d\n", n)
	}
	if n := slot.MovedWalls.Len(); n > 0 {
		fmt.Printf("   - Walls Moved: %d\n", n)
	}
	if n := slot.FillLevels.NumFilled(); n > 0 {
		fmt.Printf("   - Reservoirs Filled: %d\n", n)
	}
	if enabled := slot.Candles.Enabled(); len(enabled) > 0 {
		fmt.Printf("   - Candles Lit: %d/%d\n", len(enabled), len(slot.Candles.Flags()))
	}
	if c.Verbose {
		if disabled := slot.Candles.Disabled(); len(disabled) > 0 {
			fmt.Println("   - Missing Candles-to-Light:")
			c.printFlags(disabled, "     ")
		}
	}
	if n := slot.DetonatorsTriggered.Count(); n > 0 {
		fmt.Printf("   - Detonators Triggered: %d/%d\n", n, slot.DetonatorsTriggered.MaxBits())
	}
	if n := slot.WallsBlasted.Count(); n > 0 {
		fmt.Printf("   - Walls Blasted: %d/%d\n", n, slot.WallsBlasted.MaxBits())
	}
	if n := len(slot.EggDoors.Enabled()); n > 0 {
		fmt.Printf("   - Egg Doors Opened: %d\n", n)
	}
	if inserted > 0 {
		fmt.Printf("   - K. Shards Inserted: %d/3\n", inserted)
	}
	if enabled := slot.CatStatus.Enabled(); len(enabled) > 0 {
		cats := len(enabled)
		hasWheel := slot.CatStatus.IsEnabled(awsave.CatWheel)
		if hasWheel {
			cats--
		}
		if cats > 0 {
			fmt.Printf("   - Cats Rescued: %d\n", cats)
		}
		if hasWheel {
			fmt.Println("   - Unlocked wheel cage")
		}
	}
	if slot.BlueManticore.Value() != awsave.ManticoreDefault.Value {
		fmt.Printf("   - Blue Manticore: %s\n", slot.BlueManticore)
	}
	if slot.RedManticore.Value() != awsave.ManticoreDefault.Value {
		fmt.Printf("   - Red Manticore: %s\n", slot.RedManticore)
	}

	if enabled := slot.TeleportsActive.Enabled(); len(enabled) > 0 {
		fmt.Printf(" - Teleports Active: %d\n", len(enabled))
		c.printFlags(enabled, "   ")
	}
	if c.Verbose {
		if disabled := slot.TeleportsActive.Disabled(); len(disabled) > 0 {
			fmt.Println(" - Missing Teleports:")
			c.printFlags(disabled, "   ")
		}
	}
}

func (c *InfoCmd) printFlags(flags []afield.Flag, indent string) {
	labels := lo.Map(flags, func(f afield.Flag, _ int) string { return f.Label })
	sort.Strings(labels)
	c.printColumns(labels, indent)
}

// printColumns lays items out two per row (one, with --single-column),
// padded to the widest entry.
func (c *InfoCmd) printColumns(items []string, indent string) {
	columns := 2
	if c.SingleColumn {
		columns = 1
	}
	width := 0
	for _, item := range items {
		if len(item) > width {
			width = len(item)
		}
	}
	for _, row := range ds.MakeChunks(items, columns) {
		parts := lo.Map(row, func(item string, _ int) string {
			return fmt.Sprintf("- %-*s", width, item)
		})
		fmt.Println(indent + strings.TrimRight(strings.Join(parts, " "), " "))
	}
}
