package cli

import (
	"fmt"
	"image"
	"os"

	"github.com/pkg/errors"

	"animal-savior/awsave"
	"animal-savior/awsave/afield"
	"animal-savior/awsave/araster"
)

// singleSlot is slotIndexes without the all-slots alias; import and
// export targets are single files, so "all" makes no sense there.
func singleSlot(slot int) (int, error) {
	if slot < 1 || slot > awsave.NumSlots {
		return 0, errors.Errorf("singleSlot error: slot must be 1-%d, got %d", awsave.NumSlots, slot)
	}
	return slot - 1, nil
}

type SlotExportCmd struct {
	Slot   int    `arg:"-s,--slot,required" help:"slot to export (1-3)"`
	Output string `arg:"-o,--output,required" help:"file to write the slot blob to"`
	Force  bool   `arg:"-f,--force" help:"overwrite the output without asking"`
	File   string `arg:"positional,required" help:"savegame to read" placeholder:"AnimalWell.sav"`
}

func (c *SlotExportCmd) Run() error {
	i, err := singleSlot(c.Slot)
	if err != nil {
		return errors.Wrap(err, "SlotExportCmd.Run error")
	}
	sg, err := openSave(c.File)
	if err != nil {
		return errors.Wrap(err, "SlotExportCmd.Run error")
	}
	if !confirmOverwrite(c.Output, c.Force) {
		fmt.Println("NOTICE: Slot data NOT exported")
		return nil
	}
	if err := os.WriteFile(c.Output, sg.Slots[i].Export(), 0o644); err != nil {
		return errors.Wrap(err, "SlotExportCmd.Run error")
	}
	fmt.Printf("Slot %d: Exported slot data to: %s\n", c.Slot, c.Output)
	return nil
}

type SlotImportCmd struct {
	Slot  int    `arg:"-s,--slot,required" help:"slot to overwrite (1-3)"`
	Input string `arg:"-i,--input,required" help:"slot blob to read"`
	File  string `arg:"positional,required" help:"savegame to modify" placeholder:"AnimalWell.sav"`
}

func (c *SlotImportCmd) Run() error {
	i, err := singleSlot(c.Slot)
	if err != nil {
		return errors.Wrap(err, "SlotImportCmd.Run error")
	}
	sg, err := openSave(c.File)
	if err != nil {
		return errors.Wrap(err, "SlotImportCmd.Run error")
	}
	data, err := os.ReadFile(c.Input)
	if err != nil {
		return errors.Wrap(err, "SlotImportCmd.Run error")
	}
	if err := sg.ImportSlot(i, data); err != nil {
		return errors.Wrap(err, "SlotImportCmd.Run error")
	}
	if err := sg.Save(); err != nil {
		return errors.Wrap(err, "SlotImportCmd.Run error")
	}
	fmt.Printf("Slot %d: Imported slot data from: %s\n", c.Slot, c.Input)
	fmt.Printf("Wrote changes!  New checksum: 0x%02X\n", sg.Checksum.Value())
	return nil
}

type MapExportCmd struct {
	Slot   int    `arg:"-s,--slot,required" help:"slot to read (1-3)"`
	Layer  string `arg:"-l,--layer" default:"pencil" help:"layer to export: revealed, pencil or destroyed"`
	Output string `arg:"-o,--output,required" help:"image file to write (.png, .gif or .bmp)"`
	Force  bool   `arg:"-f,--force" help:"overwrite the output without asking"`
	File   string `arg:"positional,required" help:"savegame to read" placeholder:"AnimalWell.sav"`
}

func (c *MapExportCmd) Run() error {
	i, err := singleSlot(c.Slot)
	if err != nil {
		return errors.Wrap(err, "MapExportCmd.Run error")
	}
	sg, err := openSave(c.File)
	if err != nil {
		return errors.Wrap(err, "MapExportCmd.Run error")
	}
	slot := sg.Slots[i]

	var img image.Image
	switch c.Layer {
	case "revealed":
		img = slot.Minimap.ExportImage(nil)
	case "pencil":
		img = slot.PencilMap.ExportImage(nil)
	case "destroyed":
		img = slot.DestructionMap.ExportImage(nil)
	default:
		return errors.Wrapf(afield.ErrRange,
			`MapExportCmd.Run error: unknown layer "%s" (want revealed, pencil or destroyed)`, c.Layer)
	}
	if !confirmOverwrite(c.Output, c.Force) {
		fmt.Println("NOTICE: Minimap layer NOT exported")
		return nil
	}
	if err := araster.EncodeFile(c.Output, img); err != nil {
		return errors.Wrap(err, "MapExportCmd.Run error")
	}
	fmt.Printf("Slot %d: Exported %s minimap layer to: %s\n", c.Slot, c.Layer, c.Output)
	return nil
}

type MapImportCmd struct {
	Slot     int    `arg:"-s,--slot,required" help:"slot to modify (1-3)"`
	Input    string `arg:"-i,--input,required" help:"image file to read"`
	Playable bool   `arg:"--playable" help:"draw into the playable area only instead of the whole layer"`
	Invert   bool   `arg:"--invert" help:"invert pixel polarity"`
	File     string `arg:"positional,required" help:"savegame to modify" placeholder:"AnimalWell.sav"`
}

func (c *MapImportCmd) Run() error {
	i, err := singleSlot(c.Slot)
	if err != nil {
		return errors.Wrap(err, "MapImportCmd.Run error")
	}
	sg, err := openSave(c.File)
	if err != nil {
		return errors.Wrap(err, "MapImportCmd.Run error")
	}
	img, err := araster.DecodeFile(c.Input)
	if err != nil {
		return errors.Wrap(err, "MapImportCmd.Run error")
	}
	err = sg.Slots[i].PencilMap.ImportImage(img, araster.ImportOptions{
		PlayableOnly: c.Playable,
		Invert:       c.Invert,
	})
	if err != nil {
		return errors.Wrap(err, "MapImportCmd.Run error")
	}
	if err := sg.Save(); err != nil {
		return errors.Wrap(err, "MapImportCmd.Run error")
	}
	fmt.Printf("Slot %d: Imported image %q to pencil minimap layer\n", c.Slot, c.Input)
	fmt.Printf("Wrote changes!  New checksum: 0x%02X\n", sg.Checksum.Value())
	return nil
}

type MuralCmd struct {
	Slot        int    `arg:"-s,--slot,required" help:"slot to modify (1-3)"`
	Default     bool   `arg:"--default" help:"reset the mural to its starting picture"`
	Solved      bool   `arg:"--solved" help:"set the mural to the solved picture"`
	Clear       bool   `arg:"--clear" help:"wipe every mural pixel"`
	RawExport   string `arg:"--raw-export" help:"dump the packed mural bytes to a file" placeholder:"FILE"`
	RawImport   string `arg:"--raw-import" help:"load packed mural bytes from a file" placeholder:"FILE"`
	ImageExport string `arg:"--image-export" help:"render the mural to an image (.png, .gif or .bmp)" placeholder:"FILE"`
	ImageImport string `arg:"--image-import" help:"paint an image onto the mural" placeholder:"FILE"`
	Force       bool   `arg:"-f,--force" help:"overwrite export targets without asking"`
	File        string `arg:"positional,required" help:"savegame to modify" placeholder:"AnimalWell.sav"`
}

func (c *MuralCmd) Run() error {
	i, err := singleSlot(c.Slot)
	if err != nil {
		return errors.Wrap(err, "MuralCmd.Run error")
	}
	sg, err := openSave(c.File)
	if err != nil {
		return errors.Wrap(err, "MuralCmd.Run error")
	}
	mural := sg.Slots[i].Mural
	label := fmt.Sprintf("Slot %d", c.Slot)
	changed := false

	if c.Clear {
		if err := mural.Wipe(); err != nil {
			return errors.Wrap(err, "MuralCmd.Run error")
		}
		fmt.Printf("%s: Clearing all mural pixels\n", label)
		changed = true
	}
	if c.Default {
		if err := mural.ToDefault(); err != nil {
			return errors.Wrap(err, "MuralCmd.Run error")
		}
		fmt.Printf("%s: Setting mural to its default state\n", label)
		changed = true
	}
	if c.Solved {
		if err := mural.ToSolved(); err != nil {
			return errors.Wrap(err, "MuralCmd.Run error")
		}
		fmt.Printf("%s: Setting mural to its solved state (NOTE: you will need to activate one pixel to get the door to open)\n", label)
		changed = true
	}
	if c.RawImport != "" {
		if err := mural.ImportRaw(c.RawImport); err != nil {
			return errors.Wrap(err, "MuralCmd.Run error")
		}
		fmt.Printf("%s: Imported raw bunny mural data from: %s\n", label, c.RawImport)
		changed = true
	}
	if c.ImageImport != "" {
		img, err := araster.DecodeFile(c.ImageImport)
		if err != nil {
			return errors.Wrap(err, "MuralCmd.Run error")
		}
		if err := mural.ImportImage(img); err != nil {
			return errors.Wrap(err, "MuralCmd.Run error")
		}
		fmt.Printf("%s: Imported image %q to bunny mural\n", label, c.ImageImport)
		changed = true
	}
	if c.RawExport != "" {
		if confirmOverwrite(c.RawExport, c.Force) {
			if err := mural.ExportRaw(c.RawExport); err != nil {
				return errors.Wrap(err, "MuralCmd.Run error")
			}
			fmt.Printf("%s: Exported raw bunny mural data to: %s\n", label, c.RawExport)
		} else {
			fmt.Println("NOTICE: Raw bunny mural data NOT exported")
		}
	}
	if c.ImageExport != "" {
		if confirmOverwrite(c.ImageExport, c.Force) {
			if err := araster.EncodeFile(c.ImageExport, mural.ExportImage()); err != nil {
				return errors.Wrap(err, "MuralCmd.Run error")
			}
			fmt.Printf("%s: Exported bunny mural image to: %s\n", label, c.ImageExport)
		} else {
			fmt.Println("NOTICE: Bunny mural NOT exported")
		}
	}

	if changed {
		if err := sg.Save(); err != nil {
			return errors.Wrap(err, "MuralCmd.Run error")
		}
		fmt.Printf("Wrote changes!  New checksum: 0x%02X\n", sg.Checksum.Value())
	}
	return nil
}
