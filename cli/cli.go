// Package cli implements the command-line surface of the editor. Each
// subcommand owns one concern: inspecting a savegame, editing slot and
// global state, moving slot blobs and images in and out, fixing the
// checksum, watching the file for rewrites, and the interactive UI.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/pkg/errors"

	"animal-savior/awsave"
)

type (
	Args struct {
		Info        *InfoCmd        `arg:"subcommand:info" help:"show savegame contents"`
		Edit        *EditCmd        `arg:"subcommand:edit" help:"modify savegame state"`
		Checksum    *ChecksumCmd    `arg:"subcommand:checksum" help:"fix or force the savegame checksum"`
		SlotExport  *SlotExportCmd  `arg:"subcommand:slot-export" help:"dump one slot to a file"`
		SlotImport  *SlotImportCmd  `arg:"subcommand:slot-import" help:"overwrite one slot from a file"`
		MapExport   *MapExportCmd   `arg:"subcommand:map-export" help:"export a minimap layer as an image"`
		MapImport   *MapImportCmd   `arg:"subcommand:map-import" help:"import an image into the pencil layer"`
		Mural       *MuralCmd       `arg:"subcommand:mural" help:"edit the bunny mural"`
		Watch       *WatchCmd       `arg:"subcommand:watch" help:"report on the savegame as the game rewrites it"`
		Interactive *InteractiveCmd `arg:"subcommand:interactive" help:"browse slots interactively"`
	}

	InteractiveCmd struct {
		File string `arg:"positional" help:"savegame to open" placeholder:"AnimalWell.sav"`
	}
)

func (Args) Description() string {
	return strings.Join(
		[]string{
			"An editor for Animal Well savegames.\n",
			"Reads and writes the game's fixed-size binary save format: slots,",
			"inventory, quest state, map layers, the bunny mural and more.",
		},
		"\n",
	) + "\n"
}

func CheckExistence(path string) bool {
	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false
	}
	return err == nil
}

// confirmOverwrite guards export paths: existing files need --force.
func confirmOverwrite(path string, force bool) bool {
	if !CheckExistence(path) || force {
		return true
	}
	fmt.Printf("NOTICE: %q already exists; pass --force to overwrite it\n", path)
	return false
}

// slotIndexes maps the user-facing slot selector to indexes: 1-3 pick
// one slot, 0 picks all three.
func slotIndexes(slot int) ([]int, error) {
	switch slot {
	case 0:
		return []int{0, 1, 2}, nil
	case 1, 2, 3:
		return []int{slot - 1}, nil
	}
	return nil, errors.Errorf("slotIndexes error: slot must be 0 (all) or 1-3, got %d", slot)
}

func openSave(path string) (*awsave.Savegame, error) {
	sg, err := awsave.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "openSave error")
	}
	return sg, nil
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

func Start() {
	args := Args{}
	parser := arg.MustParse(&args)

	var err error
	switch {
	case args.Info != nil:
		err = args.Info.Run()
	case args.Edit != nil:
		err = args.Edit.Run()
	case args.Checksum != nil:
		err = args.Checksum.Run()
	case args.SlotExport != nil:
		err = args.SlotExport.Run()
	case args.SlotImport != nil:
		err = args.SlotImport.Run()
	case args.MapExport != nil:
		err = args.MapExport.Run()
	case args.MapImport != nil:
		err = args.MapImport.Run()
	case args.Mural != nil:
		err = args.Mural.Run()
	case args.Watch != nil:
		err = args.Watch.Run()
	case args.Interactive != nil:
		err = args.Interactive.Run()
	default:
		parser.WriteHelp(os.Stdout)
		return
	}
	if err != nil {
		fail(err)
	}
}
