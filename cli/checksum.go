package cli

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

type ChecksumCmd struct {
	Invalid bool   `arg:"--invalid" help:"write a deliberately invalid checksum (summons a Manticore friend)"`
	Value   string `arg:"--value" help:"force a specific checksum byte (decimal or 0x-prefixed hex)"`
	File    string `arg:"positional,required" help:"savegame to fix" placeholder:"AnimalWell.sav"`
}

func (c *ChecksumCmd) Run() error {
	sg, err := openSave(c.File)
	if err != nil {
		return errors.Wrap(err, "ChecksumCmd.Run error")
	}
	old := sg.Checksum.Value()

	switch {
	case c.Value != "":
		v, err := strconv.ParseUint(c.Value, 0, 8)
		if err != nil {
			return errors.Wrapf(err, `ChecksumCmd.Run error: bad checksum byte "%s"`, c.Value)
		}
		sg.ForceChecksum(uint8(v))
	case c.Invalid:
		fmt.Println("NOTICE: Intentionally writing an invalid checksum.  Enjoy hanging out with")
		fmt.Println("        your Manticore friend!")
		sg.InvalidateChecksum()
	default:
		sg.FixChecksum()
	}

	if err := sg.Write(sg.Path()); err != nil {
		return errors.Wrap(err, "ChecksumCmd.Run error")
	}
	fmt.Printf("Checksum updated: 0x%02X -> 0x%02X\n", old, sg.Checksum.Value())
	return nil
}
