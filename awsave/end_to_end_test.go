package awsave

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type EndToEndTestSuite struct {
	Path string
	Sg   *Savegame
	R    *require.Assertions
	suite.Suite
}

func (suite *EndToEndTestSuite) SetupTest() {
	suite.R = suite.Require()
	suite.Path = filepath.Join(suite.T().TempDir(), "AnimalWell.sav")
	suite.R.NoError(os.WriteFile(suite.Path, blankImage(), 0o644))

	sg, err := Open(suite.Path)
	suite.R.NoError(err)
	suite.Sg = sg
}

func (suite *EndToEndTestSuite) reopen() *Savegame {
	sg, err := Open(suite.Path)
	suite.R.NoError(err)
	return sg
}

func (suite *EndToEndTestSuite) TestEditSaveReload() {
	s := suite.Sg.Slots[0]
	suite.R.NoError(s.Timestamp.Year.Set(2024))
	suite.R.NoError(s.Health.Set(4))
	suite.R.NoError(s.Keys.Set(6))
	suite.R.NoError(s.Equipment.Enable(EquipDisc))
	suite.R.NoError(s.Eggs.Enable(EggFlags[0]))
	suite.R.NoError(s.Minimap.Fill(true))
	suite.R.NoError(suite.Sg.Save())

	sg := suite.reopen()
	s = sg.Slots[0]
	suite.R.True(s.HasData())
	suite.R.Equal(uint64(4), s.Health.Value())
	suite.R.Equal(uint64(6), s.Keys.Value())
	suite.R.True(s.Equipment.IsEnabled(EquipDisc))
	suite.R.True(s.Eggs.IsEnabled(EggFlags[0]))
	suite.R.Equal(1, len(s.Eggs.Enabled()))

	// Save fixed the checksum on the way out.
	stored := sg.Checksum.Value()
	suite.R.Equal(uint64(sg.ComputeChecksum()), stored)
}

func (suite *EndToEndTestSuite) TestWritePreservesChecksum() {
	suite.Sg.ForceChecksum(0x5A)
	suite.R.NoError(suite.Sg.Write(suite.Path))

	sg := suite.reopen()
	suite.R.Equal(uint64(0x5A), sg.Checksum.Value())
}

func (suite *EndToEndTestSuite) TestInvalidChecksumRoundTrip() {
	suite.Sg.InvalidateChecksum()
	suite.R.NoError(suite.Sg.Write(suite.Path))

	sg := suite.reopen()
	stored := sg.Checksum.Value()
	suite.R.Equal(uint64(sg.ComputeChecksum()^0xFF), stored)
}

func (suite *EndToEndTestSuite) TestSlotTransferThroughFile() {
	src := suite.Sg.Slots[0]
	suite.R.NoError(src.Timestamp.Year.Set(2024))
	suite.R.NoError(src.Nuts.Set(17))
	suite.R.NoError(src.Bunnies.Enable(BunnyFlags[0]))

	blobPath := filepath.Join(suite.T().TempDir(), "slot1.dat")
	suite.R.NoError(os.WriteFile(blobPath, src.Export(), 0o644))
	suite.R.NoError(suite.Sg.Save())

	sg := suite.reopen()
	blob, err := os.ReadFile(blobPath)
	suite.R.NoError(err)
	suite.R.NoError(sg.ImportSlot(1, blob))
	suite.R.NoError(sg.Save())

	sg = suite.reopen()
	dst := sg.Slots[1]
	suite.R.True(dst.HasData())
	suite.R.Equal(uint64(17), dst.Nuts.Value())
	suite.R.True(dst.Bunnies.IsEnabled(BunnyFlags[0]))
	suite.R.Equal(uint64(sg.ComputeChecksum()), sg.Checksum.Value())
}

func (suite *EndToEndTestSuite) TestSaveWithoutBackingFile() {
	sg, err := FromBytes(blankImage())
	suite.R.NoError(err)
	suite.R.Error(sg.Save())

	out := filepath.Join(suite.T().TempDir(), "copy.sav")
	suite.R.NoError(sg.SaveAs(out))
	data, err := os.ReadFile(out)
	suite.R.NoError(err)
	suite.R.Equal(FileSize, len(data))
}

func TestEndToEnd(t *testing.T) {
	suite.Run(t, new(EndToEndTestSuite))
}
