package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"animal-savior/awsave"
	"animal-savior/awsave/afield"
)

func TestResolveFlags(t *testing.T) {
	flags, err := resolveFlags(awsave.EquipmentFlags, []string{"disc", "UV Light"})
	require.NoError(t, err)
	require.Len(t, flags, 2)
	assert.Equal(t, awsave.EquipDisc, flags[0])

	flags, err = resolveFlags(awsave.EquipmentFlags, []string{"all"})
	require.NoError(t, err)
	assert.Len(t, flags, len(awsave.EquipmentFlags))

	_, err = resolveFlags(awsave.EquipmentFlags, []string{"bazooka"})
	assert.ErrorIs(t, err, afield.ErrRange)
}

func TestDropCommon(t *testing.T) {
	a := []afield.Flag{awsave.EquipDisc, awsave.EquipFirecracker}
	b := []afield.Flag{awsave.EquipDisc}

	newA, newB := dropCommon(a, b)
	assert.Equal(t, []afield.Flag{awsave.EquipFirecracker}, newA)
	assert.Empty(t, newB)

	newA, newB = dropCommon(nil, b)
	assert.Empty(t, newA)
	assert.Equal(t, b, newB)
}

func TestSortFlags(t *testing.T) {
	flags := sortFlags([]afield.Flag{
		{Mask: 1, Label: "Wand"},
		{Mask: 2, Label: "Disc"},
		{Mask: 4, Label: "Lantern"},
	})
	assert.Equal(t, "Disc", flags[0].Label)
	assert.Equal(t, "Lantern", flags[1].Label)
	assert.Equal(t, "Wand", flags[2].Label)
}

func TestParseCoords(t *testing.T) {
	xy, err := parseCoords("11, 11", 2)
	require.NoError(t, err)
	assert.Equal(t, []uint64{11, 11}, xy)

	_, err = parseCoords("11", 2)
	assert.ErrorIs(t, err, afield.ErrRange)
	_, err = parseCoords("11,eleven", 2)
	assert.ErrorIs(t, err, afield.ErrRange)
}

func TestBuildPlan_CancelsOpposedEdits(t *testing.T) {
	c := &EditCmd{
		EggEnable:  []string{"all"},
		EggDisable: []string{awsave.EggFlags[0].Label},
	}
	p, err := c.buildPlan()
	require.NoError(t, err)
	assert.Len(t, p.eggEnable, len(awsave.EggFlags)-1)
	assert.Empty(t, p.eggDisable)
}

func TestBuildPlan_MapUnlocksBecomeQuestFlags(t *testing.T) {
	p, err := (&EditCmd{MapEnable: []string{"pencil"}}).buildPlan()
	require.NoError(t, err)
	require.Len(t, p.mapEnable, 1)
	// The short name resolves to the quest-state catalog's own flag, so
	// it can be applied to the quest-state bitfield directly.
	assert.Equal(t, awsave.QuestUnlockPencil, p.mapEnable[0])
}

func TestBuildPlan_RejectsUnknownNames(t *testing.T) {
	_, err := (&EditCmd{EggEnable: []string{"golden goose"}}).buildPlan()
	assert.ErrorIs(t, err, afield.ErrRange)

	_, err = (&EditCmd{BlueManticore: "underworld"}).buildPlan()
	assert.ErrorIs(t, err, afield.ErrRange)

	_, err = (&EditCmd{FlameCollect: []string{"q"}}).buildPlan()
	assert.ErrorIs(t, err, afield.ErrRange)
}

func TestBuildPlan_StampDefaultsIcon(t *testing.T) {
	p, err := (&EditCmd{StampAdd: "40,60"}).buildPlan()
	require.NoError(t, err)
	assert.Equal(t, []uint64{40, 60}, p.stampAdd)
	assert.Equal(t, awsave.StampIconChoices[0], p.stampIcon)

	p, err = (&EditCmd{StampAdd: "40,60,heart"}).buildPlan()
	require.NoError(t, err)
	assert.Equal(t, "Heart", p.stampIcon.Label)
}
