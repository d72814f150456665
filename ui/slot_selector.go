package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"animal-savior/awsave"
)

// SlotSelector is a small read-only browser over a savegame: pick a
// slot on the left, see its summary on the right. Editing stays on the
// command line; this exists for a quick look without remembering any
// flags.
type SlotSelector struct {
	path   string
	sg     *awsave.Savegame
	cursor int
	err    error
}

// CreateSlotSelector opens the given savegame, or the first *.sav in
// the working directory when path is empty.
func CreateSlotSelector(path string) (SlotSelector, error) {
	if path == "" {
		found, err := findSavegame()
		if err != nil {
			return SlotSelector{}, errors.Wrap(err, "CreateSlotSelector error")
		}
		path = found
	}
	sg, err := awsave.Open(path)
	if err != nil {
		return SlotSelector{}, errors.Wrap(err, "CreateSlotSelector error")
	}
	return SlotSelector{
		path:   path,
		sg:     sg,
		cursor: int(sg.LastUsedSlot.Value()) % awsave.NumSlots,
	}, nil
}

func findSavegame() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, "findSavegame error")
	}
	files, err := os.ReadDir(cwd)
	if err != nil {
		return "", errors.Wrap(err, "findSavegame error")
	}
	saves := lo.Filter(files, func(f os.DirEntry, _ int) bool {
		return !f.IsDir() && strings.EqualFold(filepath.Ext(f.Name()), ".sav")
	})
	if len(saves) == 0 {
		return "", errors.Errorf("findSavegame error: no .sav file in %s", cwd)
	}
	return filepath.Join(cwd, saves[0].Name()), nil
}

func (s SlotSelector) Init() tea.Cmd {
	return nil
}

func (s SlotSelector) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch keyMsg.String() {
	case "q", "esc", "ctrl+c":
		return s, tea.Quit
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < awsave.NumSlots-1 {
			s.cursor++
		}
	case "1", "2", "3":
		s.cursor = int(keyMsg.String()[0] - '1')
	case "r":
		sg, err := awsave.Open(s.path)
		if err != nil {
			s.err = err
		} else {
			s.sg = sg
			s.err = nil
		}
	}
	return s, nil
}

func (s SlotSelector) View() string {
	var b strings.Builder
	fmt.Fprintf(&b, "ANIMAL SAVIOR :: %s\n", s.path)
	if s.err != nil {
		fmt.Fprintf(&b, "\nreload failed: %v\n", s.err)
	}
	stored := s.sg.Checksum.Value()
	fmt.Fprintf(&b, "Checksum: 0x%02X", stored)
	// ComputeChecksum scribbles on the stored byte, so check against a
	// scratch copy of the file image.
	if scratch, err := awsave.FromBytes(s.sg.Bytes()); err == nil {
		if uint8(stored) != scratch.ComputeChecksum() {
			b.WriteString(" (INVALID)")
		}
	}
	b.WriteString("\n\n")

	for _, slot := range s.sg.Slots {
		marker := "  "
		if slot.Index == s.cursor {
			marker = "> "
		}
		if slot.HasData() {
			fmt.Fprintf(&b, "%sSlot %d  %s\n", marker, slot.Index+1, slot.Timestamp)
		} else {
			fmt.Fprintf(&b, "%sSlot %d  (no data)\n", marker, slot.Index+1)
		}
	}

	slot := s.sg.Slots[s.cursor]
	b.WriteString("\n")
	if slot.HasData() {
		fmt.Fprintf(&b, "Elapsed:  %s\n", slot.TotalTicks)
		fmt.Fprintf(&b, "Health:   %d (+%d gold)\n", slot.Health.Value(), slot.GoldHearts.Value())
		fmt.Fprintf(&b, "Room:     %s\n", slot.SpawnRoom)
		fmt.Fprintf(&b, "Eggs:     %d/%d\n", len(slot.Eggs.Enabled()), len(slot.Eggs.Flags()))
		fmt.Fprintf(&b, "Bunnies:  %d/%d\n", len(slot.Bunnies.Enabled()), len(slot.Bunnies.Flags()))
		fmt.Fprintf(&b, "Keys: %d  Matches: %d  Firecrackers: %d\n",
			slot.Keys.Value(), slot.Matches.Value(), slot.Firecrackers.Value())
	} else {
		b.WriteString("This slot is empty.\n")
	}

	b.WriteString("\nup/down: select slot   r: reload   q: quit\n")
	return b.String()
}
