package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"

	"animal-savior/awsave"
)

// WatchCmd tails a savegame: every time the game rewrites the file it
// prints a one-line summary per slot plus the checksum status. The
// game replaces the file rather than updating it in place, so the
// watch is on the directory and filtered by name.
type WatchCmd struct {
	File string `arg:"positional,required" help:"savegame to watch" placeholder:"AnimalWell.sav"`
}

func (c *WatchCmd) Run() error {
	if !CheckExistence(c.File) {
		return errors.Errorf("WatchCmd.Run error: %q does not exist", c.File)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "WatchCmd.Run error")
	}
	defer watcher.Close()

	dir := filepath.Dir(c.File)
	if err := watcher.Add(dir); err != nil {
		return errors.Wrap(err, "WatchCmd.Run error")
	}

	fmt.Printf("Watching %s (Ctrl-C to stop)\n", c.File)
	c.report()

	// Rewrites arrive as bursts of events; collapse each burst into one
	// report by waiting for a short quiet period.
	var pending <-chan time.Time
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(c.File) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			pending = time.After(250 * time.Millisecond)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return errors.Wrap(err, "WatchCmd.Run error")
		case <-pending:
			pending = nil
			c.report()
		}
	}
}

func (c *WatchCmd) report() {
	sg, err := awsave.Open(c.File)
	if err != nil {
		// Transient states (partial writes, the file briefly missing)
		// resolve on the next event.
		fmt.Printf("[%s] not readable yet: %v\n", time.Now().Format("15:04:05"), err)
		return
	}

	// ComputeChecksum zeroes the stored byte, so read it out first.
	stored := sg.Checksum.Value()
	status := "valid"
	if uint8(stored) != sg.ComputeChecksum() {
		status = "INVALID"
	}

	fmt.Printf("[%s] checksum 0x%02X (%s), last-used slot %d\n",
		time.Now().Format("15:04:05"), stored, status, sg.LastUsedSlot.Value()+1)
	for _, slot := range sg.Slots {
		if !slot.HasData() {
			fmt.Printf("  Slot %d: no data\n", slot.Index+1)
			continue
		}
		fmt.Printf("  Slot %d: %s, %s elapsed, %d eggs, health %d, room %s\n",
			slot.Index+1, slot.Timestamp, slot.TotalTicks,
			len(slot.Eggs.Enabled()), slot.Health.Value(), slot.SpawnRoom)
	}
}
