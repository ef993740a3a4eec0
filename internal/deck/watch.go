package deck

import (
	"fmt"
	"os"
	"path/filepath"
)

// watchEntry records the observable attributes of one slide file. The
// modification time is kept as UnixNano so equality is trivial.
type watchEntry struct {
	ModNano int64
	Size    int64
}

// Snapshot maps each slide path in a deck directory to its attributes.
// Decks are polled rather than watched through OS events so network mounts
// behave the same as local disks.
type Snapshot map[string]watchEntry

// Scan captures the current state of every slide directly inside dir.
func Scan(dir string) (Snapshot, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scan deck %q: %w", dir, err)
	}
	snap := make(Snapshot, len(entries))
	for _, e := range entries {
		if e.IsDir() || !isSlide(e.Name()) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			// Removed between ReadDir and Info.
			continue
		}
		snap[filepath.Join(dir, e.Name())] = watchEntry{
			ModNano: info.ModTime().UnixNano(),
			Size:    info.Size(),
		}
	}
	return snap, nil
}

// Equal reports whether two snapshots hold the same paths with identical
// modification times and sizes.
func (s Snapshot) Equal(other Snapshot) bool {
	if len(s) != len(other) {
		return false
	}
	for path, left := range s {
		right, ok := other[path]
		if !ok || left != right {
			return false
		}
	}
	return true
}
