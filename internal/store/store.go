// Package store persists where each deck was left: the active card and the
// scroll offset, keyed by the deck's directory.
package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/peterbourgon/diskv/v3"

	"github.com/treykane/cli-carousel/internal/logging"
)

var log = logging.New("store")

// State is the resume point of one deck.
type State struct {
	Deck       string    `json:"deck"`
	ActiveItem int       `json:"active_item"`
	Position   float64   `json:"position"`
	Items      int       `json:"items"`
	SavedAt    time.Time `json:"saved_at"`
}

// Store is a diskv-backed table of deck states.
type Store struct {
	d   *diskv.Diskv
	now func() time.Time
}

// Open returns a store rooted at dir. The directory is created on the
// first write.
func Open(dir string) *Store {
	return &Store{
		d: diskv.New(diskv.Options{
			BasePath:          dir,
			AdvancedTransform: keyToPath,
			InverseTransform:  pathToKey,
			CacheSizeMax:      256 * 1024,
		}),
		now: time.Now,
	}
}

// key hashes the deck path into a filename-safe key.
func key(deck string) string {
	sum := sha256.Sum256([]byte(deck))
	return hex.EncodeToString(sum[:16])
}

func keyToPath(key string) *diskv.PathKey {
	return &diskv.PathKey{Path: []string{key[:2]}, FileName: key}
}

func pathToKey(pk *diskv.PathKey) string {
	return pk.FileName
}

// Load returns the saved state of deck. ok is false when nothing was saved.
func (s *Store) Load(deck string) (st State, ok bool, err error) {
	st, err = s.read(key(deck))
	if errors.Is(err, os.ErrNotExist) {
		return State{}, false, nil
	}
	if err != nil {
		return State{}, false, err
	}
	return st, true, nil
}

// Save records st, stamping SavedAt when it is zero.
func (s *Store) Save(st State) error {
	if st.Deck == "" {
		return errors.New("deck is required")
	}
	if st.SavedAt.IsZero() {
		st.SavedAt = s.now()
	}
	data, err := json.Marshal(st)
	if err != nil {
		return err
	}
	if err := s.d.Write(key(st.Deck), data); err != nil {
		log.Error("failed to save state", "deck", st.Deck, "error", err)
		return fmt.Errorf("save state: %w", err)
	}
	log.Debug("saved state", "deck", st.Deck, "active", st.ActiveItem, "pos", st.Position)
	return nil
}

// Forget drops the saved state of deck. Forgetting an unknown deck is not
// an error.
func (s *Store) Forget(deck string) error {
	k := key(deck)
	if !s.d.Has(k) {
		return nil
	}
	if err := s.d.Erase(k); err != nil {
		return fmt.Errorf("forget state: %w", err)
	}
	return nil
}

// List returns every saved state, most recent first. Unreadable entries
// are logged and skipped.
func (s *Store) List(ctx context.Context) []State {
	var all []State
	for k := range s.d.Keys(ctx.Done()) {
		st, err := s.read(k)
		if err != nil {
			log.Warn("skipping unreadable state", "key", k, "error", err)
			continue
		}
		all = append(all, st)
	}
	sort.SliceStable(all, func(i, j int) bool {
		if !all[i].SavedAt.Equal(all[j].SavedAt) {
			return all[i].SavedAt.After(all[j].SavedAt)
		}
		return all[i].Deck < all[j].Deck
	})
	return all
}

func (s *Store) read(k string) (State, error) {
	data, err := s.d.Read(k)
	if err != nil {
		return State{}, err
	}
	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return State{}, fmt.Errorf("decode state: %w", err)
	}
	return st, nil
}
