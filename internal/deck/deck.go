// Package deck loads a directory of markdown slides as carousel cards.
package deck

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/treykane/cli-carousel/internal/logging"
)

var log = logging.New("deck")

// ErrNotDir is returned when the deck path is not a directory.
var ErrNotDir = errors.New("deck path is not a directory")

// Options controls how cards are built.
type Options struct {
	// Width is the natural card width when a slide does not set one.
	Width int
	// Style is the Glamour style name.
	Style string
}

// Deck is an ordered set of cards from one directory.
type Deck struct {
	Dir   string
	Cards []*Card

	opts     Options
	renderer *Renderer
}

// Load reads every markdown file directly inside dir, ordered by name.
func Load(dir string, opts Options) (*Deck, error) {
	d := &Deck{Dir: dir, opts: opts, renderer: NewRenderer(opts.Style)}
	cards, err := d.read()
	if err != nil {
		return nil, err
	}
	d.Cards = cards
	log.Info("loaded deck", "dir", dir, "cards", len(cards))
	return d, nil
}

func isSlide(name string) bool {
	if strings.HasPrefix(name, ".") {
		return false
	}
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".md" || ext == ".markdown"
}

func (d *Deck) read() ([]*Card, error) {
	info, err := os.Stat(d.Dir)
	if err != nil {
		return nil, fmt.Errorf("read deck %q: %w", d.Dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("read deck %q: %w", d.Dir, ErrNotDir)
	}
	entries, err := os.ReadDir(d.Dir)
	if err != nil {
		return nil, fmt.Errorf("read deck %q: %w", d.Dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && isSlide(e.Name()) {
			names = append(names, e.Name())
		}
	}
	sort.Slice(names, func(i, j int) bool {
		li, lj := strings.ToLower(names[i]), strings.ToLower(names[j])
		if li != lj {
			return li < lj
		}
		return names[i] < names[j]
	})

	cards := make([]*Card, 0, len(names))
	for _, name := range names {
		path := filepath.Join(d.Dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			log.Warn("skipping unreadable slide", "path", path, "error", err)
			continue
		}
		fi, err := os.Stat(path)
		if err != nil {
			continue
		}
		cards = append(cards, newCard(path, string(data), fi.ModTime(), d.opts.Width, d.renderer))
	}
	return cards, nil
}

// Insert is a card that appeared at Index of the refreshed order.
type Insert struct {
	Card  *Card
	Index int
}

// Changes describe how a refresh altered the deck. Removals apply first,
// then inserts in ascending index order.
type Changes struct {
	Removed  []*Card
	Inserted []Insert
	// Updated cards kept their identity but changed content.
	Updated []*Card
}

// Empty reports whether nothing changed.
func (c Changes) Empty() bool {
	return len(c.Removed) == 0 && len(c.Inserted) == 0 && len(c.Updated) == 0
}

// Refresh re-reads the directory. Cards whose file still exists keep their
// pointer and are updated in place.
func (d *Deck) Refresh() (Changes, error) {
	fresh, err := d.read()
	if err != nil {
		return Changes{}, err
	}

	old := make(map[string]*Card, len(d.Cards))
	for _, c := range d.Cards {
		old[c.Path] = c
	}

	var ch Changes
	next := make([]*Card, 0, len(fresh))
	kept := make(map[string]bool, len(fresh))
	for i, f := range fresh {
		prev, ok := old[f.Path]
		if !ok {
			next = append(next, f)
			ch.Inserted = append(ch.Inserted, Insert{Card: f, Index: i})
			continue
		}
		kept[f.Path] = true
		if prev.adopt(f) {
			ch.Updated = append(ch.Updated, prev)
		}
		next = append(next, prev)
	}
	for _, c := range d.Cards {
		if !kept[c.Path] {
			ch.Removed = append(ch.Removed, c)
		}
	}
	d.Cards = next
	if !ch.Empty() {
		log.Debug("deck changed", "dir", d.Dir,
			"removed", len(ch.Removed), "inserted", len(ch.Inserted), "updated", len(ch.Updated))
	}
	return ch, nil
}
