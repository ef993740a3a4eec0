package deck

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
)

// minCardWidth fits the borders and one column of text.
const minCardWidth = 5

// Card is one slide. It satisfies carousel.Element, and the carousel
// compares cards by identity, so a deck keeps the same *Card for a file
// across reloads.
type Card struct {
	Path  string
	Title string
	Tags  []string

	width    int
	body     string
	modTime  time.Time
	renderer *Renderer

	cacheW, cacheH int
	cache          []string
}

// Size is the card's natural width in cells.
func (c *Card) Size() int { return c.width }

// Body returns the markdown body without frontmatter.
func (c *Card) Body() string { return c.body }

func newCard(path, content string, modTime time.Time, defaultWidth int, r *Renderer) *Card {
	c := &Card{Path: path, renderer: r}
	c.set(content, modTime, defaultWidth)
	return c
}

func (c *Card) set(content string, modTime time.Time, defaultWidth int) {
	meta, body := parseFrontmatterAndBody(content)
	c.Title = meta.Title
	if c.Title == "" {
		c.Title = headingTitle(body)
	}
	if c.Title == "" {
		c.Title = strings.TrimSuffix(filepath.Base(c.Path), filepath.Ext(c.Path))
	}
	c.Tags = meta.Tags
	c.width = meta.Width
	if c.width <= 0 {
		c.width = defaultWidth
	}
	if c.width < minCardWidth {
		c.width = minCardWidth
	}
	c.body = body
	c.modTime = modTime
	c.cache = nil
}

// adopt copies the content of a freshly read card for the same file and
// reports whether anything changed.
func (c *Card) adopt(f *Card) bool {
	if c.modTime.Equal(f.modTime) && c.body == f.body && c.width == f.width && c.Title == f.Title {
		return false
	}
	c.Title, c.Tags, c.width, c.body, c.modTime = f.Title, f.Tags, f.width, f.body, f.modTime
	c.cache = nil
	return true
}

// Lines draws the card as exactly height lines of exactly width cells:
// a titled border around the rendered body. Results are cached until the
// size or content changes.
func (c *Card) Lines(width, height int) []string {
	if width <= 0 || height <= 0 {
		return nil
	}
	if c.cache != nil && c.cacheW == width && c.cacheH == height {
		return c.cache
	}

	lines := make([]string, 0, height)
	if width < minCardWidth || height < 2 {
		for len(lines) < height {
			lines = append(lines, Fit("", width))
		}
		c.cache, c.cacheW, c.cacheH = lines, width, height
		return lines
	}

	inner := width - 4
	lines = append(lines, topBorder(c.Title, width))
	var body []string
	if c.renderer != nil {
		body = c.renderer.Body(c.body, inner)
	} else {
		body = fitLines(c.body, inner)
	}
	for i := 0; i < height-2; i++ {
		text := ""
		if i < len(body) {
			text = body[i]
		}
		if i == height-3 && len(body) > height-2 {
			text = runewidth.Truncate(text, inner-1, "") + "…"
		}
		lines = append(lines, "│ "+Fit(text, inner)+" │")
	}
	lines = append(lines, "└"+strings.Repeat("─", width-2)+"┘")

	c.cache, c.cacheW, c.cacheH = lines, width, height
	return lines
}

func topBorder(title string, width int) string {
	fill := width - 2
	label := ""
	if title != "" && fill >= 5 {
		label = " " + runewidth.Truncate(title, fill-3, "…") + " "
	}
	rest := fill - runewidth.StringWidth(label)
	if label != "" {
		return "┌─" + label + strings.Repeat("─", rest-1) + "┐"
	}
	return "┌" + strings.Repeat("─", fill) + "┐"
}
