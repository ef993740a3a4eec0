// render.go turns slide markdown into plain, fixed-width card lines.
//
// Slides are rendered through Glamour, then stripped of escape sequences:
// the carousel slices cards at arbitrary columns while they move, and that
// only works on plain cells. Colour is applied afterwards by the app, per
// card.
//
// Glamour renderers are cached per width in a small LRU, since building one
// parses the style JSON and decks usually render at a handful of widths.
package deck

import (
	"container/list"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

const maxRendererCacheEntries = 8

// Renderer renders slide bodies at a given width with one Glamour style.
type Renderer struct {
	style string

	mu    sync.Mutex
	cache map[int]*glamour.TermRenderer
	order *list.List
	nodes map[int]*list.Element
}

// NewRenderer returns a renderer for a standard Glamour style. Unknown
// styles fall back to notty.
func NewRenderer(style string) *Renderer {
	return &Renderer{
		style: normalizeStyle(style),
		cache: map[int]*glamour.TermRenderer{},
		order: list.New(),
		nodes: map[int]*list.Element{},
	}
}

func normalizeStyle(style string) string {
	switch s := strings.ToLower(strings.TrimSpace(style)); s {
	case "dark", "light", "notty", "ascii", "dracula", "pink":
		return s
	default:
		return "notty"
	}
}

func (r *Renderer) get(width int) (*glamour.TermRenderer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if tr, ok := r.cache[width]; ok {
		r.order.MoveToBack(r.nodes[width])
		return tr, nil
	}
	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(r.style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	r.cache[width] = tr
	r.nodes[width] = r.order.PushBack(width)
	for len(r.cache) > maxRendererCacheEntries {
		oldest := r.order.Front()
		w, _ := oldest.Value.(int)
		r.order.Remove(oldest)
		delete(r.cache, w)
		delete(r.nodes, w)
	}
	return tr, nil
}

// Body renders markdown into lines no wider than width cells. Rendering
// errors fall back to the raw markdown.
func (r *Renderer) Body(markdown string, width int) []string {
	if width <= 0 {
		return nil
	}
	out := markdown
	if tr, err := r.get(width); err != nil {
		log.Warn("glamour renderer unavailable", "width", width, "error", err)
	} else if rendered, err := tr.Render(markdown); err != nil {
		log.Warn("render slide failed", "error", err)
	} else {
		out = rendered
	}
	return fitLines(ansi.Strip(out), width)
}

// fitLines wraps plain text to width, drops surrounding blank lines and the
// common indentation Glamour adds as a document margin.
func fitLines(text string, width int) []string {
	text = strings.ReplaceAll(text, "\t", "    ")
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for i := range raw {
		raw[i] = strings.TrimRight(raw[i], " ")
	}
	for len(raw) > 0 && raw[0] == "" {
		raw = raw[1:]
	}
	for len(raw) > 0 && raw[len(raw)-1] == "" {
		raw = raw[:len(raw)-1]
	}

	indent := -1
	for _, line := range raw {
		if line == "" {
			continue
		}
		n := len(line) - len(strings.TrimLeft(line, " "))
		if indent < 0 || n < indent {
			indent = n
		}
	}

	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if len(line) >= indent && indent > 0 {
			line = line[indent:]
		}
		if runewidth.StringWidth(line) <= width {
			lines = append(lines, line)
			continue
		}
		wrapped := wrap.String(wordwrap.String(line, width), width)
		for _, part := range strings.Split(wrapped, "\n") {
			lines = append(lines, truncate.String(strings.TrimRight(part, " "), uint(width)))
		}
	}
	return lines
}

// Fit pads or cuts s to exactly width cells.
func Fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) > width {
		s = runewidth.Truncate(s, width, "")
	}
	return runewidth.FillRight(s, width)
}
