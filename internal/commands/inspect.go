package commands

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/treykane/cli-carousel/internal/app"
	"github.com/treykane/cli-carousel/internal/carousel"
	"github.com/treykane/cli-carousel/internal/deck"
)

const defaultInspectWidth = 80

var bold = color.New(color.Bold).SprintFunc()

// staticScheduler never runs deferred work. Inspecting only needs the
// geometry computed on Init.
type staticScheduler struct{}

func (staticScheduler) Now() time.Time { return time.Now() }

func (staticScheduler) RequestFrame(func(time.Time)) carousel.CancelFunc { return func() {} }

func (staticScheduler) AfterFunc(time.Duration, func()) carousel.CancelFunc { return func() {} }

func (staticScheduler) Every(time.Duration, func()) carousel.CancelFunc { return func() {} }

func addInspect(topLevel *cobra.Command, opts *rootOptions) {
	width := defaultInspectWidth
	cmd := &cobra.Command{
		Use:   "inspect [deck-dir]",
		Short: "Print the card and page offsets of a deck for a terminal width.",
		Example: `
carousel inspect ~/slides --width 120
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			arg := ""
			if len(args) > 0 {
				arg = args[0]
			}
			d, err := loadDeck(cfg, arg)
			if err != nil {
				return err
			}
			layout, nav := inspectLayout(d, cfg.Carousel.ForViewport(width), width)
			printLayout(cmd.OutOrStdout(), d, layout, nav, width)
			return nil
		},
	}
	cmd.Flags().IntVarP(&width, "width", "w", defaultInspectWidth, "Terminal width to lay the deck out for.")

	topLevel.AddCommand(cmd)
}

// inspectLayout builds a throwaway carousel over the deck and returns its
// geometry.
func inspectLayout(d *deck.Deck, opts carousel.Options, width int) (carousel.Layout, carousel.Navigation) {
	elements := make([]carousel.Element, len(d.Cards))
	for i, c := range d.Cards {
		elements[i] = c
	}
	f := carousel.NewFactory(staticScheduler{})
	c := f.New("inspect", carousel.Config{
		Measurer: carousel.MeasurerFunc(func() carousel.FrameMetrics {
			return carousel.FrameMetrics{FrameSize: width, ScrollbarSize: width, ItemMarginEnd: app.CardGap}
		}),
		Elements: elements,
		Options:  opts,
	})
	if err := c.Init(); err != nil {
		log.Warn("inspect init failed", "error", err)
	}
	defer c.Destroy()
	return c.Layout(), c.Navigation()
}

func printLayout(w io.Writer, d *deck.Deck, l carousel.Layout, nav carousel.Navigation, width int) {
	_, _ = fmt.Fprintf(w, "%s %s (%d cards, %s, width %d)\n", bold("Deck"), d.Dir, len(d.Cards), nav, width)
	_, _ = fmt.Fprintf(w, "bounds %.0f..%.0f  slidee %.0f\n\n", l.Start, l.End, l.SlideeSize)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold("#"), bold("Title"), bold("Start"), bold("Center"), bold("End"), bold("Size"))
	for i, it := range l.Items {
		title := ""
		if i < len(d.Cards) {
			title = d.Cards[i].Title
		}
		tbl.AddRow(i, title, fmt.Sprintf("%.0f", it.Start), fmt.Sprintf("%.1f", it.Center),
			fmt.Sprintf("%.0f", it.End), fmt.Sprintf("%.0f", it.Size))
	}
	_, _ = fmt.Fprintln(w, tbl)

	pages := make([]string, len(l.Pages))
	for i, p := range l.Pages {
		pages[i] = fmt.Sprintf("%.0f", p)
	}
	_, _ = fmt.Fprintf(w, "\n%s %s\n", bold("Pages"), strings.Join(pages, " "))
}
