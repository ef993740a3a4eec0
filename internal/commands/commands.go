// Package commands builds the carousel command line.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/treykane/cli-carousel/internal/config"
	"github.com/treykane/cli-carousel/internal/logging"
)

var log = logging.New("commands")

// flags shared by every command.
type rootOptions struct {
	configFile string
}

func (o *rootOptions) load() (config.Config, error) {
	return config.Load(o.configFile)
}

// New returns the root command: it runs the carousel on a deck directory.
func New() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "carousel [deck-dir]",
		Short: "Slide through a directory of markdown cards in the terminal.",
		Example: `
carousel ~/slides
carousel --config ./carousel.yaml
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			arg := ""
			if len(args) > 0 {
				arg = args[0]
			}
			return run(opts, arg)
		},
	}
	cmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "Config file (default ~/.cli-carousel/config.yaml).")

	addCommands(cmd, opts)
	return cmd
}

// addCommands registers the subcommands on topLevel.
func addCommands(topLevel *cobra.Command, opts *rootOptions) {
	addInspect(topLevel, opts)
	addHistory(topLevel, opts)
	addForget(topLevel, opts)
	addConfig(topLevel)
	addVersion(topLevel)
}
