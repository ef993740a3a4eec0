package commands

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/treykane/cli-carousel/internal/config"
	"github.com/treykane/cli-carousel/internal/store"
)

func addHistory(topLevel *cobra.Command, opts *rootOptions) {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List the decks with a saved position.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			states := store.Open(cfg.StateDir).List(cmd.Context())
			out := cmd.OutOrStdout()
			if len(states) == 0 {
				_, _ = fmt.Fprintln(out, "No saved positions.")
				return nil
			}

			tbl := uitable.New()
			tbl.Separator = "  "
			tbl.AddRow(bold("Deck"), bold("Card"), bold("Offset"), bold("Cards"), bold("Saved"))
			for _, st := range states {
				card := "-"
				if st.ActiveItem >= 0 {
					card = fmt.Sprint(st.ActiveItem + 1)
				}
				tbl.AddRow(st.Deck, card, fmt.Sprintf("%.0f", st.Position), st.Items,
					st.SavedAt.Local().Format("2006-01-02 15:04"))
			}
			_, _ = fmt.Fprintln(out, tbl)
			return nil
		},
	}
	topLevel.AddCommand(cmd)
}

func addForget(topLevel *cobra.Command, opts *rootOptions) {
	cmd := &cobra.Command{
		Use:   "forget [deck-dir]",
		Short: "Drop the saved position of a deck.",
		Args:  cobra.MaximumNArgs(1),
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
			dir, err := cfg.Deck(arg)
			if err != nil {
				return err
			}
			if err := store.Open(cfg.StateDir).Forget(dir); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Forgot %s\n", dir)
			return nil
		},
	}
	topLevel.AddCommand(cmd)
}

func addConfig(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the config file.",
	}
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config file.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			path, err := config.WriteDefault()
			if errors.Is(err, config.ErrConfigExists) {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", color.YellowString("exists"), path)
				return nil
			}
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", color.GreenString("wrote"), path)
			return nil
		},
	}
	cmd.AddCommand(initCmd)
	topLevel.AddCommand(cmd)
}
