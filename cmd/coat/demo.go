package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func demoCmd(flags *globalFlags) *cobra.Command {
	var (
		passes   int
		interval time.Duration
		showTree bool
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the demo app for a number of passes",
		Long: `Run a scripted list app and print a report after every pass.

Between passes the script clicks "Add", and "Remove first" every third
pass, so the list grows and shrinks and the report shows nodes being
created, updated and purged.

Examples:
  coat demo
  coat demo --passes=10 --tree
  coat demo --interval=0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("passes") {
				cfg.Demo.Passes = passes
			}
			if cmd.Flags().Changed("interval") {
				cfg.Demo.Interval = interval.String()
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			s := newSession(cfg, newLogger(cmd.ErrOrStderr(), cfg), out)
			s.showTree = showTree
			defer s.close()

			printBanner(out)
			fmt.Fprintln(out)
			if err := s.run(cmd.Context(), cfg.Demo.Passes, cfg.Interval()); err != nil {
				return err
			}
			fmt.Fprintln(out)
			info(out, "%d live nodes after %d passes", s.root.LiveNodes(), s.root.Pass())
			return nil
		},
	}

	cmd.Flags().IntVarP(&passes, "passes", "n", 0, "Number of passes (default from coat.json)")
	cmd.Flags().DurationVarP(&interval, "interval", "i", 0, "Delay between passes (default from coat.json)")
	cmd.Flags().BoolVarP(&showTree, "tree", "t", false, "Print the tree after every pass")

	return cmd
}
