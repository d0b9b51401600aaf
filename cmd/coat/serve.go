package main

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vango-dev/coat/internal/errors"
	"github.com/vango-dev/coat/pkg/inspect"
)

func serveCmd(flags *globalFlags) *cobra.Command {
	var (
		addr     string
		interval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Rebuild the demo app continuously and serve the inspector",
		Long: `Run the demo app until interrupted and expose it to devtools.

The inspector serves:
  GET /tree         JSON snapshot of the tree
  GET /nodes/{id}   one node and its subtree
  GET /passes       websocket stream of pass reports
  GET /metrics      Prometheus metrics

Examples:
  coat serve
  coat serve --addr=:7070 --interval=1s`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Inspector.Addr = addr
				cfg.Inspector.Enabled = true
			}
			if cmd.Flags().Changed("interval") {
				cfg.Demo.Interval = interval.String()
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if cfg.Interval() <= 0 {
				return errors.New("E010").
					WithDetail("serve needs a positive demo.interval").
					WithSuggestion("Pass --interval=500ms")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			logger := newLogger(cmd.ErrOrStderr(), cfg)
			s := newSession(cfg, logger, out)
			defer s.close()

			printBanner(out)
			fmt.Fprintln(out, "  serve")
			fmt.Fprintln(out)

			g, ctx := errgroup.WithContext(ctx)
			if cfg.Inspector.Enabled {
				srv := inspect.New(s.root,
					inspect.WithLogger(logger),
					inspect.WithGatherer(s.registry),
				)
				info(out, "inspector on http://%s", cfg.Inspector.Addr)
				g.Go(func() error {
					if err := srv.ListenAndServe(ctx, cfg.Inspector.Addr); err != nil {
						return errors.New("E020").Wrap(err)
					}
					return nil
				})
			} else {
				warn(out, "inspector disabled")
			}
			g.Go(func() error {
				return s.run(ctx, 0, cfg.Interval())
			})

			err = g.Wait()
			fmt.Fprintln(out, "\n  Shutting down...")
			return err
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Inspector listen address (default from coat.json)")
	cmd.Flags().DurationVarP(&interval, "interval", "i", 0, "Delay between passes (default from coat.json)")

	return cmd
}
