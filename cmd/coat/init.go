package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vango-dev/coat/internal/config"
	"github.com/vango-dev/coat/internal/errors"
)

func initCmd(flags *globalFlags) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default coat.json",
		Long: `Write coat.json with every setting at its default value.

Examples:
  coat init
  coat init --config ./playground --force`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := filepath.Join(flags.configDir, config.ConfigFileName)
			if _, err := os.Stat(path); err == nil && !force {
				return errors.New("E021").
					WithDetail(path + " already exists").
					WithSuggestion("Pass --force to overwrite it")
			}
			if err := config.New().SaveTo(path); err != nil {
				return err
			}
			success(cmd.OutOrStdout(), "Wrote %s", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing coat.json")

	return cmd
}
