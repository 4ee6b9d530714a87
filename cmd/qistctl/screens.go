package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/clubpro-dev/qistadmin/internal/screens"
)

func newScreensCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "screens", Short: "Inspect and override screen labels"}
	cmd.AddCommand(newScreensExportCmd())
	cmd.AddCommand(newScreensLintCmd())
	return cmd
}

func newScreensExportCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the current screen labels as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := screens.ExportYAML(screens.All())
			if err != nil {
				return err
			}
			if out == "" {
				fmt.Fprint(cmd.OutOrStdout(), string(data))
				return nil
			}
			return os.WriteFile(out, data, 0o644)
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "destination file (stdout when omitted)")
	return cmd
}

func newScreensLintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lint <file>",
		Short: "Validate a screen override file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			if _, err := screens.ApplyYAML(screens.All(), data); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", args[0])
			return nil
		},
	}
}
