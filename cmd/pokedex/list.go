package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/five82/pokedex/internal/app"
	"github.com/five82/pokedex/internal/report"
)

// NewListCmd creates the headless list command.
func NewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [query]",
		Short: "Print the catalog without the terminal UI",
		Long: `Build the catalog once and print the entries whose name contains the
query (case-insensitive). With no query every entry is printed.

Exits non-zero when the listing request fails.`,
		Example: `  pokedex list
  pokedex list char --format json
  pokedex list --format markdown > pokedex.md`,
		Args: cobra.MaximumNArgs(1),
		RunE: runListCmd,
	}

	cmd.Flags().StringP("format", "f", string(report.FormatText),
		fmt.Sprintf("output format (%s)", formatNames()))

	return cmd
}

func runListCmd(cmd *cobra.Command, args []string) error {
	formatFlag, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	format, err := report.ParseFormat(formatFlag)
	if err != nil {
		return err
	}

	opts := globalOptions(cmd)
	if len(args) > 0 {
		opts.Query = args[0]
	}
	return app.List(cmd.Context(), opts, format, cmd.OutOrStdout())
}

func formatNames() string {
	names := make([]string, 0, len(report.Formats()))
	for _, f := range report.Formats() {
		names = append(names, string(f))
	}
	return strings.Join(names, "|")
}
