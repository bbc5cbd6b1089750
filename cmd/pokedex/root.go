package main

import (
	"github.com/spf13/cobra"

	"github.com/five82/pokedex/internal/app"
)

// NewRootCmd creates the root command. Run without a subcommand it starts
// the terminal UI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pokedex",
		Short: "Browse the first Pokémon from PokéAPI in your terminal",
		Long: `pokedex fetches the Pokémon listing from PokéAPI, resolves every entry's
details concurrently and shows the first 32 as searchable cards.

Configuration is read from $XDG_CONFIG_HOME/pokedex/config.toml and logs are
written to $XDG_STATE_HOME/pokedex/pokedex.log unless overridden.`,
		Version:       getVersion(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRootCmd,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().String("config", "", "override config path (optional)")
	cmd.PersistentFlags().String("prefs", "", "override UI prefs path (optional)")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	cmd.Flags().StringP("query", "q", "", "initial search query")

	cmd.AddCommand(NewListCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

func runRootCmd(cmd *cobra.Command, _ []string) error {
	opts := globalOptions(cmd)
	query, err := cmd.Flags().GetString("query")
	if err != nil {
		return err
	}
	opts.Query = query
	return app.Run(cmd.Context(), opts)
}

// globalOptions reads the persistent flags shared by every command.
func globalOptions(cmd *cobra.Command) app.Options {
	configPath, _ := cmd.Flags().GetString("config")
	prefsPath, _ := cmd.Flags().GetString("prefs")
	verbose, _ := cmd.Flags().GetBool("verbose")
	return app.Options{
		ConfigPath: configPath,
		PrefsPath:  prefsPath,
		Verbose:    verbose,
	}
}
