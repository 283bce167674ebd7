package cli

import (
	"github.com/spf13/cobra"

	"coinscope/internal/config"
)

// CommandType represents the type of CLI command
type CommandType int

// Command type values
const (
	CommandHelp CommandType = iota
	CommandView
	CommandShow
	CommandList
	CommandVersion
)

// Options contains the parsed command-line arguments
type Options struct {
	Type    CommandType
	Subject string
	Tab     string
	Config  string
}

// rootFlags holds flag values for the root command
type rootFlags struct {
	version bool
}

// Parse parses command-line args and returns a Options struct
func Parse(args []string) (*Options, error) {
	result := &Options{
		Type:   CommandHelp,
		Config: config.ConfigFile,
	}

	var flags rootFlags

	root := buildRootCommand(result, &flags)
	root.AddCommand(
		buildViewCommand(result),
		buildShowCommand(result),
		buildListCommand(result),
		buildVersionCommand(result),
	)

	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		return nil, err
	}

	if flags.version {
		result.Type = CommandVersion
	}

	return result, nil
}

// buildRootCommand creates the root cobra command
func buildRootCommand(result *Options, flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   config.AppName,
		Short: "Terminal coin detail screen with watchlist and alerts",
		Long: `Coinscope shows the detail screen of a coin from your catalog:
an overview and its markets, a watchlist toggle and price alerts.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandHelp
		},
	}

	cmd.PersistentFlags().StringVarP(&result.Config, "config", "c", config.ConfigFile, "Path to the configuration file")
	cmd.Flags().BoolVarP(&flags.version, "version", "v", false, "Show version information")

	cmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		result.Type = CommandHelp
	})

	return cmd
}

// buildViewCommand creates the view subcommand
func buildViewCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "view <coin>",
		Aliases: []string{"v"},
		Short:   "Open the interactive detail screen of a coin",
		Args:    cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandView
			result.Subject = args[0]
		},
	}

	cmd.Flags().StringVarP(&result.Tab, "tab", "t", "", "Tab to show on open (overview, markets)")

	return cmd
}

// buildShowCommand creates the show subcommand
func buildShowCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "show <coin>",
		Aliases: []string{"s"},
		Short:   "Print the watchlist and alert state of a coin",
		Args:    cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandShow
			result.Subject = args[0]
		},
	}

	return cmd
}

// buildListCommand creates the list subcommand
func buildListCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the coins of the catalog",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandList
		},
	}

	return cmd
}

// buildVersionCommand creates the version subcommand
func buildVersionCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandVersion
		},
	}

	return cmd
}
