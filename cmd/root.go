/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ch1m3z13/beadapp/internal/config"
	"github.com/ch1m3z13/beadapp/internal/domain"
	"github.com/ch1m3z13/beadapp/internal/logging"
	"github.com/ch1m3z13/beadapp/internal/search"
	"github.com/ch1m3z13/beadapp/internal/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "beadapp",
	Short: "Moderate AI-generated social posts from your terminal",
	Long: `beadapp tracks social-media projects and the AI-generated posts
drafted for them. Run it without arguments for the interactive
dashboard, or use the subcommands for scripted access to the
same data.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
		if err := logging.InitGlobal(); err != nil {
			// Logging is best-effort; commands still work without it.
			cmd.PrintErrln("warning: logging disabled:", err)
		}
		domain.SetSearchProvider(search.NewProvider(
			config.Get("search_provider", "substring"),
			search.WithCaseInsensitive(true)))
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logging.ShutdownGlobal()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDashboard(cmd, args)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Set version for use in help output
	rootCmd.Version = version.Version

	// Hide the completion command
	rootCmd.CompletionOptions.HiddenDefaultCmd = true
}
