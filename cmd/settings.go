/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/ch1m3z13/beadapp/internal/colors"
	"github.com/ch1m3z13/beadapp/internal/settings"
)

// settingsCmd represents the settings command
var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or reset dashboard settings",
	Long: `Show the persisted dashboard settings.

The dashboard saves its view, sort orders and filters on exit and
restores them on the next launch. Use --reset to return to defaults.`,
	RunE: runSettings,
}

var settingsReset bool

func init() {
	rootCmd.AddCommand(settingsCmd)

	settingsCmd.Flags().BoolVar(&settingsReset, "reset", false, "Reset settings to defaults")
}

func runSettings(cmd *cobra.Command, args []string) error {
	if settingsReset {
		if err := settings.Reset(); err != nil {
			return err
		}
		colors.Success("Settings reset to defaults")
		return nil
	}

	loaded, err := settings.Load()
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(loaded, "", "  ")
	if err != nil {
		return err
	}
	cmd.Println(string(data))
	return nil
}
