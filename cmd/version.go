/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ch1m3z13/beadapp/internal/version"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the beadapp version",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("beadapp v%s\n", version.String())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
