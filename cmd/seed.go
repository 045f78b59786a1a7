/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/ch1m3z13/beadapp/internal/colors"
	"github.com/ch1m3z13/beadapp/internal/seed"
)

// seedCmd represents the seed command
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load sample projects and posts",
	Long: `Load sample projects and posts into the store.

Replaces the current collections with the bundled fixtures. Useful for
demos and for starting over after experimenting.`,
	RunE: runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, args []string) error {
	repos, err := openRepositories()
	if err != nil {
		return err
	}
	defer repos.Close()

	now := time.Now()
	if err := seed.Apply(repos.store, now); err != nil {
		return err
	}
	colors.Success("Seeded " + strconv.Itoa(len(seed.Projects())) + " projects and " +
		strconv.Itoa(len(seed.Posts(now))) + " posts")
	return nil
}
