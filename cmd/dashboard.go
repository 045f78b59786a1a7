/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/ch1m3z13/beadapp/internal/colors"
	"github.com/ch1m3z13/beadapp/internal/seed"
	"github.com/ch1m3z13/beadapp/internal/tui/app"
)

// dashboardCmd represents the dashboard command
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Open the interactive dashboard",
	Long: `Open the interactive dashboard.

The dashboard shows generated posts and tracked projects in a full
screen view. Filter, sort, select and moderate with single keystrokes;
the footer lists the key map, q quits.

On first run, when no data exists yet, the store is populated with
sample projects and posts so the view has something to show.`,
	RunE: runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	repos, err := openRepositories()
	if err != nil {
		return err
	}
	defer repos.Close()

	if err := seedIfEmpty(repos); err != nil {
		return err
	}

	client := app.NewClient(repos.posts, repos.projects, nil)
	return client.Run()
}

// seedIfEmpty populates the store with sample data when both
// collections are empty, so a fresh install is not a blank screen.
func seedIfEmpty(repos *repositories) error {
	projects, err := repos.projects.List()
	if err != nil {
		return err
	}
	posts, err := repos.posts.List()
	if err != nil {
		return err
	}
	if len(projects) > 0 || len(posts) > 0 {
		return nil
	}
	colors.Info("No data found, loading sample projects and posts")
	return seed.Apply(repos.store, time.Now())
}
