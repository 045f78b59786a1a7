/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ch1m3z13/beadapp/internal/domain"
	"github.com/ch1m3z13/beadapp/internal/format"
)

// projectsCmd represents the projects command
var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List tracked projects",
	Long: `List tracked projects.

Sort keys: recent (last scraped), created, insights, name.`,
	RunE: runProjects,
}

var (
	projectsStatus   string
	projectsPlatform string
	projectsSearch   string
	projectsSort     string
)

func init() {
	rootCmd.AddCommand(projectsCmd)

	projectsCmd.Flags().StringVar(&projectsStatus, "status", "", "Only projects with this status: active, paused, error, idle")
	projectsCmd.Flags().StringVar(&projectsPlatform, "platform", "", "Only projects for this platform: x, farcaster")
	projectsCmd.Flags().StringVar(&projectsSearch, "search", "", "Substring match on name, URL and tags")
	projectsCmd.Flags().StringVar(&projectsSort, "sort", "recent", "Sort order: recent, created, insights, name")
}

func runProjects(cmd *cobra.Command, args []string) error {
	key, err := domain.ParseProjectSortKey(projectsSort)
	if err != nil {
		return err
	}

	repos, err := openRepositories()
	if err != nil {
		return err
	}
	defer repos.Close()

	filter := domain.ProjectFilter{
		Status:   projectsStatus,
		Platform: projectsPlatform,
		Search:   projectsSearch,
	}
	projects, err := domain.NewProjectService(repos.projects).List(filter, key)
	if err != nil {
		return err
	}
	if len(projects) == 0 {
		cmd.Println("No projects found")
		return nil
	}

	table := format.NewTable(
		format.Column{Name: "ID", Width: 10},
		format.Column{Name: "NAME", Width: 24, Truncate: true},
		format.Column{Name: "PLATFORM", Width: 12},
		format.Column{Name: "STATUS", Width: 6},
		format.Column{Name: "INSIGHTS", Width: 8, Alignment: "right"},
		format.Column{Name: "TAGS", Width: 30, Truncate: true},
	)
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, []string{
			p.ID, p.Name, p.Platform.DisplayName(), p.Status.String(),
			strconv.Itoa(p.TotalInsights), strings.Join(p.Tags, ","),
		})
	}
	return table.Render(cmd.OutOrStdout(), rows)
}
