/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ch1m3z13/beadapp/internal/colors"
	"github.com/ch1m3z13/beadapp/internal/domain"
	"github.com/ch1m3z13/beadapp/internal/validate"
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new project",
	Long: `Add a new project to track.

USAGE:
    beadapp add --name <name> --platform <platform> --url <url> [OPTIONS]

OPTIONS:
    --name <name>            Project name (required)
    --platform <platform>    Platform: x, farcaster (required)
    --url <url>              Source URL to scrape insights from (required)
    --tags <tags>            Comma-separated tags
    --description <text>     Short project description
    --scrape                 Start scraping right away; otherwise the project is stored idle
    -h, --help               Show this help

The source URL must match the platform's post URL format; an invalid
URL is rejected before anything is written.`,
	RunE: runAdd,
}

var (
	addName        string
	addPlatform    string
	addURL         string
	addTags        string
	addDescription string
	addScrape      bool
)

func init() {
	rootCmd.AddCommand(addCmd)

	// Local flags
	addCmd.Flags().StringVar(&addName, "name", "", "Project name")
	addCmd.Flags().StringVar(&addPlatform, "platform", "", "Platform: x, farcaster")
	addCmd.Flags().StringVar(&addURL, "url", "", "Source URL to scrape insights from")
	addCmd.Flags().StringVar(&addTags, "tags", "", "Comma-separated tags")
	addCmd.Flags().StringVar(&addDescription, "description", "", "Short project description")
	addCmd.Flags().BoolVar(&addScrape, "scrape", false, "Enable scraping for this project")
}

func runAdd(cmd *cobra.Command, args []string) error {
	if addName == "" {
		colors.Error("'add' requires --name")
		cmd.PrintErrln("Usage: beadapp add --name <name> --platform <platform> --url <url> [OPTIONS]")
		return nil
	}
	if addURL == "" {
		colors.Error("'add' requires --url")
		cmd.PrintErrln("Usage: beadapp add --name <name> --platform <platform> --url <url> [OPTIONS]")
		return nil
	}
	platform, err := domain.ParsePlatform(addPlatform)
	if err != nil {
		colors.Error(err.Error())
		return nil
	}

	if result := validate.URL(addURL, addPlatform); !result.OK() {
		colors.Error(result.Reason)
		return nil
	}

	// With scraping off the project is stored idle; it turns active
	// once scraping is enabled.
	status := domain.ProjectStatusIdle
	if addScrape {
		status = domain.ProjectStatusActive
	}
	project := domain.Project{
		ID:              uuid.NewString(),
		Name:            addName,
		Platform:        platform,
		URL:             addURL,
		Tags:            splitTags(addTags),
		Description:     addDescription,
		Status:          status,
		ScrapingEnabled: addScrape,
		CreatedAt:       time.Now().UTC().Format(time.RFC3339),
	}
	if err := project.Validate(); err != nil {
		colors.Error(err.Error())
		return nil
	}

	repos, err := openRepositories()
	if err != nil {
		return err
	}
	defer repos.Close()

	if err := repos.projects.Add(project); err != nil {
		return err
	}
	colors.Success("Project added: " + project.Name + " (" + project.ID + ")")
	return nil
}

// splitTags splits a comma-separated tag list, dropping empty entries.
func splitTags(s string) []string {
	var tags []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
