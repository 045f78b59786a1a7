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

// postsCmd represents the posts command
var postsCmd = &cobra.Command{
	Use:   "posts",
	Short: "List generated posts",
	Long: `List generated posts.

Applies the same filters as the dashboard feed: all criteria must
match, and "all" (or an empty value) disables a criterion.

Sort keys: newest, oldest, most-liked, most-shared.`,
	RunE: runPosts,
}

var (
	postsProject  string
	postsStatus   string
	postsPlatform string
	postsSearch   string
	postsSort     string
)

func init() {
	rootCmd.AddCommand(postsCmd)

	postsCmd.Flags().StringVar(&postsProject, "project", "", "Only posts for this project ID")
	postsCmd.Flags().StringVar(&postsStatus, "status", "", "Only posts with this status: pending, approved, rejected, scheduled")
	postsCmd.Flags().StringVar(&postsPlatform, "platform", "", "Only posts for this platform: x, farcaster")
	postsCmd.Flags().StringVar(&postsSearch, "search", "", "Substring match on content and project name")
	postsCmd.Flags().StringVar(&postsSort, "sort", "newest", "Sort order: newest, oldest, most-liked, most-shared")
}

func runPosts(cmd *cobra.Command, args []string) error {
	key, err := domain.ParsePostSortKey(postsSort)
	if err != nil {
		return err
	}

	repos, err := openRepositories()
	if err != nil {
		return err
	}
	defer repos.Close()

	filter := domain.PostFilter{
		ProjectID: postsProject,
		Status:    postsStatus,
		Platform:  postsPlatform,
		Search:    postsSearch,
	}
	posts, err := domain.NewPostService(repos.posts).List(filter, key)
	if err != nil {
		return err
	}
	if len(posts) == 0 {
		cmd.Println("No posts found")
		return nil
	}

	table := format.NewTable(
		format.Column{Name: "ID", Width: 10},
		format.Column{Name: "PROJECT", Width: 20, Truncate: true},
		format.Column{Name: "PLATFORM", Width: 12},
		format.Column{Name: "STATUS", Width: 9},
		format.Column{Name: "LIKES", Width: 5, Alignment: "right"},
		format.Column{Name: "SHARES", Width: 6, Alignment: "right"},
		format.Column{Name: "CONTENT", Width: 60, Truncate: true},
	)
	rows := make([][]string, 0, len(posts))
	for _, p := range posts {
		rows = append(rows, []string{
			p.ID, p.ProjectName, p.Platform.DisplayName(), p.Status.String(),
			strconv.Itoa(p.Likes), strconv.Itoa(p.Shares), oneLine(p.Content),
		})
	}
	return table.Render(cmd.OutOrStdout(), rows)
}

// oneLine collapses whitespace for single-row display.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
