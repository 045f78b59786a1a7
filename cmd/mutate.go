/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/ch1m3z13/beadapp/internal/colors"
	"github.com/ch1m3z13/beadapp/internal/mutation"
	"github.com/ch1m3z13/beadapp/internal/toast"
)

// approveCmd represents the approve command
var approveCmd = &cobra.Command{
	Use:   "approve POST_ID",
	Short: "Approve a post for publishing",
	Args:  cobra.ExactArgs(1),
	RunE:  mutateRunE(mutation.KindApprove),
}

// rejectCmd represents the reject command
var rejectCmd = &cobra.Command{
	Use:   "reject POST_ID",
	Short: "Reject a post",
	Args:  cobra.ExactArgs(1),
	RunE:  mutateRunE(mutation.KindReject),
}

// likeCmd represents the like command
var likeCmd = &cobra.Command{
	Use:   "like POST_ID",
	Short: "Like a post",
	Args:  cobra.ExactArgs(1),
	RunE:  mutateRunE(mutation.KindLike),
}

// shareCmd represents the share command
var shareCmd = &cobra.Command{
	Use:   "share POST_ID",
	Short: "Share a post",
	Args:  cobra.ExactArgs(1),
	RunE:  mutateRunE(mutation.KindShare),
}

// regenerateCmd represents the regenerate command
var regenerateCmd = &cobra.Command{
	Use:   "regenerate POST_ID",
	Short: "Regenerate a post with AI",
	Args:  cobra.ExactArgs(1),
	RunE:  mutateRunE(mutation.KindRegenerate),
}

func init() {
	rootCmd.AddCommand(approveCmd)
	rootCmd.AddCommand(rejectCmd)
	rootCmd.AddCommand(likeCmd)
	rootCmd.AddCommand(shareCmd)
	rootCmd.AddCommand(regenerateCmd)
}

// consoleNotifier prints toasts through the colored console helpers.
type consoleNotifier struct{}

func (consoleNotifier) Show(message string, kind toast.Kind) {
	switch kind {
	case toast.KindSuccess:
		colors.Success(message)
	case toast.KindWarning:
		colors.Warning(message)
	case toast.KindError:
		colors.Error(message)
	default:
		colors.Info(message)
	}
}

// blockingScheduler runs the follow-up inline after its delay, so the
// regeneration follow-up prints before the process exits.
func blockingScheduler(delay time.Duration, fn func()) (cancel func()) {
	time.Sleep(delay)
	fn()
	return func() {}
}

func mutateRunE(kind mutation.Kind) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		repos, err := openRepositories()
		if err != nil {
			return err
		}
		defer repos.Close()

		ctrl := mutation.NewController(repos.posts, consoleNotifier{},
			mutation.WithScheduler(blockingScheduler))
		return ctrl.Apply(args[0], kind)
	}
}
