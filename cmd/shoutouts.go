package cmd

import (
	"context"
	"fmt"

	"github.com/frahmantamala/bragboard/internal"
	"github.com/frahmantamala/bragboard/internal/guard"
	"github.com/frahmantamala/bragboard/internal/shoutout"
	"github.com/spf13/cobra"
)

var (
	feedQuery     string
	createForm    shoutout.CreateShoutoutDTO
	updateTitle   string
	updateContent string
	commentForm   shoutout.CommentDTO
)

func shoutoutPath(id string) string {
	return "/shoutouts/" + id
}

var shoutoutsCmd = &cobra.Command{
	Use:   "shoutouts",
	Short: "Browse and write shoutouts",
}

var shoutoutsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the shoutout feed",
	RunE: runE(func(ctx context.Context, deps *Dependencies, _ []string) error {
		path := guard.HomePath(deps.Sessions.Snapshot().Role())
		if err := deps.Guard(path); err != nil {
			return err
		}
		shoutouts, err := deps.Shoutouts.List(ctx)
		if err != nil {
			return err
		}
		return printJSON(deps.Out, shoutout.FeedResponse{Shoutouts: shoutout.Filter(shoutouts, feedQuery)})
	}),
}

var shoutoutsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one shoutout with its comments",
	Args:  cobra.ExactArgs(1),
	RunE: runE(func(ctx context.Context, deps *Dependencies, args []string) error {
		if err := deps.Guard(shoutoutPath(args[0])); err != nil {
			return err
		}
		s, err := deps.Shoutouts.Get(ctx, args[0])
		if err != nil {
			return err
		}
		if s == nil {
			_, err := fmt.Fprintf(deps.Out, "shoutout %s not found\n", args[0])
			return err
		}
		return printJSON(deps.Out, shoutout.DetailResponse{Shoutout: s})
	}),
}

var shoutoutsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Recognize teammates",
	RunE: runE(func(ctx context.Context, deps *Dependencies, _ []string) error {
		if err := deps.Guard(guard.PathEmployeeHome); err != nil {
			return err
		}
		id, err := deps.Shoutouts.Create(ctx, deps.Sessions.Snapshot().UserID(), createForm)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(deps.Out, "created shoutout %s\n", id)
		return err
	}),
}

var shoutoutsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Edit a shoutout",
	Args:  cobra.ExactArgs(1),
	RunE: runE(func(ctx context.Context, deps *Dependencies, args []string) error {
		if err := deps.Guard(shoutoutPath(args[0])); err != nil {
			return err
		}
		var dto shoutout.UpdateShoutoutDTO
		if updateTitle != "" {
			dto.Title = &updateTitle
		}
		if updateContent != "" {
			dto.Content = &updateContent
		}
		return deps.Shoutouts.Update(ctx, args[0], dto)
	}),
}

var shoutoutsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a shoutout",
	Args:  cobra.ExactArgs(1),
	RunE: runE(func(ctx context.Context, deps *Dependencies, args []string) error {
		// admins moderate from their own home screen
		path := shoutoutPath(args[0])
		if deps.Sessions.Snapshot().Role().IsAdmin() {
			path = guard.PathAdminHome
		}
		if err := deps.Guard(path); err != nil {
			return err
		}
		return deps.Shoutouts.Delete(ctx, args[0])
	}),
}

var shoutoutsCommentCmd = &cobra.Command{
	Use:   "comment <id>",
	Short: "Comment on a shoutout",
	Args:  cobra.ExactArgs(1),
	RunE: runE(func(ctx context.Context, deps *Dependencies, args []string) error {
		if err := deps.Guard(shoutoutPath(args[0])); err != nil {
			return err
		}
		sess := deps.Sessions.Snapshot()
		c, err := deps.Shoutouts.Comment(ctx, args[0], sess.UserID(), sess.DisplayName(), commentForm)
		if err != nil {
			return err
		}
		return printJSON(deps.Out, c)
	}),
}

var shoutoutsCheerCmd = &cobra.Command{
	Use:   "cheer <id>",
	Short: "Cheer a shoutout, or take the cheer back",
	Args:  cobra.ExactArgs(1),
	RunE: runE(func(ctx context.Context, deps *Dependencies, args []string) error {
		if err := deps.Guard(shoutoutPath(args[0])); err != nil {
			return err
		}
		sess := deps.Sessions.Snapshot()
		if !sess.Authenticated() {
			return internal.ErrNotAuthenticated
		}
		resp, err := deps.Shoutouts.Cheer(ctx, args[0], sess.UserID())
		if err != nil {
			return err
		}
		return printJSON(deps.Out, resp)
	}),
}

func init() {
	shoutoutsListCmd.Flags().StringVarP(&feedQuery, "query", "q", "", "only shoutouts whose title or text contains this")

	shoutoutsCreateCmd.Flags().StringVarP(&createForm.Title, "title", "t", "", "shoutout title")
	shoutoutsCreateCmd.Flags().StringVarP(&createForm.Content, "content", "c", "", "shoutout text")
	shoutoutsCreateCmd.Flags().StringSliceVarP(&createForm.RecipientIDs, "to", "r", nil, "recipient user ids")

	shoutoutsUpdateCmd.Flags().StringVarP(&updateTitle, "title", "t", "", "new title")
	shoutoutsUpdateCmd.Flags().StringVarP(&updateContent, "content", "c", "", "new text")

	shoutoutsCommentCmd.Flags().StringVarP(&commentForm.Content, "content", "c", "", "comment text")

	shoutoutsCmd.AddCommand(
		shoutoutsListCmd,
		shoutoutsShowCmd,
		shoutoutsCreateCmd,
		shoutoutsUpdateCmd,
		shoutoutsDeleteCmd,
		shoutoutsCommentCmd,
		shoutoutsCheerCmd,
	)
}
