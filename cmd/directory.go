package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/frahmantamala/bragboard/internal/employee"
	"github.com/frahmantamala/bragboard/internal/guard"
	"github.com/frahmantamala/bragboard/internal/leaderboard"
	"github.com/frahmantamala/bragboard/internal/notification"
	"github.com/frahmantamala/bragboard/internal/profile"
	"github.com/frahmantamala/bragboard/internal/report"
	"github.com/spf13/cobra"
)

const (
	pathEmployees   = "/admin/employees"
	pathLeaderboard = "/leaderboard"
	pathMarketplace = "/marketplace"
	pathProfile     = "/profile"
	pathReports     = "/admin/reports"
)

var (
	profileName       string
	profileDepartment string
	profileAvatarURL  string
	reportForm        report.SubmitReportDTO
)

var employeesCmd = &cobra.Command{
	Use:   "employees",
	Short: "Employee directory (admin)",
}

var employeesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List employees with activity stats",
	RunE: runE(func(ctx context.Context, deps *Dependencies, _ []string) error {
		if err := deps.Guard(pathEmployees); err != nil {
			return err
		}
		employees, err := deps.Employees.List(ctx)
		if err != nil {
			return err
		}
		return printJSON(deps.Out, employee.DirectoryResponse{
			Employees: employees,
			Stats:     employee.Summarize(employees),
		})
	}),
}

var employeesToggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Activate or deactivate an employee",
	Args:  cobra.ExactArgs(1),
	RunE: runE(func(ctx context.Context, deps *Dependencies, args []string) error {
		if err := deps.Guard(pathEmployees); err != nil {
			return err
		}
		e, err := deps.Employees.Toggle(ctx, args[0])
		if err != nil {
			return err
		}
		return printJSON(deps.Out, e)
	}),
}

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Show the leaderboard",
	RunE: runE(func(ctx context.Context, deps *Dependencies, _ []string) error {
		if err := deps.Guard(pathLeaderboard); err != nil {
			return err
		}
		entries, err := deps.Leaderboard.List(ctx)
		if err != nil {
			return err
		}
		return printJSON(deps.Out, leaderboard.Response{Entries: entries})
	}),
}

var notificationsCmd = &cobra.Command{
	Use:   "notifications",
	Short: "Read notifications",
}

var notificationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List notifications",
	RunE: runE(func(ctx context.Context, deps *Dependencies, _ []string) error {
		if err := deps.Guard(guard.PathEmployeeHome); err != nil {
			return err
		}
		ns, err := deps.Notifications.List(ctx)
		if err != nil {
			return err
		}
		return printJSON(deps.Out, notification.ListResponse{Notifications: ns, Unread: notification.Unread(ns)})
	}),
}

var notificationsReadCmd = &cobra.Command{
	Use:   "read <id>",
	Short: "Mark a notification read",
	Args:  cobra.ExactArgs(1),
	RunE: runE(func(ctx context.Context, deps *Dependencies, args []string) error {
		if err := deps.Guard(guard.PathEmployeeHome); err != nil {
			return err
		}
		n, err := deps.Notifications.MarkRead(ctx, args[0])
		if err != nil {
			return err
		}
		return printJSON(deps.Out, n)
	}),
}

var notificationsReadAllCmd = &cobra.Command{
	Use:   "read-all",
	Short: "Mark every notification read",
	RunE: runE(func(ctx context.Context, deps *Dependencies, _ []string) error {
		if err := deps.Guard(guard.PathEmployeeHome); err != nil {
			return err
		}
		count, err := deps.Notifications.MarkAllRead(ctx)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(deps.Out, "marked %d notifications read\n", count)
		return err
	}),
}

var rewardsCmd = &cobra.Command{
	Use:   "rewards",
	Short: "Rewards marketplace",
}

var rewardsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List rewards and what the balance affords",
	RunE: runE(func(ctx context.Context, deps *Dependencies, _ []string) error {
		if err := deps.Guard(pathMarketplace); err != nil {
			return err
		}
		catalog, err := deps.Rewards.Catalog(ctx)
		if err != nil {
			return err
		}
		return printJSON(deps.Out, catalog)
	}),
}

var rewardsRedeemCmd = &cobra.Command{
	Use:   "redeem <id>",
	Short: "Spend points on a reward",
	Args:  cobra.ExactArgs(1),
	RunE: runE(func(ctx context.Context, deps *Dependencies, args []string) error {
		if err := deps.Guard(pathMarketplace); err != nil {
			return err
		}
		resp, err := deps.Rewards.Redeem(ctx, args[0])
		if err != nil {
			return err
		}
		return printJSON(deps.Out, resp)
	}),
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the signed-in profile",
	RunE: runE(func(_ context.Context, deps *Dependencies, _ []string) error {
		if err := deps.Guard(pathProfile); err != nil {
			return err
		}
		u, err := deps.Profile.Current()
		if err != nil {
			return err
		}
		return printJSON(deps.Out, profile.Response{User: u})
	}),
}

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Edit the profile",
	RunE: runE(func(ctx context.Context, deps *Dependencies, _ []string) error {
		if err := deps.Guard(pathProfile); err != nil {
			return err
		}
		u, err := deps.Profile.Update(ctx, profileEdit(), nil)
		if err != nil {
			return err
		}
		return printJSON(deps.Out, profile.Response{User: u, Message: profile.MsgUpdated})
	}),
}

var profileAvatarCmd = &cobra.Command{
	Use:   "avatar <file>",
	Short: "Upload a new avatar image",
	Args:  cobra.ExactArgs(1),
	RunE: runE(func(ctx context.Context, deps *Dependencies, args []string) error {
		if err := deps.Guard(pathProfile); err != nil {
			return err
		}
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open avatar: %w", err)
		}
		defer f.Close()

		u, err := deps.Profile.Update(ctx, profileEdit(), &profile.Avatar{
			Filename: filepath.Base(args[0]),
			Content:  f,
		})
		if err != nil {
			return err
		}
		return printJSON(deps.Out, profile.Response{User: u, Message: profile.MsgUpdated})
	}),
}

func profileEdit() profile.UpdateProfileDTO {
	var dto profile.UpdateProfileDTO
	if profileName != "" {
		dto.FullName = &profileName
	}
	if profileDepartment != "" {
		dto.Department = &profileDepartment
	}
	if profileAvatarURL != "" {
		dto.AvatarURL = &profileAvatarURL
	}
	return dto
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Report a shoutout, comment or user",
	RunE: runE(func(ctx context.Context, deps *Dependencies, _ []string) error {
		if err := deps.Guard(guard.PathEmployeeHome); err != nil {
			return err
		}
		id, err := deps.Reports.Submit(ctx, reportForm)
		if err != nil {
			return err
		}
		return printJSON(deps.Out, report.SubmitResponse{ID: id})
	}),
}

var reportSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Participation summary (admin)",
	RunE: runE(func(ctx context.Context, deps *Dependencies, _ []string) error {
		if err := deps.Guard(pathReports); err != nil {
			return err
		}
		summary, err := deps.Reports.Summary(ctx)
		if err != nil {
			return err
		}
		return printJSON(deps.Out, summary)
	}),
}

func init() {
	employeesCmd.AddCommand(employeesListCmd, employeesToggleCmd)
	notificationsCmd.AddCommand(notificationsListCmd, notificationsReadCmd, notificationsReadAllCmd)
	rewardsCmd.AddCommand(rewardsListCmd, rewardsRedeemCmd)

	for _, c := range []*cobra.Command{profileUpdateCmd, profileAvatarCmd} {
		c.Flags().StringVarP(&profileName, "name", "n", "", "full name")
		c.Flags().StringVarP(&profileDepartment, "department", "d", "", "department")
	}
	profileUpdateCmd.Flags().StringVar(&profileAvatarURL, "avatar-url", "", "avatar image url")
	profileCmd.AddCommand(profileUpdateCmd, profileAvatarCmd)

	reportCmd.Flags().StringVarP(&reportForm.Title, "title", "t", "", "report title")
	reportCmd.Flags().StringVarP(&reportForm.Content, "content", "c", "", "what happened")
	reportCmd.Flags().StringVar(&reportForm.TargetType, "target-type", "", "shoutout, comment or user")
	reportCmd.Flags().StringVar(&reportForm.TargetID, "target-id", "", "id of the reported item")
	reportCmd.AddCommand(reportSummaryCmd)
}
