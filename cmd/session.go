package cmd

import (
	"context"
	"fmt"

	"github.com/frahmantamala/bragboard/internal/auth"
	"github.com/frahmantamala/bragboard/internal/guard"
	"github.com/frahmantamala/bragboard/internal/user"
	"github.com/spf13/cobra"
)

var (
	loginForm  auth.LoginDTO
	loginRole  string
	signupForm auth.SignupDTO
	signupRole string
	forgotForm auth.ForgotPasswordDTO
	resetForm  auth.ResetPasswordDTO
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and remember the session",
	RunE: runE(func(ctx context.Context, deps *Dependencies, _ []string) error {
		if err := deps.Guard(guard.PathLogin); err != nil {
			return err
		}
		loginForm.Role = user.Role(loginRole)
		sess, err := deps.Auth.Login(ctx, loginForm)
		if err != nil {
			return err
		}
		return printJSON(deps.Out, sess)
	}),
}

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create an account",
	RunE: runE(func(ctx context.Context, deps *Dependencies, _ []string) error {
		if err := deps.Guard("/signup"); err != nil {
			return err
		}
		signupForm.Role = user.Role(signupRole)
		return deps.Auth.Signup(ctx, signupForm)
	}),
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the persisted session",
	RunE: runE(func(ctx context.Context, deps *Dependencies, _ []string) error {
		return deps.Auth.Logout(ctx)
	}),
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	RunE: runE(func(_ context.Context, deps *Dependencies, _ []string) error {
		return printJSON(deps.Out, deps.Sessions.Snapshot())
	}),
}

var forgotPasswordCmd = &cobra.Command{
	Use:   "forgot-password",
	Short: "Request a password reset",
	RunE: runE(func(ctx context.Context, deps *Dependencies, _ []string) error {
		if err := deps.Guard("/forgot-password"); err != nil {
			return err
		}
		resp, err := deps.Auth.RequestReset(ctx, forgotForm)
		if err != nil {
			return err
		}
		return printJSON(deps.Out, resp)
	}),
}

var resetPasswordCmd = &cobra.Command{
	Use:   "reset-password",
	Short: "Choose a new password with a reset token",
	RunE: runE(func(ctx context.Context, deps *Dependencies, _ []string) error {
		if err := deps.Guard(guard.PathResetPassword); err != nil {
			return err
		}
		if err := deps.Auth.ResetPassword(ctx, resetForm); err != nil {
			return err
		}
		_, err := fmt.Fprintln(deps.Out, auth.MsgResetDone)
		return err
	}),
}

func init() {
	loginCmd.Flags().StringVarP(&loginForm.Email, "email", "e", "", "account email")
	loginCmd.Flags().StringVarP(&loginForm.Password, "password", "p", "", "account password")
	loginCmd.Flags().StringVar(&loginRole, "role", string(user.RoleEmployee), "role selected on the sign in form")

	signupCmd.Flags().StringVarP(&signupForm.Email, "email", "e", "", "account email")
	signupCmd.Flags().StringVarP(&signupForm.FullName, "name", "n", "", "full name")
	signupCmd.Flags().StringVarP(&signupForm.Password, "password", "p", "", "account password")
	signupCmd.Flags().StringVar(&signupRole, "role", "", "ADMIN or EMPLOYEE (default EMPLOYEE)")

	forgotPasswordCmd.Flags().StringVarP(&forgotForm.Email, "email", "e", "", "account email")

	resetPasswordCmd.Flags().StringVarP(&resetForm.Token, "token", "t", "", "reset token")
	resetPasswordCmd.Flags().StringVarP(&resetForm.Password, "password", "p", "", "new password")
	resetPasswordCmd.Flags().StringVar(&resetForm.ConfirmPassword, "confirm", "", "new password again")
}
