package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cryptopilot/droptrack/internal/output"
)

// Auth command flags.
var (
	registerFlagEmail    string
	registerFlagUsername string
	registerFlagPassword string
	registerFlagInvite   string

	loginFlagEmail    string
	loginFlagPassword string
	loginFlagInvite   string
)

// registerCmd creates a new account.
var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account (invite code required)",
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := ctx.Auth.Register(registerFlagEmail, registerFlagUsername,
			registerFlagPassword, registerFlagInvite)
		if err != nil {
			return err
		}
		if ctx.IsJSON() {
			return ctx.JSONFormatter().PrintUser(user)
		}
		return nil
	},
}

// loginCmd authenticates an existing account.
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to an existing account",
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := ctx.Auth.Login(loginFlagEmail, loginFlagPassword, loginFlagInvite)
		if err != nil {
			return err
		}
		if ctx.IsJSON() {
			return ctx.JSONFormatter().PrintUser(user)
		}
		return nil
	},
}

// logoutCmd clears the current session.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out of the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx.Auth.Logout()
		if ctx.IsJSON() {
			return ctx.Formatter.JSON(map[string]string{"status": "logged_out"})
		}
		return nil
	},
}

// whoamiCmd shows the current session.
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in user, level and achievements",
	RunE: func(cmd *cobra.Command, args []string) error {
		user := ctx.Auth.CurrentUser()

		if ctx.IsJSON() {
			return ctx.JSONFormatter().PrintUser(user)
		}

		cli := ctx.CLIFormatter()
		if user == nil {
			cli.Muted("Not logged in.")
			cli.Muted("Use 'droptrack login' or 'droptrack register'.")
			return nil
		}

		cli.Title(user.Username)
		cli.Printf("  Email: %s\n", user.Email)
		cli.Printf("  Level: %d\n", user.Level)
		if user.IsAdmin {
			cli.Println("  Admin")
		}
		if user.CanUploadVideos {
			cli.Println("  Video creator")
		}
		if len(user.Achievements) > 0 {
			cli.Printf("  Achievements (%d):\n", len(user.Achievements))
			for _, a := range user.Achievements {
				cli.Printf("    %s %s — %s (%s)\n",
					a.Icon, a.Name, a.Description, output.FormatMillis(a.DateEarned))
			}
		}
		return nil
	},
}

func init() {
	registerCmd.Flags().StringVar(&registerFlagEmail, "email", "", "Email address")
	registerCmd.Flags().StringVar(&registerFlagUsername, "username", "", "Username")
	registerCmd.Flags().StringVar(&registerFlagPassword, "password", "", "Password")
	registerCmd.Flags().StringVar(&registerFlagInvite, "invite", "", "Invite code")
	_ = registerCmd.MarkFlagRequired("email")
	_ = registerCmd.MarkFlagRequired("username")
	_ = registerCmd.MarkFlagRequired("password")
	_ = registerCmd.MarkFlagRequired("invite")

	loginCmd.Flags().StringVar(&loginFlagEmail, "email", "", "Email address")
	loginCmd.Flags().StringVar(&loginFlagPassword, "password", "", "Password")
	loginCmd.Flags().StringVar(&loginFlagInvite, "invite", "", "Invite code")
	_ = loginCmd.MarkFlagRequired("email")
	_ = loginCmd.MarkFlagRequired("password")
	_ = loginCmd.MarkFlagRequired("invite")

	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
}
