package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"kino-cli/account"
)

var emailFlag string

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and remember the session",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd, false)
		if err != nil {
			return err
		}
		tr := a.Translator()
		email, err := promptValue(tr.T("label_email"), emailFlag, false)
		if err != nil {
			return err
		}
		password, err := promptValue(tr.T("label_password"), "", true)
		if err != nil {
			return err
		}
		return outcome(cmd, a, a.Login(cmd.Context(), email, password))
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd, false)
		if err != nil {
			return err
		}
		tr := a.Translator()
		name, err := promptValue(tr.T("label_name"), "", false)
		if err != nil {
			return err
		}
		email, err := promptValue(tr.T("label_email"), emailFlag, false)
		if err != nil {
			return err
		}
		password, err := promptValue(tr.T("label_password"), "", true)
		if err != nil {
			return err
		}
		return outcome(cmd, a, a.Register(cmd.Context(), name, email, password))
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the saved session",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd, false)
		if err != nil {
			return err
		}
		a.Logout()
		fmt.Fprintln(cmd.OutOrStdout(), a.Translator().T("logout"))
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := restoredApp(cmd)
		if err != nil {
			return err
		}
		user, ok := a.Account.User()
		if !ok {
			return outcome(cmd, a, account.ErrNotAuthenticated)
		}
		role := ""
		if user.IsAdmin {
			role = " (admin)"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s <%s>%s\n", user.Name, user.Email, role)
		return nil
	},
}

var passwordCmd = &cobra.Command{
	Use:   "password",
	Short: "Change your password",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := restoredApp(cmd)
		if err != nil {
			return err
		}
		tr := a.Translator()
		current, err := promptValue(tr.T("label_current_password"), "", true)
		if err != nil {
			return err
		}
		next, err := promptValue(tr.T("label_new_password"), "", true)
		if err != nil {
			return err
		}
		return outcome(cmd, a, a.Account.ChangePassword(cmd.Context(), current, next))
	},
}

var renameCmd = &cobra.Command{
	Use:   "rename <name>",
	Short: "Change your display name",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := restoredApp(cmd)
		if err != nil {
			return err
		}
		return outcome(cmd, a, a.Account.UpdateProfile(cmd.Context(), strings.Join(args, " ")))
	},
}

// promptValue asks for a value unless preset is given. Secrets are masked.
func promptValue(label string, preset string, secret bool) (string, error) {
	if preset != "" {
		return preset, nil
	}
	prompt := promptui.Prompt{
		Label: label,
		Validate: func(input string) error {
			if strings.TrimSpace(input) == "" {
				return errors.New("required")
			}
			return nil
		},
	}
	if secret {
		prompt.Mask = '•'
	}
	value, err := prompt.Run()
	if err != nil {
		return "", err
	}
	if secret {
		return value, nil
	}
	return strings.TrimSpace(value), nil
}

func init() {
	loginCmd.Flags().StringVar(&emailFlag, "email", "", "account email")
	registerCmd.Flags().StringVar(&emailFlag, "email", "", "account email")
	rootCmd.AddCommand(loginCmd, registerCmd, logoutCmd, whoamiCmd, passwordCmd, renameCmd)
}
