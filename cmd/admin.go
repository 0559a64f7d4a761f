package cmd

import (
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"kino-cli/model"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Administrator tools",
}

var bookingStatusCmd = &cobra.Command{
	Use:   "booking-status <booking-id> [status]",
	Short: "Set the status of any booking",
	Long:  `Set a booking to confirmed or cancelled. Without a status you are asked to pick one.`,
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		a, err := restoredApp(cmd)
		if err != nil {
			return err
		}
		status := ""
		if len(args) == 2 {
			status = args[1]
		} else {
			pick := promptui.Select{
				Label: a.Translator().T("admin_title"),
				Items: []string{model.BookingConfirmed, model.BookingCancelled},
			}
			if _, status, err = pick.Run(); err != nil {
				return err
			}
		}
		updated, err := a.Admin.SetBookingStatus(cmd.Context(), id, status)
		if err := outcome(cmd, a, err); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "#%d • %s\n", updated.Id, a.Translator().Status(updated.Status))
		return nil
	},
}

func init() {
	adminCmd.AddCommand(bookingStatusCmd)
	rootCmd.AddCommand(adminCmd)
}
