package cmd

import (
	"errors"

	"github.com/spf13/cobra"
)

func newAdminCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Inspect the dispenser server and acknowledge served doses",
	}

	cmd.AddCommand(
		newAdminInfoCmd(s),
		newAdminDueCmd(s),
		newAdminServedCmd(s, true),
		newAdminServedCmd(s, false),
	)

	return cmd
}

func newAdminInfoCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show server information and the pills due now",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app := s.app
			err := runRemoteCall(cmd.Context(), app, cmd.ErrOrStderr(), "Fetching server information...", app.dispenser.Refresh)
			return finishAdmin(cmd, app, err)
		},
	}
}

func newAdminDueCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "due",
		Short: "Show the pills due in the current time range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app := s.app
			err := runRemoteCall(cmd.Context(), app, cmd.ErrOrStderr(), "Fetching pills for current time range...", app.dispenser.RefreshDueNow)
			return finishAdmin(cmd, app, err)
		},
	}
}

func newAdminServedCmd(s *session, served bool) *cobra.Command {
	use, short, label := "mark-served", "Mark the current time range as served", "Marking time range as served..."
	if !served {
		use, short, label = "unmark-served", "Undo marking the current time range as served", "Unmarking time range as served..."
	}

	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app := s.app
			call := app.dispenser.MarkServed
			if !served {
				call = app.dispenser.UnmarkServed
			}

			err := runRemoteCall(cmd.Context(), app, cmd.ErrOrStderr(), label, call)
			return finishAdmin(cmd, app, err)
		},
	}
}

// finishAdmin prints the dispenser panel, failures included, and returns the
// first display message as the command error.
func finishAdmin(cmd *cobra.Command, app *app, callErr error) error {
	if err := writeDispenser(cmd, app); err != nil {
		return err
	}
	if callErr == nil {
		return nil
	}

	snapshot := app.dispenser.Snapshot()
	switch {
	case snapshot.ServerInfoError != "":
		return errors.New(snapshot.ServerInfoError)
	case snapshot.DueNowError != "":
		return errors.New(snapshot.DueNowError)
	default:
		return callErr
	}
}
