package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/pillctl/internal/domain"
	"github.com/spf13/cobra"
)

func newScheduleCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Edit which time windows each pill is dispensed in",
	}

	cmd.AddCommand(
		newScheduleWindowsCmd(s),
		newScheduleShowCmd(s),
		newScheduleSetCmd(s),
		newScheduleSaveCmd(s),
	)

	return cmd
}

type windowCatalogOutput struct {
	Key   string `json:"key" yaml:"key"`
	Label string `json:"label" yaml:"label"`
}

func newScheduleWindowsCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "windows",
		Short: "List the dispensing time windows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			windows := domain.Windows()
			catalog := make([]windowCatalogOutput, 0, len(windows))
			for _, window := range windows {
				catalog = append(catalog, windowCatalogOutput{Key: window.Key, Label: window.Label})
			}

			return writeOutput(cmd, s.app.output, catalog, func() (string, error) {
				lines := make([]string, 0, len(windows))
				for _, window := range windows {
					lines = append(lines, fmt.Sprintf("%-10s %s", window.Key, window.Label))
				}
				return strings.Join(lines, "\n"), nil
			})
		},
	}
}

func newScheduleShowCmd(s *session) *cobra.Command {
	var box int

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the schedule of one box, unsaved edits included",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app := s.app
			if err := loadOrRefreshRegistry(cmd, app); err != nil {
				return err
			}

			pill, err := app.registry.Pill(domain.BoxNumber(box))
			if err != nil {
				return err
			}
			return writePill(cmd, app, pill)
		},
	}

	cmd.Flags().IntVar(&box, "box", 0, "Dispenser box number")
	_ = cmd.MarkFlagRequired("box")

	return cmd
}

func newScheduleSetCmd(s *session) *cobra.Command {
	var box int
	var window string
	var disable bool
	var count string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Enable or disable a time window locally; run `schedule save` to send it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app := s.app
			if err := loadOrRefreshRegistry(cmd, app); err != nil {
				return err
			}

			var entry domain.ScheduleEntry
			var err error
			if cmd.Flags().Changed("count") {
				entry, err = app.registry.SetWindow(cmd.Context(), domain.BoxNumber(box), window, !disable, count)
			} else {
				entry, err = app.registry.ToggleWindow(cmd.Context(), domain.BoxNumber(box), window, !disable)
			}
			if err != nil {
				return err
			}
			app.log.Debugw("window updated", "box", box, "window", window, "enabled", entry.Enabled, "count", entry.DoseCount)

			pill, err := app.registry.Pill(domain.BoxNumber(box))
			if err != nil {
				return err
			}
			if app.output == outputText {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Unsaved changes for box %d. Run `pillctl schedule save --box %d` to send them.\n", box, box)
			}
			return writePill(cmd, app, pill)
		},
	}

	cmd.Flags().IntVar(&box, "box", 0, "Dispenser box number")
	cmd.Flags().StringVar(&window, "window", "", "Time window: morning, noon, afternoon, evening or night")
	cmd.Flags().BoolVar(&disable, "disable", false, "Disable the window instead of enabling it")
	cmd.Flags().StringVar(&count, "count", "", "Pills to dispense in the window (default: keep the current count)")
	_ = cmd.MarkFlagRequired("box")
	_ = cmd.MarkFlagRequired("window")

	return cmd
}

func newScheduleSaveCmd(s *session) *cobra.Command {
	var box int

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Send the schedule of one box to the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app := s.app
			if err := loadOrRefreshRegistry(cmd, app); err != nil {
				return err
			}

			err := runRemoteCall(cmd.Context(), app, cmd.ErrOrStderr(), "Saving schedule...", func(ctx context.Context) error {
				return app.registry.UpdateSchedule(ctx, domain.BoxNumber(box))
			})
			if err != nil {
				return fmt.Errorf("failed to update schedule: %s", domain.ErrorMessage(err))
			}

			if app.output == outputText {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "Schedule saved successfully!")
				return err
			}
			pill, err := app.registry.Pill(domain.BoxNumber(box))
			if err != nil {
				return err
			}
			return writePill(cmd, app, pill)
		},
	}

	cmd.Flags().IntVar(&box, "box", 0, "Dispenser box number")
	_ = cmd.MarkFlagRequired("box")

	return cmd
}

// loadOrRefreshRegistry restores the local snapshot, fetching from the
// server only when none exists yet.
func loadOrRefreshRegistry(cmd *cobra.Command, app *app) error {
	loaded, err := app.registry.Load(cmd.Context())
	if err != nil {
		return err
	}
	if loaded {
		return nil
	}

	err = runRemoteCall(cmd.Context(), app, cmd.ErrOrStderr(), "Fetching pills...", app.registry.Refresh)
	if err != nil {
		return fmt.Errorf("failed to fetch pills: %s", domain.ErrorMessage(err))
	}
	return nil
}
