package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/pillctl/internal/application"
	"github.com/bnema/pillctl/internal/domain"
	"github.com/spf13/cobra"
)

func newPillCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pill",
		Short: "Manage the pills loaded in the dispenser boxes",
	}

	cmd.AddCommand(
		newPillListCmd(s),
		newPillAddCmd(s),
		newPillDeleteCmd(s),
	)

	return cmd
}

func newPillListCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Fetch and display every pill with its schedule",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app := s.app
			loaded, err := app.registry.Load(cmd.Context())
			if err != nil {
				return err
			}

			refreshErr := runRemoteCall(cmd.Context(), app, cmd.ErrOrStderr(), "Fetching pills...", app.registry.Refresh)
			if refreshErr == nil {
				return writeRegistry(cmd, app)
			}

			refreshErr = fmt.Errorf("failed to fetch pills: %s", domain.ErrorMessage(refreshErr))
			if !loaded {
				return refreshErr
			}

			app.log.Warnw("showing cached pills", "err", refreshErr)
			if err := writeRegistry(cmd, app); err != nil {
				return err
			}
			return refreshErr
		},
	}
}

func newPillAddCmd(s *session) *cobra.Command {
	var name string
	var box int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a pill in an empty box",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app := s.app
			if _, err := app.registry.Load(cmd.Context()); err != nil {
				return err
			}

			err := runRemoteCall(cmd.Context(), app, cmd.ErrOrStderr(), "Adding pill...", func(ctx context.Context) error {
				return app.registry.AddPill(ctx, name, domain.BoxNumber(box))
			})
			if errors.Is(err, application.ErrRefreshAfterWrite) {
				return fmt.Errorf("pill added to box %d, but failed to refresh pills: %s", box, domain.ErrorMessage(err))
			}
			if err != nil {
				return fmt.Errorf("failed to add pill: %s", domain.ErrorMessage(err))
			}

			if app.output == outputText {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Pill added to box %d.\n", box)
			}
			return writeRegistry(cmd, app)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Pill name")
	cmd.Flags().IntVar(&box, "box", 0, "Dispenser box number")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("box")

	return cmd
}

func newPillDeleteCmd(s *session) *cobra.Command {
	var box int

	cmd := &cobra.Command{
		Use:     "delete",
		Aliases: []string{"rm"},
		Short:   "Remove the pill stored in a box",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app := s.app
			if _, err := app.registry.Load(cmd.Context()); err != nil {
				return err
			}

			err := runRemoteCall(cmd.Context(), app, cmd.ErrOrStderr(), "Deleting pill...", func(ctx context.Context) error {
				return app.registry.DeletePill(ctx, domain.BoxNumber(box))
			})
			if errors.Is(err, application.ErrRefreshAfterWrite) {
				return fmt.Errorf("pill deleted from box %d, but failed to refresh pills: %s", box, domain.ErrorMessage(err))
			}
			if err != nil {
				return fmt.Errorf("failed to delete pill: %s", domain.ErrorMessage(err))
			}

			if app.output == outputText {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Pill deleted from box %d.\n", box)
			}
			return writeRegistry(cmd, app)
		},
	}

	cmd.Flags().IntVar(&box, "box", 0, "Dispenser box number")
	_ = cmd.MarkFlagRequired("box")

	return cmd
}
