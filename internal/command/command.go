package command

import (
	commandHandler "talentsync/internal/command/handler"

	"github.com/google/wire"
	"github.com/spf13/cobra"
)

var ProviderSet = wire.NewSet(NewCommand, commandHandler.NewExportHandler, commandHandler.NewReconcileHandler)

type Command struct {
	exportCommandHandler    *commandHandler.ExportHandler
	reconcileCommandHandler *commandHandler.ReconcileHandler
}

// NewCommand .
func NewCommand(
	exportCommandHandler *commandHandler.ExportHandler,
	reconcileCommandHandler *commandHandler.ReconcileHandler,
) *Command {
	return &Command{
		exportCommandHandler:    exportCommandHandler,
		reconcileCommandHandler: reconcileCommandHandler,
	}
}

func Register(rootCmd *cobra.Command, newCmd func() (*Command, func(), error)) {
	exportOpts := &commandHandler.ExportOptions{}
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "write one day's schedule summary to a CSV file",
		RunE: func(cmd *cobra.Command, args []string) error {
			command, cleanup, err := newCmd()
			if err != nil {
				return err
			}
			defer cleanup()

			return command.exportCommandHandler.Export(cmd, exportOpts)
		},
	}
	commandHandler.ExportFlags(exportCmd, exportOpts)

	reconcileOpts := &commandHandler.ReconcileOptions{}
	reconcileCmd := &cobra.Command{
		Use:   "reconcile",
		Short: "refresh employee name and position snapshots on schedules",
		RunE: func(cmd *cobra.Command, args []string) error {
			command, cleanup, err := newCmd()
			if err != nil {
				return err
			}
			defer cleanup()

			return command.reconcileCommandHandler.Reconcile(cmd, reconcileOpts)
		},
	}
	commandHandler.ReconcileFlags(reconcileCmd, reconcileOpts)

	rootCmd.AddCommand(exportCmd, reconcileCmd)
}
