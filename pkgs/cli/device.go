package cli

import (
	"fmt"
	"strconv"

	"github.com/keskad/p50x/pkgs/app"
	"github.com/spf13/cobra"
)

func NewDeviceCommand(app *app.P50XApp) *cobra.Command {
	command := &cobra.Command{
		Use:   "device",
		Short: "Query or reconfigure the central unit itself",
		RunE: func(command *cobra.Command, args []string) error {
			return command.Help()
		},
	}

	command.AddCommand(newVersionCommand(app))
	command.AddCommand(newNopCommand(app))
	command.AddCommand(newSetExtCharCommand(app))

	return command
}

func newVersionCommand(app *app.P50XApp) *cobra.Command {
	command := &cobra.Command{
		Use:   "version",
		Short: "Print the central unit's firmware version blob",
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, args []string) error {
			if err := app.Initialize(); err != nil {
				return err
			}
			return app.VersionAction()
		},
	}
	command.Flags().BoolVarP(&app.Debug, "debug", "v", false, "Increase verbosity to the debug level")
	return command
}

func newNopCommand(app *app.P50XApp) *cobra.Command {
	command := &cobra.Command{
		Use:   "nop",
		Short: "Issue a no-op round trip as a liveness check",
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, args []string) error {
			if err := app.Initialize(); err != nil {
				return err
			}
			return app.NopAction()
		},
	}
	command.Flags().BoolVarP(&app.Debug, "debug", "v", false, "Increase verbosity to the debug level")
	return command
}

func newSetExtCharCommand(app *app.P50XApp) *cobra.Command {
	command := &cobra.Command{
		Use:   "set-extended-char BYTE",
		Short: "Reassign the extended-command prefix byte",
		Args:  cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			if err := app.Initialize(); err != nil {
				return err
			}

			value, err := strconv.ParseUint(args[0], 0, 8)
			if err != nil {
				return fmt.Errorf("invalid byte value %q: %w", args[0], err)
			}

			return app.ReassignExtendedCharAction(byte(value))
		},
	}
	command.Flags().BoolVarP(&app.Debug, "debug", "v", false, "Increase verbosity to the debug level")
	return command
}
