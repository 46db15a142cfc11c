package cli

import (
	"fmt"
	"strconv"

	"github.com/keskad/p50x/pkgs/app"
	"github.com/spf13/cobra"
)

func NewSOCommand(app *app.P50XApp) *cobra.Command {
	command := &cobra.Command{
		Use:   "so",
		Short: "Read or write a special option",
		RunE: func(command *cobra.Command, args []string) error {
			return command.Help()
		},
	}

	command.AddCommand(newSOGetCommand(app))
	command.AddCommand(newSOSetCommand(app))

	return command
}

func newSOGetCommand(app *app.P50XApp) *cobra.Command {
	command := &cobra.Command{
		Use:   "get OPTION",
		Short: "Read one special option value",
		Args:  cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			if err := app.Initialize(); err != nil {
				return err
			}

			option, err := strconv.ParseUint(args[0], 10, 16)
			if err != nil {
				return fmt.Errorf("invalid special option %q: %w", args[0], err)
			}

			return app.SOGetAction(uint16(option))
		},
	}
	command.Flags().BoolVarP(&app.Debug, "debug", "v", false, "Increase verbosity to the debug level")
	return command
}

func newSOSetCommand(app *app.P50XApp) *cobra.Command {
	command := &cobra.Command{
		Use:   "set OPTION VALUE",
		Short: "Write one special option value",
		Args:  cobra.ExactArgs(2),
		RunE: func(command *cobra.Command, args []string) error {
			if err := app.Initialize(); err != nil {
				return err
			}

			option, err := strconv.ParseUint(args[0], 10, 16)
			if err != nil {
				return fmt.Errorf("invalid special option %q: %w", args[0], err)
			}
			value, err := strconv.ParseUint(args[1], 10, 8)
			if err != nil {
				return fmt.Errorf("invalid value %q: %w", args[1], err)
			}

			return app.SOSetAction(uint16(option), byte(value))
		},
	}
	command.Flags().BoolVarP(&app.Debug, "debug", "v", false, "Increase verbosity to the debug level")
	return command
}
