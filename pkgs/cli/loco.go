package cli

import (
	"fmt"
	"strconv"

	"github.com/keskad/p50x/pkgs/app"
	"github.com/keskad/p50x/pkgs/p50x"
	"github.com/spf13/cobra"
)

func NewLokCommand(app *app.P50XApp) *cobra.Command {
	command := &cobra.Command{
		Use:   "loco",
		Short: "Control and query a locomotive",
		RunE: func(command *cobra.Command, args []string) error {
			return command.Help()
		},
	}

	command.AddCommand(newLokSetCommand(app))
	command.AddCommand(newLokDispatchCommand(app))
	command.AddCommand(newLokStatusCommand(app))
	command.AddCommand(newLokConfigCommand(app))
	command.AddCommand(newLokFnCommand(app, "fn", false))
	command.AddCommand(newLokFnCommand(app, "fnx", true))
	command.AddCommand(newLokFnStatusCommand(app, "fn-status", false))
	command.AddCommand(newLokFnStatusCommand(app, "fnx-status", true))

	return command
}

func newLokSetCommand(app *app.P50XApp) *cobra.Command {
	type Args struct {
		Address       uint16
		EmergencyStop bool
		Light         bool
	}

	cmdArgs := Args{}
	command := &cobra.Command{
		Use:   "set SPEED",
		Short: "Set the speed and direction of a locomotive",
		Long: `Set the speed and direction of a locomotive.

SPEED is a signed value; negative means reverse. Speed 1 (or --stop) means
emergency stop.

Examples:
  p50x loco set 50 --address 3
  p50x loco set --address 3 -- -20   # reverse at speed 20
  p50x loco set 0 --address 3 --stop`,
		Args: cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			if err := app.Initialize(); err != nil {
				return err
			}

			speed64, err := strconv.ParseInt(args[0], 10, 8)
			if err != nil {
				return fmt.Errorf("invalid speed value %q: %w", args[0], err)
			}

			opts := p50x.LokOptions{
				EmergencyStop: cmdArgs.EmergencyStop,
				Light:         cmdArgs.Light,
			}

			return app.LokSetAction(cmdArgs.Address, int8(speed64), opts)
		},
	}

	command.Flags().BoolVarP(&app.Debug, "debug", "v", false, "Increase verbosity to the debug level")
	command.Flags().Uint16VarP(&cmdArgs.Address, "address", "a", 0, "Locomotive address (required)")
	command.Flags().BoolVarP(&cmdArgs.EmergencyStop, "stop", "e", false, "Emergency stop")
	command.Flags().BoolVarP(&cmdArgs.Light, "light", "l", false, "Turn the locomotive's light on")
	_ = command.MarkFlagRequired("address")

	return command
}

func newLokDispatchCommand(app *app.P50XApp) *cobra.Command {
	type Args struct {
		Address uint16
	}

	cmdArgs := Args{}
	command := &cobra.Command{
		Use:   "dispatch",
		Short: "Request control of a locomotive address",
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, args []string) error {
			if err := app.Initialize(); err != nil {
				return err
			}
			return app.LokDispatchAction(cmdArgs.Address)
		},
	}

	command.Flags().BoolVarP(&app.Debug, "debug", "v", false, "Increase verbosity to the debug level")
	command.Flags().Uint16VarP(&cmdArgs.Address, "address", "a", 0, "Locomotive address (required)")
	_ = command.MarkFlagRequired("address")

	return command
}

func newLokStatusCommand(app *app.P50XApp) *cobra.Command {
	type Args struct {
		Address uint16
	}

	cmdArgs := Args{}
	command := &cobra.Command{
		Use:   "status",
		Short: "Print a locomotive's current commanded and real speed",
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, args []string) error {
			if err := app.Initialize(); err != nil {
				return err
			}
			return app.LokStatusAction(cmdArgs.Address)
		},
	}

	command.Flags().BoolVarP(&app.Debug, "debug", "v", false, "Increase verbosity to the debug level")
	command.Flags().Uint16VarP(&cmdArgs.Address, "address", "a", 0, "Locomotive address (required)")
	_ = command.MarkFlagRequired("address")

	return command
}

func newLokConfigCommand(app *app.P50XApp) *cobra.Command {
	type Args struct {
		Address uint16
	}

	cmdArgs := Args{}
	command := &cobra.Command{
		Use:   "config",
		Short: "Print a locomotive's decoder protocol and speed step count",
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, args []string) error {
			if err := app.Initialize(); err != nil {
				return err
			}
			return app.LokConfigAction(cmdArgs.Address)
		},
	}

	command.Flags().BoolVarP(&app.Debug, "debug", "v", false, "Increase verbosity to the debug level")
	command.Flags().Uint16VarP(&cmdArgs.Address, "address", "a", 0, "Locomotive address (required)")
	_ = command.MarkFlagRequired("address")

	return command
}

func newLokFnCommand(app *app.P50XApp, use string, extended bool) *cobra.Command {
	type Args struct {
		Address uint16
	}

	cmdArgs := Args{}
	command := &cobra.Command{
		Use:   use + " F1 F2 F3 F4 F5 F6 F7 F8",
		Short: "Set the active function set on a locomotive (8 0/1 values)",
		Args:  cobra.ExactArgs(8),
		RunE: func(command *cobra.Command, args []string) error {
			if err := app.Initialize(); err != nil {
				return err
			}

			var functions [8]bool
			for i, a := range args {
				functions[i] = a == "1"
			}

			return app.FuncAction(cmdArgs.Address, functions, extended)
		},
	}

	command.Flags().BoolVarP(&app.Debug, "debug", "v", false, "Increase verbosity to the debug level")
	command.Flags().Uint16VarP(&cmdArgs.Address, "address", "a", 0, "Locomotive address (required)")
	_ = command.MarkFlagRequired("address")

	return command
}

func newLokFnStatusCommand(app *app.P50XApp, use string, extended bool) *cobra.Command {
	type Args struct {
		Address uint16
	}

	cmdArgs := Args{}
	command := &cobra.Command{
		Use:   use,
		Short: "Print the active function set on a locomotive",
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, args []string) error {
			if err := app.Initialize(); err != nil {
				return err
			}
			return app.FuncStatusAction(cmdArgs.Address, extended)
		},
	}

	command.Flags().BoolVarP(&app.Debug, "debug", "v", false, "Increase verbosity to the debug level")
	command.Flags().Uint16VarP(&cmdArgs.Address, "address", "a", 0, "Locomotive address (required)")
	_ = command.MarkFlagRequired("address")

	return command
}
