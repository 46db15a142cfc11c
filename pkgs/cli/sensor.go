package cli

import (
	"github.com/keskad/p50x/pkgs/app"
	"github.com/spf13/cobra"
)

func NewSensorCommand(app *app.P50XApp) *cobra.Command {
	command := &cobra.Command{
		Use:   "sensor",
		Short: "Read S88 sensor contacts and bus parameters",
		RunE: func(command *cobra.Command, args []string) error {
			return command.Help()
		},
	}

	command.AddCommand(newSensorReadCommand(app))
	command.AddCommand(newSensorOffCommand(app))
	command.AddCommand(newS88ParamCommand(app))
	command.AddCommand(newS88TimerCommand(app))
	command.AddCommand(newS88CountCommand(app))

	return command
}

func newSensorReadCommand(app *app.P50XApp) *cobra.Command {
	type Args struct {
		Module uint8
	}

	cmdArgs := Args{}
	command := &cobra.Command{
		Use:   "read",
		Short: "Print the sixteen-contact occupancy bitmap for one sensor module",
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, args []string) error {
			if err := app.Initialize(); err != nil {
				return err
			}
			return app.SensorAction(cmdArgs.Module)
		},
	}

	command.Flags().BoolVarP(&app.Debug, "debug", "v", false, "Increase verbosity to the debug level")
	command.Flags().Uint8VarP(&cmdArgs.Module, "module", "m", 0, "Sensor module address")

	return command
}

func newSensorOffCommand(app *app.P50XApp) *cobra.Command {
	command := &cobra.Command{
		Use:   "off",
		Short: "Disable sensor polling on the central unit",
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, args []string) error {
			if err := app.Initialize(); err != nil {
				return err
			}
			return app.SensorOffAction()
		},
	}
	command.Flags().BoolVarP(&app.Debug, "debug", "v", false, "Increase verbosity to the debug level")
	return command
}

func newS88ParamCommand(app *app.P50XApp) *cobra.Command {
	type Args struct {
		Parameter uint8
		Value     uint8
		Write     bool
	}

	cmdArgs := Args{}
	command := &cobra.Command{
		Use:   "param",
		Short: "Read or write an S88 bus parameter",
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, args []string) error {
			if err := app.Initialize(); err != nil {
				return err
			}
			if cmdArgs.Write {
				return app.S88ParamSetAction(cmdArgs.Parameter, cmdArgs.Value)
			}
			return app.S88ParamGetAction(cmdArgs.Parameter)
		},
	}

	command.Flags().BoolVarP(&app.Debug, "debug", "v", false, "Increase verbosity to the debug level")
	command.Flags().Uint8VarP(&cmdArgs.Parameter, "parameter", "p", 0, "Parameter index")
	command.Flags().Uint8VarP(&cmdArgs.Value, "value", "", 0, "Value to write")
	command.Flags().BoolVarP(&cmdArgs.Write, "write", "w", false, "Write --value instead of reading")

	return command
}

func newS88TimerCommand(app *app.P50XApp) *cobra.Command {
	type Args struct {
		Timer uint8
		Reset bool
	}

	cmdArgs := Args{}
	command := &cobra.Command{
		Use:   "timer",
		Short: "Read (and optionally reset) an S88 timer channel",
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, args []string) error {
			if err := app.Initialize(); err != nil {
				return err
			}
			return app.S88TimerAction(cmdArgs.Timer, cmdArgs.Reset)
		},
	}

	command.Flags().BoolVarP(&app.Debug, "debug", "v", false, "Increase verbosity to the debug level")
	command.Flags().Uint8VarP(&cmdArgs.Timer, "timer", "t", 0, "Timer channel index")
	command.Flags().BoolVarP(&cmdArgs.Reset, "reset", "r", false, "Reset the channel after reading")

	return command
}

func newS88CountCommand(app *app.P50XApp) *cobra.Command {
	type Args struct {
		Timer uint8
		Reset bool
	}

	cmdArgs := Args{}
	command := &cobra.Command{
		Use:   "count",
		Short: "Read (and optionally reset) an S88 pulse counter channel",
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, args []string) error {
			if err := app.Initialize(); err != nil {
				return err
			}
			return app.S88CountAction(cmdArgs.Timer, cmdArgs.Reset)
		},
	}

	command.Flags().BoolVarP(&app.Debug, "debug", "v", false, "Increase verbosity to the debug level")
	command.Flags().Uint8VarP(&cmdArgs.Timer, "timer", "t", 0, "Timer channel index")
	command.Flags().BoolVarP(&cmdArgs.Reset, "reset", "r", false, "Reset the channel after reading")

	return command
}
