package cli

import (
	"github.com/keskad/p50x/pkgs/app"
	"github.com/spf13/cobra"
)

func NewPowerCommand(app *app.P50XApp) *cobra.Command {
	command := &cobra.Command{
		Use:   "power",
		Short: "Energize or de-energize the track",
		RunE: func(command *cobra.Command, args []string) error {
			return command.Help()
		},
	}

	command.AddCommand(newPowerOnCommand(app))
	command.AddCommand(newPowerOffCommand(app))

	return command
}

// NewHaltCommand stops all locomotives without cutting track power.
func NewHaltCommand(app *app.P50XApp) *cobra.Command {
	return newHaltCommand(app)
}

// NewStatusCommand prints the central unit's status flags.
func NewStatusCommand(app *app.P50XApp) *cobra.Command {
	return newStatusCommand(app)
}

func newPowerOnCommand(app *app.P50XApp) *cobra.Command {
	command := &cobra.Command{
		Use:   "on",
		Short: "Energize the track",
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, args []string) error {
			if err := app.Initialize(); err != nil {
				return err
			}
			return app.PowerOnAction()
		},
	}
	command.Flags().BoolVarP(&app.Debug, "debug", "v", false, "Increase verbosity to the debug level")
	return command
}

func newPowerOffCommand(app *app.P50XApp) *cobra.Command {
	command := &cobra.Command{
		Use:   "off",
		Short: "De-energize the track",
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, args []string) error {
			if err := app.Initialize(); err != nil {
				return err
			}
			return app.PowerOffAction()
		},
	}
	command.Flags().BoolVarP(&app.Debug, "debug", "v", false, "Increase verbosity to the debug level")
	return command
}

func newHaltCommand(app *app.P50XApp) *cobra.Command {
	command := &cobra.Command{
		Use:   "halt",
		Short: "Stop all locomotives without cutting track power",
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, args []string) error {
			if err := app.Initialize(); err != nil {
				return err
			}
			return app.HaltAction()
		},
	}
	command.Flags().BoolVarP(&app.Debug, "debug", "v", false, "Increase verbosity to the debug level")
	return command
}

func newStatusCommand(app *app.P50XApp) *cobra.Command {
	command := &cobra.Command{
		Use:   "status",
		Short: "Print the central unit's status flags",
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, args []string) error {
			if err := app.Initialize(); err != nil {
				return err
			}
			return app.StatusAction()
		},
	}
	command.Flags().BoolVarP(&app.Debug, "debug", "v", false, "Increase verbosity to the debug level")
	return command
}
