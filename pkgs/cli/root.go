package cli

import (
	"errors"

	"github.com/keskad/p50x/pkgs/app"
	"github.com/spf13/cobra"
)

func NewRootCommand(app *app.P50XApp) *cobra.Command {
	command := &cobra.Command{
		Use:   "p50x",
		Short: "Command line client for P50X-compatible model railway central units",
		RunE: func(command *cobra.Command, args []string) error {
			return errors.New("please select a command")
		},
	}

	command.AddCommand(NewPowerCommand(app))
	command.AddCommand(NewHaltCommand(app))
	command.AddCommand(NewStatusCommand(app))
	command.AddCommand(NewDeviceCommand(app))
	command.AddCommand(NewSOCommand(app))
	command.AddCommand(NewLokCommand(app))
	command.AddCommand(NewTurnoutCommand(app))
	command.AddCommand(NewSensorCommand(app))
	command.AddCommand(NewInteractiveCommand(app))

	return command
}
