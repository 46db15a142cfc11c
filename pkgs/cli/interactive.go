package cli

import (
	"github.com/keskad/p50x/pkgs/app"
	"github.com/spf13/cobra"
)

func NewInteractiveCommand(app *app.P50XApp) *cobra.Command {
	command := &cobra.Command{
		Use:   "interactive",
		Short: "Open one connection and send multiple commands interactively",
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, args []string) error {
			if err := app.Initialize(); err != nil {
				return err
			}
			return app.InteractiveAction()
		},
	}

	command.Flags().BoolVarP(&app.Debug, "debug", "v", false, "Increase verbosity to the debug level")
	return command
}
