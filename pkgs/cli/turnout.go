package cli

import (
	"fmt"
	"strconv"

	"github.com/keskad/p50x/pkgs/app"
	"github.com/keskad/p50x/pkgs/p50x"
	"github.com/spf13/cobra"
)

func NewTurnoutCommand(app *app.P50XApp) *cobra.Command {
	command := &cobra.Command{
		Use:   "turnout",
		Short: "Control and query turnouts",
		RunE: func(command *cobra.Command, args []string) error {
			return command.Help()
		},
	}

	command.AddCommand(newTurnoutSetCommand(app))
	command.AddCommand(newTurnoutFreeCommand(app))
	command.AddCommand(newTurnoutStatusCommand(app))
	command.AddCommand(newTurnoutGroupCommand(app))

	return command
}

func newTurnoutSetCommand(app *app.P50XApp) *cobra.Command {
	type Args struct {
		Address   uint16
		Reserve   bool
		NoCommand bool
	}

	cmdArgs := Args{}
	command := &cobra.Command{
		Use:   "set STATE",
		Short: "Command a turnout to 'straight' or 'diverging' (0 or 1)",
		Args:  cobra.ExactArgs(1),
		RunE: func(command *cobra.Command, args []string) error {
			if err := app.Initialize(); err != nil {
				return err
			}

			state, err := strconv.ParseBool(args[0])
			if err != nil {
				return fmt.Errorf("invalid state %q, expected a boolean: %w", args[0], err)
			}

			opts := p50x.DefaultTurnoutOptions()
			opts.Reserve = cmdArgs.Reserve
			opts.NoCommand = cmdArgs.NoCommand

			return app.TurnoutSetAction(cmdArgs.Address, state, opts)
		},
	}

	command.Flags().BoolVarP(&app.Debug, "debug", "v", false, "Increase verbosity to the debug level")
	command.Flags().Uint16VarP(&cmdArgs.Address, "address", "a", 0, "Turnout address (required)")
	command.Flags().BoolVarP(&cmdArgs.Reserve, "reserve", "r", false, "Exclusively reserve the turnout for this connection")
	command.Flags().BoolVarP(&cmdArgs.NoCommand, "no-command", "n", false, "Update internal state without issuing a track command")
	_ = command.MarkFlagRequired("address")

	return command
}

func newTurnoutFreeCommand(app *app.P50XApp) *cobra.Command {
	command := &cobra.Command{
		Use:   "free",
		Short: "Release every turnout reservation held by this connection",
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, args []string) error {
			if err := app.Initialize(); err != nil {
				return err
			}
			return app.TurnoutFreeAction()
		},
	}
	command.Flags().BoolVarP(&app.Debug, "debug", "v", false, "Increase verbosity to the debug level")
	return command
}

func newTurnoutStatusCommand(app *app.P50XApp) *cobra.Command {
	type Args struct {
		Address uint16
	}

	cmdArgs := Args{}
	command := &cobra.Command{
		Use:   "status",
		Short: "Print one turnout's protocol, reservation and state",
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, args []string) error {
			if err := app.Initialize(); err != nil {
				return err
			}
			return app.TurnoutStatusAction(cmdArgs.Address)
		},
	}

	command.Flags().BoolVarP(&app.Debug, "debug", "v", false, "Increase verbosity to the debug level")
	command.Flags().Uint16VarP(&cmdArgs.Address, "address", "a", 0, "Turnout address (required)")
	_ = command.MarkFlagRequired("address")

	return command
}

func newTurnoutGroupCommand(app *app.P50XApp) *cobra.Command {
	type Args struct {
		GroupAddress uint8
	}

	cmdArgs := Args{}
	command := &cobra.Command{
		Use:   "group",
		Short: "Print the state and reservation of all eight turnouts in a group",
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, args []string) error {
			if err := app.Initialize(); err != nil {
				return err
			}
			return app.TurnoutGroupAction(cmdArgs.GroupAddress)
		},
	}

	command.Flags().BoolVarP(&app.Debug, "debug", "v", false, "Increase verbosity to the debug level")
	command.Flags().Uint8VarP(&cmdArgs.GroupAddress, "group", "g", 0, "Turnout group address")

	return command
}
