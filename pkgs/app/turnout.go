package app

import "github.com/keskad/p50x/pkgs/p50x"

// TurnoutSetAction commands one turnout to a state.
func (app *P50XApp) TurnoutSetAction(address uint16, state bool, opts p50x.TurnoutOptions) error {
	if err := app.initializeStation(); err != nil {
		return err
	}
	defer app.cleanup()

	err := app.station.XTurnout(address, state, opts)
	app.record("xturnout", map[string]any{"address": address, "state": state}, nil, err)
	if err != nil {
		return err
	}

	app.publishState(map[string]any{"turnout": address, "state": state})
	app.P.Printf("Ok\n")
	return nil
}

// TurnoutFreeAction releases every turnout reservation held by this
// connection.
func (app *P50XApp) TurnoutFreeAction() error {
	if err := app.initializeStation(); err != nil {
		return err
	}
	defer app.cleanup()

	err := app.station.XTurnoutFree()
	app.record("xturnout_free", nil, nil, err)
	if err != nil {
		return err
	}

	app.P.Printf("Ok\n")
	return nil
}

// TurnoutStatusAction prints one turnout's protocol, reservation and state.
func (app *P50XApp) TurnoutStatusAction(address uint16) error {
	if err := app.initializeStation(); err != nil {
		return err
	}
	defer app.cleanup()

	status, err := app.station.XTurnoutStatus(address)
	app.record("xturnout_status", map[string]any{"address": address}, status, err)
	if err != nil {
		return err
	}

	app.P.Printf("protocol=%s reserved=%t state=%t\n", status.Protocol, status.Reserved, status.State)
	return nil
}

// TurnoutGroupAction prints the state and reservation of all eight turnouts
// in a group.
func (app *P50XApp) TurnoutGroupAction(groupAddress byte) error {
	if err := app.initializeStation(); err != nil {
		return err
	}
	defer app.cleanup()

	group, err := app.station.XTurnoutGroup(groupAddress)
	app.record("xturnout_group", map[string]any{"group_address": groupAddress}, group, err)
	if err != nil {
		return err
	}

	for i, entry := range group {
		app.P.Printf("turnout %d: state=%t reserved=%t\n", i, entry.State, entry.Reserved)
	}
	return nil
}
