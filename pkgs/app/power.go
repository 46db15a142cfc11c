package app

// PowerOnAction energizes the track.
func (app *P50XApp) PowerOnAction() error {
	if err := app.initializeStation(); err != nil {
		return err
	}
	defer app.cleanup()

	energized, err := app.station.XPowerOn()
	app.record("xpower_on", nil, energized, err)
	if err != nil {
		return err
	}

	app.publishState(map[string]any{"power": energized})
	if !energized {
		app.P.Printf("PowerOff\n")
		return nil
	}
	app.P.Printf("Ok\n")
	return nil
}

// PowerOffAction de-energizes the track.
func (app *P50XApp) PowerOffAction() error {
	if err := app.initializeStation(); err != nil {
		return err
	}
	defer app.cleanup()

	err := app.station.XPowerOff()
	app.record("xpower_off", nil, nil, err)
	if err != nil {
		return err
	}

	app.publishState(map[string]any{"power": false})
	app.P.Printf("Ok\n")
	return nil
}

// HaltAction stops all locomotives without cutting track power.
func (app *P50XApp) HaltAction() error {
	if err := app.initializeStation(); err != nil {
		return err
	}
	defer app.cleanup()

	err := app.station.XHalt()
	app.record("xhalt", nil, nil, err)
	if err != nil {
		return err
	}

	app.publishState(map[string]any{"halt": true})
	app.P.Printf("Ok\n")
	return nil
}

// StatusAction prints the central unit's status flags.
func (app *P50XApp) StatusAction() error {
	if err := app.initializeStation(); err != nil {
		return err
	}
	defer app.cleanup()

	status, err := app.station.XStatus()
	app.record("xstatus", nil, status, err)
	if err != nil {
		return err
	}

	app.P.Printf(
		"stop_pressed=%t go_pressed=%t hot=%t power=%t halt=%t external_central_unit=%t voltage_regulation=%t\n",
		status.StopPressed, status.GoPressed, status.Hot, status.Power, status.Halt,
		status.ExternalCentralUnit, status.VoltageRegulation,
	)
	return nil
}
