package app

// SensorAction prints the sixteen-contact occupancy bitmap for one sensor
// module.
func (app *P50XApp) SensorAction(module byte) error {
	if err := app.initializeStation(); err != nil {
		return err
	}
	defer app.cleanup()

	reading, err := app.station.XSensor(module)
	app.record("xsensor", map[string]any{"module": module}, reading, err)
	if err != nil {
		return err
	}

	for i, occupied := range reading {
		app.P.Printf("contact %d: occupied=%t\n", i, occupied)
	}
	return nil
}

// SensorOffAction disables sensor polling on the central unit.
func (app *P50XApp) SensorOffAction() error {
	if err := app.initializeStation(); err != nil {
		return err
	}
	defer app.cleanup()

	err := app.station.XSensOff()
	app.record("xsens_off", nil, nil, err)
	if err != nil {
		return err
	}

	app.P.Printf("Ok\n")
	return nil
}

// S88ParamGetAction reads one S88 bus parameter.
func (app *P50XApp) S88ParamGetAction(parameter byte) error {
	if err := app.initializeStation(); err != nil {
		return err
	}
	defer app.cleanup()

	value, err := app.station.X88PGet(parameter)
	app.record("x88p_get", map[string]any{"parameter": parameter}, value, err)
	if err != nil {
		return err
	}

	app.P.Printf("%d\n", value)
	return nil
}

// S88ParamSetAction writes one S88 bus parameter.
func (app *P50XApp) S88ParamSetAction(parameter, value byte) error {
	if err := app.initializeStation(); err != nil {
		return err
	}
	defer app.cleanup()

	err := app.station.X88PSet(parameter, value)
	app.record("x88p_set", map[string]any{"parameter": parameter, "value": value}, nil, err)
	if err != nil {
		return err
	}

	app.P.Printf("Ok\n")
	return nil
}

// S88TimerAction reads (and optionally resets) an S88 timer channel.
func (app *P50XApp) S88TimerAction(timer byte, reset bool) error {
	if err := app.initializeStation(); err != nil {
		return err
	}
	defer app.cleanup()

	value, err := app.station.XS88Timer(timer, reset)
	app.record("xs88_timer", map[string]any{"timer": timer, "reset": reset}, value, err)
	if err != nil {
		return err
	}

	app.P.Printf("%d\n", value)
	return nil
}

// S88CountAction reads (and optionally resets) an S88 pulse counter channel.
func (app *P50XApp) S88CountAction(timer byte, reset bool) error {
	if err := app.initializeStation(); err != nil {
		return err
	}
	defer app.cleanup()

	value, err := app.station.XS88Count(timer, reset)
	app.record("xs88_count", map[string]any{"timer": timer, "reset": reset}, value, err)
	if err != nil {
		return err
	}

	app.P.Printf("%d\n", value)
	return nil
}
