package app

// SOGetAction reads and prints one special option value.
func (app *P50XApp) SOGetAction(option uint16) error {
	if err := app.initializeStation(); err != nil {
		return err
	}
	defer app.cleanup()

	value, err := app.station.XSOGet(option)
	app.record("xso_get", map[string]any{"option": option}, value, err)
	if err != nil {
		return err
	}

	if value == nil {
		app.P.Printf("absent\n")
		return nil
	}
	app.P.Printf("%d\n", *value)
	return nil
}

// SOSetAction writes one special option value.
func (app *P50XApp) SOSetAction(option uint16, value byte) error {
	if err := app.initializeStation(); err != nil {
		return err
	}
	defer app.cleanup()

	err := app.station.XSOSet(option, value)
	app.record("xso_set", map[string]any{"option": option, "value": value}, nil, err)
	if err != nil {
		return err
	}

	app.P.Printf("Ok\n")
	return nil
}
