package app

import "github.com/keskad/p50x/pkgs/output"

// VersionAction prints the central unit's firmware version blob.
func (app *P50XApp) VersionAction() error {
	if err := app.initializeStation(); err != nil {
		return err
	}
	defer app.cleanup()

	data, err := app.station.XVersion()
	app.record("xversion", nil, data, err)
	if err != nil {
		return err
	}

	app.P.Printf("% X (%s)\n", data, output.FormatBytes(data))
	return nil
}

// ReassignExtendedCharAction changes the extended-command prefix byte used
// for every subsequent command on this connection.
func (app *P50XApp) ReassignExtendedCharAction(extended byte) error {
	if err := app.initializeStation(); err != nil {
		return err
	}
	defer app.cleanup()

	err := app.station.XP50XCh(extended)
	app.record("xp50xch", map[string]any{"extended": extended}, nil, err)
	if err != nil {
		return err
	}

	app.P.Printf("Ok\n")
	return nil
}

// NopAction issues a no-op round trip, useful as a liveness check.
func (app *P50XApp) NopAction() error {
	if err := app.initializeStation(); err != nil {
		return err
	}
	defer app.cleanup()

	err := app.station.XNop()
	app.record("xnop", nil, nil, err)
	if err != nil {
		return err
	}

	app.P.Printf("Ok\n")
	return nil
}
