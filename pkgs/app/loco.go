package app

import "github.com/keskad/p50x/pkgs/p50x"

// LokSetAction sends a speed, direction and function command to a
// locomotive address.
func (app *P50XApp) LokSetAction(address uint16, speed int8, opts p50x.LokOptions) error {
	if err := app.initializeStation(); err != nil {
		return err
	}
	defer app.cleanup()

	err := app.station.XLok(address, speed, opts)
	app.record("xlok", map[string]any{"address": address, "speed": speed}, nil, err)
	if err != nil {
		return err
	}

	app.publishState(map[string]any{"loco": address, "speed": speed, "emergency_stop": opts.EmergencyStop})
	app.P.Printf("Ok\n")
	return nil
}

// LokDispatchAction requests control of a locomotive address and prints the
// physical slot assigned, when the central unit reports one.
func (app *P50XApp) LokDispatchAction(address uint16) error {
	if err := app.initializeStation(); err != nil {
		return err
	}
	defer app.cleanup()

	slot, err := app.station.XLokDispatch(address)
	app.record("xlok_dispatch", map[string]any{"address": address}, slot, err)
	if err != nil {
		return err
	}

	if slot == nil {
		app.P.Printf("Ok\n")
		return nil
	}

	app.P.Printf("slot=%d\n", *slot)
	return nil
}

// LokStatusAction prints a locomotive's current commanded and real speed.
func (app *P50XApp) LokStatusAction(address uint16) error {
	if err := app.initializeStation(); err != nil {
		return err
	}
	defer app.cleanup()

	status, err := app.station.XLokStatus(address)
	app.record("xlok_status", map[string]any{"address": address}, status, err)
	if err != nil {
		return err
	}

	app.P.Printf("speed=%d real_speed=%d light=%t emergency_stop=%t\n",
		status.Speed, status.RealSpeed, status.Options.Light, status.Options.EmergencyStop)
	return nil
}

// LokConfigAction prints a locomotive's decoder protocol, speed step count
// and virtual address, when assigned one.
func (app *P50XApp) LokConfigAction(address uint16) error {
	if err := app.initializeStation(); err != nil {
		return err
	}
	defer app.cleanup()

	cfg, err := app.station.XLokConfig(address)
	app.record("xlok_config", map[string]any{"address": address}, cfg, err)
	if err != nil {
		return err
	}

	if cfg.VirtualAddress == nil {
		app.P.Printf("protocol=%s speed_steps=%d virtual_address=none\n", cfg.Protocol, cfg.SpeedSteps)
	} else {
		app.P.Printf("protocol=%s speed_steps=%d virtual_address=%d\n", cfg.Protocol, cfg.SpeedSteps, *cfg.VirtualAddress)
	}
	return nil
}

// FuncAction sends F1..F8 (or F9..F16 when extended is set) to a locomotive.
func (app *P50XApp) FuncAction(address uint16, functions [8]bool, extended bool) error {
	if err := app.initializeStation(); err != nil {
		return err
	}
	defer app.cleanup()

	var err error
	method := "xfunc"
	if extended {
		method = "xfuncx"
		err = app.station.XFuncX(address, functions)
	} else {
		err = app.station.XFunc(address, functions)
	}
	app.record(method, map[string]any{"address": address, "functions": functions}, nil, err)
	if err != nil {
		return err
	}

	app.P.Printf("Ok\n")
	return nil
}

// FuncStatusAction prints the active F1..F8 (or F9..F16) set for a
// locomotive.
func (app *P50XApp) FuncStatusAction(address uint16, extended bool) error {
	if err := app.initializeStation(); err != nil {
		return err
	}
	defer app.cleanup()

	var functions [8]bool
	var err error
	method := "xfunc_status"
	if extended {
		method = "xfuncx_status"
		functions, err = app.station.XFuncXStatus(address)
	} else {
		functions, err = app.station.XFuncStatus(address)
	}
	app.record(method, map[string]any{"address": address}, functions, err)
	if err != nil {
		return err
	}

	offset := 1
	if extended {
		offset = 9
	}
	for i, on := range functions {
		app.P.Printf("F%d=%t\n", offset+i, on)
	}
	return nil
}
