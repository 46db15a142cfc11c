package app

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/keskad/p50x/pkgs/output"
	"github.com/keskad/p50x/pkgs/p50x"
	"github.com/keskad/p50x/pkgs/telemetry"
)

// interactiveCommands maps a typed line to a zero-argument station call.
// Only the commands that need no operand are registered here; anything
// parameterized (speed, turnout address, ...) belongs in the regular
// one-shot CLI commands instead.
func interactiveCommands() map[string]func(p50x.Station) error {
	return map[string]func(p50x.Station) error{
		"power on":    func(s p50x.Station) error { _, err := s.XPowerOn(); return err },
		"power off":   func(s p50x.Station) error { return s.XPowerOff() },
		"halt":        func(s p50x.Station) error { return s.XHalt() },
		"nop":         func(s p50x.Station) error { return s.XNop() },
		"turnout free": func(s p50x.Station) error { return s.XTurnoutFree() },
		"sensor off":  func(s p50x.Station) error { return s.XSensOff() },
	}
}

// InteractiveAction opens a single connection and repeatedly prompts for
// command lines until the user types "exit" or stdin closes.
func (app *P50XApp) InteractiveAction() error {
	if err := app.initializeStation(); err != nil {
		return err
	}
	defer app.cleanup()

	commands := interactiveCommands()
	scanner := bufio.NewScanner(os.Stdin)

	for {
		app.P.Printf("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "exit" {
			return nil
		}

		if input == "help" {
			keys := make([]string, 0, len(commands)+1)
			keys = append(keys, "history")
			for k := range commands {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				app.P.Printf("%s\n", k)
			}
			continue
		}

		if input == "history" {
			app.printHistory()
			continue
		}

		callback, ok := commands[input]
		if !ok {
			app.P.Printf("Unknown command: %s\n", input)
			continue
		}

		err := callback(app.station)
		app.record(fmt.Sprintf("interactive:%s", input), nil, nil, err)
		if err != nil {
			app.P.Printf("Error: %s\n", err)
			continue
		}

		app.P.Printf("Ok\n")
	}
}

// printHistory lists every command recorded in the telemetry log so far in
// this interactive session, newest last, with a humanized "how long ago" for
// each entry. It is a no-op, with a hint, when telemetry is not enabled.
func (app *P50XApp) printHistory() {
	if app.Config == nil || !app.Config.Telemetry.Enabled {
		app.P.Printf("history unavailable: telemetry is not enabled\n")
		return
	}

	records, err := telemetry.ReadAll(app.Config.Telemetry.Path)
	if err != nil {
		app.P.Printf("Error: %s\n", err)
		return
	}

	for _, rec := range records {
		if app.recorder != nil && rec.SessionID != app.recorder.SessionID() {
			continue
		}
		status := "ok"
		if rec.Err != "" {
			status = rec.Err
		}
		app.P.Printf("#%d %s (%s): %s\n", rec.Sequence, rec.Method, output.FormatSince(rec.Recorded), status)
	}
}
