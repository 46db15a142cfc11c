package app

import (
	"context"
	"fmt"
	"time"

	"github.com/keskad/p50x/pkgs/config"
	"github.com/keskad/p50x/pkgs/output"
	"github.com/keskad/p50x/pkgs/p50x"
	"github.com/keskad/p50x/pkgs/publish"
	"github.com/keskad/p50x/pkgs/telemetry"
	"github.com/sirupsen/logrus"
)

//
// Actions - a controller level
// prints are allowed only via Printer interface
//
// The controller level is intended to provide a layer of performing actions - everything needed to perform a single action e.g. switch a turnout
//

type P50XApp struct {
	Config  *config.Configuration
	station p50x.Station

	recorder  *telemetry.Recorder
	publisher *publish.Publisher

	// runtime parameters
	Debug bool
	P     output.Printer
}

// Initialize is running after parsing the arguments, so we know how to configure the app
func (app *P50XApp) Initialize() error {
	if app.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	logrus.Debug("Reading configuration files")
	cfg, cfgErr := config.NewConfig()
	app.Config = cfg
	if cfgErr != nil {
		return fmt.Errorf("cannot initialize app: %s", cfgErr)
	}
	return nil
}

// initializeStation opens the serial connection and wires the optional
// telemetry recorder and Redis publisher according to the loaded config.
func (app *P50XApp) initializeStation() error {
	logrus.Debug("Opening connection to central unit")

	encoding := p50x.HexText
	if app.Config.Serial.Encoding == "raw" {
		encoding = p50x.Raw
	}

	dev, err := p50x.Open(app.Config.Serial.Port, app.Config.Serial.BaudRate, encoding)
	if err != nil {
		return fmt.Errorf("cannot initialize app: %s", err)
	}
	if err := dev.SetTimeout(time.Duration(app.Config.Serial.Timeout) * time.Millisecond); err != nil {
		_ = dev.Close()
		return fmt.Errorf("cannot initialize app: %s", err)
	}
	app.station = dev

	if app.Config.Telemetry.Enabled {
		rec, recErr := telemetry.NewRecorder(app.Config.Telemetry.Path)
		if recErr != nil {
			_ = dev.Close()
			return fmt.Errorf("cannot initialize telemetry: %s", recErr)
		}
		app.recorder = rec
	}

	if app.Config.Redis.Enabled {
		app.publisher = publish.NewPublisher(app.Config.Redis.Address, app.Config.Redis.Channel)
	}

	return nil
}

func (app *P50XApp) cleanup() {
	if app.station != nil {
		if err := app.station.Close(); err != nil {
			logrus.Warnf("cannot close connection: %s", err)
		}
	}
	if app.recorder != nil {
		if err := app.recorder.Close(); err != nil {
			logrus.Warnf("cannot close telemetry log: %s", err)
		}
	}
	if app.publisher != nil {
		if err := app.publisher.Close(); err != nil {
			logrus.Warnf("cannot close redis publisher: %s", err)
		}
	}
}

// record appends a telemetry entry for one command, when telemetry is
// enabled. A nil recorder makes this a no-op so callers never need to check.
func (app *P50XApp) record(method string, request map[string]any, reply any, err error) {
	if app.recorder == nil {
		return
	}
	app.recorder.Record(method, request, reply, err)
}

// publishState broadcasts a state snapshot to Redis, when a publisher is
// configured. Publish failures are logged, not returned: telemetry and
// state broadcast are best-effort side channels and must never fail the
// underlying command.
func (app *P50XApp) publishState(state map[string]any) {
	if app.publisher == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := app.publisher.PublishState(ctx, state); err != nil {
		logrus.Warnf("cannot publish state: %s", err)
	}
}
