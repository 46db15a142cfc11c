package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Serial describes how to reach the physical central unit.
type Serial struct {
	Port     string
	BaudRate int
	Timeout  int // milliseconds
	Encoding string
}

// Telemetry controls the optional local call-log recorder.
type Telemetry struct {
	Enabled bool
	Path    string
}

// Redis controls the optional locomotive/turnout state publisher.
type Redis struct {
	Enabled bool
	Address string
	Channel string
}

type Configuration struct {
	Serial    Serial
	Telemetry Telemetry
	Redis     Redis
}

// NewConfig reads .p50x.yaml from the home directory and the working
// directory, layering sane defaults for a fresh install.
func NewConfig() (*Configuration, error) {
	config := Configuration{}

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName(".p50x")
	v.AddConfigPath("$HOME/")
	v.AddConfigPath(".")
	_ = v.SafeWriteConfig()

	v.SetDefault("serial.port", "/dev/ttyUSB0")
	v.SetDefault("serial.baudrate", 19200)
	v.SetDefault("serial.timeout", 1000)
	v.SetDefault("serial.encoding", "hex")

	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.path", ".p50x-telemetry.cbor")

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.address", "127.0.0.1:6379")
	v.SetDefault("redis.channel", "p50x.state")

	if err := v.ReadInConfig(); err != nil {
		return &Configuration{}, fmt.Errorf("cannot parse config: %s", err.Error())
	}
	if err := v.Unmarshal(&config); err != nil {
		return &config, fmt.Errorf("cannot parse config: %s", err.Error())
	}

	return &config, nil
}
