package config

import (
	"os"
	"time"

	"codeberg.org/mutker/envlogd/internal/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultLogLevel = "info"

	defaultIntervalMS  = 3000
	defaultHeartbeatMS = 100
	defaultLogPath     = "/mnt/storage/envlog.csv"
	defaultBME280Addr  = 0x76
	defaultBMP280Addr  = 0x77
)

// Config holds the daemon configuration. Values come from the TOML config
// file, overridden by command line flags.
type Config struct {
	IntervalMS  int    `mapstructure:"interval_ms"`
	HeartbeatMS int    `mapstructure:"heartbeat_ms"`
	LogPath     string `mapstructure:"log_path"`
	LogLevel    string `mapstructure:"log_level"`

	// Hardware bindings
	I2CBus       string `mapstructure:"i2c_bus"`
	BME280Addr   uint16 `mapstructure:"bme280_addr"`
	BMP280Addr   uint16 `mapstructure:"bmp280_addr"`
	LightChannel int    `mapstructure:"light_channel"`
	HeartbeatPin string `mapstructure:"heartbeat_pin"`
	MockSensors  bool   `mapstructure:"mock_sensors"`

	// Optional cycle journal
	Telemetry   bool   `mapstructure:"telemetry"`
	TelemetryDB string `mapstructure:"telemetry_db"`
}

// Interval returns the cycle period as a duration
func (c *Config) Interval() time.Duration {
	return time.Duration(c.IntervalMS) * time.Millisecond
}

// HeartbeatWidth returns the heartbeat pulse width as a duration
func (c *Config) HeartbeatWidth() time.Duration {
	return time.Duration(c.HeartbeatMS) * time.Millisecond
}

func Load() (*Config, error) {
	errFactory := errors.New()
	v := viper.New()

	setDefaults(v)

	flags := pflag.NewFlagSet("envlogd", pflag.ContinueOnError)
	flags.ParseErrorsWhitelist.UnknownFlags = true
	flags.Int("interval-ms", defaultIntervalMS, "Cycle period in milliseconds")
	flags.Int("heartbeat-ms", defaultHeartbeatMS, "Heartbeat pulse width in milliseconds")
	flags.String("log-path", defaultLogPath, "Path of the append-only log store")
	flags.String("log-level", DefaultLogLevel, "Log level (debug, info, warning, error)")
	flags.Bool("mock-sensors", false, "Use simulated sensor sources")
	flags.Bool("telemetry", false, "Enable the sqlite cycle journal")
	if err := flags.Parse(os.Args[1:]); err != nil {
		return nil, errFactory.Wrap(errors.ErrBindFlags, err)
	}
	bindFlags(v, flags)

	// Load configuration from file. An explicit path via ENVLOGD_CONFIG wins
	// over the /etc lookup; a missing file is not an error.
	if path := os.Getenv("ENVLOGD_CONFIG"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("envlogd")
		v.SetConfigType("toml")
		v.AddConfigPath("/etc")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, errFactory.WithMessage(errors.ErrReadConfig, "Failed to read config file").WithData(err.Error())
		}
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, errFactory.Wrap(errors.ErrReadConfig, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("interval_ms", defaultIntervalMS)
	v.SetDefault("heartbeat_ms", defaultHeartbeatMS)
	v.SetDefault("log_path", defaultLogPath)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("i2c_bus", "")
	v.SetDefault("bme280_addr", defaultBME280Addr)
	v.SetDefault("bmp280_addr", defaultBMP280Addr)
	v.SetDefault("light_channel", 0)
	v.SetDefault("heartbeat_pin", "")
	v.SetDefault("mock_sensors", false)
	v.SetDefault("telemetry", false)
	v.SetDefault("telemetry_db", "/var/lib/envlogd/telemetry.db")
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	bindings := map[string]string{
		"interval_ms":  "interval-ms",
		"heartbeat_ms": "heartbeat-ms",
		"log_path":     "log-path",
		"log_level":    "log-level",
		"mock_sensors": "mock-sensors",
		"telemetry":    "telemetry",
	}

	for key, name := range bindings {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if flag.Changed {
			v.Set(key, flag.Value.String())
		}
	}
}

// Validate checks the configuration for values the daemon cannot run with
func (c *Config) Validate() error {
	errFactory := errors.New()

	if c.IntervalMS <= 0 {
		return errFactory.WithData(errors.ErrInvalidInterval, c.IntervalMS)
	}
	if c.HeartbeatMS < 0 || c.HeartbeatMS >= c.IntervalMS {
		return errFactory.WithData(errors.ErrInvalidHeartbeat, c.HeartbeatMS)
	}
	if c.LogPath == "" {
		return errFactory.New(errors.ErrInvalidLogPath)
	}

	switch c.LogLevel {
	case "debug", "info", "warning", "warn", "error":
	default:
		return errFactory.WithData(errors.ErrInvalidLogLevel, c.LogLevel)
	}

	return nil
}
