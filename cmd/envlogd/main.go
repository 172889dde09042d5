package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"codeberg.org/mutker/envlogd/internal/config"
	"codeberg.org/mutker/envlogd/internal/cycle"
	"codeberg.org/mutker/envlogd/internal/errors"
	"codeberg.org/mutker/envlogd/internal/heartbeat"
	"codeberg.org/mutker/envlogd/internal/logger"
	"codeberg.org/mutker/envlogd/internal/sensor"
	"codeberg.org/mutker/envlogd/internal/store"
	"codeberg.org/mutker/envlogd/internal/telemetry"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

var cfg *config.Config

func init() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.LogLevel, logger.IsService())
	logger.Debug().Msg("Config loaded")
}

func main() {
	errFactory := errors.New()

	// Fatal initialization faults: if the sensors or the store medium cannot
	// be brought up, the daemon halts before the first cycle and stays halted
	// until restarted.
	tempHum, pressure, light, closeSensors, err := initSensors()
	if err != nil {
		logger.FatalWithCode(errFactory.Wrap(errors.ErrInitSensors, err)).Msg("Halting: sensors unavailable")
	}
	defer closeSensors()

	appender := store.NewFileAppender(cfg.LogPath)
	if err := appender.Init(); err != nil {
		logger.FatalWithCode(errFactory.Wrap(errors.ErrInitStore, err)).Msg("Halting: log store medium unavailable")
	}
	logger.Info().Str("path", appender.Path()).Msg("Log store ready")

	hb := initHeartbeat()

	journal, err := telemetry.NewService(telemetry.Config{
		DBPath:  cfg.TelemetryDB,
		Enabled: cfg.Telemetry,
	})
	if err != nil {
		// The journal is advisory; run without it rather than halt
		logger.Warn().Err(err).Msg("Cycle journal unavailable, continuing without it")
		journal = telemetry.NewNoop()
	}
	defer journal.Close()

	engine := cycle.New(tempHum, pressure, light, appender, hb, journal, cfg.Interval())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go handleSignals(cancel)

	logger.Info().
		Int("interval_ms", cfg.IntervalMS).
		Int("heartbeat_ms", cfg.HeartbeatMS).
		Msg("Starting acquisition loop")

	if err := engine.Run(ctx); err != nil {
		logger.ErrorWithCode(errFactory.Wrap(errors.ErrMainLoop, err)).Send()
	}
	logger.Info().Msg("Exiting...")
}

func initSensors() (sensor.TempHumiditySource, sensor.PressureSource, sensor.LightSource, func(), error) {
	if cfg.MockSensors {
		logger.Info().Msg("Using simulated sensor sources")
		sim := sensor.NewSimEnvironment(time.Now().UnixNano())

		return sim, sim, sim, func() {}, nil
	}

	if _, err := host.Init(); err != nil {
		return nil, nil, nil, nil, err
	}

	bus, err := i2creg.Open(cfg.I2CBus)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	tempHum, err := sensor.NewBME280(bus, cfg.BME280Addr)
	if err != nil {
		bus.Close()
		return nil, nil, nil, nil, err
	}
	logger.Info().Msgf("Temperature/humidity source ready at 0x%02X", cfg.BME280Addr)

	pressure, err := sensor.NewBMP280(bus, cfg.BMP280Addr)
	if err != nil {
		tempHum.Halt()
		bus.Close()
		return nil, nil, nil, nil, err
	}
	logger.Info().Msgf("Pressure source ready at 0x%02X", cfg.BMP280Addr)

	light, err := sensor.NewADS1015Light(bus, cfg.LightChannel)
	if err != nil {
		pressure.Halt()
		tempHum.Halt()
		bus.Close()
		return nil, nil, nil, nil, err
	}
	logger.Info().Msgf("Light source ready on ADC channel %d", cfg.LightChannel)

	closer := func() {
		light.Halt()
		pressure.Halt()
		tempHum.Halt()
		bus.Close()
	}

	return tempHum, pressure, light, closer, nil
}

func initHeartbeat() heartbeat.Signal {
	if cfg.HeartbeatPin == "" || cfg.MockSensors {
		logger.Debug().Msg("No heartbeat pin configured")
		return heartbeat.Noop{}
	}

	pin, err := heartbeat.NewPin(cfg.HeartbeatPin, cfg.HeartbeatWidth())
	if err != nil {
		// Heartbeat is observational only; a missing pin never blocks logging
		logger.Warn().Err(err).Msg("Heartbeat pin unavailable, pulses disabled")
		return heartbeat.Noop{}
	}
	logger.Info().Str("pin", cfg.HeartbeatPin).Msg("Heartbeat pin ready")

	return pin
}

func handleSignals(cancel context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	logger.Info().Msg("Received termination signal.")
	cancel()
}
