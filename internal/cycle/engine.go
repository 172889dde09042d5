// Package cycle implements the acquisition loop: once per period it reads
// every sensor exactly once, validates the sample, appends the formatted
// record durably and pulses the heartbeat. A cycle either logs a complete
// record or logs nothing; there is no partial write.
package cycle

import (
	"context"
	"time"

	"codeberg.org/mutker/envlogd/internal/errors"
	"codeberg.org/mutker/envlogd/internal/heartbeat"
	"codeberg.org/mutker/envlogd/internal/logger"
	"codeberg.org/mutker/envlogd/internal/sensor"
	"codeberg.org/mutker/envlogd/internal/store"
	"codeberg.org/mutker/envlogd/internal/telemetry"
	"github.com/benbjohnson/clock"
)

const pascalsPerHectopascal = 100.0

type Engine struct {
	tempHum  sensor.TempHumiditySource
	pressure sensor.PressureSource
	light    sensor.LightSource
	appender store.Appender
	signal   heartbeat.Signal
	journal  telemetry.Collector
	clk      clock.Clock
	period   time.Duration
	started  time.Time
}

// Option configures an Engine
type Option func(*Engine)

// WithClock substitutes the wall clock, used by tests
func WithClock(clk clock.Clock) Option {
	return func(e *Engine) {
		e.clk = clk
	}
}

func New(
	tempHum sensor.TempHumiditySource,
	pressure sensor.PressureSource,
	light sensor.LightSource,
	appender store.Appender,
	signal heartbeat.Signal,
	journal telemetry.Collector,
	period time.Duration,
	opts ...Option,
) *Engine {
	e := &Engine{
		tempHum:  tempHum,
		pressure: pressure,
		light:    light,
		appender: appender,
		signal:   signal,
		journal:  journal,
		clk:      clock.New(),
		period:   period,
	}

	for _, opt := range opts {
		opt(e)
	}

	e.started = e.clk.Now()

	return e
}

// Run loops until the context is canceled. Cancellation is observed between
// cycles and during the inter-cycle wait, never mid-cycle, so a cycle in
// flight always completes its append.
func (e *Engine) Run(ctx context.Context) error {
	if e.period <= 0 {
		return errors.New().WithData(errors.ErrInvalidInterval, e.period)
	}

	for {
		cycleStart := e.clk.Now()
		e.RunCycle(ctx)

		// The heartbeat pulse and all per-cycle work are carved out of the
		// delay: cycle starts stay exactly one period apart.
		remaining := e.period - e.clk.Since(cycleStart)
		if remaining < 0 {
			remaining = 0
		}

		select {
		case <-ctx.Done():
			return nil
		case <-e.clk.After(remaining):
		}
	}
}

// RunCycle executes one acquire, validate, format, append, signal pass and
// reports how it ended. Failures are per-cycle outcomes; the next period
// retries from scratch.
func (e *Engine) RunCycle(ctx context.Context) telemetry.Outcome {
	sample := e.acquire()

	verdict := sensor.Validate(sample)
	if !verdict.OK {
		logger.Warn().
			Str("reason", string(verdict.Reason)).
			Uint32("timestamp_ms", sample.Timestamp).
			Msg("Sample rejected, skipping cycle")
		e.journalCycle(ctx, sample, telemetry.OutcomeInvalid, string(verdict.Reason))

		return telemetry.OutcomeInvalid
	}

	record := store.Record{
		Timestamp:   sample.Timestamp,
		Temperature: sample.Temperature.Value,
		Humidity:    sample.Humidity.Value,
		Pressure:    sample.Pressure.Value,
		Light:       sample.Light,
	}

	if err := e.appender.Append(store.FormatRecord(record)); err != nil {
		logger.Warn().Err(err).Msg("Append failed, store may be absent or full")
		e.journalCycle(ctx, sample, telemetry.OutcomeWriteFailed, err.Error())

		return telemetry.OutcomeWriteFailed
	}

	if err := e.signal.Pulse(); err != nil {
		// The record is already durable; a broken pin only costs observability
		logger.Warn().Err(err).Msg("Heartbeat pulse failed")
	}

	logger.Info().
		Uint32("timestamp_ms", record.Timestamp).
		Float64("temperature_c", record.Temperature).
		Float64("humidity_pct", record.Humidity).
		Float64("pressure_hpa", record.Pressure).
		Int("light_level", record.Light).
		Msg("")

	e.journalCycle(ctx, sample, telemetry.OutcomeLogged, "")

	return telemetry.OutcomeLogged
}

// acquire polls each source exactly once, in a fixed order, with no retries.
// Read failures become absent measurements for the validator to reject.
func (e *Engine) acquire() sensor.Sample {
	sample := sensor.Sample{Timestamp: e.uptimeMS()}

	th, err := e.tempHum.Read()
	if err != nil {
		logger.Debug().Err(err).Msg("Temperature/humidity read failed")
		sample.Temperature = sensor.Missing()
		sample.Humidity = sensor.Missing()
	} else {
		sample.Temperature = sensor.Value(th.Temperature)
		sample.Humidity = sensor.Value(th.Humidity)
	}

	pascals, err := e.pressure.ReadPascals()
	if err != nil {
		logger.Debug().Err(err).Msg("Pressure read failed")
		sample.Pressure = sensor.Missing()
	} else {
		sample.Pressure = sensor.Value(pascals / pascalsPerHectopascal)
	}

	raw, err := e.light.ReadRaw()
	if err != nil {
		// The light boundary has no failure contract; a raw zero is a valid level
		logger.Warn().Err(err).Msg("Light read failed, recording zero")
		raw = 0
	}
	sample.Light = raw

	return sample
}

func (e *Engine) journalCycle(ctx context.Context, sample sensor.Sample, outcome telemetry.Outcome, reason string) {
	snapshot := &telemetry.CycleSnapshot{
		LoggedAt:    e.clk.Now(),
		UptimeMS:    sample.Timestamp,
		Outcome:     outcome,
		Reason:      reason,
		Temperature: sample.Temperature.Value,
		Humidity:    sample.Humidity.Value,
		Pressure:    sample.Pressure.Value,
		Light:       sample.Light,
	}

	if err := e.journal.Record(ctx, snapshot); err != nil {
		logger.Debug().Err(err).Msg("Failed to journal cycle outcome")
	}
}

// uptimeMS is monotonic milliseconds since engine start, truncated to uint32;
// it wraps and must be treated as wrap-tolerant by consumers.
func (e *Engine) uptimeMS() uint32 {
	return uint32(e.clk.Since(e.started).Milliseconds())
}
