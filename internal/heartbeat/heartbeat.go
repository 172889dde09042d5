// Package heartbeat drives the external liveness pulse: one fixed-width high
// pulse on a GPIO pin per successful durable append. The pulse is purely
// observational; its absence over time is the external diagnostic for a stuck
// or faulted cycle.
package heartbeat

import (
	"time"

	"codeberg.org/mutker/envlogd/internal/errors"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
)

// Signal pulses a binary output and returns it to its rest state
type Signal interface {
	Pulse() error
}

// Pin is a GPIO-backed signal. Rest state is low.
type Pin struct {
	pin   gpio.PinIO
	width time.Duration
}

func NewPin(name string, width time.Duration) (*Pin, error) {
	errFactory := errors.New()

	pin := gpioreg.ByName(name)
	if pin == nil {
		return nil, errFactory.WithData(ErrPinUnavailable, name)
	}
	if err := pin.Out(gpio.Low); err != nil {
		return nil, errFactory.Wrap(ErrPinUnavailable, err)
	}

	return &Pin{pin: pin, width: width}, nil
}

// Pulse blocks for the pulse width; the cycle engine carves that time out of
// the inter-cycle delay.
func (p *Pin) Pulse() error {
	if err := p.pin.Out(gpio.High); err != nil {
		return err
	}
	time.Sleep(p.width)

	return p.pin.Out(gpio.Low)
}

// Noop is used when no heartbeat pin is configured
type Noop struct{}

func (Noop) Pulse() error {
	return nil
}
