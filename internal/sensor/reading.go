package sensor

import "math"

// Measurement is a single sensor value with explicit presence. A failed read
// produces an absent measurement instead of an in-band sentinel, so a bogus
// number can never masquerade as data downstream.
type Measurement struct {
	Value float64
	OK    bool
}

// Value wraps a raw reading. NaN from a misbehaving driver is treated as a
// failed read.
func Value(v float64) Measurement {
	if math.IsNaN(v) {
		return Missing()
	}

	return Measurement{Value: v, OK: true}
}

// Missing returns an absent measurement
func Missing() Measurement {
	return Measurement{}
}

// Sample is one cycle's worth of readings. It lives for exactly one cycle and
// is discarded whether or not it validates.
//
// Timestamp is monotonic milliseconds since process start. It is unsigned and
// wraps; consumers must treat it as wrap-tolerant, not calendar time.
type Sample struct {
	Timestamp   uint32
	Temperature Measurement
	Humidity    Measurement
	Pressure    Measurement // hPa
	Light       int         // raw ADC units, always valid once produced
}
