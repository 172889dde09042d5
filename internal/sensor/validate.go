package sensor

// InvalidReason identifies why a sample was rejected
type InvalidReason string

const (
	ReasonTempHumidityReadFailure InvalidReason = "temp_humidity_read_failure"
	ReasonPressureReadFailure     InvalidReason = "pressure_read_failure"
)

// Verdict is the validator's result for one sample
type Verdict struct {
	OK     bool
	Reason InvalidReason
}

// Validate rejects samples whose temperature, humidity or pressure reading
// failed this cycle. The light level is never validated: any raw value,
// including zero, is accepted. Validation has no side effects.
func Validate(s Sample) Verdict {
	if !s.Temperature.OK || !s.Humidity.OK {
		return Verdict{Reason: ReasonTempHumidityReadFailure}
	}

	if !s.Pressure.OK {
		return Verdict{Reason: ReasonPressureReadFailure}
	}

	return Verdict{OK: true}
}
