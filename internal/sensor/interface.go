package sensor

// TempHumidity is the combined output of the temperature/humidity source
type TempHumidity struct {
	Temperature float64 // degrees Celsius
	Humidity    float64 // percent relative humidity
}

// TempHumiditySource polls the temperature/humidity device once per cycle.
// Reads are synchronous and carry no timeout; a bus error, checksum mismatch
// or non-responsive device surfaces as an error return.
type TempHumiditySource interface {
	Read() (TempHumidity, error)
}

// PressureSource polls the barometric pressure device once per cycle,
// returning raw pascals. Construction doubles as the startup init check;
// a construction failure is fatal to the daemon.
type PressureSource interface {
	ReadPascals() (float64, error)
}

// LightSource polls the ambient light channel once per cycle, returning raw
// analog-to-digital units in the device's range.
type LightSource interface {
	ReadRaw() (int, error)
}
