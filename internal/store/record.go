package store

import (
	"strconv"
	"strings"
)

// Header is the single header line written once at store creation
const Header = "Timestamp_ms,Temperature_C,Humidity_%,Pressure_hPa,Light_Level"

// Record is one validated measurement tuple. It exists only to be serialized;
// nothing persists the struct itself.
type Record struct {
	Timestamp   uint32
	Temperature float64
	Humidity    float64
	Pressure    float64
	Light       int
}

// FormatRecord serializes a record into one comma-separated, newline
// terminated line: timestamp, temperature, humidity, pressure, light. Pure
// and total; formatting the same record twice yields identical bytes.
func FormatRecord(r Record) string {
	var b strings.Builder
	b.WriteString(strconv.FormatUint(uint64(r.Timestamp), 10))
	b.WriteByte(',')
	b.WriteString(formatFloat(r.Temperature))
	b.WriteByte(',')
	b.WriteString(formatFloat(r.Humidity))
	b.WriteByte(',')
	b.WriteString(formatFloat(r.Pressure))
	b.WriteByte(',')
	b.WriteString(strconv.Itoa(r.Light))
	b.WriteByte('\n')

	return b.String()
}

// formatFloat pins the float representation: shortest decimal that round
// trips, with a forced decimal point so a whole number reads 45.0, not 45.
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}
