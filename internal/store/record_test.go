package store_test

import (
	"strconv"
	"strings"
	"testing"

	"codeberg.org/mutker/envlogd/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatRecord(t *testing.T) {
	rec := store.Record{
		Timestamp:   0,
		Temperature: 22.5,
		Humidity:    45.0,
		Pressure:    1013.25,
		Light:       512,
	}

	assert.Equal(t, "0,22.5,45.0,1013.25,512\n", store.FormatRecord(rec))
}

func TestFormatRecordIdempotent(t *testing.T) {
	rec := store.Record{
		Timestamp:   4294967295,
		Temperature: -12.345,
		Humidity:    99.9,
		Pressure:    987.65,
		Light:       0,
	}

	first := store.FormatRecord(rec)
	second := store.FormatRecord(rec)
	assert.Equal(t, first, second, "formatting must be pure")
}

func TestFormatRecordWholeFloatsKeepDecimalPoint(t *testing.T) {
	rec := store.Record{Timestamp: 1500, Temperature: 21.0, Humidity: 50.0, Pressure: 1000.0, Light: 768}

	assert.Equal(t, "1500,21.0,50.0,1000.0,768\n", store.FormatRecord(rec))
}

func TestFormatRecordFieldContract(t *testing.T) {
	tests := []store.Record{
		{Timestamp: 0, Temperature: 22.5, Humidity: 45.0, Pressure: 1013.25, Light: 512},
		{Timestamp: 3000, Temperature: -40.0, Humidity: 0.0, Pressure: 300.0, Light: 0},
		{Timestamp: 4294967295, Temperature: 85.125, Humidity: 100.0, Pressure: 1100.5, Light: 1023},
	}

	for _, rec := range tests {
		line := store.FormatRecord(rec)
		require.True(t, strings.HasSuffix(line, "\n"), "line must be newline terminated")

		fields := strings.Split(strings.TrimSuffix(line, "\n"), ",")
		require.Len(t, fields, 5, "every line yields exactly 5 fields")

		_, err := strconv.ParseUint(fields[0], 10, 32)
		assert.NoError(t, err, "timestamp must parse as uint")
		for _, f := range fields[1:4] {
			_, err := strconv.ParseFloat(f, 64)
			assert.NoError(t, err, "measurements must parse as float")
		}
		_, err = strconv.ParseUint(fields[4], 10, 32)
		assert.NoError(t, err, "light level must parse as uint")
	}
}
