package sensor

import "codeberg.org/mutker/envlogd/internal/errors"

const (
	// Read errors
	ErrTempHumidityRead = errors.ErrorCode("sensor_temp_humidity_read_failed")
	ErrPressureRead     = errors.ErrorCode("sensor_pressure_read_failed")
	ErrLightRead        = errors.ErrorCode("sensor_light_read_failed")

	// Initialization errors
	ErrTempHumidityInit = errors.ErrorCode("sensor_temp_humidity_init_failed")
	ErrPressureInit     = errors.ErrorCode("sensor_pressure_init_failed")
	ErrLightInit        = errors.ErrorCode("sensor_light_init_failed")
	ErrInvalidChannel   = errors.ErrorCode("sensor_invalid_adc_channel")
)
