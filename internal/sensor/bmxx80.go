package sensor

import (
	"codeberg.org/mutker/envlogd/internal/errors"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/devices/v3/bmxx80"
)

// BME280 provides temperature and humidity from a Bosch BME280 on I2C
type BME280 struct {
	dev *bmxx80.Dev
}

func NewBME280(bus i2c.Bus, addr uint16) (*BME280, error) {
	dev, err := bmxx80.NewI2C(bus, addr, &bmxx80.DefaultOpts)
	if err != nil {
		return nil, errors.New().Wrap(ErrTempHumidityInit, err)
	}

	return &BME280{dev: dev}, nil
}

func (s *BME280) Read() (TempHumidity, error) {
	var e physic.Env
	if err := s.dev.Sense(&e); err != nil {
		return TempHumidity{}, errors.New().Wrap(ErrTempHumidityRead, err)
	}

	return TempHumidity{
		Temperature: e.Temperature.Celsius(),
		Humidity:    float64(e.Humidity) / float64(physic.PercentRH),
	}, nil
}

func (s *BME280) Halt() error {
	return s.dev.Halt()
}

// BMP280 provides barometric pressure from a Bosch BMP280 on I2C. The
// constructor performs the chip handshake, which is the startup init check.
type BMP280 struct {
	dev *bmxx80.Dev
}

func NewBMP280(bus i2c.Bus, addr uint16) (*BMP280, error) {
	dev, err := bmxx80.NewI2C(bus, addr, &bmxx80.DefaultOpts)
	if err != nil {
		return nil, errors.New().Wrap(ErrPressureInit, err)
	}

	return &BMP280{dev: dev}, nil
}

// ReadPascals returns the raw pressure in pascals; the caller converts to hPa
func (s *BMP280) ReadPascals() (float64, error) {
	var e physic.Env
	if err := s.dev.Sense(&e); err != nil {
		return 0, errors.New().Wrap(ErrPressureRead, err)
	}

	return float64(e.Pressure) / float64(physic.Pascal), nil
}

func (s *BMP280) Halt() error {
	return s.dev.Halt()
}
