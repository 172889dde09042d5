package sensor

import (
	"codeberg.org/mutker/envlogd/internal/errors"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/devices/v3/ads1x15"
)

// ADS1015Light reads a photoresistor divider through one channel of an
// ADS1015 ADC on I2C. Values are reported as the converter's raw counts.
type ADS1015Light struct {
	pin ads1x15.PinADC
}

func NewADS1015Light(bus i2c.Bus, channel int) (*ADS1015Light, error) {
	errFactory := errors.New()

	channels := []ads1x15.Channel{ads1x15.Channel0, ads1x15.Channel1, ads1x15.Channel2, ads1x15.Channel3}
	if channel < 0 || channel >= len(channels) {
		return nil, errFactory.WithData(ErrInvalidChannel, channel)
	}

	adc, err := ads1x15.NewADS1015(bus, &ads1x15.DefaultOpts)
	if err != nil {
		return nil, errFactory.Wrap(ErrLightInit, err)
	}

	pin, err := adc.PinForChannel(channels[channel], 3300*physic.MilliVolt, 1*physic.Hertz, ads1x15.SaveEnergy)
	if err != nil {
		return nil, errFactory.Wrap(ErrLightInit, err)
	}

	return &ADS1015Light{pin: pin}, nil
}

func (s *ADS1015Light) ReadRaw() (int, error) {
	sample, err := s.pin.Read()
	if err != nil {
		return 0, errors.New().Wrap(ErrLightRead, err)
	}

	// A single-ended conversion can report small negative counts near 0V;
	// the level contract is non-negative, so clamp at the boundary
	raw := int(sample.Raw)
	if raw < 0 {
		raw = 0
	}

	return raw, nil
}

func (s *ADS1015Light) Halt() error {
	return s.pin.Halt()
}
