package sensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/analog"
)

type fakePinADC struct {
	sample analog.Sample
	err    error
}

func (p *fakePinADC) String() string   { return "fake(0)" }
func (p *fakePinADC) Halt() error      { return nil }
func (p *fakePinADC) Name() string     { return "fake" }
func (p *fakePinADC) Number() int      { return 0 }
func (p *fakePinADC) Function() string { return "ADC" }

func (p *fakePinADC) Read() (analog.Sample, error) {
	return p.sample, p.err
}

func (p *fakePinADC) Range() (analog.Sample, analog.Sample) {
	return analog.Sample{Raw: 0}, analog.Sample{Raw: 2047}
}

func (p *fakePinADC) ReadContinuous() <-chan analog.Sample {
	return nil
}

func TestReadRawClampsNegativeCounts(t *testing.T) {
	// Single-ended conversions near 0V can come back slightly negative
	light := &ADS1015Light{pin: &fakePinADC{sample: analog.Sample{Raw: -3}}}

	raw, err := light.ReadRaw()
	require.NoError(t, err)
	assert.Equal(t, 0, raw, "negative converter counts clamp to zero")
}

func TestReadRawPassesThroughLevel(t *testing.T) {
	light := &ADS1015Light{pin: &fakePinADC{sample: analog.Sample{Raw: 512}}}

	raw, err := light.ReadRaw()
	require.NoError(t, err)
	assert.Equal(t, 512, raw)
}
