package sensor

import (
	"math/rand"
	"sync"
)

// SimEnvironment implements all three sensor sources with a slow random walk
// around plausible indoor conditions. It lets the daemon run on a machine
// with no sensors attached (mock_sensors = true).
type SimEnvironment struct {
	mu    sync.Mutex
	rnd   *rand.Rand
	temp  float64
	hum   float64
	pres  float64 // Pa
	light int
}

func NewSimEnvironment(seed int64) *SimEnvironment {
	return &SimEnvironment{
		rnd:   rand.New(rand.NewSource(seed)),
		temp:  21.5,
		hum:   45.0,
		pres:  101325.0,
		light: 512,
	}
}

func (s *SimEnvironment) Read() (TempHumidity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.temp = drift(s.rnd, s.temp, 0.2, 15.0, 30.0)
	s.hum = drift(s.rnd, s.hum, 0.5, 20.0, 80.0)

	return TempHumidity{Temperature: s.temp, Humidity: s.hum}, nil
}

func (s *SimEnvironment) ReadPascals() (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pres = drift(s.rnd, s.pres, 20.0, 98000.0, 104000.0)

	return s.pres, nil
}

func (s *SimEnvironment) ReadRaw() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.light += s.rnd.Intn(33) - 16
	if s.light < 0 {
		s.light = 0
	}
	if s.light > 1023 {
		s.light = 1023
	}

	return s.light, nil
}

func drift(rnd *rand.Rand, v, step, low, high float64) float64 {
	v += (rnd.Float64()*2 - 1) * step
	if v < low {
		v = low
	}
	if v > high {
		v = high
	}

	return v
}
