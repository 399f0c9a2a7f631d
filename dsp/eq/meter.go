package eq

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// MeterFloorDB is the lowest level reported by the dBFS meter getters.
const MeterFloorDB = -120.0

// MeterSnapshot carries the input/output RMS levels of the most
// recently processed block. Levels are linear full-scale amplitudes;
// the DBFS getters convert for display.
//
// Snapshots are immutable: the engine publishes a fresh value per block
// and readers always observe a consistent pair.
type MeterSnapshot struct {
	InputRMS  float64
	OutputRMS float64
}

// InputDBFS returns the input level in dBFS, floored at MeterFloorDB.
func (m MeterSnapshot) InputDBFS() float64 {
	return levelDB(m.InputRMS)
}

// OutputDBFS returns the output level in dBFS, floored at MeterFloorDB.
func (m MeterSnapshot) OutputDBFS() float64 {
	return levelDB(m.OutputRMS)
}

func levelDB(linear float64) float64 {
	if linear <= 0 {
		return MeterFloorDB
	}

	return math.Max(MeterFloorDB, 20*math.Log10(linear))
}

// RMS returns the root-mean-square level over all samples of all
// channels combined. A zero-sample block yields 0.
func RMS(block [][]float64) float64 {
	samples := 0
	sum := 0.0

	for _, ch := range block {
		sum += vecmath.DotProduct(ch, ch)
		samples += len(ch)
	}

	if samples == 0 {
		return 0
	}

	return math.Sqrt(sum / float64(samples))
}
