package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-eq/dsp/filter/design"
)

// bandList parses repeatable -band flags of the form freq:gain:q with
// an optional trailing ":off" to add a disabled band.
type bandList []design.Band

func (b *bandList) String() string {
	parts := make([]string, len(*b))
	for i, band := range *b {
		parts[i] = fmt.Sprintf("%g:%g:%g", band.Frequency, band.GainDB, band.Q)
		if !band.Enabled {
			parts[i] += ":off"
		}
	}

	return strings.Join(parts, ",")
}

func (b *bandList) Set(value string) error {
	band, err := parseBand(value)
	if err != nil {
		return err
	}

	*b = append(*b, band)

	return nil
}

func parseBand(value string) (design.Band, error) {
	fields := strings.Split(value, ":")
	if len(fields) != 3 && len(fields) != 4 {
		return design.Band{}, fmt.Errorf("band must be freq:gain:q[:off], got %q", value)
	}

	freq, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return design.Band{}, fmt.Errorf("band frequency %q: %w", fields[0], err)
	}

	gain, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return design.Band{}, fmt.Errorf("band gain %q: %w", fields[1], err)
	}

	q, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return design.Band{}, fmt.Errorf("band q %q: %w", fields[2], err)
	}

	enabled := true
	if len(fields) == 4 {
		switch fields[3] {
		case "off":
			enabled = false
		case "on":
		default:
			return design.Band{}, fmt.Errorf("band state must be on or off, got %q", fields[3])
		}
	}

	return design.Band{Frequency: freq, GainDB: gain, Q: q, Enabled: enabled}, nil
}

// pcmScale returns the full-scale magnitude for a signed PCM bit depth.
func pcmScale(bitDepth int) (float64, error) {
	switch bitDepth {
	case 8, 16, 24, 32:
		return float64(int64(1) << (bitDepth - 1)), nil
	default:
		return 0, fmt.Errorf("unsupported bit depth: %d", bitDepth)
	}
}

// intToFloat converts interleaved signed PCM samples to float64 in [-1, 1).
func intToFloat(data []int, bitDepth int) ([]float64, error) {
	scale, err := pcmScale(bitDepth)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = float64(v) / scale
	}

	return out, nil
}

// floatToInt converts float64 samples in [-1, 1] back to signed PCM,
// rounding and clamping to the representable range.
func floatToInt(data []float64, bitDepth int) ([]int, error) {
	scale, err := pcmScale(bitDepth)
	if err != nil {
		return nil, err
	}

	maxValue := int(scale) - 1
	minValue := -int(scale)

	out := make([]int, len(data))
	for i, v := range data {
		s := int(math.Round(v * scale))
		if s > maxValue {
			s = maxValue
		} else if s < minValue {
			s = minValue
		}
		out[i] = s
	}

	return out, nil
}
