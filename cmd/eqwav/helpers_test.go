package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-eq/dsp/filter/design"
)

func TestParseBand(t *testing.T) {
	band, err := parseBand("1000:6:1.5")
	require.NoError(t, err)
	assert.Equal(t, design.Band{Frequency: 1000, GainDB: 6, Q: 1.5, Enabled: true}, band)

	band, err = parseBand("250:-4.5:0.7:off")
	require.NoError(t, err)
	assert.Equal(t, design.Band{Frequency: 250, GainDB: -4.5, Q: 0.7, Enabled: false}, band)

	band, err = parseBand("250:3:1:on")
	require.NoError(t, err)
	assert.True(t, band.Enabled)

	for _, bad := range []string{"", "1000", "1000:6", "x:6:1", "1000:y:1", "1000:6:z", "1000:6:1:maybe", "1:2:3:4:5"} {
		_, err := parseBand(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestBandListSetAndString(t *testing.T) {
	var bands bandList
	require.NoError(t, bands.Set("1000:6:1.5"))
	require.NoError(t, bands.Set("250:-3:0.7:off"))

	require.Len(t, bands, 2)
	assert.Equal(t, "1000:6:1.5,250:-3:0.7:off", bands.String())
}

func TestIntFloatRoundTrip(t *testing.T) {
	data := []int{0, 1, -1, 16384, -16384, 32767, -32768}

	floats, err := intToFloat(data, 16)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, floats[3], 1e-12)

	back, err := floatToInt(floats, 16)
	require.NoError(t, err)
	assert.Equal(t, data, back)
}

func TestFloatToIntClamps(t *testing.T) {
	out, err := floatToInt([]float64{2.0, -2.0}, 16)
	require.NoError(t, err)
	assert.Equal(t, []int{32767, -32768}, out)
}

func TestUnsupportedBitDepth(t *testing.T) {
	_, err := intToFloat([]int{0}, 12)
	assert.Error(t, err)

	_, err = floatToInt([]float64{0}, 12)
	assert.Error(t, err)
}
