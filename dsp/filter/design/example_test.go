package design_test

import (
	"fmt"

	"github.com/cwbudde/algo-eq/dsp/filter/design"
)

func ExamplePeaking() {
	band := design.Band{Frequency: 1000, GainDB: 6, Q: 1.5, Enabled: true}

	coeffs, err := design.Peaking(band, 48000).Normalize()
	if err != nil {
		panic(err)
	}

	fmt.Printf("gain at center: %.2f dB\n", coeffs.MagnitudeDB(1000, 48000))

	band.Enabled = false
	fmt.Println("disabled band is identity:", design.Peaking(band, 48000).IsIdentity())
	// Output:
	// gain at center: 6.00 dB
	// disabled band is identity: true
}
