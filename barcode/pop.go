// Copyright (c) 2025, The TBC Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package barcode

import (
	"math/rand"

	"github.com/emer/etable/etable"
	"github.com/emer/etable/etensor"
)

// PopKernels estimates the kernel for every unit of a population (units x
// trials x spike times) against the shared stimulus waveform, returning a
// table with one row per unit: unit index, signed peak, peak latency,
// permutation p-value, and the full kernel as a tensor cell indexed by lag.
func PopKernels(units [][][]float64, stim []float64, duration float64, kp *Params, rnd *rand.Rand) *etable.Table {
	nLags := kp.NLags()
	dt := &etable.Table{}
	sch := etable.Schema{
		{"Unit", etensor.INT64, nil, nil},
		{"Peak", etensor.FLOAT64, nil, nil},
		{"PeakLag", etensor.FLOAT64, nil, nil},
		{"P", etensor.FLOAT64, nil, nil},
		{"Kernel", etensor.FLOAT64, []int{nLags}, []string{"Lag"}},
	}
	dt.SetFromSchema(sch, len(units))

	for ui, trials := range units {
		krn := kp.Kernel(trials, stim)
		lat, _ := PeakLatency(krn, kp.BinSize)
		p, peak := kp.Significance(trials, stim, duration, rnd)

		ktsr := etensor.NewFloat64([]int{nLags}, nil, []string{"Lag"})
		copy(ktsr.Values, krn)

		dt.SetCellFloat("Unit", ui, float64(ui))
		dt.SetCellFloat("Peak", ui, peak)
		dt.SetCellFloat("PeakLag", ui, lat)
		dt.SetCellFloat("P", ui, p)
		dt.SetCellTensor("Kernel", ui, ktsr)
	}
	return dt
}
