// Copyright (c) 2025, The TBC Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package barcode estimates the temporal barcode kernel: the per-neuron
response filter recovered by reverse-correlating spiking activity against
the white-noise luminance modulation signal shown on every trial.

The kernel is the spike-triggered average of the mean-subtracted stimulus
over a pre-spike window.  Derived metrics are the signed peak value, the
peak latency (the lag of the largest magnitude sample), and an empirical
significance from re-estimating the peak over circularly permuted rasters.
*/
package barcode

import (
	"math"
	"math/rand"

	"github.com/preinagel/TBC/raster"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Params are the kernel estimation parameters.
type Params struct {
	BinSize float64 `def:"0.001" desc:"width of one stimulus sample, seconds"`
	Window  float64 `def:"0.3" desc:"pre-spike window over which the kernel is estimated, seconds"`
	NPerm   int     `def:"1000" desc:"number of circular permutations for the significance test"`
}

func (kp *Params) Defaults() {
	kp.BinSize = 0.001
	kp.Window = 0.3
	kp.NPerm = 1000
}

// NLags returns the number of kernel lags covered by Window.
func (kp *Params) NLags() int {
	return int(kp.Window / kp.BinSize)
}

// Kernel computes the spike-triggered average of the mean-subtracted
// stimulus over the pre-spike window, across all trials of one unit's
// aligned raster.  stim is the per-trial stimulus waveform sampled at
// BinSize.  kernel[l] is the average stimulus l*BinSize seconds before a
// spike.  Spikes too early for a full window, or past the end of the
// stimulus, are skipped.
func (kp *Params) Kernel(trials [][]float64, stim []float64) []float64 {
	nLags := kp.NLags()
	krn := make([]float64, nLags)
	mean := stat.Mean(stim, nil)
	nspk := 0
	for _, trl := range trials {
		for _, t := range trl {
			bin := int(t / kp.BinSize)
			if bin < nLags-1 || bin >= len(stim) {
				continue
			}
			for l := 0; l < nLags; l++ {
				krn[l] += stim[bin-l] - mean
			}
			nspk++
		}
	}
	if nspk > 0 {
		floats.Scale(1/float64(nspk), krn)
	}
	return krn
}

// PeakLatency returns the latency (seconds before the spike) and signed
// value of the largest-magnitude kernel sample.
func PeakLatency(kernel []float64, binSize float64) (lat, peak float64) {
	for l, v := range kernel {
		if math.Abs(v) > math.Abs(peak) {
			peak = v
			lat = float64(l) * binSize
		}
	}
	return lat, peak
}

// Significance runs the circular permutation test on a unit's kernel peak:
// the raster is permuted NPerm times, the kernel peak magnitude recomputed
// each time, and the empirical p-value returned along with the observed
// signed peak.  duration is the trial length used for wrapping the
// permuted spike times.  rnd can be nil to use the global random source.
func (kp *Params) Significance(trials [][]float64, stim []float64, duration float64, rnd *rand.Rand) (p, peak float64) {
	_, peak = PeakLatency(kp.Kernel(trials, stim), kp.BinSize)
	obs := math.Abs(peak)
	ge := 0
	for i := 0; i < kp.NPerm; i++ {
		perm := raster.PermuteAll(trials, duration, rnd)
		_, pk := PeakLatency(kp.Kernel(perm, stim), kp.BinSize)
		if math.Abs(pk) >= obs {
			ge++
		}
	}
	p = float64(ge+1) / float64(kp.NPerm+1)
	return p, peak
}
