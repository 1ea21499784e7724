// Copyright (c) 2025, The TBC Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package poisson provides the homogeneous Poisson reference process for the
temporal barcode analysis: synthetic Poisson spike trains matched to a
unit's firing rate, and a fast analytic estimate of the expected SPKD
between Poisson trains, which serves as the smooth null distribution that
measured trial-pair distances are compared against.
*/
package poisson

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// GenDt is the time bin width in seconds used when generating Poisson
// spike trains: fine enough that at physiological rates a bin essentially
// never holds more than one spike.
const GenDt = 1e-4

// GenUnit generates n trials of a homogeneous Poisson spike train at the
// given firing rate (Hz) and duration (seconds), as a trials x spike-times
// raster.  Spike times land on the GenDt grid: each bin fires when its
// Poisson count is nonzero.  seed gives reproducible trains.
func GenUnit(rate, duration float64, n int, seed uint64) [][]float64 {
	src := rand.NewSource(seed)
	p := distuv.Poisson{Lambda: rate * GenDt, Src: src}
	nBins := int(duration / GenDt)

	trials := make([][]float64, n)
	for ti := range trials {
		trl := []float64{}
		for bi := 0; bi < nBins; bi++ {
			if p.Rand() > 0 {
				trl = append(trl, float64(bi)*GenDt)
			}
		}
		trials[ti] = trl
	}
	return trials
}
