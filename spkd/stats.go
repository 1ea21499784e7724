// Copyright (c) 2025, The TBC Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spkd

import (
	"math"

	"github.com/emer/etable/etable"
	"github.com/emer/etable/etensor"
	"github.com/preinagel/TBC/raster"
	"gonum.org/v1/gonum/stat"
)

// Stats summarizes the trial-pair SPKD distribution for one unit.
type Stats struct {
	Mean       float64   `desc:"mean SPKD over all unordered trial pairs"`
	Std        float64   `desc:"population standard deviation of the pair distances"`
	FiringRate float64   `desc:"average firing rate across trials, Hz"`
	Dists      []float64 `desc:"per-pair distances in raster.AllPairs order -- nil unless requested"`
}

// RandStats computes the mean and standard deviation of the SPKD over all
// unordered trial pairs for a single unit, along with its firing rate.
// keepDists retains the individual pair distances in the result.
func RandStats(trials [][]float64, duration, cost float64, nWorkers int, keepDists bool) Stats {
	dists := RandDists(trials, duration, cost, nWorkers)
	st := Stats{
		Mean:       stat.Mean(dists, nil),
		Std:        stat.PopStdDev(dists, nil),
		FiringRate: raster.FiringRate(trials, duration),
	}
	if keepDists {
		st.Dists = dists
	}
	return st
}

// FanoFactors computes the Fano factor (variance-to-mean ratio of per-trial
// spike counts, sample variance) for each unit.  Units with no spikes get
// NaN.
func FanoFactors(units [][][]float64, duration float64) []float64 {
	ffs := make([]float64, len(units))
	for ui, trials := range units {
		counts := raster.SpikeCounts(trials, duration)
		mean := stat.Mean(counts, nil)
		if mean > 0 {
			ffs[ui] = stat.Variance(counts, nil) / mean
		} else {
			ffs[ui] = math.NaN()
		}
	}
	return ffs
}

// PopStats computes RandStats for every unit of a population (units x trials
// x spike times) and returns one row per unit with the unit index, firing
// rate, mean and std SPKD, and Fano factor, plus the per-unit Stats with the
// pair distance lists retained.
func PopStats(units [][][]float64, duration, cost float64, nWorkers int) (*etable.Table, []Stats) {
	sts := make([]Stats, len(units))
	ffs := FanoFactors(units, duration)

	dt := &etable.Table{}
	sch := etable.Schema{
		{"Unit", etensor.INT64, nil, nil},
		{"FiringRate", etensor.FLOAT64, nil, nil},
		{"MeanDist", etensor.FLOAT64, nil, nil},
		{"StdDist", etensor.FLOAT64, nil, nil},
		{"Fano", etensor.FLOAT64, nil, nil},
	}
	dt.SetFromSchema(sch, len(units))

	for ui, trials := range units {
		sts[ui] = RandStats(trials, duration, cost, nWorkers, true)
		dt.SetCellFloat("Unit", ui, float64(ui))
		dt.SetCellFloat("FiringRate", ui, sts[ui].FiringRate)
		dt.SetCellFloat("MeanDist", ui, sts[ui].Mean)
		dt.SetCellFloat("StdDist", ui, sts[ui].Std)
		dt.SetCellFloat("Fano", ui, ffs[ui])
	}
	return dt, sts
}
