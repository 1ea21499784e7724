// Copyright (c) 2025, The TBC Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package raster provides spike raster utilities: aligning a unit's continuous
spike times to repeated stimulus onsets, per-trial spike counts and firing
rates, binned count matrices, circular permutation for building null
distributions, and unordered trial pairing.

A raster here is a [][]float64 of trial-aligned spike times: one slice per
trial, times in seconds relative to that trial's stimulus onset, sorted
ascending.  Empty trials are empty slices, never nil-vs-present special
cases.
*/
package raster

import (
	"sort"

	"github.com/emer/etable/etensor"
)

// Align aligns a unit's continuous spike times to repeated stimulus onsets,
// returning one slice of relative spike times per presentation.  spikes must
// be sorted ascending (as NWB stores them).  Spikes in [onset, onset+duration)
// are assigned to that trial, with the onset subtracted so each trial starts
// at time 0.
func Align(spikes, onsets []float64, duration float64) [][]float64 {
	trials := make([][]float64, len(onsets))
	for ti, on := range onsets {
		lo := sort.SearchFloat64s(spikes, on)
		hi := sort.SearchFloat64s(spikes, on+duration)
		trl := make([]float64, hi-lo)
		for i, t := range spikes[lo:hi] {
			trl[i] = t - on
		}
		trials[ti] = trl
	}
	return trials
}

// CountSpikes returns the number of spikes at or before duration.
func CountSpikes(train []float64, duration float64) int {
	n := 0
	for _, t := range train {
		if t <= duration {
			n++
		}
	}
	return n
}

// SpikeCounts returns the per-trial spike counts, counting only spikes at
// or before duration.
func SpikeCounts(trials [][]float64, duration float64) []float64 {
	counts := make([]float64, len(trials))
	for i, trl := range trials {
		counts[i] = float64(CountSpikes(trl, duration))
	}
	return counts
}

// FiringRate returns the average firing rate in Hz across trials, counting
// only spikes at or before duration.
func FiringRate(trials [][]float64, duration float64) float64 {
	if len(trials) == 0 {
		return 0
	}
	tot := 0.0
	for _, trl := range trials {
		tot += float64(CountSpikes(trl, duration))
	}
	return tot / float64(len(trials)) / duration
}

// BinCounts returns the trials x bins spike count matrix for a raster,
// with bin width binSize seconds over [0, duration).  Spikes outside the
// window are dropped.  This is the matrix form of the raster used for
// PSTHs and population summaries.
func BinCounts(trials [][]float64, duration, binSize float64) *etensor.Float64 {
	nBins := int(duration / binSize)
	cnt := etensor.NewFloat64([]int{len(trials), nBins}, nil, []string{"Trial", "Bin"})
	for ti, trl := range trials {
		for _, t := range trl {
			bin := int(t / binSize)
			if t < 0 || bin >= nBins {
				continue
			}
			cnt.Values[ti*nBins+bin]++
		}
	}
	return cnt
}

// PSTH returns the trial-averaged firing rate in Hz per bin, from a
// BinCounts matrix.
func PSTH(cnt *etensor.Float64, binSize float64) []float64 {
	nTrials := cnt.Dim(0)
	nBins := cnt.Dim(1)
	psth := make([]float64, nBins)
	if nTrials == 0 {
		return psth
	}
	for bi := 0; bi < nBins; bi++ {
		tot := 0.0
		for ti := 0; ti < nTrials; ti++ {
			tot += cnt.Values[ti*nBins+bi]
		}
		psth[bi] = tot / float64(nTrials) / binSize
	}
	return psth
}

// AllPairs returns the indexes of all unique unordered pairs of n trials:
// every (i, j) with i < j, excluding self-pairs.
func AllPairs(n int) [][2]int {
	pairs := make([][2]int, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pairs = append(pairs, [2]int{i, j})
		}
	}
	return pairs
}
