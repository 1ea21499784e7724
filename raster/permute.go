// Copyright (c) 2025, The TBC Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"math/rand"
	"sort"
)

// Permute randomly time-shifts each spike in a train, wrapping modulo
// duration to keep spikes within the valid window, and returns the result
// sorted.  This destroys stimulus-locked timing while preserving the spike
// count, and is the null raster used by the permutation tests.
// rnd can be nil to use the global random source.
func Permute(train []float64, duration float64, rnd *rand.Rand) []float64 {
	if len(train) == 0 {
		return []float64{}
	}
	if duration <= 0 {
		panic("raster.Permute: duration must be positive")
	}
	perm := make([]float64, len(train))
	for i, t := range train {
		var off float64
		if rnd != nil {
			off = rnd.Float64() * duration
		} else {
			off = rand.Float64() * duration
		}
		nt := t + off
		for nt >= duration {
			nt -= duration
		}
		perm[i] = nt
	}
	sort.Float64s(perm)
	return perm
}

// PermuteAll applies Permute independently to each trial of a raster.
func PermuteAll(trials [][]float64, duration float64, rnd *rand.Rand) [][]float64 {
	perm := make([][]float64, len(trials))
	for i, trl := range trials {
		perm[i] = Permute(trl, duration, rnd)
	}
	return perm
}
