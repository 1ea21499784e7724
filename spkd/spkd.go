// Copyright (c) 2025, The TBC Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package spkd computes the Victor-Purpura spike train distance (SPKD) and the
trial-pair distance statistics built on it, which quantify how reproducible a
unit's spike timing is across repeated presentations of the same stimulus.

The distance between two spike trains is the minimal cost of transforming one
into the other using spike insertions, deletions (cost 1 each), and temporal
shifts (cost per second set by the cost parameter q).  At q = 0 only spike
counts matter; as q -> infinity shifting is never worthwhile and the distance
reduces to the total spike count.  Sweeping q probes the timescale at which
spike timing is reliable.

The dynamic-programming recurrence follows Victor & Purpura (1996), after the
original FORTRAN code by Jonathan Victor and the MATLAB translation by Daniel
Reich.
*/
package spkd

import "math"

// trunc returns the spikes at or before duration.
func trunc(train []float64, duration float64) []float64 {
	kept := make([]float64, 0, len(train))
	for _, t := range train {
		if t <= duration {
			kept = append(kept, t)
		}
	}
	return kept
}

// Dist computes the Victor-Purpura distance between two spike trains,
// with spike times in seconds.  Spikes after duration are ignored.
// cost is the cost per second of shifting a spike: 0 reduces to the
// absolute spike count difference, +Inf to the total spike count.
func Dist(a, b []float64, duration, cost float64) float64 {
	a = trunc(a, duration)
	b = trunc(b, duration)
	na := len(a)
	nb := len(b)

	if cost == 0 {
		return math.Abs(float64(na - nb))
	}
	if math.IsInf(cost, 1) {
		return float64(na + nb)
	}

	// alignment costs, two rolling rows of the (na+1) x (nb+1) matrix,
	// margins initialized to the cost of inserting every spike
	prev := make([]float64, nb+1)
	cur := make([]float64, nb+1)
	for j := 0; j <= nb; j++ {
		prev[j] = float64(j)
	}

	for i := 1; i <= na; i++ {
		cur[0] = float64(i)
		for j := 1; j <= nb; j++ {
			del := prev[j] + 1
			ins := cur[j-1] + 1
			shift := prev[j-1] + cost*math.Abs(a[i-1]-b[j-1])
			cur[j] = math.Min(math.Min(del, ins), shift)
		}
		prev, cur = cur, prev
	}
	return prev[nb]
}
