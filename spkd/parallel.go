// Copyright (c) 2025, The TBC Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spkd

import (
	"runtime"
	"sync"

	"github.com/preinagel/TBC/raster"
)

// DistsParallel computes Dist for each pair (as[i], bs[i]) across nWorkers
// goroutines, each striding over the pair list.  nWorkers <= 0 uses
// GOMAXPROCS.  Panics if the two lists differ in length (gonum convention
// for mismatched parallel slices).
func DistsParallel(as, bs [][]float64, duration, cost float64, nWorkers int) []float64 {
	n := len(as)
	if len(bs) != n {
		panic("spkd.DistsParallel: pair lists differ in length")
	}
	dists := make([]float64, n)
	if n == 0 {
		return dists
	}
	if nWorkers <= 0 {
		nWorkers = runtime.GOMAXPROCS(0)
	}
	if nWorkers > n {
		nWorkers = n
	}
	var wg sync.WaitGroup
	for w := 0; w < nWorkers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := w; i < n; i += nWorkers {
				dists[i] = Dist(as[i], bs[i], duration, cost)
			}
		}(w)
	}
	wg.Wait()
	return dists
}

// RandDists computes the SPKD between all unordered trial pairs of a single
// unit's raster, in raster.AllPairs order.
func RandDists(trials [][]float64, duration, cost float64, nWorkers int) []float64 {
	pairs := raster.AllPairs(len(trials))
	as := make([][]float64, len(pairs))
	bs := make([][]float64, len(pairs))
	for i, p := range pairs {
		as[i] = trials[p[0]]
		bs[i] = trials[p[1]]
	}
	return DistsParallel(as, bs, duration, cost, nWorkers)
}
