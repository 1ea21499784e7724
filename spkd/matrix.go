// Copyright (c) 2025, The TBC Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spkd

import (
	"strconv"

	"github.com/emer/etable/etensor"
	"github.com/emer/etable/simat"
	"github.com/preinagel/TBC/raster"
)

// DistMatrix computes the full symmetric trial x trial SPKD matrix for one
// unit's raster, with zero diagonal, returned as a labeled similarity
// (dissimilarity) matrix.
func DistMatrix(trials [][]float64, duration, cost float64, nWorkers int) *simat.SimMat {
	n := len(trials)
	pairs := raster.AllPairs(n)
	dists := RandDists(trials, duration, cost, nWorkers)

	mt := etensor.NewFloat64([]int{n, n}, nil, []string{"Trial", "Trial"})
	for k, p := range pairs {
		mt.Values[p[0]*n+p[1]] = dists[k]
		mt.Values[p[1]*n+p[0]] = dists[k]
	}
	labels := make([]string, n)
	for i := range labels {
		labels[i] = strconv.Itoa(i)
	}
	return &simat.SimMat{Mat: mt, Rows: labels, Cols: labels}
}
