// Copyright (c) 2025, The TBC Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"math"
	"math/rand"
	"sort"
	"testing"
)

// difTol is the numerical difference tolerance for comparing vs. target values
const difTol = 1.0e-12

func TestAlign(t *testing.T) {
	// spikes around three presentations starting at 10, 20, 30, each 2 sec
	spikes := []float64{9.5, 10.0, 10.5, 11.9, 12.0, 21.25, 29.0, 30.1, 31.999, 32.0}
	onsets := []float64{10, 20, 30}

	trials := Align(spikes, onsets, 2.0)
	if len(trials) != 3 {
		t.Fatalf("trials: got %d, want 3", len(trials))
	}
	want := [][]float64{{0, 0.5, 1.9}, {1.25}, {0.1, 1.999}}
	for ti := range want {
		if len(trials[ti]) != len(want[ti]) {
			t.Errorf("trial %d: got %v, want %v", ti, trials[ti], want[ti])
			continue
		}
		for i := range want[ti] {
			dif := math.Abs(trials[ti][i] - want[ti][i])
			if dif > difTol {
				t.Errorf("trial %d spike %d: got %v, want %v, dif: %v", ti, i, trials[ti][i], want[ti][i], dif)
			}
		}
	}
}

func TestFiringRate(t *testing.T) {
	trials := [][]float64{{0.1, 0.2, 0.3}, {0.5}, {}, {0.25, 0.75}}
	// 6 spikes / 4 trials / 2 sec = 0.75 Hz
	fr := FiringRate(trials, 2.0)
	if dif := math.Abs(fr - 0.75); dif > difTol {
		t.Errorf("FiringRate: got %v, want 0.75, dif: %v", fr, dif)
	}
	// spikes past duration are ignored: only 0.1 counts here
	fr = FiringRate([][]float64{{0.1, 1.5, 1.9}}, 1.0)
	if dif := math.Abs(fr - 1.0); dif > difTol {
		t.Errorf("FiringRate trunc: got %v, want 1.0, dif: %v", fr, dif)
	}
}

func TestBinCounts(t *testing.T) {
	trials := [][]float64{{0.05, 0.15, 0.17}, {0.25, 0.35, -0.5, 9.0}}
	cnt := BinCounts(trials, 0.4, 0.1)
	if cnt.Dim(0) != 2 || cnt.Dim(1) != 4 {
		t.Fatalf("shape: got %v, want [2 4]", cnt.Shape.Shp)
	}
	want := []float64{1, 2, 0, 0, 0, 0, 1, 1} // out-of-window spikes dropped
	for i, w := range want {
		if cnt.Values[i] != w {
			t.Errorf("bin %d: got %v, want %v", i, cnt.Values[i], w)
		}
	}
	psth := PSTH(cnt, 0.1)
	wantPsth := []float64{5, 10, 5, 5} // mean count / binSize
	for i, w := range wantPsth {
		if dif := math.Abs(psth[i] - w); dif > difTol {
			t.Errorf("psth %d: got %v, want %v", i, psth[i], w)
		}
	}
}

func TestAllPairs(t *testing.T) {
	pairs := AllPairs(4)
	if len(pairs) != 6 {
		t.Fatalf("pairs: got %d, want 6", len(pairs))
	}
	for _, p := range pairs {
		if p[0] >= p[1] {
			t.Errorf("pair %v: want i < j", p)
		}
	}
	if len(AllPairs(1)) != 0 {
		t.Errorf("AllPairs(1): want no pairs")
	}
}

func TestPermute(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	train := []float64{0.1, 0.4, 0.402, 0.9}
	dur := 1.0

	perm := Permute(train, dur, rnd)
	if len(perm) != len(train) {
		t.Fatalf("len: got %d, want %d", len(perm), len(train))
	}
	if !sort.Float64sAreSorted(perm) {
		t.Errorf("permuted train not sorted: %v", perm)
	}
	for i, tm := range perm {
		if tm < 0 || tm >= dur {
			t.Errorf("spike %d: %v outside [0, %v)", i, tm, dur)
		}
	}
	// original is untouched
	if train[0] != 0.1 || train[3] != 0.9 {
		t.Errorf("input train modified: %v", train)
	}
	// empty trains pass through
	if ep := Permute(nil, dur, rnd); len(ep) != 0 {
		t.Errorf("empty train: got %v", ep)
	}
}

func TestPermuteBadDuration(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("non-positive duration: expected panic")
		}
	}()
	Permute([]float64{0.1}, 0, nil)
}

func TestPermuteAll(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	trials := [][]float64{{0.1, 0.2}, {}, {0.5}}
	perm := PermuteAll(trials, 1.0, rnd)
	if len(perm) != 3 {
		t.Fatalf("trials: got %d, want 3", len(perm))
	}
	for i := range trials {
		if len(perm[i]) != len(trials[i]) {
			t.Errorf("trial %d: got %d spikes, want %d", i, len(perm[i]), len(trials[i]))
		}
	}
}
