// Copyright (c) 2025, The TBC Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nwb

import "testing"

func TestRaggedFloat64(t *testing.T) {
	data := []float64{0.1, 0.2, 0.3, 1.5, 2.0, 2.5, 2.6}
	index := []int64{3, 3, 5, 7} // unit 1 has no spikes

	rows, err := RaggedFloat64(data, index)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 4 {
		t.Errorf("rows: got %d, want 4", len(rows))
	}
	want := [][]float64{{0.1, 0.2, 0.3}, {}, {1.5, 2.0}, {2.5, 2.6}}
	for i := range want {
		if len(rows[i]) != len(want[i]) {
			t.Errorf("row %d: got len %d, want %d", i, len(rows[i]), len(want[i]))
			continue
		}
		for j := range want[i] {
			if rows[i][j] != want[i][j] {
				t.Errorf("row %d elem %d: got %v, want %v", i, j, rows[i][j], want[i][j])
			}
		}
	}
}

func TestRaggedFloat64Bad(t *testing.T) {
	data := []float64{1, 2, 3}

	// index not covering all of data
	if _, err := RaggedFloat64(data, []int64{2}); err == nil {
		t.Errorf("short index: expected error, got nil")
	}
	// decreasing index
	if _, err := RaggedFloat64(data, []int64{2, 1, 3}); err == nil {
		t.Errorf("decreasing index: expected error, got nil")
	}
	// index past end of data
	if _, err := RaggedFloat64(data, []int64{4}); err == nil {
		t.Errorf("out of range index: expected error, got nil")
	}
}

func TestOpenExt(t *testing.T) {
	if _, err := Open("recording.h5"); err == nil {
		t.Errorf("non-.nwb extension: expected error, got nil")
	}
}

func TestPresentationsDurations(t *testing.T) {
	pr := &Presentations{Start: []float64{10, 130, 250}, Stop: []float64{130, 250, 370}}
	if pr.NRepeats() != 3 {
		t.Errorf("NRepeats: got %d, want 3", pr.NRepeats())
	}
	for i, d := range pr.Durations() {
		if d != 120 {
			t.Errorf("duration %d: got %v, want 120", i, d)
		}
	}
}
