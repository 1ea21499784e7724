// Copyright (c) 2025, The TBC Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nwb

import "fmt"

// standard NWB dataset paths for the units and electrodes tables
const (
	UnitsIDPath       = "units/id"
	SpikeTimesPath    = "units/spike_times"
	SpikeTimesIdxPath = "units/spike_times_index"
	PeakChannelPath   = "units/peak_channel_id"
	ElectrodeIDPath   = "general/extracellular_ephys/electrodes/id"
	ElectrodeLocPath  = "general/extracellular_ephys/electrodes/location"
)

// Units is the extracted NWB Units table: one entry per sorted unit
// (putative neuron), with continuous spike times in seconds from the
// start of the recording session.
type Units struct {
	IDs        []int64     `desc:"unit ids as assigned by the spike sorter"`
	SpikeTimes [][]float64 `desc:"per-unit spike times in seconds, sorted ascending"`
}

// NUnits returns the number of units.
func (un *Units) NUnits() int {
	return len(un.SpikeTimes)
}

// Units reads the Units table.  NWB stores the per-unit spike time lists
// ragged: one flat spike_times dataset plus a spike_times_index dataset of
// end offsets, one per unit.
func (f *File) Units() (*Units, error) {
	ids, err := f.ReadInt64(UnitsIDPath)
	if err != nil {
		return nil, err
	}
	times, err := f.ReadFloat64(SpikeTimesPath)
	if err != nil {
		return nil, err
	}
	idx, err := f.ReadInt64(SpikeTimesIdxPath)
	if err != nil {
		return nil, err
	}
	st, err := RaggedFloat64(times, idx)
	if err != nil {
		return nil, fmt.Errorf("nwb: %s: %s: %w", f.Path, SpikeTimesPath, err)
	}
	if len(ids) != len(st) {
		return nil, fmt.Errorf("nwb: %s: units table has %d ids but %d spike time lists", f.Path, len(ids), len(st))
	}
	return &Units{IDs: ids, SpikeTimes: st}, nil
}

// RaggedFloat64 splits a flat data array into per-row slices using an NWB
// ragged index of end offsets (index[i] is the exclusive end of row i).
// The returned rows alias the data array -- no copying.
func RaggedFloat64(data []float64, index []int64) ([][]float64, error) {
	rows := make([][]float64, len(index))
	start := int64(0)
	for i, end := range index {
		if end < start || end > int64(len(data)) {
			return nil, fmt.Errorf("ragged index entry %d = %d out of range (start %d, data len %d)", i, end, start, len(data))
		}
		rows[i] = data[start:end]
		start = end
	}
	if start != int64(len(data)) {
		return nil, fmt.Errorf("ragged index covers %d of %d data elements", start, len(data))
	}
	return rows, nil
}

// UnitLocations returns the anatomical region label for each unit, found
// by looking up each unit's peak channel in the electrodes table.
func (f *File) UnitLocations() ([]string, error) {
	peaks, err := f.ReadInt64(PeakChannelPath)
	if err != nil {
		return nil, err
	}
	chIDs, err := f.ReadInt64(ElectrodeIDPath)
	if err != nil {
		return nil, err
	}
	chLocs, err := f.ReadStrings(ElectrodeLocPath)
	if err != nil {
		return nil, err
	}
	if len(chIDs) != len(chLocs) {
		return nil, fmt.Errorf("nwb: %s: electrodes table has %d ids but %d locations", f.Path, len(chIDs), len(chLocs))
	}
	locByCh := make(map[int64]string, len(chIDs))
	for i, id := range chIDs {
		locByCh[id] = chLocs[i]
	}
	locs := make([]string, len(peaks))
	for i, pk := range peaks {
		loc, ok := locByCh[pk]
		if !ok {
			return nil, fmt.Errorf("nwb: %s: unit %d peak channel %d not in electrodes table", f.Path, i, pk)
		}
		locs[i] = loc
	}
	return locs, nil
}
