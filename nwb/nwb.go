// Copyright (c) 2025, The TBC Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package nwb provides thin extraction utilities over NWB (Neurodata Without
Borders) files, the standardized container format for neurophysiology data.
NWB files are HDF5 files underneath, so everything here is a typed read of a
known dataset path via the HDF5 library.

Only the fields needed for the temporal barcode analysis are exposed: the
Units table (per-unit spike times and peak channels), the electrodes table
(anatomical locations), and stimulus presentation timing from the intervals
tables.  Anything else in the file is ignored.
*/
package nwb

import (
	"fmt"
	"path/filepath"

	"gonum.org/v1/hdf5"
)

// File is an open NWB file.  All reads go through typed accessors that
// name the dataset path being read, so errors identify both the file and
// the field that failed.
type File struct {
	Path string     `desc:"full path to the .nwb file"`
	hf   *hdf5.File // underlying HDF5 file handle
}

// Open opens an NWB file for reading.  The file must have the .nwb
// extension -- anything else is rejected before touching the HDF5 layer.
func Open(path string) (*File, error) {
	if filepath.Ext(path) != ".nwb" {
		return nil, fmt.Errorf("nwb.Open: %s is not an NWB file (.nwb extension required)", path)
	}
	hf, err := hdf5.OpenFile(path, hdf5.F_ACC_RDONLY)
	if err != nil {
		return nil, fmt.Errorf("nwb.Open: %s: %w", path, err)
	}
	return &File{Path: path, hf: hf}, nil
}

// Close closes the underlying HDF5 file.
func (f *File) Close() error {
	if f.hf == nil {
		return nil
	}
	err := f.hf.Close()
	f.hf = nil
	return err
}

// dsetLen returns the number of elements in the (1D) named dataset.
func dsetLen(ds *hdf5.Dataset) (int, error) {
	sp := ds.Space()
	defer sp.Close()
	dims, _, err := sp.SimpleExtentDims()
	if err != nil {
		return 0, err
	}
	n := 1
	for _, d := range dims {
		n *= int(d)
	}
	return n, nil
}

// ReadFloat64 reads the named dataset as a flat []float64.
// Multi-dimensional datasets are flattened in row-major order.
func (f *File) ReadFloat64(name string) ([]float64, error) {
	ds, err := f.hf.OpenDataset(name)
	if err != nil {
		return nil, fmt.Errorf("nwb: %s: open dataset %s: %w", f.Path, name, err)
	}
	defer ds.Close()
	n, err := dsetLen(ds)
	if err != nil {
		return nil, fmt.Errorf("nwb: %s: dataset %s: %w", f.Path, name, err)
	}
	data := make([]float64, n)
	if err := ds.Read(&data); err != nil {
		return nil, fmt.Errorf("nwb: %s: read dataset %s: %w", f.Path, name, err)
	}
	return data, nil
}

// ReadInt64 reads the named dataset as a flat []int64.
func (f *File) ReadInt64(name string) ([]int64, error) {
	ds, err := f.hf.OpenDataset(name)
	if err != nil {
		return nil, fmt.Errorf("nwb: %s: open dataset %s: %w", f.Path, name, err)
	}
	defer ds.Close()
	n, err := dsetLen(ds)
	if err != nil {
		return nil, fmt.Errorf("nwb: %s: dataset %s: %w", f.Path, name, err)
	}
	data := make([]int64, n)
	if err := ds.Read(&data); err != nil {
		return nil, fmt.Errorf("nwb: %s: read dataset %s: %w", f.Path, name, err)
	}
	return data, nil
}

// ReadStrings reads the named dataset as a []string -- used for label
// columns such as electrode locations.
func (f *File) ReadStrings(name string) ([]string, error) {
	ds, err := f.hf.OpenDataset(name)
	if err != nil {
		return nil, fmt.Errorf("nwb: %s: open dataset %s: %w", f.Path, name, err)
	}
	defer ds.Close()
	n, err := dsetLen(ds)
	if err != nil {
		return nil, fmt.Errorf("nwb: %s: dataset %s: %w", f.Path, name, err)
	}
	data := make([]string, n)
	if err := ds.Read(&data); err != nil {
		return nil, fmt.Errorf("nwb: %s: read dataset %s: %w", f.Path, name, err)
	}
	return data, nil
}
