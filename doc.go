// Copyright (c) 2025, The TBC Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package tbc is the overall repository for the Temporal Barcode analysis
code, implemented in the Go language (golang), for working with Neuropixels
extracellular recordings of mice viewing temporally-modulated visual stimuli.

This top-level of the repository has no functional code -- everything is
organized into the following sub-repositories:

* nwb: extraction utilities that read spike times, electrode locations, and
stimulus presentation timing out of NWB (Neurodata Without Borders) files,
which are HDF5 containers.

* raster: spike raster utilities -- aligning continuous spike times to
repeated stimulus onsets, per-trial counts and firing rates, binned count
matrices, circular permutation for null distributions, and trial pairing.

* spkd: the Victor-Purpura spike train distance and the population-level
trial-pair distance statistics computed from it, including Fano factors
and full trial x trial distance matrices.

* poisson: homogeneous Poisson reference spike trains and the analytic
estimate of the expected spike distance under the Poisson null.

* barcode: the temporal barcode kernel -- reverse correlation of spiking
against the white-noise luminance modulation signal, with peak latency and
permutation-based significance.

* examples: these actually compile into runnable programs.
examples/barcodes runs the full extraction -> raster -> distance -> kernel
pipeline on an NWB file and writes the population results table.
*/
package tbc
