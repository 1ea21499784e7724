// Copyright (c) 2025, The TBC Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nwb

import "fmt"

// Presentations is the timing of repeated presentations of one stimulus:
// parallel start / stop times in session seconds, one entry per repeat.
type Presentations struct {
	Name  string    `desc:"name of the stimulus presentations interval table"`
	Start []float64 `desc:"presentation start times, seconds"`
	Stop  []float64 `desc:"presentation stop times, seconds"`
}

// NRepeats returns the number of presentations.
func (pr *Presentations) NRepeats() int {
	return len(pr.Start)
}

// Durations returns the per-presentation durations in seconds.
func (pr *Presentations) Durations() []float64 {
	durs := make([]float64, len(pr.Start))
	for i := range pr.Start {
		durs[i] = pr.Stop[i] - pr.Start[i]
	}
	return durs
}

// StimTimes reads the start and stop times of the named stimulus
// presentations interval table (under /intervals in the NWB file).
func (f *File) StimTimes(name string) (*Presentations, error) {
	start, err := f.ReadFloat64("intervals/" + name + "/start_time")
	if err != nil {
		return nil, err
	}
	stop, err := f.ReadFloat64("intervals/" + name + "/stop_time")
	if err != nil {
		return nil, err
	}
	if len(start) != len(stop) {
		return nil, fmt.Errorf("nwb: %s: intervals/%s has %d start times but %d stop times", f.Path, name, len(start), len(stop))
	}
	return &Presentations{Name: name, Start: start, Stop: stop}, nil
}

// StimTemplate reads the stimulus waveform template (e.g. the white-noise
// luminance modulation signal) stored under /stimulus/templates.
func (f *File) StimTemplate(name string) ([]float64, error) {
	return f.ReadFloat64("stimulus/templates/" + name + "/data")
}
