// Copyright (c) 2025, The TBC Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poisson

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// Norm selects how an SPKD estimate is normalized.
type Norm int

const (
	// PerSpike normalizes the distance by the expected spike count
	PerSpike Norm = iota
	// PerSec normalizes the distance by the train duration
	PerSec
)

// EstimateParams are the fitted shape constants of the analytic SPKD null
// model.  For firing rate lambda (Hz) and cost q, the expected SPKD per
// spike follows a logistic in log10(q):
//
//	SPKD(q; lambda) = alpha + beta / (1 + exp(-gamma*(log10(q) - delta)))
//
// where alpha, beta are closed-form rate-dependent asymptotes, and the
// transition constants gamma (rational decay in lambda) and delta
// (logarithmic growth in lambda) were fit to empirical SPKD curves from
// synthetic Poisson trains.
type EstimateParams struct {
	Gamma [3]float64 `desc:"a, b, c in gamma(lambda) = a / (lambda + b) + c"`
	Delta [3]float64 `desc:"a, b, c in delta(lambda) = a * ln(lambda + b) + c"`
}

// Defaults sets the shape constants from the standard fit.
func (ep *EstimateParams) Defaults() {
	ep.Gamma = [3]float64{6.074, 7.299, 1.870}
	ep.Delta = [3]float64{0.396, 1.506, 0.367}
}

// Update validates the shape constants: there is nothing to precompute,
// but all-zero constants (an unset or mis-parsed fit) and non-positive b
// terms (a pole in the rational decay, or a log of a non-positive number
// at low rates) make every subsequent Estimate silently wrong, so they
// are rejected here.
func (ep *EstimateParams) Update() error {
	if ep.Gamma == ([3]float64{}) && ep.Delta == ([3]float64{}) {
		return fmt.Errorf("poisson: shape constants not set -- call Defaults or OpenJSON first")
	}
	if ep.Gamma[1] <= 0 {
		return fmt.Errorf("poisson: gamma b = %g: must be positive so gamma(lambda) has no pole at lambda >= 0", ep.Gamma[1])
	}
	if ep.Delta[1] <= 0 {
		return fmt.Errorf("poisson: delta b = %g: must be positive so delta(lambda) is defined at lambda >= 0", ep.Delta[1])
	}
	return nil
}

// shapeFile is the on-disk refit format: {"gamma": {"params": [a,b,c]}, ...}
type shapeFile struct {
	Gamma struct {
		Params [3]float64 `json:"params"`
	} `json:"gamma"`
	Delta struct {
		Params [3]float64 `json:"params"`
	} `json:"delta"`
}

// OpenJSON loads refit shape constants from a JSON file, replacing the
// defaults.  A file whose gamma / delta entries are missing or fail
// Update validation is rejected without touching the current constants.
func (ep *EstimateParams) OpenJSON(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("poisson: open shape params: %w", err)
	}
	var sf shapeFile
	if err := json.Unmarshal(b, &sf); err != nil {
		return fmt.Errorf("poisson: parse shape params %s: %w", path, err)
	}
	nw := EstimateParams{Gamma: sf.Gamma.Params, Delta: sf.Delta.Params}
	if nw.Gamma == ([3]float64{}) || nw.Delta == ([3]float64{}) {
		return fmt.Errorf("poisson: shape params %s: missing gamma or delta params", path)
	}
	if err := nw.Update(); err != nil {
		return fmt.Errorf("poisson: shape params %s: %w", path, err)
	}
	*ep = nw
	return nil
}

// GammaFn is the logistic steepness as a function of firing rate.
func (ep *EstimateParams) GammaFn(rate float64) float64 {
	return ep.Gamma[0]/(rate+ep.Gamma[1]) + ep.Gamma[2]
}

// DeltaFn is the logistic midpoint (in log10 cost) as a function of firing
// rate.
func (ep *EstimateParams) DeltaFn(rate float64) float64 {
	return ep.Delta[0]*math.Log(rate+ep.Delta[1]) + ep.Delta[2]
}

// Estimate returns the analytic expected SPKD between homogeneous Poisson
// spike trains of the given firing rate (Hz), at Victor-Purpura cost q,
// normalized per spike or per second.  duration (seconds) only matters for
// the cost == 0 closed form and the per-second normalization there.
// A zero firing rate gives zero distance.
func (ep *EstimateParams) Estimate(rate, cost float64, norm Norm, duration float64) (float64, error) {
	if rate == 0 {
		return 0, nil
	}

	if cost == 0 {
		// expected |count difference| of two Poisson counts
		expDif := math.Sqrt((2 * rate * duration) / math.Pi)
		switch norm {
		case PerSec:
			return expDif / duration, nil
		case PerSpike:
			return expDif / (rate * duration), nil
		}
		return 0, fmt.Errorf("poisson.Estimate: invalid norm %d", norm)
	}

	var alpha, beta float64
	switch norm {
	case PerSpike:
		alpha = math.Sqrt(4 / (rate * math.Pi))
		beta = 2 - alpha
	case PerSec:
		alpha = math.Sqrt((4 * rate) / math.Pi)
		beta = 2*rate - alpha
	default:
		return 0, fmt.Errorf("poisson.Estimate: invalid norm %d", norm)
	}

	gamma := ep.GammaFn(rate)
	delta := ep.DeltaFn(rate)
	exponent := -gamma * (math.Log10(cost) - delta)
	return alpha + beta/(1+math.Exp(exponent)), nil
}
