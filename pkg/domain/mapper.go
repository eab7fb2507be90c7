package domain

import (
	"errors"
	"fmt"
)

var (
	ErrDegenerateDomain = errors.New("degenerate domain")
	ErrNotFinite        = errors.New("result is not finite")
)

// PercentOfRange returns where v sits within d as a fraction of its width.
// min maps to 0 and max to 1; values outside the domain extrapolate beyond
// [0, 1] without error.
func PercentOfRange(v float64, d Domain) (float64, error) {
	if d.IsDegenerate() {
		return 0, fmt.Errorf("percent of %g in domain %s: %w", v, d, ErrDegenerateDomain)
	}
	p := percentOfRange(v, d)
	if !isFinite(p) {
		return 0, fmt.Errorf("percent of %g in domain %s: %w", v, d, ErrNotFinite)
	}
	return p, nil
}

// NumFromPercent is the inverse of PercentOfRange.
func NumFromPercent(p float64, d Domain) (float64, error) {
	v := numFromPercent(p, d)
	if !isFinite(v) {
		return 0, fmt.Errorf("value at %g of domain %s: %w", p, d, ErrNotFinite)
	}
	return v, nil
}

// DomainFromPercent re-expresses e, given in oldDomain, at the same relative
// position within newDomain. An endpoint whose percentage cannot be computed
// falls back to the matching end of newDomain, so the result is always usable.
func DomainFromPercent(newDomain, oldDomain Domain, e Extent) Extent {
	return DataExtent(PercentExtent(e, oldDomain), newDomain)
}

// PercentExtent converts a data-space extent into percent space. Endpoints
// that do not map to a finite percentage become 0 (low) and 1 (high).
func PercentExtent(e Extent, d Domain) Extent {
	low := percentOfRange(e.Low, d)
	if !isFinite(low) {
		low = Full.Low
	}
	high := percentOfRange(e.High, d)
	if !isFinite(high) {
		high = Full.High
	}
	return Extent{Low: low, High: high}
}

// DataExtent converts a percent-space extent into d's units.
func DataExtent(p Extent, d Domain) Extent {
	return Extent{
		Low:  numFromPercent(p.Low, d),
		High: numFromPercent(p.High, d),
	}
}

// percentOfRange is the unchecked mapping: a zero-width domain yields NaN
// for v == min and ±Inf otherwise.
func percentOfRange(v float64, d Domain) float64 {
	return (v - d.Min) / (d.Max - d.Min)
}

func numFromPercent(p float64, d Domain) float64 {
	return d.Min + (d.Max-d.Min)*p
}
