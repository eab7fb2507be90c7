package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Domain is the [Min, Max] value range that maps onto the 0..1 percent space.
// Min > Max is tolerated; the mapping is then reversed.
type Domain struct {
	Min float64
	Max float64
}

func DomainFrom(min, max float64) Domain {
	return Domain{Min: min, Max: max}
}

func ParseDomain(s string) (Domain, error) {
	min, max, err := parsePair(s)
	if err != nil {
		return Domain{}, fmt.Errorf("invalid domain: %w", err)
	}
	return Domain{Min: min, Max: max}, nil
}

func (r Domain) String() string {
	return fmt.Sprintf("%g,%g", r.Min, r.Max)
}

// IsDegenerate returns whether the domain has zero width.
func (r Domain) IsDegenerate() bool { return r.Min == r.Max }

func (r Domain) IsValid() bool {
	return isFinite(r.Min) && isFinite(r.Max) && !(r.Max < r.Min)
}

func (r Domain) IsZero() bool {
	return r == Domain{}
}

func (r Domain) Len() float64 { return r.Max - r.Min }

// Contains reports whether v lies between the bounds, inclusive, regardless
// of their order.
func (r Domain) Contains(v float64) bool {
	lo, hi := r.bounds()
	return lo <= v && v <= hi
}

func (r Domain) Clamp(v float64) float64 {
	lo, hi := r.bounds()
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (r Domain) bounds() (float64, float64) {
	if r.Max < r.Min {
		return r.Max, r.Min
	}
	return r.Min, r.Max
}

// Extent is a selected sub-range, either in data units or in percent space.
type Extent struct {
	Low  float64
	High float64
}

// Full is the percent-space extent covering the whole domain.
var Full = Extent{Low: 0, High: 1}

func ExtentFrom(low, high float64) Extent {
	return Extent{Low: low, High: high}
}

func ParseExtent(s string) (Extent, error) {
	low, high, err := parsePair(s)
	if err != nil {
		return Extent{}, fmt.Errorf("invalid extent: %w", err)
	}
	return Extent{Low: low, High: high}, nil
}

func (r Extent) String() string {
	return fmt.Sprintf("%g,%g", r.Low, r.High)
}

func (r Extent) IsValid() bool {
	return isFinite(r.Low) && isFinite(r.High) && !(r.High < r.Low)
}

func (r Extent) IsZero() bool {
	return r == Extent{}
}

func (r Extent) Len() float64 { return r.High - r.Low }

// Ordered returns the extent with Low <= High.
func (r Extent) Ordered() Extent {
	if r.High < r.Low {
		return Extent{Low: r.High, High: r.Low}
	}
	return r
}

// CoveredBy returns whether r is entirely contained within d.
func (r Extent) CoveredBy(d Domain) bool {
	return d.Contains(r.Low) && d.Contains(r.High)
}

// Equal compares both endpoints within an absolute tolerance.
func (r Extent) Equal(other Extent, tolerance float64) bool {
	return math.Abs(r.Low-other.Low) <= tolerance &&
		math.Abs(r.High-other.High) <= tolerance
}

func parsePair(s string) (float64, float64, error) {
	a, b, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("no comma in %q", s)
	}
	first, err := strconv.ParseFloat(strings.TrimSpace(a), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid first bound %q in %q", a, s)
	}
	second, err := strconv.ParseFloat(strings.TrimSpace(b), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid second bound %q in %q", b, s)
	}
	return first, second, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
