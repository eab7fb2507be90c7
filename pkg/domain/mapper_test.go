package domain

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
)

func TestPercentOfRange(t *testing.T) {
	cases := map[string]struct {
		value       float64
		domain      Domain
		expected    float64
		expectedErr error
	}{
		"Min":                {value: 10, domain: DomainFrom(10, 20), expected: 0},
		"Max":                {value: 20, domain: DomainFrom(10, 20), expected: 1},
		"Inside":             {value: 13, domain: DomainFrom(10, 20), expected: 0.3},
		"BelowDomain":        {value: 5, domain: DomainFrom(10, 20), expected: -0.5},
		"AboveDomain":        {value: 25, domain: DomainFrom(10, 20), expected: 1.5},
		"ReversedDomain":     {value: 15, domain: DomainFrom(20, 10), expected: 0.5},
		"NegativeDomain":     {value: -7.5, domain: DomainFrom(-10, 0), expected: 0.25},
		"DegenerateAtMin":    {value: 10, domain: DomainFrom(10, 10), expectedErr: ErrDegenerateDomain},
		"DegenerateOffBound": {value: 12, domain: DomainFrom(10, 10), expectedErr: ErrDegenerateDomain},
		"NaNValue":           {value: math.NaN(), domain: DomainFrom(0, 100), expectedErr: ErrNotFinite},
		"InfiniteValue":      {value: math.Inf(1), domain: DomainFrom(0, 100), expectedErr: ErrNotFinite},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			p, err := PercentOfRange(tc.value, tc.domain)
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				return
			}
			assert.NoError(t, err)
			assert.InDelta(t, tc.expected, p, 1e-12)
		})
	}
}

func TestNumFromPercent(t *testing.T) {
	cases := map[string]struct {
		percent     float64
		domain      Domain
		expected    float64
		expectedErr error
	}{
		"Zero":        {percent: 0, domain: DomainFrom(10, 20), expected: 10},
		"One":         {percent: 1, domain: DomainFrom(10, 20), expected: 20},
		"Half":        {percent: 0.5, domain: DomainFrom(25, 40), expected: 32.5},
		"Extrapolate": {percent: -0.5, domain: DomainFrom(10, 20), expected: 5},
		"Degenerate":  {percent: 0.7, domain: DomainFrom(3, 3), expected: 3},
		"NaNPercent":  {percent: math.NaN(), domain: DomainFrom(10, 20), expectedErr: ErrNotFinite},
		"InfDomain":   {percent: 0.5, domain: DomainFrom(0, math.Inf(1)), expectedErr: ErrNotFinite},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			v, err := NumFromPercent(tc.percent, tc.domain)
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				return
			}
			assert.NoError(t, err)
			assert.InDelta(t, tc.expected, v, 1e-12)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	domains := []Domain{
		DomainFrom(10, 20),
		DomainFrom(-1e6, 1e6),
		DomainFrom(0.001, 0.002),
		DomainFrom(40, -3),
	}
	for _, d := range domains {
		for i := 0; i <= 100; i++ {
			v := d.Min + d.Len()*float64(i)/100
			p, err := PercentOfRange(v, d)
			assert.NoError(t, err)
			got, err := NumFromPercent(p, d)
			assert.NoError(t, err)
			assert.InDelta(t, v, got, math.Abs(d.Len())*1e-12, "domain %s value %g", d, v)
		}
	}
}

func TestDomainFromPercent(t *testing.T) {
	cases := map[string]struct {
		newDomain Domain
		oldDomain Domain
		extent    Extent
		expected  Extent
	}{
		"Identity": {
			newDomain: DomainFrom(0, 100),
			oldDomain: DomainFrom(0, 100),
			extent:    ExtentFrom(20, 60),
			expected:  ExtentFrom(20, 60),
		},
		"ZeroWidthExtentMidway": {
			newDomain: DomainFrom(25, 40),
			oldDomain: DomainFrom(10, 20),
			extent:    ExtentFrom(15, 15),
			expected:  ExtentFrom(32.5, 32.5),
		},
		"MissingLow": {
			newDomain: DomainFrom(20, 30),
			oldDomain: DomainFrom(0, 100),
			extent:    ExtentFrom(math.NaN(), 50),
			expected:  ExtentFrom(20, 25),
		},
		"MissingHigh": {
			newDomain: DomainFrom(20, 30),
			oldDomain: DomainFrom(0, 100),
			extent:    ExtentFrom(50, math.NaN()),
			expected:  ExtentFrom(25, 30),
		},
		"DegenerateOldDomain": {
			newDomain: DomainFrom(-5, 5),
			oldDomain: DomainFrom(7, 7),
			extent:    ExtentFrom(7, 7),
			expected:  ExtentFrom(-5, 5),
		},
		"DegenerateOldDomainOffBound": {
			newDomain: DomainFrom(-5, 5),
			oldDomain: DomainFrom(7, 7),
			extent:    ExtentFrom(3, 9),
			expected:  ExtentFrom(-5, 5),
		},
		"Extrapolated": {
			newDomain: DomainFrom(0, 10),
			oldDomain: DomainFrom(10, 20),
			extent:    ExtentFrom(5, 25),
			expected:  ExtentFrom(-5, 15),
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got := DomainFromPercent(tc.newDomain, tc.oldDomain, tc.extent)
			if diff := cmp.Diff(tc.expected, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
				t.Errorf("%s: -want, +got:\n%s", name, diff)
			}
		})
	}
}

func TestPercentExtentFallback(t *testing.T) {
	got := PercentExtent(ExtentFrom(math.NaN(), math.NaN()), DomainFrom(0, 1))
	assert.Equal(t, Full, got)

	got = PercentExtent(ExtentFrom(2, 4), DomainFrom(0, 8))
	assert.Equal(t, ExtentFrom(0.25, 0.5), got)
}
