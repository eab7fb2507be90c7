package slider

import (
	"fmt"
	"math"
	"sync"

	"github.com/go-logr/logr"
	"github.com/henderiw/extent/pkg/domain"
)

// SnapTolerance is the distance, as a fraction of the track, within which a
// handle moving towards a track end lands exactly on it.
const SnapTolerance = 0.005

type Controller interface {
	// Move applies a pixel delta to handle h and reports whether the extent
	// changed. Rejected moves leave the state untouched and fire no callback.
	Move(delta float64, h Handle) bool
	// Extent returns the handle positions [x1, x2] in percent space.
	Extent() domain.Extent
	// DataExtent returns the handle positions in domain units.
	DataExtent() domain.Extent
	Domain() domain.Domain
	TrackWidth() float64
	// Reset reinitialises the handles from a data-space extent when the
	// domain or the extent differ from the ones last supplied.
	Reset(d domain.Domain, e domain.Extent) error
	SetTrackWidth(px float64) error
}

// ExtentChangedFn receives the percent-space extent after every accepted move.
type ExtentChangedFn func(e domain.Extent)

type Option func(*controller)

func WithOnChange(fn ExtentChangedFn) Option {
	return func(r *controller) { r.onChange = fn }
}

func WithSnapTolerance(t float64) Option {
	return func(r *controller) { r.tolerance = t }
}

func WithLogger(l logr.Logger) Option {
	return func(r *controller) { r.log = l }
}

func New(d domain.Domain, e domain.Extent, trackWidth float64, opts ...Option) (Controller, error) {
	r := &controller{
		m:         new(sync.RWMutex),
		tolerance: SnapTolerance,
		log:       logr.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if err := validateTrackWidth(trackWidth); err != nil {
		return nil, err
	}
	if math.IsNaN(r.tolerance) || r.tolerance < 0 || r.tolerance >= 0.5 {
		return nil, fmt.Errorf("snap tolerance %g out of range [0, 0.5)", r.tolerance)
	}
	if err := validateDomain(d); err != nil {
		return nil, err
	}
	r.trackWidth = trackWidth
	r.init(d, e)
	return r, nil
}

type controller struct {
	m          *sync.RWMutex
	domain     domain.Domain
	source     domain.Extent
	x1         float64
	x2         float64
	trackWidth float64
	tolerance  float64
	onChange   ExtentChangedFn
	log        logr.Logger
}

func (r *controller) Move(delta float64, h Handle) bool {
	r.m.Lock()
	e, changed := r.move(delta, h)
	onChange := r.onChange
	r.m.Unlock()

	// the callback may read the controller again
	if changed && onChange != nil {
		onChange(e)
	}
	return changed
}

func (r *controller) move(delta float64, h Handle) (domain.Extent, bool) {
	if !h.IsValid() {
		r.log.V(1).Info("move ignored", "handle", h.String(), "reason", "unknown handle")
		return r.extent(), false
	}
	change := delta / r.trackWidth
	current := r.position(h)
	proposed := r.snap(current+change, change)

	switch h {
	case HandleLow:
		if proposed > r.x2 {
			proposed = r.x2
		}
	case HandleHigh:
		if proposed < r.x1 {
			proposed = r.x1
		}
	}

	if math.IsNaN(proposed) || proposed < 0 || proposed > 1 {
		r.log.V(1).Info("move discarded", "handle", h.String(), "delta", delta, "proposed", proposed)
		return r.extent(), false
	}
	if proposed == current {
		return r.extent(), false
	}

	switch h {
	case HandleLow:
		r.x1 = proposed
	case HandleHigh:
		r.x2 = proposed
	}
	return r.extent(), true
}

// snap lands a handle on a track end when it moves towards that end and is
// within the tolerance of it.
func (r *controller) snap(p, change float64) float64 {
	switch {
	case change < 0 && math.Abs(p) < r.tolerance:
		return 0
	case change > 0 && math.Abs(1-p) < r.tolerance:
		return 1
	}
	return p
}

func (r *controller) position(h Handle) float64 {
	if h == HandleHigh {
		return r.x2
	}
	return r.x1
}

func (r *controller) Extent() domain.Extent {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.extent()
}

func (r *controller) extent() domain.Extent {
	return domain.ExtentFrom(r.x1, r.x2)
}

func (r *controller) DataExtent() domain.Extent {
	r.m.RLock()
	defer r.m.RUnlock()

	return domain.DataExtent(r.extent(), r.domain)
}

func (r *controller) Domain() domain.Domain {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.domain
}

func (r *controller) TrackWidth() float64 {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.trackWidth
}

func (r *controller) Reset(d domain.Domain, e domain.Extent) error {
	if err := validateDomain(d); err != nil {
		return err
	}
	r.m.Lock()
	defer r.m.Unlock()

	if d == r.domain && sameExtent(e, r.source) {
		return nil
	}
	r.init(d, e)
	r.log.V(1).Info("reset", "domain", d.String(), "extent", r.extent().String())
	return nil
}

func (r *controller) SetTrackWidth(px float64) error {
	if err := validateTrackWidth(px); err != nil {
		return err
	}
	r.m.Lock()
	defer r.m.Unlock()

	r.trackWidth = px
	return nil
}

// init places the handles from a data-space extent. Endpoints that cannot be
// mapped fall back to the track ends and the result is kept within [0, 1]
// with x1 <= x2.
func (r *controller) init(d domain.Domain, e domain.Extent) {
	p := domain.PercentExtent(e, d)
	track := domain.DomainFrom(domain.Full.Low, domain.Full.High)
	p = domain.ExtentFrom(track.Clamp(p.Low), track.Clamp(p.High)).Ordered()

	r.domain = d
	r.source = e
	r.x1, r.x2 = p.Low, p.High
}

func validateTrackWidth(px float64) error {
	if math.IsNaN(px) || math.IsInf(px, 0) || px <= 0 {
		return fmt.Errorf("track width %g must be a positive finite number", px)
	}
	return nil
}

func validateDomain(d domain.Domain) error {
	if math.IsNaN(d.Min) || math.IsNaN(d.Max) || math.IsInf(d.Min, 0) || math.IsInf(d.Max, 0) {
		return fmt.Errorf("domain %s: %w", d, domain.ErrNotFinite)
	}
	return nil
}

func sameExtent(a, b domain.Extent) bool {
	return sameFloat(a.Low, b.Low) && sameFloat(a.High, b.High)
}

func sameFloat(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}
