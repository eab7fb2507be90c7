package config

import (
	"errors"
	"fmt"
	"io"

	"github.com/henderiw/extent/pkg/domain"
	"github.com/henderiw/extent/pkg/slider"
	"github.com/henderiw/extent/pkg/slidertable"
	"gopkg.in/yaml.v3"
	"k8s.io/apimachinery/pkg/labels"
)

// DefaultSize is the slider table size used when none is configured.
const DefaultSize = 64

type Config struct {
	Size    int64    `yaml:"size,omitempty"`
	Sliders []Slider `yaml:"sliders"`
}

type Slider struct {
	// ID is optional, sliders without one get the first free id
	ID            *int64            `yaml:"id,omitempty"`
	Domain        string            `yaml:"domain"`
	Extent        string            `yaml:"extent,omitempty"`
	TrackWidth    float64           `yaml:"trackWidth"`
	SnapTolerance *float64          `yaml:"snapTolerance,omitempty"`
	Labels        map[string]string `yaml:"labels,omitempty"`
}

func Load(r io.Reader) (*Config, error) {
	cfg := &Config{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty slider config")
		}
		return nil, fmt.Errorf("cannot decode slider config: %w", err)
	}
	if cfg.Size == 0 {
		cfg.Size = DefaultSize
	}
	return cfg, nil
}

// Validate reports every problem in the config at once.
func (r *Config) Validate() error {
	var errm error
	if r.Size <= 0 {
		errm = errors.Join(errm, fmt.Errorf("size %d must be positive", r.Size))
	}
	seen := map[int64]struct{}{}
	for i, s := range r.Sliders {
		if _, _, err := s.parse(); err != nil {
			errm = errors.Join(errm, fmt.Errorf("slider %d: %w", i, err))
		}
		if s.TrackWidth <= 0 {
			errm = errors.Join(errm, fmt.Errorf("slider %d: trackWidth %g must be positive", i, s.TrackWidth))
		}
		if s.ID == nil {
			continue
		}
		if *s.ID < 0 || *s.ID >= r.Size {
			errm = errors.Join(errm, fmt.Errorf("slider %d: id %d outside 0-%d", i, *s.ID, r.Size-1))
		}
		if _, ok := seen[*s.ID]; ok {
			errm = errors.Join(errm, fmt.Errorf("slider %d: duplicate id %d", i, *s.ID))
		}
		seen[*s.ID] = struct{}{}
	}
	return errm
}

// Build creates the slider table. Sliders with a fixed id are claimed before
// the ones that take a free id.
func (r *Config) Build(opts ...slider.Option) (slidertable.Table, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	t, err := slidertable.New(r.Size, nil)
	if err != nil {
		return nil, err
	}
	var dynamic []Slider
	for _, s := range r.Sliders {
		if s.ID == nil {
			dynamic = append(dynamic, s)
			continue
		}
		c, err := s.controller(opts)
		if err != nil {
			return nil, err
		}
		if err := t.Claim(*s.ID, c, labels.Set(s.Labels)); err != nil {
			return nil, err
		}
	}
	for _, s := range dynamic {
		c, err := s.controller(opts)
		if err != nil {
			return nil, err
		}
		if _, err := t.ClaimDynamic(c, labels.Set(s.Labels)); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// parse returns the domain and the data-space extent; an empty extent selects
// the whole domain.
func (r Slider) parse() (domain.Domain, domain.Extent, error) {
	d, err := domain.ParseDomain(r.Domain)
	if err != nil {
		return domain.Domain{}, domain.Extent{}, err
	}
	if r.Extent == "" {
		return d, domain.ExtentFrom(d.Min, d.Max), nil
	}
	e, err := domain.ParseExtent(r.Extent)
	if err != nil {
		return domain.Domain{}, domain.Extent{}, err
	}
	return d, e, nil
}

func (r Slider) controller(opts []slider.Option) (slider.Controller, error) {
	d, e, err := r.parse()
	if err != nil {
		return nil, err
	}
	if r.SnapTolerance != nil {
		opts = append(append([]slider.Option{}, opts...), slider.WithSnapTolerance(*r.SnapTolerance))
	}
	return slider.New(d, e, r.TrackWidth, opts...)
}
