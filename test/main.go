package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/henderiw/extent/pkg/config"
	"github.com/henderiw/extent/pkg/domain"
	"github.com/henderiw/extent/pkg/slider"
	"k8s.io/apimachinery/pkg/labels"
)

const legend = `
sliders:
  - id: 0
    domain: "10,20"
    extent: "12,18"
    trackWidth: 1000
    labels:
      legend: choropleth
      metric: density
  - id: 1
    domain: "0,100"
    trackWidth: 500
    labels:
      legend: scatter
`

var drags = []struct {
	id     int64
	handle string
	delta  float64
}{
	{id: 0, handle: "low", delta: -150},
	{id: 0, handle: "low", delta: -46},
	{id: 0, handle: "x1", delta: -4},
	{id: 0, handle: "high", delta: 900},
	{id: 1, handle: "low", delta: 600},
	{id: 1, handle: "high", delta: -600},
	{id: 1, handle: "high", delta: 50},
}

func main() {
	log := funcr.New(func(prefix, args string) {
		fmt.Println(prefix, args)
	}, funcr.Options{Verbosity: 1})

	if err := run(log); err != nil {
		log.Error(err, "slider demo failed")
		os.Exit(1)
	}
}

func run(log logr.Logger) error {
	var in io.Reader = strings.NewReader(legend)
	if len(os.Args) > 1 {
		f, err := os.Open(os.Args[1])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	cfg, err := config.Load(in)
	if err != nil {
		return err
	}
	return replay(log, cfg)
}

func replay(log logr.Logger, cfg *config.Config) error {
	tbl, err := cfg.Build(slider.WithLogger(log.WithName("slider")))
	if err != nil {
		return err
	}

	for _, d := range drags {
		h, err := slider.ParseHandle(d.handle)
		if err != nil {
			return err
		}
		moved, err := tbl.Move(d.id, d.delta, h)
		if err != nil {
			log.Info("drag skipped", "id", d.id, "err", err.Error())
			continue
		}
		e, err := tbl.Get(d.id)
		if err != nil {
			return err
		}
		log.Info("drag", "id", d.id, "handle", h.String(), "delta", d.delta, "moved", moved,
			"percent", e.Controller().Extent().String(), "data", e.Controller().DataExtent().String())
	}

	choropleth := tbl.GetByLabel(labels.SelectorFromSet(labels.Set{"legend": "choropleth"}))
	for id := range choropleth {
		if err := tbl.RemapDomain(id, domain.DomainFrom(25, 40)); err != nil {
			return err
		}
	}

	iter := tbl.Iterate()
	for iter.Next() {
		c := iter.Value().Controller()
		log.Info("slider", "id", iter.ID(), "domain", c.Domain().String(),
			"percent", c.Extent().String(), "data", c.DataExtent().String(),
			"labels", iter.Value().Labels().String())
	}
	return nil
}
