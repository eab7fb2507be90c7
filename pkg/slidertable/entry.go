package slidertable

import (
	"fmt"

	"github.com/henderiw/extent/pkg/slider"
	"k8s.io/apimachinery/pkg/labels"
)

type Entry interface {
	ID() int64
	Controller() slider.Controller
	Labels() labels.Set
	String() string
}

type entry struct {
	id     int64
	ctrl   slider.Controller
	labels labels.Set
}

func (r entry) ID() int64                     { return r.id }
func (r entry) Controller() slider.Controller { return r.ctrl }
func (r entry) Labels() labels.Set            { return r.labels }
func (r entry) String() string {
	return fmt.Sprintf("id: %d, extent: %s, labels: %s", r.id, r.ctrl.Extent(), r.labels.String())
}

func newEntry(id int64, c slider.Controller, l labels.Set) Entry {
	if l == nil {
		l = labels.Set{}
	}
	return entry{
		id:     id,
		ctrl:   c,
		labels: l,
	}
}
